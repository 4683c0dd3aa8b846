// Package algorithms implements the six balanced k-way graph partitioning
// strategies: Spectral, Inertial, Geometric, KernighanLin, Greedy, and
// BruteForce (unweighted and weighted flavors).
//
// Every strategy shares the same capability — Partition(k) (Partition,
// error) — modeled by the Algorithm interface, so callers can select a
// strategy at runtime through New (names listed by Names) rather than calling a
// strategy-specific entry point directly:
//
//	algo, err := algorithms.New("spectral", adj, nil, nil)
//	p, err := algo.Partition(2)
//
// Each constructor takes the adjacency matrix (and, for the
// weight-sensitive strategies, a weights matrix) up front and returns a
// value implementing Algorithm; Partition(k) is then a pure function of
// that value's fields plus, where the strategy is randomized, an injected
// *rand.Rand.
package algorithms
