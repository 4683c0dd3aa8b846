// Package randomgraph generates random test/benchmark graphs over
// graphmodel's matrix types. It is adapted from builder's
// RandomSparse/RandomRegular constructors (github.com/katalvlaran/lvlath),
// reimplemented over graphmodel.AdjacencyMatrix instead of core.Graph, and
// following spec.md §6's degree-capped reference contract rather than the
// teacher's Erdős–Rényi/stub-matching models.
//
// Both Adjacency and Weights take an explicit *rand.Rand; nil selects a
// deterministic default, matching the RNG-injection policy used throughout
// this module (see algorithms' rng.go).
package randomgraph
