// Package graphpart implements balanced k-way graph partitioning over dense
// adjacency/weight matrices.
//
//	🚀 What is graphpart?
//
//	A small, dependency-minimal library offering six partitioning
//	strategies behind one interface:
//
//	  • Spectral   — Fiedler-vector sign split (k=2)
//	  • Inertial   — weighted-Laplacian Fiedler split (k=2)
//	  • Geometric  — recursive eigenvector embedding + hyperplane split (any k)
//	  • KernighanLin — greedy pairwise-swap refinement (any k)
//	  • Greedy     — BFS growth from pseudo-peripheral seeds (any k)
//	  • BruteForce — exhaustive search, unweighted and weighted (pedagogical)
//
// Everything is organized under task-shaped subpackages:
//
//	matrix/      — dense matrix type, Laplacian, symmetric eigendecomposition
//	graphmodel/  — AdjacencyMatrix/WeightsMatrix domain types, brace serialization
//	partition/   — Partition type, balance invariant, cut metrics
//	assign/      — the assignment-solver interface consumed by Spectral
//	algorithms/  — the six strategies plus a name-keyed factory registry
//	asp/         — Answer-Set Programming logic-program emitter/parser
//	randomgraph/ — degree-capped random graph generation for tests/benchmarks
//	config/      — environment-driven configuration (RNG seed, ASP solver path)
//
// Every structure here is a value: no partitioning state survives past a
// single Algorithm.Partition call, and every randomized strategy accepts an
// injectable *rand.Rand so results are reproducible across runs.
package graphpart
