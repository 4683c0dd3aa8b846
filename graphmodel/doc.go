// SPDX-License-Identifier: MIT
// Package graphmodel defines the domain types every partitioning algorithm
// consumes: AdjacencyMatrix and WeightsMatrix, both symmetric n×n
// matrix.Matrix values with zero diagonals, plus the brace-format
// (de)serializer used for BruteForce's rectangular partition-matrix output
// and for round-trip tests.
//
// AdjacencyMatrix and WeightsMatrix are deliberately thin wrappers: the
// linear-algebra kernel (matrix.Laplacian, matrix.EigenSym, matrix.Fiedler)
// operates on the embedded matrix.Matrix directly, so algorithms never need
// to unwrap back to a *matrix.Dense.
package graphmodel
