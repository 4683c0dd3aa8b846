// SPDX-License-Identifier: MIT
package graphmodel

import (
	"fmt"

	"github.com/katalvlaran/graphpart/matrix"
)

// DefaultSymmetryTolerance is the default epsilon used when validating
// symmetry and zero-diagonal invariants on AdjacencyMatrix/WeightsMatrix.
const DefaultSymmetryTolerance = 1e-9

// AdjacencyMatrix is a symmetric n×n matrix.Matrix with a zero diagonal.
// Any positive entry is treated as "edge present" by the unweighted
// algorithms (spectral, greedy, Kernighan-Lin, brute force).
type AdjacencyMatrix struct {
	m matrix.Matrix
}

// NewAdjacencyMatrix validates m and wraps it as an AdjacencyMatrix.
//
// Contract: m non-nil, square, symmetric within tol, zero diagonal within tol.
// Complexity: O(n^2).
func NewAdjacencyMatrix(m matrix.Matrix, tol float64) (*AdjacencyMatrix, error) {
	if err := validateAdjacencyShape(m, tol); err != nil {
		return nil, fmt.Errorf("NewAdjacencyMatrix: %w", err)
	}
	return &AdjacencyMatrix{m: m}, nil
}

func validateAdjacencyShape(m matrix.Matrix, tol float64) error {
	if err := matrix.ValidateSquare(m); err != nil {
		return err
	}
	if err := matrix.ValidateSymmetric(m, tol); err != nil {
		return ErrNotSymmetric
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		v, _ := m.At(i, i)
		if v < -tol || v > tol {
			return ErrNonZeroDiagonal
		}
	}
	return nil
}

// N returns the vertex count. Complexity: O(1).
func (a *AdjacencyMatrix) N() int { return a.m.Rows() }

// Matrix returns the underlying matrix.Matrix, for use by the linear-algebra
// kernel (Laplacian, EigenSym, ...).
func (a *AdjacencyMatrix) Matrix() matrix.Matrix { return a.m }

// HasEdge reports whether vertices i and j are connected: any positive
// entry counts as an edge, per spec.md §3's "any positive value treated as
// edge present" policy for the unweighted pipelines.
func (a *AdjacencyMatrix) HasEdge(i, j int) bool {
	v, err := a.m.At(i, j)
	return err == nil && v > 0
}

// Neighbors returns the sorted list of vertices adjacent to i.
// Complexity: O(n).
func (a *AdjacencyMatrix) Neighbors(i int) []int {
	n := a.N()
	out := make([]int, 0, n)
	for j := 0; j < n; j++ {
		if j != i && a.HasEdge(i, j) {
			out = append(out, j)
		}
	}
	return out
}

// EdgeCount returns the number of undirected edges (entries above the diagonal
// counted once). Complexity: O(n^2).
func (a *AdjacencyMatrix) EdgeCount() int {
	n := a.N()
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if a.HasEdge(i, j) {
				count++
			}
		}
	}
	return count
}

// WeightsMatrix is a symmetric n×n matrix.Matrix with zero diagonal and
// non-negative entries: W[i,j] == 0 iff no edge, W[i,j] > 0 otherwise.
type WeightsMatrix struct {
	m matrix.Matrix
}

// NewWeightsMatrix validates m and wraps it as a WeightsMatrix. If adj is
// non-nil, support(W) ⊆ support(A) is enforced (spec.md §3's invariant).
//
// Complexity: O(n^2).
func NewWeightsMatrix(m matrix.Matrix, adj *AdjacencyMatrix, tol float64) (*WeightsMatrix, error) {
	if err := validateAdjacencyShape(m, tol); err != nil {
		return nil, fmt.Errorf("NewWeightsMatrix: %w", err)
	}
	n := m.Rows()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v, _ := m.At(i, j)
			if v < -tol {
				return nil, fmt.Errorf("NewWeightsMatrix: %w", ErrNegativeWeight)
			}
			if adj != nil && v > tol && !adj.HasEdge(i, j) {
				return nil, fmt.Errorf("NewWeightsMatrix: %w", ErrWeightSupportMismatch)
			}
		}
	}
	return &WeightsMatrix{m: m}, nil
}

// N returns the vertex count. Complexity: O(1).
func (w *WeightsMatrix) N() int { return w.m.Rows() }

// Matrix returns the underlying matrix.Matrix.
func (w *WeightsMatrix) Matrix() matrix.Matrix { return w.m }

// Weight returns W[i,j], or 0 with an error if out of range.
func (w *WeightsMatrix) Weight(i, j int) (float64, error) {
	return w.m.At(i, j)
}
