// SPDX-License-Identifier: MIT
package algorithms

import (
	"fmt"

	"github.com/katalvlaran/graphpart/assign"
	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/matrix"
	"github.com/katalvlaran/graphpart/partition"
)

// DefaultEigenTolerance is the tolerance threshold passed to the eigensolver
// and Fiedler extraction for every spectral-family algorithm, unless a
// caller overrides it by setting the algorithm's Tol field.
const DefaultEigenTolerance = 1e-9

// SpectralAlgorithm computes a 2-way split from the unweighted Laplacian's
// Fiedler vector. The original MILP-shaped sign-assignment step
// (spec.md §9's open question) is implemented two ways, selected by Solver:
// DirectSignCut (default, recommended fix) or an assign.AssignmentSolver of
// the caller's choosing (e.g. assign.BranchAndBoundSolver, to reproduce the
// legacy MILP-shaped behavior).
type SpectralAlgorithm struct {
	adj    *graphmodel.AdjacencyMatrix
	Solver assign.AssignmentSolver
	Tol    float64

	// Eigen selects the symmetric eigensolver backend. Defaults to
	// matrix.EigenSym (LAPACK-backed); set to matrix.JacobiSolver to use
	// the dependency-free Jacobi-rotation fallback instead.
	Eigen matrix.EigenSolver
}

// Compile-time assertion: *SpectralAlgorithm implements Algorithm.
var _ Algorithm = (*SpectralAlgorithm)(nil)

// NewSpectralAlgorithm constructs a SpectralAlgorithm over adj with the
// recommended assign.DirectSignCut backend, matrix.EigenSym, and
// DefaultEigenTolerance. Set the Solver field directly to opt into
// assign.BranchAndBoundSolver, or the Eigen field to opt into
// matrix.JacobiSolver.
func NewSpectralAlgorithm(adj *graphmodel.AdjacencyMatrix) *SpectralAlgorithm {
	return &SpectralAlgorithm{
		adj:    adj,
		Solver: assign.DirectSignCut{},
		Tol:    DefaultEigenTolerance,
		Eigen:  matrix.EigenSym,
	}
}

// Partition implements Algorithm. SpectralAlgorithm only supports k == 2.
//
// Complexity: O(n^3) for eigendecomposition, dominating the O(n log n)
// median split done by the default DirectSignCut solver.
func (s *SpectralAlgorithm) Partition(k int) (partition.Partition, error) {
	if k != 2 {
		return nil, fmt.Errorf("SpectralAlgorithm.Partition: %w", ErrInvalidK)
	}

	lap, err := matrix.Laplacian(s.adj.Matrix(), s.Tol)
	if err != nil {
		return nil, fmt.Errorf("SpectralAlgorithm.Partition: %w", err)
	}
	eigenFn := s.Eigen
	if eigenFn == nil {
		eigenFn = matrix.EigenSym
	}
	eigs, vecs, err := eigenFn(lap, s.Tol)
	if err != nil {
		return nil, fmt.Errorf("SpectralAlgorithm.Partition: %w", err)
	}
	fiedler, err := matrix.Fiedler(eigs, vecs, s.Tol)
	if err != nil {
		return nil, fmt.Errorf("SpectralAlgorithm.Partition: %w", err)
	}

	labels, err := s.Solver.Solve(fiedler)
	if err != nil {
		return nil, fmt.Errorf("SpectralAlgorithm.Partition: %w", err)
	}

	groups := labelsToGroups(labels, 2)
	p := partition.Partition(groups)
	if err := p.Validate(s.adj.N()); err != nil {
		return nil, fmt.Errorf("SpectralAlgorithm.Partition: %w", err)
	}
	return p, nil
}

// labelsToGroups buckets vertex indices by their 0..numGroups-1 label.
func labelsToGroups(labels []int, numGroups int) [][]int {
	groups := make([][]int, numGroups)
	for i := range groups {
		groups[i] = make([]int, 0)
	}
	for v, l := range labels {
		groups[l] = append(groups[l], v)
	}
	return groups
}
