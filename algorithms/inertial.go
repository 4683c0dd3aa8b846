// SPDX-License-Identifier: MIT
package algorithms

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/matrix"
	"github.com/katalvlaran/graphpart/partition"
)

// InertialAlgorithm computes a 2-way split from the *weighted* Laplacian's
// Fiedler vector: vertices land in P1 if their Fiedler component is at or
// above the upper median, P2 otherwise, per spec.md §4.3's tie-to-P1 policy.
type InertialAlgorithm struct {
	adj *graphmodel.AdjacencyMatrix
	w   *graphmodel.WeightsMatrix
	Tol float64
}

// Compile-time assertion: *InertialAlgorithm implements Algorithm.
var _ Algorithm = (*InertialAlgorithm)(nil)

// NewInertialAlgorithm constructs an InertialAlgorithm. w must be non-nil;
// returns ErrMissingWeights otherwise.
func NewInertialAlgorithm(adj *graphmodel.AdjacencyMatrix, w *graphmodel.WeightsMatrix) (*InertialAlgorithm, error) {
	if w == nil {
		return nil, fmt.Errorf("NewInertialAlgorithm: %w", ErrMissingWeights)
	}
	return &InertialAlgorithm{adj: adj, w: w, Tol: DefaultEigenTolerance}, nil
}

// Partition implements Algorithm. InertialAlgorithm only supports k == 2.
//
// Complexity: O(n^3) for eigendecomposition, dominating the O(n log n) median split.
func (ia *InertialAlgorithm) Partition(k int) (partition.Partition, error) {
	if k != 2 {
		return nil, fmt.Errorf("InertialAlgorithm.Partition: %w", ErrInvalidK)
	}

	lap, err := matrix.Laplacian(ia.w.Matrix(), ia.Tol)
	if err != nil {
		return nil, fmt.Errorf("InertialAlgorithm.Partition: %w", err)
	}
	eigs, vecs, err := matrix.EigenSym(lap, ia.Tol)
	if err != nil {
		return nil, fmt.Errorf("InertialAlgorithm.Partition: %w", err)
	}
	fiedler, err := matrix.Fiedler(eigs, vecs, ia.Tol)
	if err != nil {
		return nil, fmt.Errorf("InertialAlgorithm.Partition: %w", err)
	}

	n := len(fiedler)
	sorted := make([]float64, n)
	copy(sorted, fiedler)
	sort.Float64s(sorted)
	median := sorted[n/2] // upper median, per spec.md §4.3

	p1, p2 := make([]int, 0, n), make([]int, 0, n)
	for i, x := range fiedler {
		if x >= median {
			p1 = append(p1, i)
		} else {
			p2 = append(p2, i)
		}
	}

	p := partition.Partition{p1, p2}
	if err := p.Validate(ia.adj.N()); err != nil {
		return nil, fmt.Errorf("InertialAlgorithm.Partition: %w", err)
	}
	return p, nil
}
