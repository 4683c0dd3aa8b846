// SPDX-License-Identifier: MIT
package partition

import (
	"fmt"

	"github.com/katalvlaran/graphpart/graphmodel"
)

// CutEdges returns the number of edges crossing partition boundaries in an
// unweighted adjacency matrix: |{(i,j) : i<j, A has edge, group(i) != group(j)}|.
//
// Complexity: O(n^2).
func CutEdges(p Partition, adj *graphmodel.AdjacencyMatrix) (int, error) {
	n := adj.N()
	if p.N() != n {
		return 0, fmt.Errorf("CutEdges: %w", ErrDimensionMismatch)
	}
	groupOf := indexGroups(p, n)

	cut := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj.HasEdge(i, j) && groupOf[i] != groupOf[j] {
				cut++
			}
		}
	}
	return cut, nil
}

// CutWeight returns the total weight of edges crossing partition
// boundaries: sum of W[i,j] for i<j, group(i) != group(j), W[i,j] > 0.
//
// Complexity: O(n^2).
func CutWeight(p Partition, w *graphmodel.WeightsMatrix) (float64, error) {
	n := w.N()
	if p.N() != n {
		return 0, fmt.Errorf("CutWeight: %w", ErrDimensionMismatch)
	}
	groupOf := indexGroups(p, n)

	total := 0.0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			v, err := w.Weight(i, j)
			if err != nil {
				return 0, fmt.Errorf("CutWeight: %w", err)
			}
			if v > 0 && groupOf[i] != groupOf[j] {
				total += v
			}
		}
	}
	return total, nil
}

// indexGroups builds a vertex -> group-index lookup table. Callers must
// have already validated p covers {0..n-1} exactly once; indexGroups does
// not re-validate.
func indexGroups(p Partition, n int) []int {
	groupOf := make([]int, n)
	for gi, g := range p {
		for _, v := range g {
			groupOf[v] = gi
		}
	}
	return groupOf
}
