// SPDX-License-Identifier: MIT
package algorithms

import (
	"fmt"

	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/partition"
)

// BruteForce exhaustively searches balanced assignments by backtracking over
// group sizes, minimizing partition.CutEdges. No symmetry breaking is
// applied (group 0's first vertex is not pinned), per spec.md §4.7 —
// exponential and meant only for small n.
type BruteForce struct {
	adj *graphmodel.AdjacencyMatrix
}

// Compile-time assertion: *BruteForce implements Algorithm.
var _ Algorithm = (*BruteForce)(nil)

// NewBruteForce constructs a BruteForce over adj.
func NewBruteForce(adj *graphmodel.AdjacencyMatrix) *BruteForce {
	return &BruteForce{adj: adj}
}

// Partition implements Algorithm.
//
// Complexity: O(k^n) in the worst case; intended for small n only.
func (bf *BruteForce) Partition(k int) (partition.Partition, error) {
	n := bf.adj.N()
	if k <= 0 || k > n {
		return nil, fmt.Errorf("BruteForce.Partition: %w", ErrInvalidK)
	}
	targets := partition.TargetSizes(n, k)

	groupOf := make([]int, n)
	counts := make([]int, k)
	best := make([]int, n)
	bestCut := -1

	var backtrack func(v int)
	backtrack = func(v int) {
		if v == n {
			cut := countCut(bf.adj, groupOf)
			if bestCut == -1 || cut < bestCut {
				bestCut = cut
				copy(best, groupOf)
			}
			return
		}
		for g := 0; g < k; g++ {
			if counts[g] >= targets[g] {
				continue
			}
			groupOf[v] = g
			counts[g]++
			backtrack(v + 1)
			counts[g]--
		}
	}
	backtrack(0)

	if bestCut == -1 {
		return nil, fmt.Errorf("BruteForce.Partition: %w", ErrCombinatoriallyInfeasible)
	}

	groups := make([][]int, k)
	for i := range groups {
		groups[i] = make([]int, 0, targets[i])
	}
	for v, g := range best {
		groups[g] = append(groups[g], v)
	}

	p := partition.Partition(groups)
	if err := p.Validate(n); err != nil {
		return nil, fmt.Errorf("BruteForce.Partition: %w", err)
	}
	return p, nil
}

// PartitionMatrix computes the optimal partition and renders it via
// graphmodel.SerializePartitionMatrix, per spec.md §4.7's output encoding.
func (bf *BruteForce) PartitionMatrix(k int) (string, error) {
	p, err := bf.Partition(k)
	if err != nil {
		return "", err
	}
	return graphmodel.SerializePartitionMatrix(p), nil
}

// BruteForceWeighted exhaustively enumerates every k^n label assignment via
// a base-k counter, filters to those matching the balanced target size
// multiset, and minimizes partition.CutWeight over the survivors. Unlike
// BruteForce's backtracking search, this enumerates the full space up
// front, per spec.md §4.7's weighted variant.
type BruteForceWeighted struct {
	adj *graphmodel.AdjacencyMatrix
	w   *graphmodel.WeightsMatrix
}

// Compile-time assertion: *BruteForceWeighted implements Algorithm.
var _ Algorithm = (*BruteForceWeighted)(nil)

// NewBruteForceWeighted constructs a BruteForceWeighted. w must be non-nil;
// returns ErrMissingWeights otherwise.
func NewBruteForceWeighted(adj *graphmodel.AdjacencyMatrix, w *graphmodel.WeightsMatrix) (*BruteForceWeighted, error) {
	if w == nil {
		return nil, fmt.Errorf("NewBruteForceWeighted: %w", ErrMissingWeights)
	}
	return &BruteForceWeighted{adj: adj, w: w}, nil
}

// Partition implements Algorithm.
//
// Complexity: O(k^n * n) in the worst case; intended for small n only.
func (bfw *BruteForceWeighted) Partition(k int) (partition.Partition, error) {
	n := bfw.w.N()
	if k <= 0 || k > n {
		return nil, fmt.Errorf("BruteForceWeighted.Partition: %w", ErrInvalidK)
	}
	targetSizes := partition.TargetSizes(n, k)
	targetCounts := make(map[int]int)
	for _, s := range targetSizes {
		targetCounts[s]++
	}

	groupOf := make([]int, n)
	best := make([]int, n)
	var bestCut float64
	bestFound := false

	total := 1
	for i := 0; i < n; i++ {
		total *= k
	}

	for code := 0; code < total; code++ {
		c := code
		counts := make([]int, k)
		for i := 0; i < n; i++ {
			g := c % k
			c /= k
			groupOf[i] = g
			counts[g]++
		}
		if !matchesTargetCounts(counts, targetCounts) {
			continue
		}

		p := make(partition.Partition, k)
		for i := range p {
			p[i] = make([]int, 0, n/k+1)
		}
		for v, g := range groupOf {
			p[g] = append(p[g], v)
		}
		cut, err := partition.CutWeight(p, bfw.w)
		if err != nil {
			return nil, fmt.Errorf("BruteForceWeighted.Partition: %w", err)
		}
		if !bestFound || cut < bestCut {
			bestFound = true
			bestCut = cut
			copy(best, groupOf)
		}
	}

	if !bestFound {
		return nil, fmt.Errorf("BruteForceWeighted.Partition: %w", ErrCombinatoriallyInfeasible)
	}

	groups := make([][]int, k)
	for i := range groups {
		groups[i] = make([]int, 0, n/k+1)
	}
	for v, g := range best {
		groups[g] = append(groups[g], v)
	}

	p := partition.Partition(groups)
	if err := p.Validate(n); err != nil {
		return nil, fmt.Errorf("BruteForceWeighted.Partition: %w", err)
	}
	return p, nil
}

// PartitionMatrix computes the optimal weighted partition and renders it via
// graphmodel.SerializePartitionMatrix, per spec.md §4.7's output encoding.
func (bfw *BruteForceWeighted) PartitionMatrix(k int) (string, error) {
	p, err := bfw.Partition(k)
	if err != nil {
		return "", err
	}
	return graphmodel.SerializePartitionMatrix(p), nil
}

// matchesTargetCounts reports whether the observed per-group vertex counts
// form the same multiset as the target sizes (balance is a multiset match,
// not an ordered one — group 0 need not receive the largest target).
func matchesTargetCounts(counts []int, targetCounts map[int]int) bool {
	observed := make(map[int]int)
	for _, c := range counts {
		observed[c]++
	}
	if len(observed) != len(targetCounts) {
		return false
	}
	for size, n := range targetCounts {
		if observed[size] != n {
			return false
		}
	}
	return true
}
