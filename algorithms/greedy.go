// SPDX-License-Identifier: MIT
package algorithms

import (
	"fmt"

	"github.com/katalvlaran/graphpart/bfs"
	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/partition"
)

// maxRefinementPasses bounds GreedyAlgorithm's post-growth single-swap
// refinement loop, per spec.md §4.6.
const maxRefinementPasses = 100

// GreedyAlgorithm builds a balanced partition by growing each group from a
// pseudo-peripheral seed via BFS, then refines the result with up to
// maxRefinementPasses greedy single-swap passes.
type GreedyAlgorithm struct {
	adj *graphmodel.AdjacencyMatrix
}

// Compile-time assertion: *GreedyAlgorithm implements Algorithm.
var _ Algorithm = (*GreedyAlgorithm)(nil)

// NewGreedyAlgorithm constructs a GreedyAlgorithm over adj.
func NewGreedyAlgorithm(adj *graphmodel.AdjacencyMatrix) *GreedyAlgorithm {
	return &GreedyAlgorithm{adj: adj}
}

// Partition implements Algorithm.
//
// Complexity: O(n^2) for peripheral seeding and growth, plus
// O(maxRefinementPasses * n^2) for refinement.
func (ga *GreedyAlgorithm) Partition(k int) (partition.Partition, error) {
	n := ga.adj.N()
	if k <= 0 || k > n {
		return nil, fmt.Errorf("GreedyAlgorithm.Partition: %w", ErrInvalidK)
	}

	targets := partition.TargetSizes(n, k)
	used := make([]bool, n)
	groups := make([][]int, k)

	seeds, err := ga.chooseSeeds(k, used)
	if err != nil {
		return nil, fmt.Errorf("GreedyAlgorithm.Partition: %w", err)
	}

	for i, seed := range seeds {
		group, err := ga.growGroup(seed, targets[i], used)
		if err != nil {
			return nil, fmt.Errorf("GreedyAlgorithm.Partition: %w", err)
		}
		groups[i] = group
	}

	groupOf := make([]int, n)
	for gi, g := range groups {
		for _, v := range g {
			groupOf[v] = gi
		}
	}
	ga.refine(groupOf, k)

	final := make([][]int, k)
	for i := range final {
		final[i] = make([]int, 0, n/k+1)
	}
	for v, g := range groupOf {
		final[g] = append(final[g], v)
	}

	p := partition.Partition(final)
	if err := p.Validate(n); err != nil {
		return nil, fmt.Errorf("GreedyAlgorithm.Partition: %w", err)
	}
	return p, nil
}

// chooseSeeds picks k pseudo-peripheral seeds: the first maximizes
// single-source BFS eccentricity over every vertex; each subsequent seed
// maximizes BFS distance from the set of previously chosen seeds.
func (ga *GreedyAlgorithm) chooseSeeds(k int, used []bool) ([]int, error) {
	n := ga.adj.N()
	seeds := make([]int, 0, k)

	bestV, bestEcc := -1, -1
	for v := 0; v < n; v++ {
		ecc, err := bfs.Eccentricity(ga.adj, v)
		if err != nil {
			return nil, err
		}
		if ecc > bestEcc {
			bestEcc = ecc
			bestV = v
		}
	}
	seeds = append(seeds, bestV)
	used[bestV] = true

	for len(seeds) < k {
		dist, err := bfs.MultiSourceDistances(ga.adj, seeds)
		if err != nil {
			return nil, err
		}
		next, nextDist := -1, -1
		for v := 0; v < n; v++ {
			if used[v] {
				continue
			}
			d, ok := dist[v]
			if !ok {
				d = n // unreachable vertices are maximally far
			}
			if d > nextDist {
				nextDist = d
				next = v
			}
		}
		if next == -1 {
			return nil, ErrDisconnectedSeed
		}
		seeds = append(seeds, next)
		used[next] = true
	}
	return seeds, nil
}

// growGroup grows a single group from seed to targetSize via BFS, falling
// back to any unused boundary vertex (an unused neighbor of any used
// vertex) if the BFS frontier exhausts first.
func (ga *GreedyAlgorithm) growGroup(seed, targetSize int, used []bool) ([]int, error) {
	group := []int{seed}

	res, err := bfs.BFS(ga.adj, seed, bfs.WithFilterNeighbor(func(_, nbr int) bool {
		return !used[nbr]
	}))
	if err != nil {
		return nil, err
	}
	for _, v := range res.Order {
		if v == seed {
			continue
		}
		if len(group) >= targetSize {
			break
		}
		if !used[v] {
			group = append(group, v)
			used[v] = true
		}
	}

	for len(group) < targetSize {
		boundary := ga.findBoundaryVertex(used)
		if boundary == -1 {
			break // disconnected with no boundary; group stays short (spec.md §4.6 implementer note)
		}
		group = append(group, boundary)
		used[boundary] = true
	}
	return group, nil
}

// findBoundaryVertex returns any unused vertex adjacent to a used vertex,
// or -1 if none exists.
func (ga *GreedyAlgorithm) findBoundaryVertex(used []bool) int {
	for v, isUsed := range used {
		if !isUsed {
			continue
		}
		for _, nbr := range ga.adj.Neighbors(v) {
			if !used[nbr] {
				return nbr
			}
		}
	}
	return -1
}

// refine runs up to maxRefinementPasses passes, each applying the single
// cross-group swap that strictly reduces total cut edges, comparing against
// the pre-move cut — spec.md §9's documented fix for ImprovePartitioning's
// always-true post-move comparison bug.
func (ga *GreedyAlgorithm) refine(groupOf []int, k int) {
	n := len(groupOf)
	for pass := 0; pass < maxRefinementPasses; pass++ {
		currentCut := countCut(ga.adj, groupOf)
		bestU, bestV, bestCut := -1, -1, currentCut
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if groupOf[u] == groupOf[v] {
					continue
				}
				groupOf[u], groupOf[v] = groupOf[v], groupOf[u]
				cut := countCut(ga.adj, groupOf)
				groupOf[u], groupOf[v] = groupOf[v], groupOf[u]

				if cut < bestCut {
					bestCut = cut
					bestU, bestV = u, v
				}
			}
		}
		if bestU == -1 {
			return
		}
		groupOf[bestU], groupOf[bestV] = groupOf[bestV], groupOf[bestU]
	}
}
