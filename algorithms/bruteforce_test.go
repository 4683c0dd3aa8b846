// SPDX-License-Identifier: MIT
package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpart/algorithms"
	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/partition"
)

// TestBruteForce_FourCycleOptimalCut is spec.md §8 seed scenario 1: a
// 4-cycle at k=2 has optimal cut 2 regardless of which of the two
// tied-optimal tie-break partitions BruteForce returns.
func TestBruteForce_FourCycleOptimalCut(t *testing.T) {
	adj := buildAdjacency(t, 4, fourCycle())
	algo := algorithms.NewBruteForce(adj)

	p, err := algo.Partition(2)
	require.NoError(t, err)
	require.NoError(t, p.Validate(4))

	cut, err := partition.CutEdges(p, adj)
	require.NoError(t, err)
	assert.Equal(t, 2, cut)
}

// TestBruteForce_SixVertexPathThreeWayOptimalCut is spec.md §8 seed
// scenario 3: the path 0-1-2-3-4-5 split into k=3 groups has optimal cut
// 2 — any contiguous {{0,1},{2,3},{4,5}}-shaped split crosses exactly the
// two edges joining consecutive groups, and no other balanced 2-2-2 split
// of a path can cross fewer.
func TestBruteForce_SixVertexPathThreeWayOptimalCut(t *testing.T) {
	adj := buildAdjacency(t, 6, path(6))
	algo := algorithms.NewBruteForce(adj)

	p, err := algo.Partition(3)
	require.NoError(t, err)
	require.NoError(t, p.Validate(6))

	cut, err := partition.CutEdges(p, adj)
	require.NoError(t, err)
	assert.Equal(t, 2, cut)
}

func TestBruteForce_StarGraphOptimalCut(t *testing.T) {
	adj := buildAdjacency(t, 6, star(5))
	algo := algorithms.NewBruteForce(adj)

	p, err := algo.Partition(2)
	require.NoError(t, err)
	require.NoError(t, p.Validate(6))

	cut, err := partition.CutEdges(p, adj)
	require.NoError(t, err)
	assert.Equal(t, 3, cut) // forced: center shares its group with only 2 of 5 leaves
}

func TestBruteForce_CompleteGraphOptimalCut(t *testing.T) {
	adj := buildAdjacency(t, 4, completeGraph(4))
	algo := algorithms.NewBruteForce(adj)

	p, err := algo.Partition(2)
	require.NoError(t, err)
	require.NoError(t, p.Validate(4))

	cut, err := partition.CutEdges(p, adj)
	require.NoError(t, err)
	assert.Equal(t, 4, cut)
}

func TestBruteForce_PartitionMatrixPadding(t *testing.T) {
	// n=5, k=2 -> target sizes {3,2}; the shorter group pads with -1.
	adj := buildAdjacency(t, 5, star(4))
	algo := algorithms.NewBruteForce(adj)

	s, err := algo.PartitionMatrix(2)
	require.NoError(t, err)
	assert.Contains(t, s, "-1")
}

func TestBruteForce_RejectsInvalidK(t *testing.T) {
	adj := buildAdjacency(t, 4, fourCycle())
	algo := algorithms.NewBruteForce(adj)

	_, err := algo.Partition(0)
	assert.ErrorIs(t, err, algorithms.ErrInvalidK)

	_, err = algo.Partition(5)
	assert.ErrorIs(t, err, algorithms.ErrInvalidK)
}

func TestBruteForceWeighted_RequiresWeights(t *testing.T) {
	adj := buildAdjacency(t, 4, path(4))
	_, err := algorithms.NewBruteForceWeighted(adj, nil)
	assert.ErrorIs(t, err, algorithms.ErrMissingWeights)
}

func TestBruteForceWeighted_PathOptimalCut(t *testing.T) {
	adj, w := buildWeighted(t, 4, []weightedEdge{
		{0, 1, 10}, {1, 2, 1}, {2, 3, 10},
	})
	algo, err := algorithms.NewBruteForceWeighted(adj, w)
	require.NoError(t, err)

	p, err := algo.Partition(2)
	require.NoError(t, err)
	require.NoError(t, p.Validate(4))

	cut, err := partition.CutWeight(p, w)
	require.NoError(t, err)
	assert.Equal(t, 1.0, cut) // {0,1}|{2,3} crosses only the weight-1 edge
}

// TestBruteForceWeighted_K4AsymmetricWeightsOptimalCut is spec.md §8 seed
// scenario 6: K4 with W[0,1]=W[2,3]=10 and the four cross edges at weight
// 1 each. The only balanced 2-2 split that avoids both weight-10 edges is
// {{0,1},{2,3}}, crossing the four weight-1 edges for a minimum cut of 4;
// every other balanced split crosses at least one weight-10 edge.
func TestBruteForceWeighted_K4AsymmetricWeightsOptimalCut(t *testing.T) {
	adj, w := buildWeighted(t, 4, []weightedEdge{
		{0, 1, 10}, {2, 3, 10},
		{0, 2, 1}, {0, 3, 1}, {1, 2, 1}, {1, 3, 1},
	})
	algo, err := algorithms.NewBruteForceWeighted(adj, w)
	require.NoError(t, err)

	p, err := algo.Partition(2)
	require.NoError(t, err)
	require.NoError(t, p.Validate(4))

	cut, err := partition.CutWeight(p, w)
	require.NoError(t, err)
	assert.Equal(t, 4.0, cut)
}

func TestBruteForceWeighted_PartitionMatrixRoundTrips(t *testing.T) {
	adj, w := buildWeighted(t, 4, []weightedEdge{
		{0, 1, 10}, {1, 2, 1}, {2, 3, 10},
	})
	algo, err := algorithms.NewBruteForceWeighted(adj, w)
	require.NoError(t, err)

	s, err := algo.PartitionMatrix(2)
	require.NoError(t, err)

	d, err := graphmodel.DeserializeBrace(s)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Rows())
	assert.Equal(t, 2, d.Cols())
}
