// SPDX-License-Identifier: MIT
package randomgraph_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpart/randomgraph"
)

func TestAdjacency_RespectsDegreeCap(t *testing.T) {
	adj, err := randomgraph.Adjacency(10, 3, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	assert.Equal(t, 10, adj.N())

	for i := 0; i < adj.N(); i++ {
		assert.LessOrEqualf(t, len(adj.Neighbors(i)), 3, "vertex %d exceeds degree cap", i)
	}
}

func TestAdjacency_Deterministic(t *testing.T) {
	a1, err := randomgraph.Adjacency(8, 2, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	a2, err := randomgraph.Adjacency(8, 2, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			assert.Equal(t, a1.HasEdge(i, j), a2.HasEdge(i, j))
		}
	}
}

func TestAdjacency_RejectsInvalidInputs(t *testing.T) {
	_, err := randomgraph.Adjacency(0, 1, nil)
	assert.ErrorIs(t, err, randomgraph.ErrTooFewVertices)

	_, err = randomgraph.Adjacency(4, 0, nil)
	assert.ErrorIs(t, err, randomgraph.ErrInvalidDegree)

	_, err = randomgraph.Adjacency(4, 4, nil)
	assert.ErrorIs(t, err, randomgraph.ErrInvalidDegree)
}

func TestWeights_OnlyAssignsExistingEdges(t *testing.T) {
	adj, err := randomgraph.Adjacency(6, 2, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	w, err := randomgraph.Weights(adj, 1, 5, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			v, _ := w.Weight(i, j)
			if adj.HasEdge(i, j) {
				assert.GreaterOrEqual(t, v, 1.0)
				assert.LessOrEqual(t, v, 5.0)
			} else {
				assert.Equal(t, 0.0, v)
			}
		}
	}
}

func TestWeights_RejectsInvertedRange(t *testing.T) {
	adj, err := randomgraph.Adjacency(4, 2, nil)
	require.NoError(t, err)

	_, err = randomgraph.Weights(adj, 5, 1, nil)
	assert.ErrorIs(t, err, randomgraph.ErrInvalidWeightRange)
}
