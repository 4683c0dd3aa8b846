// SPDX-License-Identifier: MIT
package algorithms_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpart/algorithms"
	"github.com/katalvlaran/graphpart/randomgraph"
)

// TestGeometricAlgorithm_RandomGraphsProduceValidBalancedPartitions runs
// GeometricAlgorithm over a batch of randomgraph-generated graphs and
// checks only the properties that must hold for ANY input: a valid,
// balanced partition. Exact cut values are implementation-dependent for
// randomized topologies, so this is a property test, not a worked example.
func TestGeometricAlgorithm_RandomGraphsProduceValidBalancedPartitions(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed))
		const n = 12
		adj, err := randomgraph.Adjacency(n, 4, rng)
		require.NoError(t, err)
		w, err := randomgraph.Weights(adj, 1, 5, rng)
		require.NoError(t, err)

		algo, err := algorithms.NewGeometricAlgorithm(adj, w, rng)
		require.NoError(t, err)

		p, err := algo.Partition(3)
		require.NoError(t, err)
		require.NoError(t, p.Validate(n))
		assert.Equal(t, 3, p.K())
	}
}

// TestKernighanLinAlgorithm_RandomGraphsProduceValidBalancedPartitions
// mirrors the above for KernighanLinAlgorithm, over unweighted random
// graphs (KernighanLinAlgorithm does not require weights).
func TestKernighanLinAlgorithm_RandomGraphsProduceValidBalancedPartitions(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		rng := rand.New(rand.NewSource(seed * 97))
		const n = 10
		adj, err := randomgraph.Adjacency(n, 3, rng)
		require.NoError(t, err)

		algo := algorithms.NewKernighanLinAlgorithm(adj, rng)

		p, err := algo.Partition(2)
		require.NoError(t, err)
		require.NoError(t, p.Validate(n))
		assert.Equal(t, 2, p.K())
	}
}
