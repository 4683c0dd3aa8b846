// SPDX-License-Identifier: MIT
package algorithms

import (
	"math/rand"

	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/partition"
)

// Algorithm is the capability every partitioning strategy implements: given
// a target group count k, produce a balanced Partition. Implementations are
// values constructed up front from an AdjacencyMatrix (and, where needed, a
// WeightsMatrix); Partition itself is a pure function of that state plus
// (for Geometric/KernighanLin) the implementation's injected RNG.
type Algorithm interface {
	// Partition computes a balanced k-way partition of the algorithm's
	// underlying graph.
	Partition(k int) (partition.Partition, error)
}

// Factory constructs an Algorithm from an adjacency matrix, an optional
// weights matrix (nil where the strategy does not need one), and an
// optional RNG (nil selects each strategy's deterministic default).
type Factory func(adj *graphmodel.AdjacencyMatrix, w *graphmodel.WeightsMatrix, rng *rand.Rand) (Algorithm, error)

// registry maps algorithm names to their Factory, per spec.md §9's
// "Polymorphism" note: the six strategies share one capability and are
// selected by name rather than by six parallel call sites.
var registry = map[string]Factory{
	"spectral": func(adj *graphmodel.AdjacencyMatrix, _ *graphmodel.WeightsMatrix, _ *rand.Rand) (Algorithm, error) {
		return NewSpectralAlgorithm(adj), nil
	},
	"inertial": func(adj *graphmodel.AdjacencyMatrix, w *graphmodel.WeightsMatrix, _ *rand.Rand) (Algorithm, error) {
		return NewInertialAlgorithm(adj, w)
	},
	"geometric": func(adj *graphmodel.AdjacencyMatrix, w *graphmodel.WeightsMatrix, rng *rand.Rand) (Algorithm, error) {
		return NewGeometricAlgorithm(adj, w, rng)
	},
	"kernighanlin": func(adj *graphmodel.AdjacencyMatrix, _ *graphmodel.WeightsMatrix, rng *rand.Rand) (Algorithm, error) {
		return NewKernighanLinAlgorithm(adj, rng), nil
	},
	"greedy": func(adj *graphmodel.AdjacencyMatrix, _ *graphmodel.WeightsMatrix, _ *rand.Rand) (Algorithm, error) {
		return NewGreedyAlgorithm(adj), nil
	},
	"bruteforce": func(adj *graphmodel.AdjacencyMatrix, _ *graphmodel.WeightsMatrix, _ *rand.Rand) (Algorithm, error) {
		return NewBruteForce(adj), nil
	},
	"bruteforceweighted": func(adj *graphmodel.AdjacencyMatrix, w *graphmodel.WeightsMatrix, _ *rand.Rand) (Algorithm, error) {
		return NewBruteForceWeighted(adj, w)
	},
}

// New looks up name in the factory registry and constructs the
// corresponding Algorithm. Returns ErrUnknownAlgorithm if name is not
// registered.
func New(name string, adj *graphmodel.AdjacencyMatrix, w *graphmodel.WeightsMatrix, rng *rand.Rand) (Algorithm, error) {
	factory, ok := registry[name]
	if !ok {
		return nil, ErrUnknownAlgorithm
	}
	return factory(adj, w, rng)
}

// Names returns the registered algorithm names, for discovery by callers
// (e.g. an HTTP façade enumerating endpoints).
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
