// SPDX-License-Identifier: MIT
package randomgraph

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/matrix"
)

// weightRounding is the granularity the Weights formula rounds to, per
// spec.md §6: minWeight + 0.5*round(rand*(maxWeight-minWeight)/0.5).
const weightRounding = 0.5

// defaultSeed is used when callers pass rng == nil.
const defaultSeed = 1

// Adjacency builds a random undirected graph on n vertices where each
// vertex's target degree is drawn uniformly from [1, maxDegree], per
// spec.md §6's reference contract. Edges are added greedily respecting
// both endpoints' remaining capacity; when a degree-1 vertex would pair
// with another degree-1 vertex (an isolated two-vertex component), both
// targets are bumped to 2 to avoid dangling leaves, as the spec requires.
// Vertices for which no remaining-capacity neighbor can be found settle
// for whatever degree they reached (best effort, same as the stub-matching
// retries builder.RandomRegular bounds rather than guarantees away).
//
// Complexity: O(n^2) in the worst case.
func Adjacency(n, maxDegree int, rng *rand.Rand) (*graphmodel.AdjacencyMatrix, error) {
	if n < 1 {
		return nil, fmt.Errorf("Adjacency: %w", ErrTooFewVertices)
	}
	if maxDegree < 1 || maxDegree >= n {
		return nil, fmt.Errorf("Adjacency: %w", ErrInvalidDegree)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	target := make([]int, n)
	for i := range target {
		target[i] = 1 + rng.Intn(maxDegree)
	}

	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	degree := make([]int, n)

	for i := 0; i < n; i++ {
		for degree[i] < target[i] {
			candidates := make([]int, 0, n)
			for j := 0; j < n; j++ {
				if j == i || degree[j] >= target[j] {
					continue
				}
				v, _ := d.At(i, j)
				if v > 0 {
					continue
				}
				candidates = append(candidates, j)
			}
			if len(candidates) == 0 {
				break
			}
			j := candidates[rng.Intn(len(candidates))]
			if err := d.Set(i, j, 1); err != nil {
				return nil, fmt.Errorf("Adjacency: %w", err)
			}
			if err := d.Set(j, i, 1); err != nil {
				return nil, fmt.Errorf("Adjacency: %w", err)
			}
			degree[i]++
			degree[j]++

			if target[i] == 1 && target[j] == 1 && degree[i] == 1 && degree[j] == 1 && maxDegree >= 2 {
				target[i] = 2
				target[j] = 2
			}
		}
	}

	adj, err := graphmodel.NewAdjacencyMatrix(d, graphmodel.DefaultSymmetryTolerance)
	if err != nil {
		return nil, fmt.Errorf("Adjacency: %w", err)
	}
	return adj, nil
}

// Weights assigns a weight to every edge of a, drawn via
// minWeight + 0.5*round(rand*(maxWeight-minWeight)/0.5), per spec.md §6's
// formula verbatim.
//
// Complexity: O(n^2).
func Weights(a *graphmodel.AdjacencyMatrix, minWeight, maxWeight float64, rng *rand.Rand) (*graphmodel.WeightsMatrix, error) {
	if minWeight > maxWeight {
		return nil, fmt.Errorf("Weights: %w", ErrInvalidWeightRange)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(defaultSeed))
	}

	n := a.N()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("Weights: %w", err)
	}
	span := maxWeight - minWeight
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if !a.HasEdge(i, j) {
				continue
			}
			w := minWeight + weightRounding*math.Round(rng.Float64()*span/weightRounding)
			if err := d.Set(i, j, w); err != nil {
				return nil, fmt.Errorf("Weights: %w", err)
			}
			if err := d.Set(j, i, w); err != nil {
				return nil, fmt.Errorf("Weights: %w", err)
			}
		}
	}

	w, err := graphmodel.NewWeightsMatrix(d, a, graphmodel.DefaultSymmetryTolerance)
	if err != nil {
		return nil, fmt.Errorf("Weights: %w", err)
	}
	return w, nil
}
