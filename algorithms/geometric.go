// SPDX-License-Identifier: MIT
package algorithms

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/matrix"
	"github.com/katalvlaran/graphpart/partition"
)

// point3 is a point in R^3, used for the stereographically-lifted,
// centroid-shifted embedding GeometricAlgorithm splits recursively.
type point3 struct{ x, y, z float64 }

func (p point3) dot(q point3) float64 { return p.x*q.x + p.y*q.y + p.z*q.z }
func (p point3) sum() float64         { return p.x + p.y + p.z }

// GeometricAlgorithm recursively bisects vertices embedded on a unit sphere
// via a random-hyperplane median split, balancing each side to within one
// element before recursing with floor(k/2)/ceil(k/2) groups.
//
// RNG is injected (nil selects a deterministic default), and each recursive
// call derives a decorrelated substream — following tsp/rng.go's
// rngFromSeed/deriveRNG pattern — so the split at one level of the recursion
// tree does not correlate with splits at sibling levels.
type GeometricAlgorithm struct {
	adj *graphmodel.AdjacencyMatrix
	w   *graphmodel.WeightsMatrix
	rng *rand.Rand
	Tol float64
}

// Compile-time assertion: *GeometricAlgorithm implements Algorithm.
var _ Algorithm = (*GeometricAlgorithm)(nil)

// NewGeometricAlgorithm constructs a GeometricAlgorithm. w must be non-nil;
// returns ErrMissingWeights otherwise. rng == nil selects a deterministic
// default stream (see rngFromSeed).
func NewGeometricAlgorithm(adj *graphmodel.AdjacencyMatrix, w *graphmodel.WeightsMatrix, rng *rand.Rand) (*GeometricAlgorithm, error) {
	if w == nil {
		return nil, fmt.Errorf("NewGeometricAlgorithm: %w", ErrMissingWeights)
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}
	return &GeometricAlgorithm{adj: adj, w: w, rng: rng, Tol: DefaultEigenTolerance}, nil
}

// Partition implements Algorithm.
//
// Complexity: O(n^3) for the single eigendecomposition, plus O(n log n) per
// recursion level for the median splits (O(n log^2 n) total for balanced k).
func (g *GeometricAlgorithm) Partition(k int) (partition.Partition, error) {
	n := g.adj.N()
	if k <= 0 || k > n {
		return nil, fmt.Errorf("GeometricAlgorithm.Partition: %w", ErrInvalidK)
	}

	embedding, err := g.embed()
	if err != nil {
		return nil, fmt.Errorf("GeometricAlgorithm.Partition: %w", err)
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}

	groups := g.split(indices, embedding, k, g.rng)

	p := partition.Partition(groups)
	if err := p.Validate(n); err != nil {
		return nil, fmt.Errorf("GeometricAlgorithm.Partition: %w", err)
	}
	return p, nil
}

// embed builds the stereographically-lifted, centroid-shifted R^3 points
// from the weighted Laplacian's 2nd- and 3rd-smallest eigenvectors.
func (g *GeometricAlgorithm) embed() ([]point3, error) {
	lap, err := matrix.Laplacian(g.w.Matrix(), g.Tol)
	if err != nil {
		return nil, err
	}
	eigs, vecs, err := matrix.EigenSym(lap, g.Tol)
	if err != nil {
		return nil, err
	}
	n := len(eigs)
	if n < 3 {
		return nil, matrix.ErrInvalidDimensions
	}
	// Skip the zero eigenvector (index 0); take the next two by ascending
	// eigenvalue, per spec.md §4.4.
	s1, s2 := 1, 2

	lifted := make([]point3, n)
	var cx, cy, cz float64
	for i := 0; i < n; i++ {
		x, err := vecs.At(i, s1)
		if err != nil {
			return nil, err
		}
		y, err := vecs.At(i, s2)
		if err != nil {
			return nil, err
		}
		norm := math.Sqrt(x*x + y*y + 1)
		p := point3{x: x / norm, y: y / norm, z: 1 / norm}
		lifted[i] = p
		cx += p.x
		cy += p.y
		cz += p.z
	}
	centroid := point3{x: cx / float64(n), y: cy / float64(n), z: cz / float64(n)}

	shifted := make([]point3, n)
	for i, p := range lifted {
		shifted[i] = point3{x: p.x - centroid.x, y: p.y - centroid.y, z: p.z - centroid.z}
	}
	return shifted, nil
}

// split recursively bisects the local index set by a random-hyperplane
// median split, balances the two sides to within one element, and recurses
// with floor(k/2)/ceil(k/2), remapping local indices back to global ones
// via localIdx.
func (g *GeometricAlgorithm) split(localIdx []int, embedding []point3, k int, rng *rand.Rand) [][]int {
	if k == 1 {
		return [][]int{append([]int(nil), localIdx...)}
	}

	normal := randomUnitNormal(rng)

	type scored struct {
		idx int
		d   float64
	}
	scores := make([]scored, len(localIdx))
	for i, v := range localIdx {
		scores[i] = scored{idx: v, d: embedding[v].dot(normal)}
	}
	sortedScores := append([]scored(nil), scores...)
	sort.Slice(sortedScores, func(a, b int) bool { return sortedScores[a].d < sortedScores[b].d })
	median := sortedScores[len(sortedScores)/2].d

	var left, right []int
	for _, s := range scores {
		if s.d < median {
			left = append(left, s.idx)
		} else {
			right = append(right, s.idx)
		}
	}

	left, right = balanceSides(left, right, embedding)

	leftK, rightK := k/2, k-k/2
	leftRNG := deriveRNG(rng, 0)
	rightRNG := deriveRNG(rng, 1)

	leftGroups := g.split(left, embedding, leftK, leftRNG)
	rightGroups := g.split(right, embedding, rightK, rightRNG)
	return append(leftGroups, rightGroups...)
}

// balanceSides moves elements one at a time from the larger side to the
// smaller side until ||left|-|right|| <= 1, always moving the element whose
// coordinate sum (x+y+z) is closest to the median coordinate sum across
// both sides — spec.md §4.4's "repository observed behavior".
func balanceSides(left, right []int, embedding []point3) ([]int, []int) {
	all := make([]int, 0, len(left)+len(right))
	all = append(all, left...)
	all = append(all, right...)
	sums := make([]float64, len(all))
	for i, v := range all {
		sums[i] = embedding[v].sum()
	}
	sortedSums := append([]float64(nil), sums...)
	sort.Float64s(sortedSums)
	medianSum := sortedSums[len(sortedSums)/2]

	for abs(len(left)-len(right)) > 1 {
		var from *[]int
		var to *[]int
		if len(left) > len(right) {
			from, to = &left, &right
		} else {
			from, to = &right, &left
		}

		bestPos, bestDist := -1, math.Inf(1)
		for i, v := range *from {
			d := math.Abs(embedding[v].sum() - medianSum)
			if d < bestDist {
				bestDist = d
				bestPos = i
			}
		}
		moved := (*from)[bestPos]
		*from = append((*from)[:bestPos], (*from)[bestPos+1:]...)
		*to = append(*to, moved)
	}
	return left, right
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// randomUnitNormal draws a uniformly random unit vector in R^3 by
// normalizing three independent standard-normal samples.
func randomUnitNormal(rng *rand.Rand) point3 {
	x, y, z := rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()
	norm := math.Sqrt(x*x + y*y + z*z)
	if norm == 0 {
		return point3{x: 1, y: 0, z: 0}
	}
	return point3{x: x / norm, y: y / norm, z: z / norm}
}
