// SPDX-License-Identifier: MIT
package algorithms_test

import (
	"testing"

	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/matrix"
)

// buildAdjacency constructs an n-vertex AdjacencyMatrix from an undirected
// edge list; duplicate edges are harmless (the matrix entry just stays 1).
func buildAdjacency(t *testing.T, n int, edges [][2]int) *graphmodel.AdjacencyMatrix {
	t.Helper()
	d, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for _, e := range edges {
		if err := d.Set(e[0], e[1], 1); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := d.Set(e[1], e[0], 1); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	adj, err := graphmodel.NewAdjacencyMatrix(d, graphmodel.DefaultSymmetryTolerance)
	if err != nil {
		t.Fatalf("NewAdjacencyMatrix: %v", err)
	}
	return adj
}

// weightedEdge is a (u, v, weight) triple used to build a WeightsMatrix.
type weightedEdge struct {
	u, v int
	w    float64
}

// buildWeighted constructs both the AdjacencyMatrix and WeightsMatrix for an
// n-vertex weighted undirected graph, where support(W) == the edge list.
func buildWeighted(t *testing.T, n int, edges []weightedEdge) (*graphmodel.AdjacencyMatrix, *graphmodel.WeightsMatrix) {
	t.Helper()
	ad, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	wd, err := matrix.NewDense(n, n)
	if err != nil {
		t.Fatalf("NewDense: %v", err)
	}
	for _, e := range edges {
		if err := ad.Set(e.u, e.v, 1); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := ad.Set(e.v, e.u, 1); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := wd.Set(e.u, e.v, e.w); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := wd.Set(e.v, e.u, e.w); err != nil {
			t.Fatalf("Set: %v", err)
		}
	}
	adj, err := graphmodel.NewAdjacencyMatrix(ad, graphmodel.DefaultSymmetryTolerance)
	if err != nil {
		t.Fatalf("NewAdjacencyMatrix: %v", err)
	}
	w, err := graphmodel.NewWeightsMatrix(wd, adj, graphmodel.DefaultSymmetryTolerance)
	if err != nil {
		t.Fatalf("NewWeightsMatrix: %v", err)
	}
	return adj, w
}

// fourCycle returns the edges of the 4-cycle 0-1-2-3-0, a recurring fixture
// across the seed scenarios.
func fourCycle() [][2]int {
	return [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
}

// completeGraph returns the edges of K_n.
func completeGraph(n int) [][2]int {
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			edges = append(edges, [2]int{i, j})
		}
	}
	return edges
}

// path returns the edges of a path on n vertices: 0-1-2-...-(n-1).
func path(n int) [][2]int {
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	return edges
}

// star returns the edges of K_{1,leaves}: vertex 0 connected to 1..leaves.
func star(leaves int) [][2]int {
	edges := make([][2]int, 0, leaves)
	for i := 1; i <= leaves; i++ {
		edges = append(edges, [2]int{0, i})
	}
	return edges
}

// twoTriangles returns two disconnected triangles: {0,1,2} and {3,4,5}.
func twoTriangles() [][2]int {
	return [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
}
