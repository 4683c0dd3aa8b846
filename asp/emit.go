// SPDX-License-Identifier: MIT
package asp

import (
	"fmt"
	"math"
	"strings"
)

// Edge is a (possibly weighted) undirected edge, as consumed by Emit.
type Edge struct {
	U, V int
	W    float64
}

// Emit renders spec.md §4.8's logic program for n vertices, edges, and k
// partitions. weighted selects the `edge(i,j,w)` / weighted #minimize form,
// truncating each W to an integer (⌊W⌋) per the reference program.
//
// Returns ErrInvalidInput if k <= 0, k > n, or n is not divisible by k — the
// program's strict part_size equality constraint is unsatisfiable otherwise.
func Emit(n int, edges []Edge, weighted bool, k int) (string, error) {
	if k <= 0 || k > n {
		return "", fmt.Errorf("Emit: %w", ErrInvalidInput)
	}
	if n%k != 0 {
		return "", fmt.Errorf("Emit: %w", ErrInvalidInput)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "vertex(0..%d).\n", n-1)
	for _, e := range edges {
		if weighted {
			fmt.Fprintf(&b, "edge(%d, %d, %d).\n", e.U, e.V, int(math.Floor(e.W)))
		} else {
			fmt.Fprintf(&b, "edge(%d, %d).\n", e.U, e.V)
		}
	}
	fmt.Fprintf(&b, "k(%d).\n", k)
	b.WriteString("1 { part(V, 1..K) } :- vertex(V), k(K).\n")
	if weighted {
		b.WriteString("cut_edge(X,Y,W) :- edge(X,Y,W), part(X,P1), part(Y,P2), P1 != P2.\n")
		b.WriteString("#minimize { W,X,Y : cut_edge(X,Y,W) }.\n")
	} else {
		b.WriteString("cut_edge(X,Y) :- edge(X,Y), part(X,P1), part(Y,P2), P1 != P2.\n")
		b.WriteString("#minimize { 1,X,Y : cut_edge(X,Y) }.\n")
	}
	b.WriteString("part_size(P,S) :- S = #count { V : part(V,P) }, k(K), P = 1..K.\n")
	b.WriteString(":- k(K), P1=1..K, P2=1..K, P1<P2, part_size(P1,S1), part_size(P2,S2), S1 != S2.\n")
	b.WriteString("#show part/2.\n")

	return b.String(), nil
}
