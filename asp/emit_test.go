// SPDX-License-Identifier: MIT
package asp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmit_UnweightedTemplate(t *testing.T) {
	edges := []Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 0}}
	program, err := Emit(4, edges, false, 2)
	require.NoError(t, err)

	assert.Contains(t, program, "vertex(0..3).")
	assert.Contains(t, program, "edge(0, 1).")
	assert.Contains(t, program, "edge(3, 0).")
	assert.Contains(t, program, "k(2).")
	assert.Contains(t, program, "1 { part(V, 1..K) } :- vertex(V), k(K).")
	assert.Contains(t, program, "cut_edge(X,Y) :- edge(X,Y), part(X,P1), part(Y,P2), P1 != P2.")
	assert.Contains(t, program, "#minimize { 1,X,Y : cut_edge(X,Y) }.")
	assert.Contains(t, program, "#show part/2.")
	assert.NotContains(t, program, "cut_edge(X,Y,W)")
}

func TestEmit_WeightedTruncatesToInteger(t *testing.T) {
	edges := []Edge{{U: 0, V: 1, W: 2.9}}
	program, err := Emit(2, edges, true, 2)
	require.NoError(t, err)

	assert.Contains(t, program, "edge(0, 1, 2).")
	assert.Contains(t, program, "cut_edge(X,Y,W) :- edge(X,Y,W), part(X,P1), part(Y,P2), P1 != P2.")
	assert.Contains(t, program, "#minimize { W,X,Y : cut_edge(X,Y,W) }.")
}

func TestEmit_RejectsNonDivisible(t *testing.T) {
	_, err := Emit(5, nil, false, 2)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEmit_RejectsInvalidK(t *testing.T) {
	_, err := Emit(4, nil, false, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = Emit(4, nil, false, 5)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestEmit_BalanceConstraintIsStrictEquality(t *testing.T) {
	program, err := Emit(6, nil, false, 3)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(program, "S1 != S2"))
}
