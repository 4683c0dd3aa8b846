// SPDX-License-Identifier: MIT
package graphmodel

import "errors"

// Sentinel errors for the graphmodel package.
var (
	// ErrNotSymmetric indicates an adjacency or weights matrix failed the
	// symmetry invariant (A[i,j] != A[j,i] beyond tolerance).
	ErrNotSymmetric = errors.New("graphmodel: matrix is not symmetric")

	// ErrNonZeroDiagonal indicates a non-zero self-loop entry where none is allowed.
	ErrNonZeroDiagonal = errors.New("graphmodel: diagonal must be zero")

	// ErrNegativeWeight indicates a negative entry in a WeightsMatrix.
	ErrNegativeWeight = errors.New("graphmodel: negative edge weight")

	// ErrWeightSupportMismatch indicates support(W) is not a subset of support(A).
	ErrWeightSupportMismatch = errors.New("graphmodel: weight present where adjacency has no edge")

	// ErrEmptyInput indicates a brace-format string with no rows.
	ErrEmptyInput = errors.New("graphmodel: empty matrix literal")

	// ErrMalformedBrace indicates the brace-format string could not be parsed.
	ErrMalformedBrace = errors.New("graphmodel: malformed brace-format matrix")

	// ErrRaggedRows indicates rows of differing lengths in a brace-format literal.
	ErrRaggedRows = errors.New("graphmodel: ragged rows in brace-format matrix")
)
