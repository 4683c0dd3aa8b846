// SPDX-License-Identifier: MIT
package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for the matrix package. Callers MUST use errors.Is to
// branch on semantics; sentinels are never wrapped with formatted strings
// at the definition site (wrap at the call boundary with matrixErrorf).
var (
	// ErrInvalidDimensions indicates requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals a matrix expected to be symmetric violated symmetry
	// within the configured tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within tolerance")

	// ErrNilMatrix indicates a nil Matrix was used where one was required.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNumerical indicates an eigendecomposition failed to converge, or a
	// Laplacian failed its symmetry/row-sum invariants within tolerance.
	ErrNumerical = errors.New("matrix: numerical failure")
)

// matrixErrorf wraps an underlying error with the given operation tag.
func matrixErrorf(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
