// SPDX-License-Identifier: MIT
package partition

import "errors"

// Sentinel errors for the partition package.
var (
	// ErrEmptyPartition indicates a Partition with zero groups.
	ErrEmptyPartition = errors.New("partition: empty partition")

	// ErrVertexOutOfRange indicates a vertex index outside {0..n-1}.
	ErrVertexOutOfRange = errors.New("partition: vertex index out of range")

	// ErrDuplicateVertex indicates a vertex appearing in more than one group.
	ErrDuplicateVertex = errors.New("partition: vertex assigned to more than one group")

	// ErrIncompleteCover indicates the groups' union does not equal {0..n-1}.
	ErrIncompleteCover = errors.New("partition: groups do not cover every vertex exactly once")

	// ErrImbalanced indicates max|Pi| - min|Pi| > 1.
	ErrImbalanced = errors.New("partition: group sizes differ by more than one")

	// ErrDimensionMismatch indicates a CutEdges/CutWeight computation against a
	// matrix whose size does not match the partition's vertex count.
	ErrDimensionMismatch = errors.New("partition: matrix dimension does not match partition vertex count")
)
