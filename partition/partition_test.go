// SPDX-License-Identifier: MIT
package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpart/partition"
)

func TestValidateAcceptsBalancedPartition(t *testing.T) {
	p := partition.Partition{{0, 2}, {1, 3}}
	require.NoError(t, p.Validate(4))
}

func TestValidateAcceptsOffByOneBalance(t *testing.T) {
	p := partition.Partition{{0, 1, 2}, {3, 4}}
	require.NoError(t, p.Validate(5))
}

func TestValidateRejectsImbalance(t *testing.T) {
	p := partition.Partition{{0, 1, 2, 3}, {4}}
	assert.ErrorIs(t, p.Validate(5), partition.ErrImbalanced)
}

func TestValidateRejectsDuplicateVertex(t *testing.T) {
	p := partition.Partition{{0, 1}, {1, 2}}
	assert.ErrorIs(t, p.Validate(3), partition.ErrDuplicateVertex)
}

func TestValidateRejectsIncompleteCover(t *testing.T) {
	p := partition.Partition{{0}, {1}}
	assert.ErrorIs(t, p.Validate(3), partition.ErrIncompleteCover)
}

func TestValidateRejectsOutOfRange(t *testing.T) {
	p := partition.Partition{{0, 5}, {1, 2}}
	assert.ErrorIs(t, p.Validate(4), partition.ErrVertexOutOfRange)
}

func TestValidateRejectsEmptyPartition(t *testing.T) {
	p := partition.Partition{}
	assert.ErrorIs(t, p.Validate(0), partition.ErrEmptyPartition)
}

func TestTargetSizesDistributesRemainder(t *testing.T) {
	assert.Equal(t, []int{3, 3, 2}, partition.TargetSizes(8, 3))
	assert.Equal(t, []int{2, 2, 2, 2}, partition.TargetSizes(8, 4))
}

func TestSortedCopyDoesNotMutateOriginal(t *testing.T) {
	p := partition.Partition{{3, 1, 2}}
	s := partition.SortedCopy(p)
	assert.Equal(t, []int{1, 2, 3}, s[0])
	assert.Equal(t, []int{3, 1, 2}, p[0])
}
