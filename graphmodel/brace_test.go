// SPDX-License-Identifier: MIT
package graphmodel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphpart/graphmodel"
	"github.com/katalvlaran/graphpart/matrix"
)

func TestSerializeBraceRoundTrip(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{3, 4, 5},
	})
	require.NoError(t, err)

	s := graphmodel.SerializeBrace(d)
	assert.Equal(t, "{{0,1,2},{3,4,5}}", s)

	back, err := graphmodel.DeserializeBrace(s)
	require.NoError(t, err)
	assert.Equal(t, d.Rows(), back.Rows())
	assert.Equal(t, d.Cols(), back.Cols())
	for i := 0; i < d.Rows(); i++ {
		for j := 0; j < d.Cols(); j++ {
			want, _ := d.At(i, j)
			got, _ := back.At(i, j)
			assert.Equal(t, want, got)
		}
	}
}

func TestDeserializeBraceStripsWhitespace(t *testing.T) {
	d, err := graphmodel.DeserializeBrace("{ {1, 2},\n{3,\t4} }")
	require.NoError(t, err)
	v, _ := d.At(1, 0)
	assert.Equal(t, 3.0, v)
}

func TestDeserializeBraceEmptyInput(t *testing.T) {
	_, err := graphmodel.DeserializeBrace("")
	assert.ErrorIs(t, err, graphmodel.ErrEmptyInput)

	_, err = graphmodel.DeserializeBrace("{}")
	assert.ErrorIs(t, err, graphmodel.ErrEmptyInput)
}

func TestDeserializeBraceMalformed(t *testing.T) {
	_, err := graphmodel.DeserializeBrace("{{1,,2}}")
	assert.ErrorIs(t, err, graphmodel.ErrMalformedBrace)

	_, err = graphmodel.DeserializeBrace("{{1,x}}")
	assert.ErrorIs(t, err, graphmodel.ErrMalformedBrace)
}

func TestDeserializeBraceRaggedRows(t *testing.T) {
	_, err := graphmodel.DeserializeBrace("{{1,2},{3}}")
	assert.ErrorIs(t, err, graphmodel.ErrRaggedRows)
}

func TestSerializePartitionMatrixPadsWithMinusOne(t *testing.T) {
	s := graphmodel.SerializePartitionMatrix([][]int{{0, 2, 4}, {1, 3}})
	assert.Equal(t, "{{0,2,4},{1,3,-1}}", s)
}

func TestSerializeGroupsNoPadding(t *testing.T) {
	s := graphmodel.SerializeGroups([][]int{{0, 2, 4}, {1, 3}})
	assert.Equal(t, "{{0,2,4},{1,3}}", s)
}
