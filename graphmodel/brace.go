// SPDX-License-Identifier: MIT
// Brace-format (de)serialization: "{{a,b,c},{d,e,f},...}". Whitespace and
// newlines are stripped before parsing; rows split on the literal "},{".
// This is the one piece of spec.md §6's HTTP-edge format this module owns
// outright, because BruteForce's rectangular partition-matrix output
// (§4.7) needs it internally, and because the round-trip properties in
// spec.md §8 are exercised directly against it.
package graphmodel

import (
	"strconv"
	"strings"

	"github.com/katalvlaran/graphpart/matrix"
)

// SerializeBrace renders m as "{{a,b,c},{d,e,f},...}" using %g formatting,
// with no inter-value whitespace.
//
// Complexity: O(rows*cols).
func SerializeBrace(m matrix.Matrix) string {
	rows, cols := m.Rows(), m.Cols()
	var b strings.Builder
	b.WriteByte('{')
	for i := 0; i < rows; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('{')
		for j := 0; j < cols; j++ {
			if j > 0 {
				b.WriteByte(',')
			}
			v, _ := m.At(i, j)
			b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return b.String()
}

// DeserializeBrace parses a "{{a,b,c},{d,e,f},...}" literal into a *matrix.Dense.
// Whitespace and newlines are stripped before parsing; all rows must have
// equal length.
//
// Complexity: O(rows*cols).
func DeserializeBrace(s string) (*matrix.Dense, error) {
	clean := stripWhitespace(s)
	clean = strings.TrimPrefix(clean, "{")
	clean = strings.TrimSuffix(clean, "}")
	if clean == "" {
		return nil, ErrEmptyInput
	}

	rowStrs := strings.Split(clean, "},{")
	rows := make([][]float64, 0, len(rowStrs))
	width := -1
	for _, rs := range rowStrs {
		rs = strings.TrimPrefix(rs, "{")
		rs = strings.TrimSuffix(rs, "}")
		if rs == "" {
			return nil, ErrMalformedBrace
		}
		fields := strings.Split(rs, ",")
		row := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, ErrMalformedBrace
			}
			row[i] = v
		}
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, ErrRaggedRows
		}
		rows = append(rows, row)
	}

	d, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, ErrMalformedBrace
	}
	return d, nil
}

func stripWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SerializeGroups renders variable-length index groups as
// "{{v,v,...},{v,...},...}" without padding, for algorithms that return
// groups of unequal size directly (as opposed to BruteForce's padded
// rectangular encoding, see SerializePartitionMatrix).
func SerializeGroups(groups [][]int) string {
	var b strings.Builder
	b.WriteByte('{')
	for gi, g := range groups {
		if gi > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('{')
		for vi, v := range g {
			if vi > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(v))
		}
		b.WriteByte('}')
	}
	b.WriteByte('}')
	return b.String()
}

// SerializePartitionMatrix renders groups as a k×maxSize rectangular matrix
// padded with -1 where a group is shorter than the longest, per spec.md
// §4.7's BruteForce output encoding.
func SerializePartitionMatrix(groups [][]int) string {
	maxSize := 0
	for _, g := range groups {
		if len(g) > maxSize {
			maxSize = len(g)
		}
	}
	rows := make([][]float64, len(groups))
	for i, g := range groups {
		row := make([]float64, maxSize)
		for j := 0; j < maxSize; j++ {
			if j < len(g) {
				row[j] = float64(g[j])
			} else {
				row[j] = -1
			}
		}
		rows[i] = row
	}
	d, _ := matrix.NewDenseFromRows(rows)
	return SerializeBrace(d)
}
