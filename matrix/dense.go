// SPDX-License-Identifier: MIT
package matrix

// Dense is a row-major matrix of float64 values, backed by a single flat
// slice for cache-friendly access. It is the concrete Matrix used
// throughout this module.
type Dense struct {
	r, c int       // rows, cols
	data []float64 // flat backing storage, length r*c
}

// Compile-time assertion: *Dense implements Matrix.
var _ Matrix = (*Dense)(nil)

// NewDense allocates an r×c Dense matrix initialized to zero.
// Complexity: O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense from a rectangular 2-D slice. All rows
// must share the same length, and there must be at least one row.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("NewDenseFromRows", ErrInvalidDimensions)
	}
	r, c := len(rows), len(rows[0])
	d, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("NewDenseFromRows", err)
	}
	for i, row := range rows {
		if len(row) != c {
			return nil, matrixErrorf("NewDenseFromRows", ErrDimensionMismatch)
		}
		copy(d.data[i*c:(i+1)*c], row)
	}
	return d, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

func (m *Dense) indexOf(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, ErrOutOfRange
	}
	return i*m.c + j, nil
}

// At returns the element at (i, j). Complexity: O(1).
func (m *Dense) At(i, j int) (float64, error) {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return 0, matrixErrorf("At", err)
	}
	return m.data[idx], nil
}

// Set assigns v at (i, j). Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) error {
	idx, err := m.indexOf(i, j)
	if err != nil {
		return matrixErrorf("Set", err)
	}
	m.data[idx] = v
	return nil
}

// Clone returns a deep copy. Complexity: O(rows*cols).
func (m *Dense) Clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{r: m.r, c: m.c, data: data}
}

// Row returns a copy of row i as a slice. Complexity: O(cols).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, matrixErrorf("Row", ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])
	return out, nil
}
