// SPDX-License-Identifier: MIT
// Universal operations on any Matrix: element-wise subtraction, row sums, and
// diagonal construction — the minimal kernel the Laplacian needs. Modeled on
// the teacher's Add/Sub/Scale fast-path-then-fallback shape (flat loop over
// *Dense, interface loop otherwise), trimmed to what this module exercises.
package matrix

const (
	opSub       = "Sub"
	opRowSums   = "RowSums"
	opDiagonal  = "Diagonal"
	opLaplacian = "Laplacian"
)

// Sub returns a new Dense with the element-wise difference a - b.
// Complexity: O(r*c).
func Sub(a, b Matrix) (Matrix, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	rows, cols := a.Rows(), a.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			n := rows * cols
			for idx := 0; idx < n; idx++ {
				res.data[idx] = da.data[idx] - db.data[idx]
			}
			return res, nil
		}
	}

	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, _ := a.At(i, j)
			bv, _ := b.At(i, j)
			_ = res.Set(i, j, av-bv)
		}
	}
	return res, nil
}

// RowSums returns the sum of each row of m. Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	rows, cols := m.Rows(), m.Cols()
	sums := make([]float64, rows)

	if dm, ok := m.(*Dense); ok {
		for i := 0; i < rows; i++ {
			base := i * cols
			var s float64
			for j := 0; j < cols; j++ {
				s += dm.data[base+j]
			}
			sums[i] = s
		}
		return sums, nil
	}

	for i := 0; i < rows; i++ {
		var s float64
		for j := 0; j < cols; j++ {
			v, _ := m.At(i, j)
			s += v
		}
		sums[i] = s
	}
	return sums, nil
}

// Diagonal returns a new n×n Dense with d on the diagonal and zero elsewhere.
// Complexity: O(n^2) (allocation dominates; the diagonal write itself is O(n)).
func Diagonal(d []float64) (Matrix, error) {
	n := len(d)
	if n == 0 {
		return nil, matrixErrorf(opDiagonal, ErrInvalidDimensions)
	}
	res, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opDiagonal, err)
	}
	for i, v := range d {
		res.data[i*n+i] = v
	}
	return res, nil
}

// Laplacian computes L = D - M, where D is the diagonal of M's row sums.
//
// Contract: m non-nil, square. The caller is responsible for m already
// being symmetric (AdjacencyMatrix/WeightsMatrix enforce this); Laplacian
// itself re-validates symmetry within tol to surface ErrNumerical early
// rather than silently returning a non-Laplacian result.
//
// Invariants upheld: L symmetric, rows/cols sum to 0, smallest eigenvalue 0.
// Complexity: O(n^2).
func Laplacian(m Matrix, tol float64) (Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, matrixErrorf(opLaplacian, ErrNumerical)
	}
	sums, err := RowSums(m)
	if err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}
	d, err := Diagonal(sums)
	if err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}
	l, err := Sub(d, m)
	if err != nil {
		return nil, matrixErrorf(opLaplacian, err)
	}
	return l, nil
}
