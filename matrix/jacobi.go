// SPDX-License-Identifier: MIT
// JacobiEigen is a dependency-free symmetric eigensolver, adapted from the
// teacher repository's matrix.Eigen (classical Jacobi rotations, each one
// pivoting on the largest off-diagonal entry). It is
// kept as a pure-Go fallback alongside the gonum-backed EigenSym: both
// return eigenvalues in ascending order with matching eigenvectors as
// columns of Q, so algorithm code can use either interchangeably.
package matrix

import "math"

const opJacobiEigen = "JacobiEigen"

// JacobiEigen performs Jacobi eigen-decomposition on a symmetric matrix m.
// Returns eigenvalues sorted ascending and eigenvectors as columns of Q.
//
// Contract: m non-nil, square, symmetric within tol.
// Complexity: Time O(maxIter * n^2) (one pivot search and one rotation per
// iteration), Space O(n^2).
func JacobiEigen(m Matrix, tol float64, maxIter int) ([]float64, Matrix, error) {
	if err := ValidateSymmetric(m, tol); err != nil {
		return nil, nil, matrixErrorf(opJacobiEigen, err)
	}
	n := m.Rows()
	a := m.Clone()
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opJacobiEigen, err)
	}
	for i := 0; i < n; i++ {
		_ = q.Set(i, i, 1.0)
	}

	ad, useFast := a.(*Dense)

	for iter := 0; iter < maxIter; iter++ {
		// Find pivot (p,q) maximizing |A[p,q]|.
		var maxOff float64
		var p, qi int
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				var off float64
				if useFast {
					off = math.Abs(ad.data[i*n+j])
				} else {
					v, _ := a.At(i, j)
					off = math.Abs(v)
				}
				if off > maxOff {
					maxOff, p, qi = off, i, j
				}
			}
		}
		if maxOff < tol {
			break
		}

		var app, aqq, apq float64
		if useFast {
			app, aqq, apq = ad.data[p*n+p], ad.data[qi*n+qi], ad.data[p*n+qi]
		} else {
			app, _ = a.At(p, p)
			aqq, _ = a.At(qi, qi)
			apq, _ = a.At(p, qi)
		}
		theta := (aqq - app) / (2 * apq)
		t := math.Copysign(1.0/(math.Abs(theta)+math.Sqrt(theta*theta+1)), theta)
		c := 1.0 / math.Sqrt(t*t+1)
		s := t * c

		if useFast {
			for i := 0; i < n; i++ {
				if i == p || i == qi {
					continue
				}
				aip, aiq := ad.data[i*n+p], ad.data[i*n+qi]
				newIP := c*aip - s*aiq
				newIQ := s*aip + c*aiq
				ad.data[i*n+p], ad.data[p*n+i] = newIP, newIP
				ad.data[i*n+qi], ad.data[qi*n+i] = newIQ, newIQ
			}
			ad.data[p*n+p] = c*c*app - 2*c*s*apq + s*s*aqq
			ad.data[qi*n+qi] = s*s*app + 2*c*s*apq + c*c*aqq
			ad.data[p*n+qi], ad.data[qi*n+p] = 0, 0
		} else {
			for i := 0; i < n; i++ {
				if i == p || i == qi {
					continue
				}
				aip, _ := a.At(i, p)
				aiq, _ := a.At(i, qi)
				_ = a.Set(i, p, c*aip-s*aiq)
				_ = a.Set(p, i, c*aip-s*aiq)
				_ = a.Set(i, qi, s*aip+c*aiq)
				_ = a.Set(qi, i, s*aip+c*aiq)
			}
			_ = a.Set(p, p, c*c*app-2*c*s*apq+s*s*aqq)
			_ = a.Set(qi, qi, s*s*app+2*c*s*apq+c*c*aqq)
			_ = a.Set(p, qi, 0.0)
			_ = a.Set(qi, p, 0.0)
		}

		for i := 0; i < n; i++ {
			qip, _ := q.At(i, p)
			qiq, _ := q.At(i, qi)
			_ = q.Set(i, p, c*qip-s*qiq)
			_ = q.Set(i, qi, s*qip+c*qiq)
		}
	}

	// Recheck convergence: the loop above may have exhausted maxIter
	// without driving the off-diagonal mass below tol. Returning a
	// diagonal that hasn't actually converged would silently hand back a
	// wrong decomposition instead of reporting the numerical failure.
	var maxOff float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			var off float64
			if useFast {
				off = math.Abs(ad.data[i*n+j])
			} else {
				v, _ := a.At(i, j)
				off = math.Abs(v)
			}
			if off > maxOff {
				maxOff = off
			}
		}
	}
	if maxOff >= tol {
		return nil, nil, matrixErrorf(opJacobiEigen, ErrNumerical)
	}

	eigs := make([]float64, n)
	for i := 0; i < n; i++ {
		v, _ := a.At(i, i)
		eigs[i] = v
	}

	return sortEigenPairs(eigs, q)
}

// sortEigenPairs returns eigenvalues ascending with eigenvector columns
// permuted to match, since JacobiEigen's diagonal isn't sorted by construction
// (unlike gonum's EigenSym, which returns eigenvalues pre-sorted).
func sortEigenPairs(eigs []float64, q Matrix) ([]float64, Matrix, error) {
	n := len(eigs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	// simple insertion sort: n is small in practice and this keeps the
	// routine allocation-free beyond the output buffers.
	for i := 1; i < n; i++ {
		for j := i; j > 0 && eigs[idx[j-1]] > eigs[idx[j]]; j-- {
			idx[j-1], idx[j] = idx[j], idx[j-1]
		}
	}

	sortedEigs := make([]float64, n)
	sortedQ, err := NewDense(n, n)
	if err != nil {
		return nil, nil, matrixErrorf(opJacobiEigen, err)
	}
	for newCol, oldCol := range idx {
		sortedEigs[newCol] = eigs[oldCol]
		for row := 0; row < n; row++ {
			v, _ := q.At(row, oldCol)
			_ = sortedQ.Set(row, newCol, v)
		}
	}
	return sortedEigs, sortedQ, nil
}
