// SPDX-License-Identifier: MIT
// Package matrix provides the dense linear-algebra kernel shared by every
// partitioning algorithm: a row-major Dense matrix type, the arithmetic
// primitives (Sub, RowSums, Diagonal) needed to build a graph Laplacian,
// and two interchangeable symmetric eigensolvers.
//
// Determinism & Policy:
//   - All kernels validate shape/symmetry up front and return sentinel errors;
//     nothing panics on caller-supplied data.
//   - EigenSym (LAPACK-backed, via gonum.org/v1/gonum/mat) is the default
//     eigensolver: gonum returns eigenvalues pre-sorted ascending, which is
//     exactly the ordering Fiedler extraction needs.
//   - JacobiEigen is a dependency-free fallback kept for small matrices and
//     for parity with how this kernel historically worked before gonum was
//     wired in; both return eigenvalues in ascending order.
//
// AI-Hints:
//   - Build a Laplacian with Laplacian(m, tol), decompose it with EigenSym (or
//     JacobiEigen), then pass the result to Fiedler(eigs, vectors, tol);
//     callers should not need to sort eigenvalues themselves.
package matrix
