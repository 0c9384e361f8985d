// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra substrate of chemsp.
//
// The package provides:
//
//   - The Matrix interface and its row-major implementation *Dense.
//   - Canonical validators (nil, square, symmetric, vector length) returning
//     plain sentinel errors so callers can match them with errors.Is.
//   - Kernels used by graph shift operators and graph Fourier transforms:
//     Transpose, Mul, Sub, MatVec, MatTVec, RowSums, NewDiagonal, AllClose.
//   - A deterministic Jacobi eigensolver for real symmetric matrices (Eigen)
//     and its ordered facade (EigenSym) that returns eigenvalues ascending
//     with sign-normalized eigenvector columns.
//
// Every kernel allocates a fresh result and never mutates its operands.
// Matrices in this package are meant for dense, small-to-medium graphs where
// O(n²) memory and O(n³) decomposition time are acceptable.
package matrix
