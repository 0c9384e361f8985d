// SPDX-License-Identifier: MIT
// Package matrix: linear-algebra kernels on any Matrix implementation.
// All functions perform strict fail-fast validation, allocate a fresh
// result and never mutate their operands.
//
// Notes:
//   - Inputs that are not *Dense are materialized once through asDense so
//     every kernel runs a single flat-slice loop.
//   - Errors are wrapped with an operation tag via matrixErrorf.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial value of dot-product accumulators.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping.
const (
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opMatTVec   = "MatTVec"
	opRowSums   = "RowSums"
	opAllClose  = "AllClose"
	opEigen     = "Eigen"
	opEigenSym  = "EigenSym"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sub computes elementwise a - b for identically shaped a and b.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub(a, b Matrix) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opSub, err)
	}

	res := &Dense{r: da.r, c: da.c, data: make([]float64, len(da.data))}
	for idx := range da.data {
		res.data[idx] = da.data[idx] - db.data[idx]
	}

	return res, nil
}

// Mul computes the matrix product a·b.
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b).
//   - Stage 2: i→k→j loop so the inner loop walks both b and the result row-wise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*k*c), Space O(r*c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	rows, inner, cols := da.r, da.c, db.c
	res := &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}
	var i, k, j int
	var aik float64
	for i = 0; i < rows; i++ {
		for k = 0; k < inner; k++ {
			aik = da.data[i*inner+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < cols; j++ {
				res.data[i*cols+j] += aik * db.data[k*cols+j]
			}
		}
	}

	return res, nil
}

// Transpose returns mᵀ as a new Dense.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	dm, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := dm.r, dm.c
	res := &Dense{r: cols, c: rows, data: make([]float64, rows*cols)}
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// data[i*cols + j] → res.data[j*rows + i]
			res.data[j*rows+i] = dm.data[i*cols+j]
		}
	}

	return res, nil
}

// MatVec computes y = m·x for a column vector x.
//
// Contract: m non-nil; x non-nil; len(x) == m.Cols().
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, d.r)
	var i, j, base int
	var acc float64
	for i = 0; i < d.r; i++ {
		acc = ZeroSum
		base = i * d.c
		for j = 0; j < d.c; j++ {
			acc += d.data[base+j] * x[j]
		}
		y[i] = acc
	}

	return y, nil
}

// MatTVec computes y = mᵀ·x without materializing mᵀ.
// MAIN DESCRIPTION:
//   - y[j] = Σ_i m[i,j]·x[i]; this is the projection of x onto every column of m.
//
// Implementation:
//   - Stage 1: validate m non-nil and len(x) == m.Rows().
//   - Stage 2: row-major accumulation (i outer, j inner) so memory is read sequentially.
//
// Errors:
//   - ErrNilMatrix (nil m or nil x), ErrDimensionMismatch (len(x) != Rows).
//
// Determinism:
//   - Each y[j] accumulates in increasing i order regardless of layout.
//
// Complexity:
//   - Time O(r*c), Space O(c).
//
// AI-Hints:
//   - With an orthonormal column basis Q, MatTVec(Q, s) is the forward
//     graph Fourier transform and MatVec(Q, c) its exact inverse.
func MatTVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	if err := ValidateVecLen(x, m.Rows()); err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opMatTVec, err)
	}

	y := make([]float64, d.c)
	var i, j, base int
	var xi float64
	for i = 0; i < d.r; i++ {
		xi = x[i]
		base = i * d.c
		for j = 0; j < d.c; j++ {
			y[j] += d.data[base+j] * xi
		}
	}

	return y, nil
}

// RowSums returns vector r where r[i] = Σ_j m[i,j].
// Complexity: O(r*c).
func RowSums(m Matrix) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	ones := make([]float64, m.Cols())
	for j := range ones {
		ones[j] = 1.0
	}
	sums, err := MatVec(m, ones)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return sums, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be non-nil and have identical shapes.
//   - rtol, atol are treated as |rtol|, |atol|; NaN/Inf tolerances yield ErrNaNInf.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateNotNil(a); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	for idx := range da.data {
		if !(math.Abs(da.data[idx]-db.data[idx]) <= atol+rtol*math.Abs(db.data[idx])) {
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
