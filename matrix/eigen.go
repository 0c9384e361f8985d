// SPDX-License-Identifier: MIT
// Package matrix: symmetric eigendecomposition.
//
// Purpose:
//   - Eigen: raw cyclic Jacobi solver (eigenvalues in diagonal order).
//   - EigenSym: validated facade returning eigenvalues ascending with the
//     eigenvector columns permuted alongside and sign-normalized.
//
// Determinism:
//   - Fixed (p,q) sweep order, fixed sort (stable), fixed sign rule: identical
//     inputs produce bitwise-identical outputs on the same platform.

package matrix

import (
	"math"
	"sort"
)

// Eigen computes eigenvalues and eigenvectors of a symmetric matrix via cyclic Jacobi sweeps.
// It is the public low-level solver: eigenpairs come back in Jacobi diagonal
// order with the signs the rotations produced, and the symmetry tolerance is
// fixed at DefaultEpsilon. Callers that need ordering, canonical signs or
// tunable tolerances use EigenSym, which wraps the same sweeps.
// Implementation:
//   - Stage 1: validate non-nil, square, finite, symmetric within
//     DefaultEpsilon·max(1, max|A|).
//   - Stage 2: sweep every (p,q), p<q, in i→j order applying a Jacobi rotation
//     that zeroes A[p,q]; accumulate rotations into Q.
//   - Stage 3: stop once the off-diagonal Frobenius norm is ≤ tol·||A||_F.
//
// Inputs:
//   - m: symmetric Matrix; n := m.Rows().
//   - tol: relative convergence threshold (typ. 1e-10..1e-14 for float64).
//   - maxSweeps: safety cap on full sweeps.
//
// Returns:
//   - []float64: eigenvalues (diagonal of the rotated matrix, unsorted).
//   - *Dense: Q whose column k is the unit eigenvector of eigenvalue k.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNaNInf (non-finite entry or tol),
//     ErrAsymmetry, ErrMatrixEigenFailed (not converged after maxSweeps).
//
// Complexity:
//   - Time O(sweeps * n^3), Space O(n^2).
//
// Notes:
//   - Rotations with A[p,q] == 0 are skipped; a diagonal input returns Q = I.
//
// AI-Hints:
//   - Use EigenSym when the order of eigenvalues matters.
func Eigen(m Matrix, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	if isNonFinite(tol) {
		return nil, nil, matrixErrorf(opEigen, ErrNaNInf)
	}
	work, err := symmetricWorkingCopy(m, DefaultEpsilon)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}
	vals, q, err := jacobi(work, math.Abs(tol), maxSweeps)
	if err != nil {
		return nil, nil, matrixErrorf(opEigen, err)
	}

	return vals, q, nil
}

// EigenSym computes the full eigendecomposition of a real symmetric matrix and
// returns eigenvalues in ascending order.
// Implementation:
//   - Stage 1: resolve options; validate non-nil, square, finite and
//     symmetric within eps·max(1, max|A|).
//   - Stage 2: run Jacobi sweeps with the configured tolerance and sweep cap.
//   - Stage 3: stable-sort eigenvalues ascending, permute Q's columns to match,
//     flip each column so its largest-magnitude entry is positive.
//
// Returns:
//   - []float64: n eigenvalues, non-decreasing.
//   - *Dense: n×n orthonormal Q; column k pairs with eigenvalue k.
//
// Errors:
//   - Same as Eigen; ErrNonSquare and ErrAsymmetry name the failed check.
//
// Determinism:
//   - Ties in eigenvalues keep the Jacobi diagonal order (stable sort).
//
// Complexity:
//   - Time O(sweeps * n^3 + n log n), Space O(n^2).
func EigenSym(m Matrix, opts ...Option) ([]float64, *Dense, error) {
	o := NewOptions(opts...)
	work, err := symmetricWorkingCopy(m, o.eps)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	vals, q, err := jacobi(work, o.eigenTol, o.maxSweeps)
	if err != nil {
		return nil, nil, matrixErrorf(opEigenSym, err)
	}
	vals, q = sortEigenpairs(vals, q)
	normalizeColumnSigns(q)

	return vals, q, nil
}

// symmetricWorkingCopy validates m for the spectral solver and returns a
// private Dense copy that Jacobi may overwrite.
func symmetricWorkingCopy(m Matrix, eps float64) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	if err := ValidateFinite(m); err != nil {
		return nil, err
	}
	scale, err := MaxAbs(m)
	if err != nil {
		return nil, err
	}
	if err = ValidateSymmetric(m, eps*math.Max(1, scale)); err != nil {
		return nil, err
	}
	d, err := asDense(m)
	if err != nil {
		return nil, err
	}
	if d == m {
		d = d.clone() // never rotate the caller's storage
	}

	return d, nil
}

// jacobi diagonalizes the symmetric working matrix a in place.
func jacobi(a *Dense, tol float64, maxSweeps int) ([]float64, *Dense, error) {
	n := a.r
	q, err := NewIdentity(n)
	if err != nil {
		return nil, nil, err
	}

	var normF float64
	for _, v := range a.data {
		normF += v * v
	}
	normF = math.Sqrt(normF)
	threshold := tol * normF

	var sweep, p, r int
	for sweep = 0; ; sweep++ {
		if offDiagonalNorm(a) <= threshold {
			break
		}
		if sweep >= maxSweeps {
			return nil, nil, ErrMatrixEigenFailed
		}
		for p = 0; p < n-1; p++ {
			for r = p + 1; r < n; r++ {
				if a.data[p*n+r] != 0 {
					rotate(a, q, p, r)
				}
			}
		}
	}

	vals := make([]float64, n)
	for p = 0; p < n; p++ {
		vals[p] = a.data[p*n+p]
	}

	return vals, q, nil
}

// offDiagonalNorm returns sqrt(Σ_{i≠j} A[i,j]²).
func offDiagonalNorm(a *Dense) float64 {
	n := a.r
	var sum float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				sum += a.data[i*n+j] * a.data[i*n+j]
			}
		}
	}

	return math.Sqrt(sum)
}

// rotate applies the Jacobi rotation that annihilates A[p,q] (A' = JᵀAJ)
// and accumulates it into Q (Q' = QJ).
func rotate(a, qm *Dense, p, q int) {
	n := a.r
	app := a.data[p*n+p]
	aqq := a.data[q*n+q]
	apq := a.data[p*n+q]

	// θ = (aqq−app)/(2*apq); t = sign(θ) / (|θ|+√(θ²+1)) is the smaller root of t²+2tθ−1=0.
	theta := (aqq - app) / (2 * apq)
	t := math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
	c := 1.0 / math.Sqrt(t*t+1)
	s := t * c

	var i int
	var aip, aiq, nip, niq float64
	for i = 0; i < n; i++ {
		if i == p || i == q {
			continue
		}
		aip = a.data[i*n+p]
		aiq = a.data[i*n+q]
		nip = c*aip - s*aiq
		niq = s*aip + c*aiq
		a.data[i*n+p], a.data[p*n+i] = nip, nip
		a.data[i*n+q], a.data[q*n+i] = niq, niq
	}
	a.data[p*n+p] = app - t*apq
	a.data[q*n+q] = aqq + t*apq
	a.data[p*n+q], a.data[q*n+p] = 0, 0

	var qip, qiq float64
	for i = 0; i < n; i++ {
		qip = qm.data[i*n+p]
		qiq = qm.data[i*n+q]
		qm.data[i*n+p] = c*qip - s*qiq
		qm.data[i*n+q] = s*qip + c*qiq
	}
}

// sortEigenpairs orders eigenvalues ascending and permutes Q's columns to match.
func sortEigenpairs(vals []float64, q *Dense) ([]float64, *Dense) {
	n := len(vals)
	order := make([]int, n)
	for k := range order {
		order[k] = k
	}
	sort.SliceStable(order, func(x, y int) bool { return vals[order[x]] < vals[order[y]] })

	sortedVals := make([]float64, n)
	sortedQ := &Dense{r: q.r, c: q.c, data: make([]float64, len(q.data))}
	var i, k int
	for k = 0; k < n; k++ {
		sortedVals[k] = vals[order[k]]
		for i = 0; i < q.r; i++ {
			sortedQ.data[i*q.c+k] = q.data[i*q.c+order[k]]
		}
	}

	return sortedVals, sortedQ
}

// normalizeColumnSigns flips every column whose largest-magnitude entry
// (first one on ties) is negative. Eigenvectors are defined up to sign, so
// this only fixes a canonical representative.
func normalizeColumnSigns(q *Dense) {
	var i, j, pivot int
	var best, v float64
	for j = 0; j < q.c; j++ {
		pivot, best = 0, -1
		for i = 0; i < q.r; i++ {
			if v = math.Abs(q.data[i*q.c+j]); v > best {
				pivot, best = i, v
			}
		}
		if q.data[pivot*q.c+j] >= 0 {
			continue
		}
		for i = 0; i < q.r; i++ {
			q.data[i*q.c+j] = -q.data[i*q.c+j]
		}
	}
}
