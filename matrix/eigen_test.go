// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemsp/matrix"
)

// TestEigen_Errors verifies error paths: nil, non-square, non-symmetric, non-finite, non-convergence.
func TestEigen_Errors(t *testing.T) {
	t.Parallel()

	_, _, err := matrix.Eigen(nil, 1e-12, 50)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, _, err = matrix.Eigen(MustDense(t, 3, 4), 1e-12, 50)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	asym := MustDense(t, 3, 3)
	MustSet(t, asym, 0, 1, 1)
	MustSet(t, asym, 1, 0, 2)
	_, _, err = matrix.Eigen(asym, 1e-12, 50)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.Eigen(MustDense(t, 2, 2), math.Inf(1), 50)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// zero sweeps with non-zero off-diagonals cannot converge
	sym := NewFilledDense(t, 3, 3, []float64{2, 1, 0, 1, 3, 0, 0, 0, 4})
	_, _, err = matrix.Eigen(sym, 1e-12, 0)
	require.ErrorIs(t, err, matrix.ErrMatrixEigenFailed)
}

// TestEigen_Diagonal_NoRotation: diagonal matrices return the diagonal and Q=I.
func TestEigen_Diagonal_NoRotation(t *testing.T) {
	t.Parallel()

	diag := []float64{1, -2, 5, 3}
	A, err := matrix.NewDiagonal(diag)
	require.NoError(t, err)

	vals, Q, err := matrix.Eigen(A, 1e-12, 10)
	require.NoError(t, err)
	require.Equal(t, diag, vals)

	id, err := matrix.NewIdentity(4)
	require.NoError(t, err)
	ok, err := matrix.AllClose(Q, id, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestEigen_DoesNotMutateInput ensures the Jacobi sweeps run on a private copy.
func TestEigen_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	orig := A.Clone()
	_, _, err := matrix.Eigen(A, 1e-12, 50)
	require.NoError(t, err)
	ok, err := matrix.AllClose(A, orig, 0, 0)
	require.NoError(t, err)
	require.True(t, ok)
}

// TestEigenSym_2x2_Analytic: [[2,1],[1,2]] has eigenvalues {1,3}.
func TestEigenSym_2x2_Analytic(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{2, 1, 1, 2})
	vals, Q, err := matrix.EigenSym(A)
	require.NoError(t, err)
	require.InDelta(t, 1.0, vals[0], 1e-12)
	require.InDelta(t, 3.0, vals[1], 1e-12)

	// Eigenvector of 3 is (1,1)/√2; sign rule makes its pivot positive.
	require.InDelta(t, 1/math.Sqrt2, MustAt(t, Q, 0, 1), 1e-12)
	require.InDelta(t, 1/math.Sqrt2, MustAt(t, Q, 1, 1), 1e-12)
	propOrthonormal(t, Q, 1e-12)
}

// TestEigenSym_BlockDiagonal_Degenerate: blockdiag([2], [[3,1],[1,3]]) ⇒ {2,2,4}.
func TestEigenSym_BlockDiagonal_Degenerate(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 3, 3, []float64{2, 0, 0, 0, 3, 1, 0, 1, 3})
	vals, Q, err := matrix.EigenSym(A)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{2, 2, 4}, vals, 1e-10)
	propOrthonormal(t, Q, 1e-10)
	propReconstruction(t, A, Q, vals, 1e-10)
}

// TestEigenSym_Random_Properties checks ascending order, orthonormality and
// reconstruction on several seeded symmetric matrices.
func TestEigenSym_Random_Properties(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 5, 12} {
		A := RandomSymmetric(t, n, int64(n)*7)
		vals, Q, err := matrix.EigenSym(A)
		require.NoError(t, err, "n=%d", n)
		require.Len(t, vals, n)
		require.True(t, sort.Float64sAreSorted(vals), "eigenvalues must be non-decreasing: %v", vals)
		propOrthonormal(t, Q, 1e-10)
		propReconstruction(t, A, Q, vals, 1e-9)
	}
}

// TestEigenSym_SignNormalized: the largest-magnitude entry of every column is positive.
func TestEigenSym_SignNormalized(t *testing.T) {
	t.Parallel()

	A := RandomSymmetric(t, 6, 99)
	_, Q, err := matrix.EigenSym(A)
	require.NoError(t, err)
	for j := 0; j < Q.Cols(); j++ {
		col, err := Q.Col(j)
		require.NoError(t, err)
		pivot := 0
		for i := range col {
			if math.Abs(col[i]) > math.Abs(col[pivot]) {
				pivot = i
			}
		}
		require.Positive(t, col[pivot], "column %d", j)
	}
}

// TestEigenSym_Tolerance: a tiny asymmetry passes under a loose eps and fails under a strict one.
func TestEigenSym_Tolerance(t *testing.T) {
	t.Parallel()

	A := NewFilledDense(t, 2, 2, []float64{1, 0.5, 0.5 + 1e-6, 1})
	_, _, err := matrix.EigenSym(A)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	_, _, err = matrix.EigenSym(A, matrix.WithEpsilon(1e-4))
	require.NoError(t, err)
}
