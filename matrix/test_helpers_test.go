// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemsp/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing kernels through the interface (non-*Dense) path.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(t, err, "NewDense(%d,%d)", r, c)

	return m
}

// NewFilledDense builds an r×c Dense from row-major vals.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	require.Len(t, vals, r*c, "NewFilledDense: value count")
	m := MustDense(t, r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			MustSet(t, m, i, j, vals[i*c+j])
		}
	}

	return m
}

// RandomSymmetric returns a deterministic n×n symmetric matrix with entries in [-1,1).
func RandomSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(t, n, n)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()*2 - 1
			MustSet(t, m, i, j, v)
			MustSet(t, m, j, i, v)
		}
	}

	return m
}

// MustSet writes v at (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	require.NoError(t, m.Set(i, j, v), "Set(%d,%d)", i, j)
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err, "At(%d,%d)", i, j)

	return v
}

// propOrthonormal asserts QᵀQ ≈ I within delta.
func propOrthonormal(t *testing.T, Q matrix.Matrix, delta float64) {
	t.Helper()
	n := Q.Rows()
	require.Equal(t, n, Q.Cols(), "Q must be square")

	Qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	QtQ, err := matrix.Mul(Qt, Q)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			require.InDelta(t, want, MustAt(t, QtQ, i, j), delta, "QᵀQ[%d,%d]", i, j)
		}
	}
}

// propReconstruction asserts A ≈ Q·diag(vals)·Qᵀ within delta.
func propReconstruction(t *testing.T, A, Q matrix.Matrix, vals []float64, delta float64) {
	t.Helper()
	n := A.Rows()
	require.Len(t, vals, n)

	D, err := matrix.NewDiagonal(vals)
	require.NoError(t, err)
	QD, err := matrix.Mul(Q, D)
	require.NoError(t, err)
	Qt, err := matrix.Transpose(Q)
	require.NoError(t, err)
	QDQt, err := matrix.Mul(QD, Qt)
	require.NoError(t, err)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.InDelta(t, MustAt(t, A, i, j), MustAt(t, QDQt, i, j), delta, "reconstruction at [%d,%d]", i, j)
		}
	}
}
