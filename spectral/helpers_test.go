// SPDX-License-Identifier: MIT

package spectral_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemsp/gso"
	"github.com/katalvlaran/chemsp/matrix"
)

const tol = 1e-9

var scenarioX = [][]float64{
	{0.1, 0.1, 0.1},
	{0.1, 0.2, 0.3},
	{0.2, 0.4, 0.3},
}

// rbf is a Gaussian kernel with length scale 1.
var rbf = gso.MetricFunc(func(a, b []float64) (float64, error) {
	var d2 float64
	for k := range a {
		d := a[k] - b[k]
		d2 += d * d
	}

	return math.Exp(-d2 / 2), nil
})

func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func randomSymmetric(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			v := rng.Float64()*2 - 1
			require.NoError(t, m.Set(i, j, v))
			require.NoError(t, m.Set(j, i, v))
		}
	}

	return m
}

func randomSignal(n int, seed int64) []float64 {
	rng := rand.New(rand.NewSource(seed))
	s := make([]float64, n)
	for i := range s {
		s[i] = rng.NormFloat64()
	}

	return s
}

// requireOrthonormal asserts QᵀQ ≈ I.
func requireOrthonormal(t *testing.T, q *matrix.Dense) {
	t.Helper()
	qt, err := matrix.Transpose(q)
	require.NoError(t, err)
	qtq, err := matrix.Mul(qt, q)
	require.NoError(t, err)
	id, err := matrix.NewIdentity(q.Cols())
	require.NoError(t, err)
	ok, err := matrix.AllClose(qtq, id, 0, tol)
	require.NoError(t, err)
	require.True(t, ok, "QᵀQ must be the identity, got\n%v", qtq)
}

func requireAscending(t *testing.T, vals []float64) {
	t.Helper()
	for k := 1; k < len(vals); k++ {
		require.LessOrEqual(t, vals[k-1], vals[k], "eigenvalues must be non-decreasing at %d", k)
	}
}
