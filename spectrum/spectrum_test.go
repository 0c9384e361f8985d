// SPDX-License-Identifier: MIT

package spectrum_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chemsp/matrix"
	"github.com/katalvlaran/chemsp/spectrum"
)

func TestSortedMagnitudes(t *testing.T) {
	in := []float64{-3, 1, 0, -0.5}
	require.Equal(t, []float64{0, 0.5, 1, 3}, spectrum.SortedMagnitudes(in))
	require.Equal(t, []float64{-3, 1, 0, -0.5}, in, "input untouched")
}

func TestGini(t *testing.T) {
	tests := []struct {
		name     string
		c        []float64
		expected float64
	}{
		{"Uniform", []float64{2, -2, 2, -2}, 0},
		{"Single spike", []float64{0, 0, 0, 5}, 0.75},
		{"All zero", []float64{0, 0, 0}, 0},
		{"One coefficient", []float64{-1}, 0},
		{"Two", []float64{1, 3}, 0.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := spectrum.Gini(tt.c)
			require.NoError(t, err)
			require.InDelta(t, tt.expected, g, 1e-12)
		})
	}

	_, err := spectrum.Gini(nil)
	require.ErrorIs(t, err, spectrum.ErrEmpty)
	_, err = spectrum.Gini([]float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

func TestEnergy(t *testing.T) {
	c := []float64{3, -4}
	require.Equal(t, 25.0, spectrum.Energy(c))

	cum, err := spectrum.CumulativeEnergy(c)
	require.NoError(t, err)
	require.InDeltaSlice(t, []float64{9.0 / 25, 1}, cum, 1e-15)

	lp, err := spectrum.LowPassFraction(c, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.36, lp, 1e-15)
	lp, err = spectrum.LowPassFraction(c, 10)
	require.NoError(t, err)
	require.Equal(t, 1.0, lp)
	lp, err = spectrum.LowPassFraction(c, 0)
	require.NoError(t, err)
	require.Zero(t, lp)

	zero, err := spectrum.CumulativeEnergy([]float64{0, 0})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0}, zero)
}

func TestSummarize(t *testing.T) {
	s, err := spectrum.Summarize([]float64{0, 0, 0, 5}, 2)
	require.NoError(t, err)
	require.InDelta(t, 0.75, s.Gini, 1e-12)
	require.Equal(t, 25.0, s.Energy)
	require.Zero(t, s.LowPass)
	require.Equal(t, 2, s.LowPassK)

	_, err = spectrum.Summarize(nil, 1)
	require.ErrorIs(t, err, spectrum.ErrEmpty)
}
