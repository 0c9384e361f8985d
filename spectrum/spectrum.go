// SPDX-License-Identifier: MIT

// Package spectrum summarizes graph Fourier coefficient spectra.
//
// Coefficients are taken in graph-frequency order as produced by
// spectral.GFT. Measures that ignore sign (Gini, energy) work on |c_k|.
package spectrum

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/chemsp/matrix"
)

// ErrEmpty is returned for a zero-length spectrum.
var ErrEmpty = errors.New("spectrum: empty coefficient spectrum")

// SortedMagnitudes returns |c_k| sorted ascending.
func SortedMagnitudes(c []float64) []float64 {
	out := make([]float64, len(c))
	for i, v := range c {
		out[i] = math.Abs(v)
	}
	sort.Float64s(out)

	return out
}

// Gini returns the Gini coefficient of the coefficient magnitudes:
//
//	G = Σ_i (2i − n − 1)·m_(i) / (n·Σ m),  m sorted ascending, i = 1..n.
//
// G is 0 when energy is spread evenly over all frequencies and approaches
// 1 − 1/n when it sits in a single one. An all-zero spectrum has G = 0.
func Gini(c []float64) (float64, error) {
	if err := check(c); err != nil {
		return 0, fmt.Errorf("Gini: %w", err)
	}
	m := SortedMagnitudes(c)
	n := float64(len(m))
	var num, total float64
	for i, v := range m {
		num += (2*float64(i+1) - n - 1) * v
		total += v
	}
	if total == 0 {
		return 0, nil
	}

	return num / (n * total), nil
}

// Energy returns Σ c_k². For an orthonormal basis it equals the signal energy.
func Energy(c []float64) float64 {
	var e float64
	for _, v := range c {
		e += v * v
	}

	return e
}

// CumulativeEnergy returns the running fraction of energy held by the first
// k+1 coefficients. The last entry is 1 unless the spectrum is all zero, in
// which case every entry is 0.
func CumulativeEnergy(c []float64) ([]float64, error) {
	if err := check(c); err != nil {
		return nil, fmt.Errorf("CumulativeEnergy: %w", err)
	}
	total := Energy(c)
	out := make([]float64, len(c))
	if total == 0 {
		return out, nil
	}
	var run float64
	for i, v := range c {
		run += v * v
		out[i] = run / total
	}

	return out, nil
}

// LowPassFraction returns the share of energy in the first k coefficients.
// k is clamped to [0, len(c)].
func LowPassFraction(c []float64, k int) (float64, error) {
	if err := check(c); err != nil {
		return 0, fmt.Errorf("LowPassFraction: %w", err)
	}
	if k <= 0 {
		return 0, nil
	}
	cum, err := CumulativeEnergy(c)
	if err != nil {
		return 0, err
	}
	if k > len(cum) {
		k = len(cum)
	}

	return cum[k-1], nil
}

// Summary collects the scalar descriptors of one spectrum.
type Summary struct {
	Gini     float64 `json:"gini" yaml:"gini" msgpack:"gini"`
	Energy   float64 `json:"energy" yaml:"energy" msgpack:"energy"`
	LowPass  float64 `json:"low_pass" yaml:"low_pass" msgpack:"low_pass"`
	LowPassK int     `json:"low_pass_k" yaml:"low_pass_k" msgpack:"low_pass_k"`
}

// Summarize computes Gini, Energy and LowPassFraction(c, k).
func Summarize(c []float64, k int) (Summary, error) {
	g, err := Gini(c)
	if err != nil {
		return Summary{}, err
	}
	lp, err := LowPassFraction(c, k)
	if err != nil {
		return Summary{}, err
	}

	return Summary{Gini: g, Energy: Energy(c), LowPass: lp, LowPassK: k}, nil
}

func check(c []float64) error {
	if len(c) == 0 {
		return ErrEmpty
	}
	for _, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return matrix.ErrNaNInf
		}
	}

	return nil
}
