// SPDX-License-Identifier: MIT

package gso

import (
	"fmt"

	"github.com/katalvlaran/chemsp/matrix"
)

// Metric evaluates the similarity or distance of two representations.
//
// Contract: Pair must be pure, deterministic and symmetric
// (Pair(a,b) == Pair(b,a)) and must not retain or modify a and b. Spectral
// results are only meaningful under this contract; it is not checked by the
// builder.
type Metric interface {
	Pair(a, b []float64) (float64, error)
}

// BatchMetric is the optional capability of evaluating a whole
// representation set at once, returning the N×N matrix of pairwise values.
// When a Metric also implements BatchMetric, Adjacency calls Batch exactly
// once and never calls Pair. Batch must agree with Pair entry by entry.
type BatchMetric interface {
	Batch(x *Representations) (*matrix.Dense, error)
}

// MetricFunc adapts an ordinary function to the Metric interface.
type MetricFunc func(a, b []float64) (float64, error)

// Pair calls f(a, b).
func (f MetricFunc) Pair(a, b []float64) (float64, error) { return f(a, b) }

// BatchFunc adapts a batched function to both Metric and BatchMetric.
// Its Pair evaluates the function on the two-element set {a, b}.
type BatchFunc func(x *Representations) (*matrix.Dense, error)

// Batch calls f(x).
func (f BatchFunc) Batch(x *Representations) (*matrix.Dense, error) { return f(x) }

// Pair evaluates f on the set {a, b} and returns the (0,1) entry.
func (f BatchFunc) Pair(a, b []float64) (float64, error) {
	x, err := NewRepresentations([][]float64{a, b})
	if err != nil {
		return 0, err
	}
	m, err := f(x)
	if err != nil {
		return 0, err
	}
	if m == nil || m.Rows() != 2 || m.Cols() != 2 {
		return 0, fmt.Errorf("gso: BatchFunc.Pair: want 2x2 result: %w", matrix.ErrDimensionMismatch)
	}

	return m.At(0, 1)
}

// Compile-time assertions.
var (
	_ Metric      = MetricFunc(nil)
	_ Metric      = BatchFunc(nil)
	_ BatchMetric = BatchFunc(nil)
)
