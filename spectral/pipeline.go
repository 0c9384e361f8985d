// SPDX-License-Identifier: MIT

package spectral

import (
	"github.com/katalvlaran/chemsp/gso"
	"github.com/katalvlaran/chemsp/matrix"
)

// FourierDecomposition returns the graph Fourier coefficients of signal over
// the adjacency graph of x under metric:
//
//	GFT(FourierBasis(gso.AdjacencyOf(x, metric)), signal)
//
// x is anything gso.Coerce accepts. Each stage's error is returned as is, so
// callers see *gso.CoercionError, *gso.MetricError, *ValidationError or
// ErrDimensionMismatch directly.
func FourierDecomposition(x any, metric gso.Metric, signal []float64) ([]float64, error) {
	a, err := gso.AdjacencyOf(x, metric)
	if err != nil {
		return nil, err
	}
	q, err := FourierBasis(a)
	if err != nil {
		return nil, err
	}

	return GFT(q, signal)
}

// Decomposition keeps every intermediate of one pipeline run.
type Decomposition struct {
	Kind         gso.Operator  // operator the basis was computed from
	Operator     *matrix.Dense // N×N shift operator
	Basis        *Basis        // eigenvectors and ascending eigenvalues
	Coefficients []float64     // Basisᵀ·signal
}

// Decompose runs the pipeline with a configurable operator kind and solver
// settings and returns all intermediates. With no options its Coefficients
// equal FourierDecomposition(x, metric, signal).
func Decompose(x any, metric gso.Metric, signal []float64, opts ...Option) (*Decomposition, error) {
	o := NewOptions(opts...)
	op, basis, err := operatorBasis(x, metric, o)
	if err != nil {
		return nil, err
	}
	coeffs, err := GFT(basis.Vectors, signal)
	if err != nil {
		return nil, err
	}

	return &Decomposition{Kind: o.operator, Operator: op, Basis: basis, Coefficients: coeffs}, nil
}

// operatorBasis builds the configured shift operator of x and its basis.
func operatorBasis(x any, metric gso.Metric, o Options) (*matrix.Dense, *Basis, error) {
	reps, err := gso.Coerce(x)
	if err != nil {
		return nil, nil, err
	}
	op, err := gso.Build(reps, metric, o.operator)
	if err != nil {
		return nil, nil, err
	}
	basis, err := Eigenbasis(op, withSolver(o.solver...))
	if err != nil {
		return nil, nil, err
	}

	return op, basis, nil
}
