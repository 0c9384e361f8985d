// SPDX-License-Identifier: MIT

package spectral

import (
	"github.com/katalvlaran/chemsp/gso"
	"github.com/katalvlaran/chemsp/matrix"
)

const panicWorkersInvalid = "spectral: WithWorkers: workers must be > 0"

// Option configures basis computation and the decomposition pipeline.
type Option func(*Options)

// Options holds the resolved configuration. The zero value is not useful;
// use NewOptions.
type Options struct {
	operator gso.Operator
	solver   []matrix.Option // forwarded to matrix.EigenSym
	workers  int
}

// NewOptions applies opts over the defaults: adjacency operator, the matrix
// package solver defaults and no worker limit. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{operator: gso.OperatorAdjacency, workers: -1}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithOperator selects the shift operator built by Decompose and DecomposeBatch.
// FourierBasis and Eigenbasis ignore it.
func WithOperator(op gso.Operator) Option {
	return func(o *Options) { o.operator = op }
}

// WithEpsilon sets the relative symmetry tolerance; see matrix.WithEpsilon.
func WithEpsilon(eps float64) Option { return withSolver(matrix.WithEpsilon(eps)) }

// WithEigenTolerance sets the Jacobi convergence threshold; see matrix.WithEigenTolerance.
func WithEigenTolerance(tol float64) Option { return withSolver(matrix.WithEigenTolerance(tol)) }

// WithMaxSweeps caps Jacobi sweeps; see matrix.WithMaxSweeps.
func WithMaxSweeps(sweeps int) Option { return withSolver(matrix.WithMaxSweeps(sweeps)) }

func withSolver(ms ...matrix.Option) Option {
	return func(o *Options) { o.solver = append(o.solver, ms...) }
}

// WithWorkers bounds the goroutines DecomposeBatch runs at once. Panics if n <= 0.
func WithWorkers(n int) Option {
	if n <= 0 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// Operator returns the configured shift operator kind.
func (o Options) Operator() gso.Operator { return o.operator }

// Epsilon returns the relative symmetry tolerance.
func (o Options) Epsilon() float64 { return o.resolved().Epsilon() }

// MaxSweeps returns the Jacobi sweep cap.
func (o Options) MaxSweeps() int { return o.resolved().MaxSweeps() }

// Workers returns the DecomposeBatch concurrency limit; -1 means unlimited.
func (o Options) Workers() int { return o.workers }

func (o Options) resolved() matrix.Options { return matrix.NewOptions(o.solver...) }
