// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of the
// spectral kernels. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the relative tolerance of structural checks
	// (symmetry): |A[i,j]-A[j,i]| ≤ eps·max(1, max|A|).
	DefaultEpsilon = 1e-8

	// DefaultEigenTolerance is the relative off-diagonal Frobenius norm at
	// which Jacobi sweeps are considered converged.
	DefaultEigenTolerance = 1e-12

	// DefaultMaxSweeps caps the number of cyclic Jacobi sweeps. Jacobi converges
	// quadratically; well-conditioned inputs need fewer than 15 sweeps.
	DefaultMaxSweeps = 100
)

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid = "matrix: WithEigenTolerance: tol must be finite, positive"
	panicSweepsInvalid    = "matrix: WithMaxSweeps: sweeps must be > 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via NewOptions.
type Options struct {
	eps       float64 // symmetry tolerance, relative to max(1, max|A|)
	eigenTol  float64 // Jacobi convergence threshold, relative to ||A||_F
	maxSweeps int     // Jacobi sweep cap
}

// WithEpsilon sets the relative symmetry tolerance.
// Panics when eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithEigenTolerance sets the Jacobi convergence threshold.
// Panics when tol is NaN, ±Inf or not positive.
func WithEigenTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.eigenTol = tol }
}

// WithMaxSweeps sets the Jacobi sweep cap.
// Panics when sweeps is not positive.
func WithMaxSweeps(sweeps int) Option {
	if sweeps <= 0 {
		panic(panicSweepsInvalid)
	}

	return func(o *Options) { o.maxSweeps = sweeps }
}

// NewOptions resolves opts over the documented defaults. Nil options are skipped.
func NewOptions(opts ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		eigenTol:  DefaultEigenTolerance,
		maxSweeps: DefaultMaxSweeps,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// Epsilon returns the resolved symmetry tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// EigenTolerance returns the resolved Jacobi convergence threshold.
func (o Options) EigenTolerance() float64 { return o.eigenTol }

// MaxSweeps returns the resolved Jacobi sweep cap.
func (o Options) MaxSweeps() int { return o.maxSweeps }
