// SPDX-License-Identifier: MIT

package gso

import (
	"errors"
	"fmt"
)

var (
	// ErrInputCoercion marks a representation set that cannot be converted
	// into a finite, rectangular numeric matrix. Returned errors are *CoercionError.
	ErrInputCoercion = errors.New("gso: input coercion failed")

	// ErrMetricEvaluation marks a metric call that failed or produced a
	// non-finite value. Returned errors are *MetricError.
	ErrMetricEvaluation = errors.New("gso: metric evaluation failed")

	// ErrNilMetric is returned when no metric is supplied.
	ErrNilMetric = errors.New("gso: metric is nil")

	// ErrUnsupportedInput is the cause carried by a CoercionError for input
	// types Coerce does not know.
	ErrUnsupportedInput = errors.New("gso: unsupported input type")

	// ErrRaggedInput is the cause carried by a CoercionError when the
	// representation vectors differ in length.
	ErrRaggedInput = errors.New("gso: representation vectors differ in length")

	// ErrEmptyInput is the cause carried by a CoercionError for an empty set
	// or zero-dimensional vectors.
	ErrEmptyInput = errors.New("gso: empty representation set")
)

// CoercionError reports why a representation set could not become a numeric matrix.
// It matches ErrInputCoercion and unwraps to the original cause.
type CoercionError struct {
	Type string // dynamic type of the rejected input
	Err  error  // original cause
}

func (e *CoercionError) Error() string {
	return fmt.Sprintf("gso: cannot coerce %s into a representation matrix: %v", e.Type, e.Err)
}

// Unwrap returns the original cause.
func (e *CoercionError) Unwrap() error { return e.Err }

// Is reports whether target is ErrInputCoercion.
func (e *CoercionError) Is(target error) bool { return target == ErrInputCoercion }

// MetricError reports a failed metric evaluation.
// For the pairwise path I and J locate the ordered pair; for the batched
// path Batch is true and I, J are -1.
type MetricError struct {
	I, J  int
	Batch bool
	Err   error
}

func (e *MetricError) Error() string {
	if e.Batch {
		return fmt.Sprintf("gso: batched metric evaluation failed: %v", e.Err)
	}

	return fmt.Sprintf("gso: metric evaluation failed at pair (%d,%d): %v", e.I, e.J, e.Err)
}

// Unwrap returns the error raised by the metric.
func (e *MetricError) Unwrap() error { return e.Err }

// Is reports whether target is ErrMetricEvaluation.
func (e *MetricError) Is(target error) bool { return target == ErrMetricEvaluation }
