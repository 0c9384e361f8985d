// SPDX-License-Identifier: MIT

package gso

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/chemsp/matrix"
)

// Operator selects which graph shift operator a pipeline builds.
type Operator int

const (
	// OperatorAdjacency uses the pairwise metric matrix directly.
	OperatorAdjacency Operator = iota
	// OperatorLaplacian uses Degree(A) − A.
	OperatorLaplacian
)

// ErrUnknownOperator is returned by ParseOperator for unrecognized names.
var ErrUnknownOperator = errors.New("gso: unknown operator")

// Operation tags for error wrapping.
const (
	opAdjacency = "Adjacency"
	opDegree    = "Degree"
	opLaplacian = "Laplacian"
)

func (o Operator) String() string {
	switch o {
	case OperatorAdjacency:
		return "adjacency"
	case OperatorLaplacian:
		return "laplacian"
	default:
		return fmt.Sprintf("Operator(%d)", int(o))
	}
}

// ParseOperator maps "adjacency" / "laplacian" (case-insensitive) to an Operator.
func ParseOperator(s string) (Operator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "adjacency", "adj", "a":
		return OperatorAdjacency, nil
	case "laplacian", "lap", "l":
		return OperatorLaplacian, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOperator, s)
	}
}

// Adjacency evaluates metric over every ordered pair of x.
// Implementation:
//   - Stage 1: if metric implements BatchMetric, call Batch(x) once, require an
//     N×N finite result and return a private copy of it.
//   - Stage 2: otherwise call Pair(x_i, x_j) for i, j in 0..N-1 (i outer),
//     stopping at the first failure.
//
// Errors:
//   - ErrNilMetric when metric is nil; *CoercionError for a nil set.
//   - *MetricError (matches ErrMetricEvaluation) when a Pair or Batch call
//     fails or yields NaN/±Inf.
//   - matrix.ErrDimensionMismatch when Batch returns a non N×N matrix.
//
// Complexity:
//   - Pairwise: N² metric calls, each at the metric's own cost.
//
// Notes:
//   - The result is symmetric only if the metric is.
func Adjacency(x *Representations, metric Metric) (*matrix.Dense, error) {
	if x == nil || x.data == nil {
		return nil, &CoercionError{Type: fmt.Sprintf("%T", x), Err: ErrUnsupportedInput}
	}
	if metric == nil {
		return nil, fmt.Errorf("%s: %w", opAdjacency, ErrNilMetric)
	}
	if bm, ok := metric.(BatchMetric); ok {
		return batchAdjacency(x, bm)
	}

	return pairwiseAdjacency(x, metric)
}

// AdjacencyOf coerces raw with Coerce and then calls Adjacency.
func AdjacencyOf(raw any, metric Metric) (*matrix.Dense, error) {
	x, err := Coerce(raw)
	if err != nil {
		return nil, err
	}

	return Adjacency(x, metric)
}

func batchAdjacency(x *Representations, bm BatchMetric) (*matrix.Dense, error) {
	n := x.Len()
	out, err := bm.Batch(x)
	if err != nil {
		return nil, &MetricError{I: -1, J: -1, Batch: true, Err: err}
	}
	if out == nil {
		return nil, &MetricError{I: -1, J: -1, Batch: true, Err: matrix.ErrNilMatrix}
	}
	if out.Rows() != n || out.Cols() != n {
		return nil, fmt.Errorf("%s: batch returned %dx%d for %d nodes: %w",
			opAdjacency, out.Rows(), out.Cols(), n, matrix.ErrDimensionMismatch)
	}
	if err = matrix.ValidateFinite(out); err != nil {
		return nil, &MetricError{I: -1, J: -1, Batch: true, Err: err}
	}

	return out.Clone().(*matrix.Dense), nil
}

func pairwiseAdjacency(x *Representations, metric Metric) (*matrix.Dense, error) {
	n := x.Len()
	vecs := x.Vectors() // private copies; the metric cannot reach x's storage
	adj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opAdjacency, err)
	}

	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = metric.Pair(vecs[i], vecs[j]); err != nil {
				return nil, &MetricError{I: i, J: j, Err: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &MetricError{I: i, J: j, Err: matrix.ErrNaNInf}
			}
			if err = adj.Set(i, j, v); err != nil {
				return nil, fmt.Errorf("%s: %w", opAdjacency, err)
			}
		}
	}

	return adj, nil
}

// Degree returns the diagonal matrix D with D[i,i] = Σ_j A[i,j] (weighted row degree).
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare.
func Degree(a matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("%s: %w", opDegree, err)
	}
	sums, err := matrix.RowSums(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDegree, err)
	}
	d, err := matrix.NewDiagonal(sums)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDegree, err)
	}

	return d, nil
}

// Laplacian returns Degree(A) − A.
// Symmetry is not enforced here; an asymmetric A yields a Laplacian that the
// spectral stage will reject.
func Laplacian(a matrix.Matrix) (*matrix.Dense, error) {
	d, err := Degree(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}
	l, err := matrix.Sub(d, a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLaplacian, err)
	}

	return l, nil
}

// Build returns the shift operator of kind op for x under metric.
func Build(x *Representations, metric Metric, op Operator) (*matrix.Dense, error) {
	adj, err := Adjacency(x, metric)
	if err != nil {
		return nil, err
	}
	switch op {
	case OperatorAdjacency:
		return adj, nil
	case OperatorLaplacian:
		return Laplacian(adj)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownOperator, op)
	}
}
