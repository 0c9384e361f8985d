// SPDX-License-Identifier: MIT

package gso

import (
	"fmt"

	"github.com/katalvlaran/chemsp/matrix"
)

// Representations is an immutable, ordered set of N feature vectors of
// dimension M. Row i is node i in every operator built from the set.
type Representations struct {
	data *matrix.Dense
}

// NewRepresentations copies rows into a representation set.
// Failures are *CoercionError values matching ErrInputCoercion.
func NewRepresentations(rows [][]float64) (*Representations, error) {
	return Coerce(rows)
}

// Coerce converts raw into a representation set.
//
// Accepted inputs: *Representations (returned as is), [][]float64,
// [][]float32, [][]int and any matrix.Matrix (rows are representations).
// Everything is copied; later changes to raw do not affect the result.
//
// Errors (all *CoercionError, matching ErrInputCoercion):
//   - ErrUnsupportedInput for other types or nil values.
//   - ErrEmptyInput for zero vectors or zero-dimensional vectors.
//   - ErrRaggedInput when vectors differ in length.
//   - matrix.ErrNaNInf when a value is NaN or ±Inf.
func Coerce(raw any) (*Representations, error) {
	typ := fmt.Sprintf("%T", raw)
	var rows [][]float64

	switch v := raw.(type) {
	case *Representations:
		if v == nil || v.data == nil {
			return nil, &CoercionError{Type: typ, Err: ErrUnsupportedInput}
		}
		return v, nil
	case [][]float64:
		rows = v
	case [][]float32:
		rows = widen(v, func(f float32) float64 { return float64(f) })
	case [][]int:
		rows = widen(v, func(n int) float64 { return float64(n) })
	case matrix.Matrix:
		if err := matrix.ValidateNotNil(v); err != nil {
			return nil, &CoercionError{Type: typ, Err: err}
		}
		var err error
		if rows, err = readRows(v); err != nil {
			return nil, &CoercionError{Type: typ, Err: err}
		}
	default:
		return nil, &CoercionError{Type: typ, Err: ErrUnsupportedInput}
	}

	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, &CoercionError{Type: typ, Err: ErrEmptyInput}
	}
	for i := range rows {
		if len(rows[i]) != len(rows[0]) {
			return nil, &CoercionError{Type: typ, Err: fmt.Errorf("row %d: %w", i, ErrRaggedInput)}
		}
	}
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		return nil, &CoercionError{Type: typ, Err: err}
	}

	return &Representations{data: d}, nil
}

// Len returns N, the number of representations (graph nodes).
func (r *Representations) Len() int { return r.data.Rows() }

// Dim returns M, the dimension of every representation.
func (r *Representations) Dim() int { return r.data.Cols() }

// Vector returns a copy of representation i.
func (r *Representations) Vector(i int) ([]float64, error) {
	return r.data.Row(i)
}

// Vectors returns copies of all representations in node order.
func (r *Representations) Vectors() [][]float64 {
	return r.data.ToRows()
}

// Matrix returns the N×M representation matrix as an independent copy.
func (r *Representations) Matrix() *matrix.Dense {
	return r.data.Clone().(*matrix.Dense)
}

func widen[T float32 | int](in [][]T, conv func(T) float64) [][]float64 {
	out := make([][]float64, len(in))
	for i, row := range in {
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = conv(v)
		}
	}

	return out
}

func readRows(m matrix.Matrix) ([][]float64, error) {
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
