// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chemsp/matrix"
)

// Basis is the spectral basis of a shift operator.
// Column k of Vectors is the unit eigenvector of Values[k]; Values is
// non-decreasing.
type Basis struct {
	Vectors *matrix.Dense
	Values  []float64
}

// Len returns the number of graph frequencies (N).
func (b *Basis) Len() int { return len(b.Values) }

// Vector returns a copy of eigenvector k.
func (b *Basis) Vector(k int) ([]float64, error) { return b.Vectors.Col(k) }

// FourierBasis returns the N×N orthonormal eigenvector matrix of a symmetric
// shift operator, columns ordered by ascending eigenvalue.
//
// Errors: *ValidationError (matching ErrValidation) when the operator is nil,
// not square, not finite or not symmetric within eps·max(1, max|A|);
// matrix.ErrMatrixEigenFailed when Jacobi does not converge.
func FourierBasis(op matrix.Matrix, opts ...Option) (*matrix.Dense, error) {
	b, err := Eigenbasis(op, opts...)
	if err != nil {
		return nil, err
	}

	return b.Vectors, nil
}

// Eigenbasis is FourierBasis that also returns the eigenvalues.
// Implementation:
//   - Stage 1: run the four structural checks in order nil, square, finite,
//     symmetric; the first failure is returned as *ValidationError.
//   - Stage 2: matrix.EigenSym with the resolved epsilon, tolerance and
//     sweep cap; eigenpairs come back sorted and sign-normalized.
//
// Complexity: O(sweeps·N³) time, O(N²) space.
func Eigenbasis(op matrix.Matrix, opts ...Option) (*Basis, error) {
	o := NewOptions(opts...)
	if err := validateOperator(op, o.Epsilon()); err != nil {
		return nil, err
	}
	vals, vecs, err := matrix.EigenSym(op, o.solver...)
	if err != nil {
		return nil, fmt.Errorf("spectral: Eigenbasis: %w", err)
	}

	return &Basis{Vectors: vecs, Values: vals}, nil
}

// validateOperator checks the preconditions of a symmetric eigensolver.
func validateOperator(op matrix.Matrix, eps float64) error {
	if err := matrix.ValidateNotNil(op); err != nil {
		return &ValidationError{Check: CheckNotNil, Err: err}
	}
	if err := matrix.ValidateSquare(op); err != nil {
		return &ValidationError{Check: CheckSquare, Err: err}
	}
	if err := matrix.ValidateFinite(op); err != nil {
		return &ValidationError{Check: CheckFinite, Err: err}
	}
	scale, err := matrix.MaxAbs(op)
	if err != nil {
		return &ValidationError{Check: CheckFinite, Err: err}
	}
	if err = matrix.ValidateSymmetric(op, eps*math.Max(1, scale)); err != nil {
		return &ValidationError{Check: CheckSymmetric, Err: err}
	}

	return nil
}
