// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/chemsp/matrix"
)

// GFT projects signal onto basis: coefficients = basisᵀ·signal.
// Coefficient k belongs to eigenvector k and keeps its sign.
//
// Errors:
//   - ErrDimensionMismatch if basis.Rows() != len(signal), nil or empty signals
//     included; the signal is never truncated or padded.
//   - matrix.ErrNilMatrix for a nil basis, matrix.ErrNaNInf for a
//     non-finite signal entry.
func GFT(basis matrix.Matrix, signal []float64) ([]float64, error) {
	if err := checkVector(basis, signal, rowsOf); err != nil {
		return nil, fmt.Errorf("spectral: GFT: %w", err)
	}
	c, err := matrix.MatTVec(basis, signal)
	if err != nil {
		return nil, fmt.Errorf("spectral: GFT: %w", err)
	}

	return c, nil
}

// InverseGFT reconstructs a signal from its coefficients: signal = basis·coefficients.
// For an orthonormal basis InverseGFT(Q, GFT(Q, s)) ≈ s.
// Errors follow GFT.
func InverseGFT(basis matrix.Matrix, coefficients []float64) ([]float64, error) {
	if err := checkVector(basis, coefficients, colsOf); err != nil {
		return nil, fmt.Errorf("spectral: InverseGFT: %w", err)
	}
	s, err := matrix.MatVec(basis, coefficients)
	if err != nil {
		return nil, fmt.Errorf("spectral: InverseGFT: %w", err)
	}

	return s, nil
}

func rowsOf(m matrix.Matrix) int { return m.Rows() }
func colsOf(m matrix.Matrix) int { return m.Cols() }

// checkVector validates v against the basis dimension selected by dim.
func checkVector(basis matrix.Matrix, v []float64, dim func(matrix.Matrix) int) error {
	if err := matrix.ValidateNotNil(basis); err != nil {
		return err
	}
	if n := dim(basis); n != len(v) {
		return fmt.Errorf("%w (basis %d, vector %d)", ErrDimensionMismatch, n, len(v))
	}
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return matrix.ErrNaNInf
		}
	}

	return nil
}
