// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/chemsp/matrix"
)

var (
	// ErrValidation marks a shift operator rejected before eigendecomposition.
	// Returned errors are *ValidationError and also match the matrix sentinel
	// of the failed check (ErrNilMatrix, ErrNonSquare, ErrNaNInf, ErrAsymmetry).
	ErrValidation = errors.New("spectral: shift operator validation failed")

	// ErrDimensionMismatch is returned when basis size and signal length
	// disagree. It wraps matrix.ErrDimensionMismatch.
	ErrDimensionMismatch = fmt.Errorf("spectral: basis and signal sizes differ: %w", matrix.ErrDimensionMismatch)
)

// Names of the checks reported by ValidationError.Check.
const (
	CheckNotNil    = "not-nil"
	CheckSquare    = "square"
	CheckFinite    = "finite"
	CheckSymmetric = "symmetric"
)

// ValidationError names the precondition a shift operator failed.
type ValidationError struct {
	Check string // one of the Check* constants
	Err   error  // matrix sentinel, possibly wrapped
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("spectral: %s check failed: %v", e.Check, e.Err)
}

// Unwrap returns the underlying matrix error.
func (e *ValidationError) Unwrap() error { return e.Err }

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
