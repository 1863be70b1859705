package fourier

import (
	"errors"
	"fmt"
)

// Domain errors for series evaluation.
var (
	// ErrUnknownBoundary indicates a boundary tag other than dirichlet or neumann.
	ErrUnknownBoundary = errors.New("fourier: unknown boundary condition")

	// ErrParameterBounds indicates a configuration value outside its valid range.
	ErrParameterBounds = errors.New("fourier: parameter out of valid bounds")

	// ErrShapeMismatch indicates array operands that cannot be broadcast together.
	ErrShapeMismatch = errors.New("fourier: operands cannot be broadcast together")

	// ErrCoefficient indicates the coefficient provider failed.
	ErrCoefficient = errors.New("fourier: coefficient provider failed")
)

// ShapeError reports the two shapes that failed to broadcast.
type ShapeError struct {
	Op         string
	Rows, Cols [2]int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("fourier: %s: cannot broadcast (%d,%d) with (%d,%d)",
		e.Op, e.Rows[0], e.Cols[0], e.Rows[1], e.Cols[1])
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// CoefficientError wraps a failure returned by a [Coefficients] provider.
type CoefficientError struct {
	N   int
	Err error
}

func (e *CoefficientError) Error() string {
	return fmt.Sprintf("fourier: coefficient %d: %v", e.N, e.Err)
}

// Is reports ErrCoefficient so callers can match the category without
// caring about the provider's own error.
func (e *CoefficientError) Is(target error) bool {
	return target == ErrCoefficient
}

func (e *CoefficientError) Unwrap() error {
	return e.Err
}
