package coeffs

import "errors"

var (
	// ErrUnknownSet indicates a coefficient set name that is not registered.
	ErrUnknownSet = errors.New("coeffs: unknown coefficient set")

	// ErrUnknownProfile indicates an initial profile name that is not registered.
	ErrUnknownProfile = errors.New("coeffs: unknown profile")

	// ErrTooFewSamples indicates a sampled profile too short to transform.
	ErrTooFewSamples = errors.New("coeffs: need at least three samples")

	// ErrOutOfRange indicates a mode index the provider cannot resolve.
	ErrOutOfRange = errors.New("coeffs: mode index out of range")
)
