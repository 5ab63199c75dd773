package locate

import "errors"

var (
	// ErrInsufficientBoundaries is returned when fewer than two boundaries
	// are supplied; a single boundary cannot bracket any angle.
	ErrInsufficientBoundaries = errors.New("locate: at least two boundaries are required")

	// ErrNegativeWeight is returned when either weight component is
	// negative; this module's scoring domain is restricted to the
	// non-negative quadrant, matching package sweep's [0, π/2] sweep range.
	ErrNegativeWeight = errors.New("locate: weights must be non-negative")

	// ErrZeroVector is returned for the origin (0, 0), which has no defined
	// angle.
	ErrZeroVector = errors.New("locate: weight vector must be non-zero")
)
