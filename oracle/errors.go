package oracle

import "errors"

// Sentinel errors returned by the oracle constructors. All are rejected
// eagerly at construction time so a misconfigured oracle never gets to run
// against a sweep.
var (
	// ErrEmptyProtectedValue indicates an empty protected-group label.
	ErrEmptyProtectedValue = errors.New("oracle: protected value must not be empty")

	// ErrBadFraction indicates a top-k fraction outside (0, 1].
	ErrBadFraction = errors.New("oracle: top-k fraction must lie in (0, 1]")

	// ErrBadCap indicates a maximum protected fraction outside [0, 1].
	ErrBadCap = errors.New("oracle: max protected fraction must lie in [0, 1]")

	// ErrBadGroupSlot indicates a negative group slot index.
	ErrBadGroupSlot = errors.New("oracle: group slot index must be non-negative")

	// ErrNoConstraints indicates a Bracketed oracle was constructed with no
	// per-attribute constraints at all, which would trivially always pass.
	ErrNoConstraints = errors.New("oracle: at least one constraint is required")

	// ErrBadBracket indicates a [min, max] pair outside [0, 1] or with min > max.
	ErrBadBracket = errors.New("oracle: bracket bounds must satisfy 0 <= min <= max <= 1")
)
