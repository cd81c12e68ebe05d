package orbital

import "errors"

// Domain errors for geometry computations.
var (
	// ErrInvalidRadius indicates an orbit radius that is zero or negative.
	ErrInvalidRadius = errors.New("orbital: orbit radius must be positive")

	// ErrDegenerateGeometry indicates a configuration where the sight line
	// between observer and planet vanishes, leaving the phase and
	// elongation angles undefined.
	ErrDegenerateGeometry = errors.New("orbital: degenerate geometry (observer and planet coincide)")
)
