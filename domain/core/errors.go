package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Fit errors: the power-law approximation is undefined at the
	// requested operating point. Both are fatal, never recoverable.
	ErrZeroRate          = errors.New("rate is zero at operating point")
	ErrZeroConcentration = errors.New("operating-point concentration is zero")
	ErrNotDifferentiable = errors.New("rate law not differentiable in variable")

	// Solver errors: the integration produced no usable trajectory.
	ErrDiverged     = errors.New("state diverged (non-finite value)")
	ErrStepTooSmall = errors.New("adaptive step size below minimum")
	ErrMaxSteps     = errors.New("maximum step count exceeded")

	// Model errors
	ErrDimensionMismatch = errors.New("state dimension mismatch")
	ErrSpeciesNotFound   = errors.New("species not found")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("validation failed for %s: %s", field, reason)
}

func NewZeroRateError(reaction string) error {
	return fmt.Errorf("%w: reaction %s", ErrZeroRate, reaction)
}

func NewZeroConcentrationError(species string) error {
	return fmt.Errorf("%w: species %s", ErrZeroConcentration, species)
}

func NewDivergedError(t float64, index int) error {
	return fmt.Errorf("%w: t=%g state index %d", ErrDiverged, t, index)
}

// Error checking helpers
func IsFitError(err error) bool {
	return errors.Is(err, ErrZeroRate) ||
		errors.Is(err, ErrZeroConcentration) ||
		errors.Is(err, ErrNotDifferentiable)
}

func IsSolverError(err error) bool {
	return errors.Is(err, ErrDiverged) ||
		errors.Is(err, ErrStepTooSmall) ||
		errors.Is(err, ErrMaxSteps)
}
