package sim

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig indicates a non-positive step size or horizon.
	ErrInvalidConfig = errors.New("sim: invalid run configuration")

	// ErrInvalidState indicates NaN or Inf in the state vector.
	ErrInvalidState = errors.New("sim: invalid state (NaN or Inf detected)")

	// ErrDimensionMismatch indicates an initial state whose length does not
	// match the system dimension.
	ErrDimensionMismatch = errors.New("sim: state dimension mismatch")
)

// StepError records where in a run an error occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error { return e.Wrapped }
