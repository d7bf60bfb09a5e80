package dynamo

import (
	"errors"
	"fmt"
)

// Domain errors for simulation operations.
var (
	// ErrInvalidState indicates a particle position or velocity became NaN or Inf.
	ErrInvalidState = errors.New("dynamo: invalid state (NaN or Inf detected)")

	// ErrInvalidConfig indicates run or presentation settings outside valid range.
	ErrInvalidConfig = errors.New("dynamo: invalid config")

	// ErrUnknownScenario indicates a scripted input preset that does not exist.
	ErrUnknownScenario = errors.New("dynamo: unknown scenario")
)

// SimError wraps an error with the frame it surfaced on.
type SimError struct {
	Frame   int
	Message string
	Wrapped error
}

func (e *SimError) Error() string {
	return fmt.Sprintf("frame %d: %s: %v", e.Frame, e.Message, e.Wrapped)
}

func (e *SimError) Unwrap() error {
	return e.Wrapped
}
