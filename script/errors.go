package script

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyScript indicates a script without steps.
	ErrEmptyScript = errors.New("script: no steps")
	// ErrUnknownOp indicates a step with an unsupported operation name.
	ErrUnknownOp = errors.New("script: unknown operation")
)

// StepError is returned when a step fails, either during validation or
// while running. It unwraps to the underlying cause.
type StepError struct {
	Step int
	Op   Op
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("script: step %d (%s): %v", e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }
