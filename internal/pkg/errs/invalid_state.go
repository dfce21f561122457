package errs

import (
	"errors"
	"fmt"
)

var ErrInvalidState = errors.New("invalid state")

// InvalidStateError reports a lifecycle transition attempted from a state
// that does not allow it.
type InvalidStateError struct {
	Entity string
	State  string
	Action string
}

func NewInvalidStateError(entity, state, action string) *InvalidStateError {
	return &InvalidStateError{
		Entity: entity,
		State:  state,
		Action: action,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: %s in %s cannot %s", ErrInvalidState, e.Entity, e.State, e.Action)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
