package errs

import (
	"errors"
	"fmt"
)

var ErrForbidden = errors.New("forbidden")

// ForbiddenError reports that the caller exists but does not own the
// resource it is trying to act on.
type ForbiddenError struct {
	Action  string
	ActorID any
	Cause   error
}

func NewForbiddenError(action string, actorID any) *ForbiddenError {
	return &ForbiddenError{
		Action:  action,
		ActorID: actorID,
	}
}

func NewForbiddenErrorWithCause(action string, actorID any, cause error) *ForbiddenError {
	return &ForbiddenError{
		Action:  action,
		ActorID: actorID,
		Cause:   cause,
	}
}

func (e *ForbiddenError) Error() string {
	msg := fmt.Sprintf("%s: %v may not %s", ErrForbidden, e.ActorID, e.Action)
	if e.Cause != nil {
		return fmt.Sprintf("%s (cause: %v)", msg, e.Cause)
	}
	return msg
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
