// Package errs provides the typed errors shared by the takeout service.
//
// Every error type wraps a sentinel so callers classify failures with
// errors.Is instead of matching strings:
//   - ErrObjectNotFound: an addressed entity does not exist
//   - ErrForbidden: the caller does not own the resource
//   - ErrInvalidState: a lifecycle transition is not allowed from the current state
//   - ErrConflict: a concurrent writer won, or a unique value is taken
//   - ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange: malformed input
//   - ErrVersionIsInvalid: an optimistic version check failed in storage
//
// Each type has a constructor with and without a cause, an Error method
// and an Unwrap method returning its sentinel. The HTTP adapter translates
// the sentinels into status codes.
package errs
