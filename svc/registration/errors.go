package registration

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField        = errors.New("registration: unknown field")
	ErrValueType           = errors.New("registration: unsupported field value")
	ErrSubmissionFailed    = errors.New("registration: submission failed")
	ErrUnexpectedNextState = errors.New("registration: lifecycle table returned an unexpected state")
	ErrClosed              = errors.New("registration: coordinator is closed")
)

// GuardError reports a command issued in a lifecycle state that does not allow it.
type GuardError struct {
	State     Lifecycle
	Operation string
	Err       error
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("invalid form state (%s) for %s", e.State, e.Operation)
}

func (e *GuardError) Unwrap() error {
	return e.Err
}

// IsGuardError reports whether err is, or wraps, a *GuardError.
func IsGuardError(err error) bool {
	var e *GuardError
	return errors.As(err, &e)
}

func unknownField(field Field) error {
	return fmt.Errorf("%w: %q", ErrUnknownField, string(field))
}
