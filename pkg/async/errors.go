package async

import "errors"

var (
	ErrTimeout = errors.New("async: operation timed out waiting for future completion")

	// ErrPanic wraps the value recovered from a panicking function.
	ErrPanic = errors.New("async: panic")
)
