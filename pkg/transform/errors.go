package transform

import "errors"

var (
	// ErrRejected is the default reason for a rejected transform.
	ErrRejected = errors.New("transform: rejected")

	// ErrNilTransform is the rejection reason when Dispatch receives a nil transform.
	ErrNilTransform = errors.New("transform: nil transform")
)
