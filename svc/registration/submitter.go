package registration

import (
	"context"
	"sync"
)

// Submitter delivers a validated form. A nil error means the submission succeeded.
type Submitter interface {
	Submit(ctx context.Context, data FormData) error
}

// SubmitterFunc adapts a function to Submitter.
type SubmitterFunc func(ctx context.Context, data FormData) error

func (f SubmitterFunc) Submit(ctx context.Context, data FormData) error {
	return f(ctx, data)
}

// AlwaysSucceed returns a Submitter that accepts every form.
func AlwaysSucceed() Submitter {
	return SubmitterFunc(func(context.Context, FormData) error { return nil })
}

// AlwaysFail returns a Submitter that rejects every form with ErrSubmissionFailed.
func AlwaysFail() Submitter {
	return SubmitterFunc(func(context.Context, FormData) error { return ErrSubmissionFailed })
}

// AlternatingSubmitter flips between success and failure on every call.
type AlternatingSubmitter struct {
	mu       sync.Mutex
	failNext bool
}

// NewAlternatingSubmitter creates an AlternatingSubmitter. With failFirst
// the first call fails.
func NewAlternatingSubmitter(failFirst bool) *AlternatingSubmitter {
	return &AlternatingSubmitter{failNext: failFirst}
}

func (a *AlternatingSubmitter) Submit(ctx context.Context, _ FormData) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	fail := a.failNext
	a.failNext = !a.failNext
	if fail {
		return ErrSubmissionFailed
	}
	return nil
}
