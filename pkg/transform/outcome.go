package transform

import "context"

// Status reports what a transform did with the state it was given.
type Status int

const (
	StatusApplied Status = iota + 1
	StatusUnchanged
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusApplied:
		return "applied"
	case StatusUnchanged:
		return "unchanged"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Outcome is the result of a single transform application.
// For Unchanged and Rejected outcomes State is the input state.
type Outcome[S any] struct {
	State  S
	Status Status
	Reason error // set for rejections only
}

// Transform maps one state value to the next.
type Transform[S any] func(ctx context.Context, state S) Outcome[S]

func Applied[S any](state S) Outcome[S] {
	return Outcome[S]{State: state, Status: StatusApplied}
}

func Unchanged[S any](state S) Outcome[S] {
	return Outcome[S]{State: state, Status: StatusUnchanged}
}

// Rejected reports a refused transform. A nil reason is replaced with ErrRejected.
func Rejected[S any](state S, reason error) Outcome[S] {
	if reason == nil {
		reason = ErrRejected
	}
	return Outcome[S]{State: state, Status: StatusRejected, Reason: reason}
}

func (o Outcome[S]) IsApplied() bool   { return o.Status == StatusApplied }
func (o Outcome[S]) IsUnchanged() bool { return o.Status == StatusUnchanged }
func (o Outcome[S]) IsRejected() bool  { return o.Status == StatusRejected }

// Func lifts a plain state function into a Transform that always applies.
func Func[S any](fn func(S) S) Transform[S] {
	return func(_ context.Context, state S) Outcome[S] {
		return Applied(fn(state))
	}
}
