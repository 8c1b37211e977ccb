package registration

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrymomot/formflow/pkg/sanitizer"
	"github.com/dmitrymomot/formflow/pkg/transform"
)

// UpdateField returns a transform that stores value in field. Strings are
// trimmed. Every form field holds text, so other value types are rejected
// with ErrValueType.
func UpdateField(field Field, value any) transform.Transform[State] {
	return func(ctx context.Context, s State) transform.Outcome[State] {
		if _, err := advance(ctx, s.Lifecycle, eventUpdateField, OpUpdateField, nil); err != nil {
			return transform.Rejected(s, err)
		}
		if !IsField(string(field)) {
			return transform.Rejected(s, unknownField(field))
		}

		normalized, err := sanitizer.Value(value, sanitizer.Trim)
		if err != nil {
			return transform.Rejected(s, errors.Join(ErrValueType, err))
		}
		text, ok := normalized.(string)
		if !ok {
			return transform.Rejected(s, fmt.Errorf("%w: %s expects a string, got %T", ErrValueType, field, value))
		}

		if s.Data.Get(field) == text {
			return transform.Unchanged(s)
		}
		next := s
		next.Data = s.Data.with(field, text)
		return transform.Applied(next)
	}
}

// ValidateField returns a transform that re-validates one field. The error
// map is replaced only when the field's message actually changes.
func ValidateField(field Field) transform.Transform[State] {
	return func(ctx context.Context, s State) transform.Outcome[State] {
		if _, err := advance(ctx, s.Lifecycle, eventValidateField, OpValidateField, nil); err != nil {
			return transform.Rejected(s, err)
		}
		if !IsField(string(field)) {
			return transform.Rejected(s, unknownField(field))
		}

		msg, failed := ValidateOneField(field, s.Data.Get(field))
		prev, had := s.Errors.For(field)
		if failed == had && msg == prev {
			return transform.Unchanged(s)
		}

		errs := s.Errors.clone()
		if failed {
			errs[string(field)] = msg
		} else {
			delete(errs, string(field))
		}
		next := s
		next.Errors = errs
		return transform.Applied(next)
	}
}

// Submit validates the form and, when it is valid, moves straight from
// Validated to Submitting in one step. It schedules nothing itself; the
// Coordinator starts the submission once Submit has been applied.
func Submit(ctx context.Context, s State) transform.Outcome[State] {
	if _, err := advance(ctx, s.Lifecycle, eventSubmit, OpSubmitFormData, nil); err != nil {
		return transform.Rejected(s, err)
	}

	out := ValidateForm(ctx, s)
	if out.IsRejected() || out.State.Lifecycle != Validated {
		return out
	}

	next := out.State
	to, err := advance(ctx, next.Lifecycle, eventBeginSubmission, OpSubmitFormData, nil)
	if err != nil {
		return transform.Rejected(s, err)
	}
	next.Lifecycle = to
	return transform.Applied(next)
}

// SubmissionSucceeded completes the form.
func SubmissionSucceeded(ctx context.Context, s State) transform.Outcome[State] {
	to, err := advance(ctx, s.Lifecycle, eventSubmissionSucceeded, OpSubmissionSucceeded, nil)
	if err != nil {
		return transform.Rejected(s, err)
	}
	next := s
	next.Lifecycle = to
	next.Errors = ValidationErrors{}
	return transform.Applied(next)
}

// SubmissionFailed returns the form to Updating with a form-level error.
// Entered data is kept so the user can retry.
func SubmissionFailed(ctx context.Context, s State) transform.Outcome[State] {
	to, err := advance(ctx, s.Lifecycle, eventSubmissionFailed, OpSubmissionFailed, nil)
	if err != nil {
		return transform.Rejected(s, err)
	}
	next := s
	next.Lifecycle = to
	next.Errors = ValidationErrors{WildcardKey: SubmissionFailedMessage}
	return transform.Applied(next)
}
