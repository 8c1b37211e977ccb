package registration

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/formflow/pkg/statemachine"
)

const (
	eventUpdateField         = statemachine.StringEvent("update_field")
	eventValidateField       = statemachine.StringEvent("validate_field")
	eventValidateForm        = statemachine.StringEvent("validate_form")
	eventSubmit              = statemachine.StringEvent("submit")
	eventBeginSubmission     = statemachine.StringEvent("begin_submission")
	eventSubmissionSucceeded = statemachine.StringEvent("submission_succeeded")
	eventSubmissionFailed    = statemachine.StringEvent("submission_failed")
)

// Operation names used in guard errors and logs.
const (
	OpUpdateField         = "updateField"
	OpValidateField       = "validateField"
	OpValidateForm        = "validateForm"
	OpSubmitFormData      = "submitFormData"
	OpSubmissionSucceeded = "submissionSucceeded"
	OpSubmissionFailed    = "submissionFailed"
)

// noErrors passes when the validate_form data is an empty error map.
func noErrors(_ context.Context, _ statemachine.State, _ statemachine.Event, data any) bool {
	errs, ok := data.(ValidationErrors)
	return ok && len(errs) == 0
}

// lifecycle is shared by every session; the table holds no per-session state.
var lifecycle = statemachine.MustNew(
	statemachine.WithTransition(Updating, Updating, eventUpdateField),
	statemachine.WithTransition(Updating, Updating, eventValidateField),
	statemachine.WithTransition(Updating, Validated, eventValidateForm, statemachine.WithGuard(noErrors)),
	statemachine.WithTransition(Updating, Updating, eventValidateForm),
	statemachine.WithTransition(Updating, Updating, eventSubmit),
	statemachine.WithTransition(Validated, Submitting, eventBeginSubmission),
	statemachine.WithTransition(Submitting, Submitted, eventSubmissionSucceeded),
	statemachine.WithTransition(Submitting, Updating, eventSubmissionFailed),
)

// advance looks up the lifecycle state that follows event. Any miss is a
// guard violation.
func advance(ctx context.Context, from Lifecycle, event statemachine.Event, op string, data any) (Lifecycle, error) {
	next, err := lifecycle.Next(ctx, from, event, data)
	if err != nil {
		return from, &GuardError{State: from, Operation: op, Err: err}
	}
	to, ok := next.(Lifecycle)
	if !ok {
		return from, fmt.Errorf("%w: %T", ErrUnexpectedNextState, next)
	}
	return to, nil
}

// Allowed reports whether op may run while in state l.
func Allowed(l Lifecycle, op string) bool {
	event, ok := operationEvents[op]
	if !ok {
		return false
	}
	for _, e := range lifecycle.Events(l) {
		if e.Name() == event.Name() {
			return true
		}
	}
	return false
}

var operationEvents = map[string]statemachine.Event{
	OpUpdateField:         eventUpdateField,
	OpValidateField:       eventValidateField,
	OpValidateForm:        eventValidateForm,
	OpSubmitFormData:      eventSubmit,
	OpSubmissionSucceeded: eventSubmissionSucceeded,
	OpSubmissionFailed:    eventSubmissionFailed,
}
