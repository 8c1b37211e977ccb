// Package registration implements the registration form workflow: field
// editing, per-field and whole-form validation, and a single asynchronous
// submission at a time.
//
// All state lives in one State value owned by a Coordinator. Every change
// goes through a transform.Dispatcher, so commands and submission results
// arriving from other goroutines are applied one at a time. Each transform
// first consults the lifecycle table:
//
//	Updating --validate_form (no errors)--> Validated --begin_submission--> Submitting
//	Submitting --submission_succeeded--> Submitted
//	Submitting --submission_failed--> Updating
//
// A command issued in a state that does not allow it is rejected with a
// *GuardError and leaves the state as it was.
//
// # Usage
//
//	c := registration.New(registration.AlwaysSucceed(),
//		registration.WithLogger(log),
//		registration.WithSubmitDelay(time.Second),
//	)
//	defer c.Close()
//
//	c.UpdateField(ctx, registration.FirstName, "Ann")
//	c.ValidateField(ctx, registration.FirstName)
//
//	out := c.SubmitFormData(ctx)
//	if out.IsRejected() {
//		// wrong lifecycle state
//	}
//
//	sub := c.Subscribe(ctx)
//	for msg := range sub.Receive(ctx) {
//		render(msg.Data)
//	}
//
// The submission outcome is decided by the Submitter passed to New.
// NewAlternatingSubmitter reproduces the demo behaviour of alternating
// between success and failure.
package registration
