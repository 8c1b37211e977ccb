// Package statemachine provides a type-safe finite-state-machine transition
// table for Go applications.
//
// The package revolves around two minimal interfaces, State and Event, that
// leave you free to model domain specific states and events while the table
// handles transition lookup and Guard evaluation.
//
// A Table does not own a current state. The caller keeps the state value
// (typically inside a larger immutable record) and asks the table where an
// event leads:
//
//	next, err := table.Next(ctx, current, event, data)
//
// This keeps the table safe to share between any number of state owners.
//
// # Usage
//
//	const (
//	    Draft    = statemachine.StringState("draft")
//	    InReview = statemachine.StringState("in_review")
//	    Submit   = statemachine.StringEvent("submit")
//	)
//
//	table := statemachine.MustNew(
//	    statemachine.WithTransition(Draft, InReview, Submit),
//	)
//
//	next, err := table.Next(context.Background(), Draft, Submit, nil)
//
// # Guards
//
// Guards veto a transition based on runtime data. Several transitions may be
// registered for the same state and event; the first one whose guards all
// pass wins:
//
//	hasNoErrors := func(ctx context.Context, from statemachine.State, evt statemachine.Event, data any) bool {
//	    errs, _ := data.(map[string]string)
//	    return len(errs) == 0
//	}
//
// # Error Handling
//
// When Next returns an error you can inspect it using helper functions:
//
//	if statemachine.IsNoTransitionAvailableError(err) { /* ... */ }
//	if statemachine.IsTransitionRejectedError(err)   { /* ... */ }
package statemachine
