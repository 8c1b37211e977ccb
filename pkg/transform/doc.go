// Package transform applies state transforms to a single owned state cell,
// one at a time and in the order they are dispatched.
//
// A Transform is a function from the current state to an Outcome. The
// Outcome tells the Dispatcher what happened:
//   - Applied: the returned state replaces the cell and is published to subscribers
//   - Unchanged: the transform had nothing to do; the cell is left alone
//   - Rejected: a precondition failed; the cell is left alone and the reason is logged
//
// The Dispatcher is the only writer of its cell. Transforms must treat the
// state they receive as read-only and return a copy when they change it.
//
// # Usage
//
//	d := transform.NewDispatcher(0)
//	inc := func(_ context.Context, n int) transform.Outcome[int] {
//	    return transform.Applied(n + 1)
//	}
//	out := d.Dispatch(ctx, inc)
//
// # Concurrency
//
// Dispatch may be called from any goroutine. Transforms run under the
// dispatcher's lock, so each one observes the result of the previous one and
// no two run at the same time. A transform must not call Dispatch on the same
// dispatcher.
package transform
