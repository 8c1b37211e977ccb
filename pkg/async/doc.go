// Package async provides simple, generic helpers for running a computation in
// the background and reacting to its completion.
//
// The package is centred around the generic type Future that represents the
// eventual result of an asynchronous operation. A Future is obtained from
// Async, which starts the supplied function in its own goroutine, or from
// Delayed, which waits for a duration first. The caller can wait with Await,
// bound the wait with AwaitWithTimeout, poll with IsComplete, or register a
// completion callback with Then.
//
// # Usage
//
//	f := async.Delayed(ctx, 3*time.Second, data, func(ctx context.Context, d Data) (struct{}, error) {
//	    return struct{}{}, send(ctx, d)
//	})
//	f.Then(func(_ struct{}, err error) {
//	    if err != nil {
//	        // report failure
//	    }
//	})
//
// # Cancellation
//
// If the context is cancelled before the function starts, the function is
// not called and the Future completes with the context error. Use
// context.WithoutCancel for work that must always run to completion.
package async
