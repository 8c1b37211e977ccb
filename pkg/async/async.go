package async

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Future represents the result of an asynchronous computation.
type Future[U any] struct {
	result U
	err    error
	once   sync.Once
	done   chan struct{}
}

func newFuture[U any]() *Future[U] {
	return &Future[U]{done: make(chan struct{})}
}

func (f *Future[U]) resolve(res U, err error) {
	f.once.Do(func() {
		f.result = res
		f.err = err
		close(f.done)
	})
}

// Await waits for the asynchronous function to complete and returns its result and error.
func (f *Future[U]) Await() (U, error) {
	<-f.done
	return f.result, f.err
}

// AwaitWithTimeout waits for the asynchronous function to complete with a timeout.
// If the timeout occurs before completion, returns ErrTimeout.
func (f *Future[U]) AwaitWithTimeout(timeout time.Duration) (U, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-time.After(timeout):
		var zero U
		return zero, ErrTimeout
	}
}

// Done returns a channel that is closed once the future has completed.
func (f *Future[U]) Done() <-chan struct{} {
	return f.done
}

// IsComplete checks if the asynchronous function is complete without blocking.
func (f *Future[U]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Then calls fn with the result once f completes. The returned future
// completes with the same result after fn has returned, so callers can wait
// for the callback itself. If fn panics, the returned future completes with
// an error wrapping ErrPanic.
func (f *Future[U]) Then(fn func(U, error)) *Future[U] {
	next := newFuture[U]()
	go func() {
		res, err := f.Await()
		if fn != nil {
			if perr := callback(fn, res, err); perr != nil {
				err = perr
			}
		}
		next.resolve(res, err)
	}()
	return next
}

// Async executes a function asynchronously and returns a Future.
// The function accepts a context.Context and a parameter of any type T, and returns (U, error).
func Async[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	return Delayed(ctx, 0, param, fn)
}

// Delayed is like Async but starts fn only after delay has elapsed.
// If ctx is done first, fn is never called and the future completes with ctx.Err().
// A panic in fn completes the future with an error wrapping ErrPanic.
func Delayed[T any, U any](ctx context.Context, delay time.Duration, param T, fn func(context.Context, T) (U, error)) *Future[U] {
	f := newFuture[U]()

	go func() {
		var zero U

		if delay > 0 {
			timer := time.NewTimer(delay)
			defer timer.Stop()
			select {
			case <-ctx.Done():
				f.resolve(zero, ctx.Err())
				return
			case <-timer.C:
			}
		}

		// Early exit prevents running work for an already-cancelled caller
		select {
		case <-ctx.Done():
			f.resolve(zero, ctx.Err())
			return
		default:
		}

		f.resolve(call(ctx, param, fn))
	}()

	return f
}

func callback[U any](fn func(U, error), res U, err error) (perr error) {
	defer func() {
		if r := recover(); r != nil {
			perr = fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	fn(res, err)
	return nil
}

// call runs fn and converts a panic into an error wrapping ErrPanic.
func call[T any, U any](ctx context.Context, param T, fn func(context.Context, T) (U, error)) (res U, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero U
			res, err = zero, fmt.Errorf("%w: %v", ErrPanic, r)
		}
	}()
	return fn(ctx, param)
}
