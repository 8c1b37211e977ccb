package async_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrymomot/formflow/pkg/async"
)

// TestAsyncFunctionality tests the basic functionality of the Async helper.
func TestAsyncFunctionality(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	futureString := async.Async(ctx, 42, func(ctx context.Context, num int) (string, error) {
		time.Sleep(20 * time.Millisecond)
		return fmt.Sprintf("Number: %d", num), nil
	})

	type form struct {
		First string
		Last  string
	}
	futureInt := async.Async(ctx, form{First: "Ann", Last: "Lee"}, func(ctx context.Context, f form) (int, error) {
		return len(f.First) + len(f.Last), nil
	})

	resultString, errString := futureString.Await()
	resultInt, errInt := futureInt.Await()

	if errString != nil || resultString != "Number: 42" {
		t.Errorf("Expected 'Number: 42', got '%s', error: %v", resultString, errString)
	}
	if errInt != nil || resultInt != 6 {
		t.Errorf("Expected 6, got %d, error: %v", resultInt, errInt)
	}
}

func TestAsyncErrorPropagation(t *testing.T) {
	t.Parallel()
	errSubmit := errors.New("submission failed")

	future := async.Async(context.Background(), "data", func(ctx context.Context, s string) (struct{}, error) {
		return struct{}{}, errSubmit
	})

	_, err := future.Await()
	if !errors.Is(err, errSubmit) {
		t.Errorf("Expected errSubmit, got %v", err)
	}
}

// TestAsyncContextCancellation tests that a pre-cancelled context skips the work.
func TestAsyncContextCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var called atomic.Bool
	future := async.Async(ctx, 1, func(ctx context.Context, n int) (int, error) {
		called.Store(true)
		return n, nil
	})

	_, err := future.Await()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
	if called.Load() {
		t.Error("Function should not run for a cancelled context")
	}
}

func TestDelayed(t *testing.T) {
	t.Parallel()

	t.Run("waits before running", func(t *testing.T) {
		t.Parallel()
		start := time.Now()
		future := async.Delayed(context.Background(), 30*time.Millisecond, 2, func(ctx context.Context, n int) (int, error) {
			return n * 2, nil
		})

		if future.IsComplete() {
			t.Fatal("Future should not be complete before the delay")
		}

		res, err := future.Await()
		if err != nil || res != 4 {
			t.Errorf("Expected 4, got %d, error: %v", res, err)
		}
		if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
			t.Errorf("Expected at least 30ms delay, got %v", elapsed)
		}
	})

	t.Run("cancellation during delay", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())

		var called atomic.Bool
		future := async.Delayed(ctx, time.Second, 1, func(ctx context.Context, n int) (int, error) {
			called.Store(true)
			return n, nil
		})
		cancel()

		_, err := future.AwaitWithTimeout(500 * time.Millisecond)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Expected context.Canceled, got %v", err)
		}
		if called.Load() {
			t.Error("Function should not run after cancellation")
		}
	})

	t.Run("detached context always runs", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		future := async.Delayed(context.WithoutCancel(ctx), 10*time.Millisecond, 1, func(ctx context.Context, n int) (int, error) {
			return n + 1, nil
		})
		cancel()

		res, err := future.Await()
		if err != nil || res != 2 {
			t.Errorf("Expected 2, got %d, error: %v", res, err)
		}
	})
}

func TestThen(t *testing.T) {
	t.Parallel()

	t.Run("callback receives result", func(t *testing.T) {
		t.Parallel()
		var got atomic.Int64
		future := async.Async(context.Background(), 21, func(ctx context.Context, n int) (int, error) {
			return n * 2, nil
		})

		after := future.Then(func(res int, err error) {
			if err == nil {
				got.Store(int64(res))
			}
		})

		res, err := after.Await()
		if err != nil || res != 42 {
			t.Errorf("Expected 42, got %d, error: %v", res, err)
		}
		if got.Load() != 42 {
			t.Errorf("Callback should have run before the chained future completed, got %d", got.Load())
		}
	})

	t.Run("callback receives error", func(t *testing.T) {
		t.Parallel()
		errFail := errors.New("fail")
		var got error
		var mu sync.Mutex

		after := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
			return 0, errFail
		}).Then(func(_ int, err error) {
			mu.Lock()
			got = err
			mu.Unlock()
		})

		<-after.Done()
		mu.Lock()
		defer mu.Unlock()
		if !errors.Is(got, errFail) {
			t.Errorf("Expected errFail, got %v", got)
		}
	})

	t.Run("nil callback", func(t *testing.T) {
		t.Parallel()
		after := async.Async(context.Background(), 1, func(ctx context.Context, n int) (int, error) {
			return n, nil
		}).Then(nil)

		if res, err := after.Await(); err != nil || res != 1 {
			t.Errorf("Expected 1, got %d, error: %v", res, err)
		}
	})
}

func TestIsComplete(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})

	future := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
		<-release
		return n, nil
	})

	if future.IsComplete() {
		t.Error("Future should not be complete yet")
	}

	close(release)
	<-future.Done()

	if !future.IsComplete() {
		t.Error("Future should be complete")
	}
}

func TestAwaitWithTimeout(t *testing.T) {
	t.Parallel()
	release := make(chan struct{})
	defer close(release)

	future := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
		<-release
		return n, nil
	})

	_, err := future.AwaitWithTimeout(20 * time.Millisecond)
	if !errors.Is(err, async.ErrTimeout) {
		t.Errorf("Expected ErrTimeout, got %v", err)
	}
}

func TestPanicRecovery(t *testing.T) {
	t.Parallel()

	t.Run("panicking function resolves with error", func(t *testing.T) {
		t.Parallel()
		future := async.Delayed(context.Background(), time.Millisecond, "payload", func(ctx context.Context, s string) (int, error) {
			panic("transport exploded")
		})

		res, err := future.AwaitWithTimeout(time.Second)
		if !errors.Is(err, async.ErrPanic) {
			t.Fatalf("Expected ErrPanic, got %v", err)
		}
		if res != 0 {
			t.Errorf("Expected zero result, got %d", res)
		}
		if !strings.Contains(err.Error(), "transport exploded") {
			t.Errorf("Expected panic value in error, got %q", err.Error())
		}
	})

	t.Run("panic reaches Then callback as error", func(t *testing.T) {
		t.Parallel()
		var got error
		after := async.Async(context.Background(), 0, func(ctx context.Context, n int) (int, error) {
			panic(errors.New("boom"))
		}).Then(func(_ int, err error) {
			got = err
		})

		if _, err := after.AwaitWithTimeout(time.Second); !errors.Is(err, async.ErrPanic) {
			t.Fatalf("Expected ErrPanic from chained future, got %v", err)
		}
		if !errors.Is(got, async.ErrPanic) {
			t.Errorf("Callback should receive ErrPanic, got %v", got)
		}
	})

	t.Run("panicking callback completes chained future", func(t *testing.T) {
		t.Parallel()
		after := async.Async(context.Background(), 1, func(ctx context.Context, n int) (int, error) {
			return n, nil
		}).Then(func(int, error) {
			panic("callback failed")
		})

		res, err := after.AwaitWithTimeout(time.Second)
		if !errors.Is(err, async.ErrPanic) {
			t.Fatalf("Expected ErrPanic, got %v", err)
		}
		if res != 1 {
			t.Errorf("Expected original result 1, got %d", res)
		}
	})
}
