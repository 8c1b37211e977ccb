package transform

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/formflow/pkg/broadcast"
	"github.com/dmitrymomot/formflow/pkg/logger"
)

// Option configures a Dispatcher.
type Option[S any] func(*Dispatcher[S])

// WithLogger sets the logger used to report rejected transforms.
func WithLogger[S any](l *slog.Logger) Option[S] {
	return func(d *Dispatcher[S]) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithEqual registers an equality check. An Applied outcome whose state is
// equal to the current one is reported as Unchanged and not published.
func WithEqual[S any](equal func(a, b S) bool) Option[S] {
	return func(d *Dispatcher[S]) {
		d.equal = equal
	}
}

// WithBufferSize sets the per-subscriber buffer of the state feed.
func WithBufferSize[S any](size int) Option[S] {
	return func(d *Dispatcher[S]) {
		if size > 0 {
			d.bufferSize = size
		}
	}
}

// Dispatcher owns a single state cell and applies transforms to it
// sequentially. Every applied transform publishes the new state to
// subscribers.
type Dispatcher[S any] struct {
	mu         sync.Mutex
	state      S
	equal      func(a, b S) bool
	logger     *slog.Logger
	bufferSize int
	feed       *broadcast.MemoryBroadcaster[S]
}

// NewDispatcher creates a dispatcher holding the initial state.
func NewDispatcher[S any](initial S, opts ...Option[S]) *Dispatcher[S] {
	d := &Dispatcher[S]{
		state:      initial,
		logger:     logger.Discard(),
		bufferSize: 16,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.feed = broadcast.NewMemoryBroadcaster[S](d.bufferSize,
		broadcast.WithReplayLast(),
		broadcast.WithDropOldest(),
	)
	// Subscribers always start from the current state.
	_, _ = d.feed.Broadcast(context.Background(), initial)
	return d
}

// State returns the current state.
func (d *Dispatcher[S]) State() S {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Dispatch applies t to the current state and returns its outcome.
// Only Applied outcomes replace the state.
func (d *Dispatcher[S]) Dispatch(ctx context.Context, t Transform[S]) Outcome[S] {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t == nil {
		return d.reject(ctx, Rejected(d.state, ErrNilTransform))
	}

	out := t(ctx, d.state)
	switch out.Status {
	case StatusApplied:
		if d.equal != nil && d.equal(d.state, out.State) {
			return Unchanged(d.state)
		}
		d.state = out.State
		if _, err := d.feed.Broadcast(ctx, out.State); err != nil {
			d.logger.DebugContext(ctx, "state not published", logger.Error(err))
		}
		return out
	case StatusRejected:
		return d.reject(ctx, out)
	default:
		return Unchanged(d.state)
	}
}

func (d *Dispatcher[S]) reject(ctx context.Context, out Outcome[S]) Outcome[S] {
	if out.Reason == nil {
		out.Reason = ErrRejected
	}
	d.logger.WarnContext(ctx, "transform rejected", logger.Error(out.Reason))
	out.State = d.state
	return out
}

// Subscribe returns a feed of states published after each applied
// transform. The current state is delivered first. A subscriber that falls
// more than the buffer size behind loses the oldest states, never the
// newest.
func (d *Dispatcher[S]) Subscribe(ctx context.Context) broadcast.Subscriber[S] {
	return d.feed.Subscribe(ctx)
}

// Close stops the state feed. Dispatch keeps working after Close.
func (d *Dispatcher[S]) Close() error {
	return d.feed.Close()
}
