package broadcast

import (
	"context"
	"sync"
)

// Option configures a MemoryBroadcaster.
type Option func(*memoryConfig)

type memoryConfig struct {
	replayLast bool
	dropOldest bool
}

// WithReplayLast makes new subscribers receive the most recent message
// immediately after subscribing.
func WithReplayLast() Option {
	return func(c *memoryConfig) {
		c.replayLast = true
	}
}

// WithDropOldest keeps slow subscribers connected. When a subscriber's
// buffer is full, its oldest pending message is discarded to make room for
// the new one, so the subscriber always ends up holding the latest messages.
// Gaps are visible through Message.Seq.
func WithDropOldest() Option {
	return func(c *memoryConfig) {
		c.dropOldest = true
	}
}

// MemoryBroadcaster never blocks the broadcast operation on slow consumers. By default
// a full subscriber is dropped; WithDropOldest evicts its oldest message instead.
// All methods are safe for concurrent use.
type MemoryBroadcaster[T any] struct {
	subscribers map[*subscriber[T]]struct{}
	bufferSize  int
	replayLast  bool
	dropOldest  bool
	seq         uint64
	last        *Message[T]
	closed      bool
	done        chan struct{}
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup // tracks cleanup goroutines
}

// NewMemoryBroadcaster creates a new in-memory broadcaster.
// The bufferSize parameter determines the channel buffer size for each subscriber.
// A minimum buffer size of 1 is enforced. When a subscriber's buffer is full,
// the subscriber is dropped rather than blocking the broadcast.
func NewMemoryBroadcaster[T any](bufferSize int, opts ...Option) *MemoryBroadcaster[T] {
	cfg := &memoryConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return &MemoryBroadcaster[T]{
		subscribers: make(map[*subscriber[T]]struct{}),
		// Zero-buffer channels would make every send blocking
		bufferSize: max(bufferSize, 1),
		replayLast: cfg.replayLast,
		dropOldest: cfg.dropOldest,
		done:       make(chan struct{}),
	}
}

// Subscribe creates a new subscriber that will receive all broadcast messages.
// The subscription is automatically cleaned up when the provided context is cancelled.
// If the broadcaster is already closed, returns a closed subscriber.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	sub := newSubscriber[T](b.bufferSize)
	if b.closed {
		_ = sub.Close()
		return sub
	}

	b.subscribers[sub] = struct{}{}
	if b.replayLast && b.last != nil {
		sub.send(*b.last)
	}

	if ctx.Done() != nil {
		b.cleanupWg.Add(1)
		go func() {
			defer b.cleanupWg.Done()
			select {
			case <-ctx.Done():
				b.unsubscribe(sub)
			case <-b.done:
			}
		}()
	}

	return sub
}

// Broadcast sends data to all active subscribers.
// Sends never block: a subscriber whose buffer is full misses the message
// and is removed, unless WithDropOldest is set. Returns the sequence number of the published message.
func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, data T) (uint64, error) {
	// Write lock: seq and last are updated together with the fan-out so that
	// subscribers observe messages in sequence order.
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return 0, ErrClosed
	}

	b.seq++
	msg := Message[T]{Seq: b.seq, Data: data}
	b.last = &msg

	for sub := range b.subscribers {
		if b.dropOldest {
			sub.sendLatest(msg)
			continue
		}
		if !sub.send(msg) {
			delete(b.subscribers, sub)
			_ = sub.Close()
		}
	}

	return msg.Seq, nil
}

// Subscribers returns the number of active subscribers.
func (b *MemoryBroadcaster[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close shuts down the broadcaster and closes all subscribers.
// It is safe to call Close multiple times.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()

	if b.closed {
		b.mu.Unlock()
		return nil
	}

	b.closed = true
	close(b.done)

	for sub := range b.subscribers {
		_ = sub.Close()
	}

	clear(b.subscribers)
	b.mu.Unlock()

	b.cleanupWg.Wait()

	return nil
}

func (b *MemoryBroadcaster[T]) unsubscribe(sub *subscriber[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.subscribers, sub)
	_ = sub.Close()
}
