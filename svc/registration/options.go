package registration

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger. Guard violations and submission results are logged through it.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSubmitDelay sets how long a submission waits before calling the Submitter.
func WithSubmitDelay(d time.Duration) Option {
	return func(c *Coordinator) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithSnapshotBuffer sets how many snapshots a slow subscriber may fall
// behind before it is dropped.
func WithSnapshotBuffer(size int) Option {
	return func(c *Coordinator) {
		if size > 0 {
			c.bufferSize = size
		}
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id uuid.UUID) Option {
	return func(c *Coordinator) {
		if id != uuid.Nil {
			c.sessionID = id
		}
	}
}

// WithConfig applies the delay and buffer settings of cfg.
func WithConfig(cfg Config) Option {
	return func(c *Coordinator) {
		WithSubmitDelay(cfg.SubmitDelay)(c)
		WithSnapshotBuffer(cfg.SnapshotBuffer)(c)
	}
}
