package registration

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formflow/pkg/async"
	"github.com/dmitrymomot/formflow/pkg/broadcast"
	"github.com/dmitrymomot/formflow/pkg/logger"
	"github.com/dmitrymomot/formflow/pkg/transform"
)

// Coordinator owns one form session. All methods are safe for concurrent use.
type Coordinator struct {
	sessionID  uuid.UUID
	submitter  Submitter
	delay      time.Duration
	bufferSize int
	logger     *slog.Logger

	dispatcher *transform.Dispatcher[State]

	mu       sync.Mutex
	idle     *sync.Cond // signalled when inflight drops to zero
	inflight int
	closed   bool
}

// New creates a form session in the Updating state with empty data.
// A nil submitter accepts every form.
func New(submitter Submitter, opts ...Option) *Coordinator {
	if submitter == nil {
		submitter = AlwaysSucceed()
	}
	c := &Coordinator{
		sessionID:  uuid.New(),
		submitter:  submitter,
		delay:      DefaultConfig().SubmitDelay,
		bufferSize: DefaultConfig().SnapshotBuffer,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.idle = sync.NewCond(&c.mu)

	c.logger = c.logger.With(
		logger.Component("registration"),
		logger.SessionID(c.sessionID),
	)
	c.dispatcher = transform.NewDispatcher(NewState(),
		transform.WithLogger[State](c.logger),
		transform.WithEqual(State.Equal),
		transform.WithBufferSize[State](c.bufferSize),
	)
	return c
}

// SessionID identifies the form session in logs.
func (c *Coordinator) SessionID() uuid.UUID {
	return c.sessionID
}

// Snapshot returns a private copy of the current state.
func (c *Coordinator) Snapshot() State {
	snap, err := c.dispatcher.State().Clone()
	if err != nil {
		c.logger.Error("snapshot copy failed", logger.Error(err))
	}
	return snap
}

// Subscribe returns the stream of states. The current state is delivered
// first, then every state produced by an applied transform.
func (c *Coordinator) Subscribe(ctx context.Context) broadcast.Subscriber[State] {
	return c.dispatcher.Subscribe(ctx)
}

// UpdateField stores value in field. Allowed only while Updating.
func (c *Coordinator) UpdateField(ctx context.Context, field Field, value any) transform.Outcome[State] {
	return c.dispatch(ctx, OpUpdateField, UpdateField(field, value), logger.Field(string(field)))
}

// ValidateField re-validates one field. Allowed only while Updating.
func (c *Coordinator) ValidateField(ctx context.Context, field Field) transform.Outcome[State] {
	return c.dispatch(ctx, OpValidateField, ValidateField(field), logger.Field(string(field)))
}

// SubmitFormData validates the form and, if it is valid, moves to
// Submitting and starts the submission. The submission is not tied to
// ctx's cancellation; it always resolves. After Close it is rejected
// with ErrClosed.
func (c *Coordinator) SubmitFormData(ctx context.Context) transform.Outcome[State] {
	if !c.acquire() {
		c.logger.WarnContext(ctx, "submission refused", logger.Error(ErrClosed))
		return transform.Rejected(c.dispatcher.State(), ErrClosed)
	}

	out := c.dispatch(ctx, OpSubmitFormData, Submit)
	if out.IsApplied() && out.State.Lifecycle == Submitting {
		c.startSubmission(ctx, out.State.Data)
		return out
	}
	c.release()
	return out
}

// Wait blocks until every submission started so far has been resolved and
// its result applied.
func (c *Coordinator) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.inflight > 0 {
		c.idle.Wait()
	}
}

// Close stops accepting submissions, waits for in-flight ones to be
// applied and ends all subscriptions.
func (c *Coordinator) Close() error {
	c.mu.Lock()
	c.closed = true
	c.mu.Unlock()

	c.Wait()
	return c.dispatcher.Close()
}

// acquire reserves an in-flight slot for a submission attempt.
func (c *Coordinator) acquire() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	c.inflight++
	return true
}

func (c *Coordinator) release() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if c.inflight == 0 {
		c.idle.Broadcast()
	}
}

func (c *Coordinator) dispatch(ctx context.Context, op string, t transform.Transform[State], attrs ...slog.Attr) transform.Outcome[State] {
	out := c.dispatcher.Dispatch(ctx, t)
	if out.IsApplied() {
		attrs = append(attrs,
			logger.Operation(op),
			logger.LifecycleState(out.State.Lifecycle.String()),
		)
		c.logger.LogAttrs(ctx, slog.LevelDebug, "form state changed", attrs...)
	}
	return out
}

// startSubmission runs the submitter in the background. The caller has
// already acquired the in-flight slot; it is released once the resolution
// has been dispatched.
func (c *Coordinator) startSubmission(ctx context.Context, data FormData) {
	started := time.Now()
	detached := context.WithoutCancel(ctx)

	c.logger.InfoContext(ctx, "submission started", logger.Duration(c.delay))

	async.Delayed(detached, c.delay, data, c.submit).Then(func(_ struct{}, err error) {
		defer c.release()

		resolution := transform.Transform[State](SubmissionSucceeded)
		op := OpSubmissionSucceeded
		if err != nil {
			c.logger.WarnContext(detached, "submission failed",
				logger.Error(err),
				logger.Duration(time.Since(started)),
			)
			resolution = SubmissionFailed
			op = OpSubmissionFailed
		} else {
			c.logger.InfoContext(detached, "submission succeeded", logger.Duration(time.Since(started)))
		}
		c.dispatch(detached, op, resolution)
	})
}

func (c *Coordinator) submit(ctx context.Context, data FormData) (struct{}, error) {
	return struct{}{}, c.submitter.Submit(ctx, data)
}
