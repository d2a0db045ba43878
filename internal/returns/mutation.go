package returns

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/domain"
	"github.com/TemirB/orders-admin/internal/observability"
	"github.com/TemirB/orders-admin/internal/querykey"
)

//go:generate mockgen -source mutation.go -destination=mutation_mock_test.go -package=returns

// Invalidator marks cache key groups stale. The local query cache and the
// kafka broadcaster both satisfy it.
type Invalidator interface {
	Invalidate(ctx context.Context, key querykey.Key, opts cache.InvalidateOptions) int
}

// Recorder keeps an audit trail of mutation outcomes.
type Recorder interface {
	Record(ctx context.Context, entry domain.JournalEntry)
}

type noopRecorder struct{}

func (noopRecorder) Record(context.Context, domain.JournalEntry) {}

// Options are hook-level callbacks. OnMutate runs before the remote call and
// its result is passed to the other callbacks as the mutation context.
type Options[V, R any] struct {
	OnMutate  func(ctx context.Context, vars V) (any, error)
	OnSuccess func(ctx context.Context, result R, vars V, mctx any)
	OnError   func(ctx context.Context, err error, vars V, mctx any)
}

// CallOptions are per-call callbacks; they run after the hook-level ones.
type CallOptions[V, R any] struct {
	OnSuccess func(ctx context.Context, result R, vars V, mctx any)
	OnError   func(ctx context.Context, err error, vars V, mctx any)
}

type target struct {
	returnID  string
	orderID   string
	paymentID string
}

// Mutation binds one remote command to its invalidation set.
type Mutation[V, R any] struct {
	command Command
	target  target
	fn      func(ctx context.Context, vars V) (R, error)
	opts    Options[V, R]
	deps    *deps
	pending atomic.Int32
}

// IsPending reports whether a call is in flight.
func (m *Mutation[V, R]) IsPending() bool { return m.pending.Load() > 0 }

func (m *Mutation[V, R]) Command() Command { return m.command }

func (m *Mutation[V, R]) Mutate(ctx context.Context, vars V) (R, error) {
	return m.MutateWith(ctx, vars, CallOptions[V, R]{})
}

// MutateWith runs the command once. On success it invalidates the command's
// key groups and then runs the hook and per-call OnSuccess callbacks with
// the unchanged result, variables and mutation context. Errors are returned
// unchanged; nothing is invalidated and nothing is retried. Once issued the
// command is not cancelled by ctx.
func (m *Mutation[V, R]) MutateWith(ctx context.Context, vars V, call CallOptions[V, R]) (R, error) {
	m.pending.Add(1)
	defer m.pending.Add(-1)

	ctx, span := m.deps.tracer.Start(ctx, "mutation "+string(m.command))
	defer span.End()
	span.SetAttributes(
		attribute.String("command", string(m.command)),
		attribute.String("order_id", m.target.orderID),
	)

	start := time.Now()
	var zero R

	var mctx any
	if m.opts.OnMutate != nil {
		var err error
		if mctx, err = m.opts.OnMutate(ctx, vars); err != nil {
			m.fail(ctx, start, err, vars, mctx, call)
			return zero, err
		}
	}

	result, err := m.fn(context.WithoutCancel(ctx), vars)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		m.fail(ctx, start, err, vars, mctx, call)
		return zero, err
	}

	bg := context.WithoutCancel(ctx)
	for _, inv := range Invalidations(m.command, m.target.orderID) {
		m.deps.invalidator.Invalidate(bg, inv.Key, cache.InvalidateOptions{Refetch: inv.Refetch})
	}

	if m.opts.OnSuccess != nil {
		m.opts.OnSuccess(ctx, result, vars, mctx)
	}
	if call.OnSuccess != nil {
		call.OnSuccess(ctx, result, vars, mctx)
	}

	m.finish(bg, start, nil)
	return result, nil
}

func (m *Mutation[V, R]) fail(ctx context.Context, start time.Time, err error, vars V, mctx any, call CallOptions[V, R]) {
	if m.opts.OnError != nil {
		m.opts.OnError(ctx, err, vars, mctx)
	}
	if call.OnError != nil {
		call.OnError(ctx, err, vars, mctx)
	}
	m.finish(context.WithoutCancel(ctx), start, err)
}

func (m *Mutation[V, R]) finish(ctx context.Context, start time.Time, err error) {
	dur := time.Since(start)
	durMs := float64(dur.Microseconds()) / 1000.0
	m.deps.metrics.ObserveMutation(string(m.command), err == nil, durMs)

	entry := domain.JournalEntry{
		ID:         uuid.New(),
		Command:    string(m.command),
		ReturnID:   m.target.returnID,
		OrderID:    m.target.orderID,
		PaymentID:  m.target.paymentID,
		OK:         err == nil,
		DurationMs: durMs,
		At:         start.UTC(),
	}
	if err != nil {
		entry.Message = err.Error()
		m.deps.logger.Warn("mutation failed",
			zap.String("command", string(m.command)),
			zap.String("return_id", m.target.returnID),
			zap.String("order_id", m.target.orderID),
			zap.Error(err),
		)
	} else {
		m.deps.logger.Info("mutation applied",
			zap.String("command", string(m.command)),
			zap.String("return_id", m.target.returnID),
			zap.String("order_id", m.target.orderID),
			zap.Float64("duration_ms", durMs),
		)
	}
	m.deps.recorder.Record(ctx, entry)
}

type deps struct {
	invalidator Invalidator
	recorder    Recorder
	metrics     observability.Metrics
	logger      *zap.Logger
	tracer      trace.Tracer
}
