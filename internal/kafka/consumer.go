package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/observability"
	"github.com/TemirB/orders-admin/internal/pkg/pool"
)

type MessageHandler interface {
	Handle(ctx context.Context, msg kafkago.Message) error
}

type Reader interface {
	Config() kafkago.ReaderConfig
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Consumer struct {
	handler MessageHandler
	reader  Reader
	zlogger *zap.Logger
	metrics observability.Metrics

	workerPoolSize int
	idleBackoff    time.Duration
	errBackoff     time.Duration
}

func NewConsumer(handler MessageHandler, reader Reader, workers int, metrics observability.Metrics, logger *zap.Logger) *Consumer {
	if workers < 1 {
		workers = 4
	}
	if metrics == nil {
		metrics = observability.NewNoop()
	}
	return &Consumer{
		handler:        handler,
		reader:         reader,
		zlogger:        logger,
		metrics:        metrics,
		workerPoolSize: workers,
		idleBackoff:    10 * time.Second,
		errBackoff:     200 * time.Millisecond,
	}
}

// Start fetches until ctx is done. Each message is handed to a worker and the
// loop waits for its result before committing, so offsets are committed in
// fetch order. The reader does not redeliver an uncommitted message, so a
// failed message is handled again, with backoff, until it succeeds or ctx
// ends. Malformed messages are committed and dropped.
func (c *Consumer) Start(ctx context.Context) {
	rc := c.reader.Config()
	c.zlogger.Info("Starting Kafka consumer",
		zap.Strings("brokers", rc.Brokers),
		zap.String("group", rc.GroupID),
		zap.String("topic", rc.Topic),
		zap.Int("workers", c.workerPoolSize),
	)

	workers := pool.New(c.workerPoolSize)
	defer func() {
		workers.Close()
		workers.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return
			}
			if isBenignFetchTimeout(err) {
				c.zlogger.Debug("fetch timeout (idle), backing off", zap.Error(err))
				sleepWithContext(ctx, c.idleBackoff)
				continue
			}
			c.zlogger.Warn("FetchMessage error, backing off", zap.Error(err))
			sleepWithContext(ctx, c.errBackoff)
			continue
		}

		procErr := c.dispatch(ctx, workers, msg)
		for procErr != nil && !errors.Is(procErr, ErrMalformed) && ctx.Err() == nil {
			c.zlogger.Error("handler failed; retrying message", zap.Error(procErr),
				zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
			sleepWithContext(ctx, c.errBackoff)
			procErr = c.dispatch(ctx, workers, msg)
		}
		if ctx.Err() != nil {
			return
		}

		if procErr != nil {
			c.zlogger.Warn("dropping malformed message", zap.Error(procErr),
				zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			c.zlogger.Warn(
				"commit failed",
				zap.Error(err),
				zap.String("topic", msg.Topic),
				zap.Int("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			sleepWithContext(ctx, c.errBackoff)
			continue
		}
		c.zlogger.Debug("message committed",
			zap.String("topic", msg.Topic), zap.Int("partition", msg.Partition), zap.Int64("offset", msg.Offset))
	}
}

// dispatch runs msg on a worker and waits for its result.
func (c *Consumer) dispatch(ctx context.Context, workers *pool.Pool, msg kafkago.Message) error {
	done := make(chan error, 1)
	if err := workers.Submit(ctx, func() { done <- c.handle(ctx, msg) }); err != nil {
		return err
	}
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Consumer) handle(ctx context.Context, msg kafkago.Message) (err error) {
	start := time.Now()
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("handler panic: %v", v)
		}
		elapsed := time.Since(start)
		c.metrics.ObserveKafka(float64(elapsed.Microseconds())/1000.0, err == nil)
		if err != nil {
			return
		}
		c.zlogger.Debug("message handled",
			zap.String("topic", msg.Topic),
			zap.Int("partition", msg.Partition),
			zap.Int64("offset", msg.Offset),
			zap.Int("value_bytes", len(msg.Value)),
			zap.Duration("elapsed", elapsed),
		)
	}()
	return c.handler.Handle(ctx, msg)
}

func sleepWithContext(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

func isBenignFetchTimeout(err error) bool {
	s := err.Error()
	return strings.Contains(s, "Request Timed Out") ||
		strings.Contains(s, "no messages received from kafka within the allocated time")
}
