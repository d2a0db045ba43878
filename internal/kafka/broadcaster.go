package kafka

import (
	"context"
	"encoding/json"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/querykey"
)

//go:generate mockgen -source broadcaster.go -destination=broadcaster_mock_test.go -package=kafka

type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
}

type Invalidator interface {
	Invalidate(ctx context.Context, key querykey.Key, opts cache.InvalidateOptions) int
}

// Broadcaster invalidates the local cache and then tells the other
// instances to do the same. Publish failures are logged; the local
// invalidation has already happened.
type Broadcaster struct {
	local  Invalidator
	writer Writer
	origin string
	logger *zap.Logger
	now    func() time.Time
}

func NewBroadcaster(local Invalidator, writer Writer, origin string, logger *zap.Logger) *Broadcaster {
	return &Broadcaster{
		local:  local,
		writer: writer,
		origin: origin,
		logger: logger,
		now:    time.Now,
	}
}

func (b *Broadcaster) Invalidate(ctx context.Context, key querykey.Key, opts cache.InvalidateOptions) int {
	n := b.local.Invalidate(ctx, key, opts)
	if err := b.Publish(ctx, key, opts); err != nil {
		b.logger.Warn("invalidation broadcast failed",
			zap.Strings("key", []string(key)),
			zap.Stringer("refetch", opts.Refetch),
			zap.Error(err),
		)
	}
	return n
}

// Publish sends an event without touching the local cache. Messages are keyed
// by resource so events for one resource keep their order.
func (b *Broadcaster) Publish(ctx context.Context, key querykey.Key, opts cache.InvalidateOptions) error {
	ev := NewEvent(b.origin, key, opts, b.now())
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	var resource string
	if len(key) > 0 {
		resource = key[0]
	}
	return b.writer.WriteMessages(ctx, kafkago.Message{
		Key:   []byte(resource),
		Value: value,
		Time:  ev.At,
	})
}
