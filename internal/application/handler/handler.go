package handler

import (
	"context"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/kafka"
	"github.com/TemirB/orders-admin/internal/querykey"
)

//go:generate mockgen -source handler.go -destination=handler_mock_test.go -package=handler

type Invalidator interface {
	Invalidate(ctx context.Context, key querykey.Key, opts cache.InvalidateOptions) int
}

// Handler applies invalidation events from other instances to the local
// cache.
type Handler struct {
	cache  Invalidator
	origin string
	logger *zap.Logger
}

func NewHandler(cache Invalidator, origin string, logger *zap.Logger) *Handler {
	return &Handler{
		cache:  cache,
		origin: origin,
		logger: logger,
	}
}

// Handle is called by the consumer for a single message. Events published by
// this instance were applied when they were sent and are skipped.
func (h *Handler) Handle(ctx context.Context, message kafkago.Message) error {
	ev, err := kafka.DecodeEvent(message.Value)
	if err != nil {
		h.logger.Error("bad invalidation event",
			zap.Error(err),
			zap.Int("partition", message.Partition),
			zap.Int64("offset", message.Offset),
		)
		return err
	}

	if ev.Origin == h.origin {
		h.logger.Debug("skipping own invalidation",
			zap.String("event_id", ev.ID.String()),
			zap.Int64("offset", message.Offset),
		)
		return nil
	}

	opts := ev.Options()
	matched := h.cache.Invalidate(ctx, ev.Key, opts)

	h.logger.Info("applied remote invalidation",
		zap.String("event_id", ev.ID.String()),
		zap.String("origin", ev.Origin),
		zap.Strings("key", []string(ev.Key)),
		zap.Stringer("refetch", opts.Refetch),
		zap.Int("matched", matched),
		zap.Int("partition", message.Partition),
		zap.Int64("offset", message.Offset),
	)
	return nil
}
