package kafka

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/querykey"
)

// ErrMalformed marks a message that can never be applied. The consumer
// commits past it instead of retrying.
var ErrMalformed = errors.New("malformed invalidation event")

// Event asks every instance to invalidate one key prefix.
type Event struct {
	ID      uuid.UUID    `json:"id"`
	Origin  string       `json:"origin"`
	Key     querykey.Key `json:"key"`
	Refetch string       `json:"refetch"`
	At      time.Time    `json:"at"`
}

func NewEvent(origin string, key querykey.Key, opts cache.InvalidateOptions, at time.Time) Event {
	return Event{
		ID:      uuid.New(),
		Origin:  origin,
		Key:     key,
		Refetch: opts.Refetch.String(),
		At:      at.UTC(),
	}
}

func (e Event) Options() cache.InvalidateOptions {
	rt, _ := cache.ParseRefetchType(e.Refetch)
	return cache.InvalidateOptions{Refetch: rt}
}

// DecodeEvent parses and checks a message value.
func DecodeEvent(data []byte) (Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(e.Key) == 0 || e.Key[0] == "" {
		return Event{}, fmt.Errorf("%w: empty key", ErrMalformed)
	}
	if _, ok := cache.ParseRefetchType(e.Refetch); !ok {
		return Event{}, fmt.Errorf("%w: refetch %q", ErrMalformed, e.Refetch)
	}
	return e, nil
}
