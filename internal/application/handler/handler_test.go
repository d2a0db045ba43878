package handler

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/kafka"
	"github.com/TemirB/orders-admin/internal/querykey"
)

func TestHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	l := zap.NewNop()
	preview := querykey.Orders.Preview("order_1")
	at := time.Unix(1700000000, 0)

	encode := func(v any) kafkago.Message {
		b, _ := json.Marshal(v)
		return kafkago.Message{Value: b}
	}

	testCases := []struct {
		name string

		message    kafkago.Message
		setupMocks func() *Handler
		wantErr    error
	}{
		{
			name: "Success",

			message: encode(kafka.NewEvent("instance-b", preview, cache.InvalidateOptions{Refetch: cache.RefetchAll}, at)),
			setupMocks: func() *Handler {
				inv := NewMockInvalidator(ctrl)
				inv.EXPECT().Invalidate(ctx, preview, cache.InvalidateOptions{Refetch: cache.RefetchAll}).Return(1)
				return NewHandler(inv, "instance-a", l)
			},
		},
		{
			name: "Lazy invalidation",

			message: encode(kafka.NewEvent("instance-b", querykey.Returns.Lists(), cache.InvalidateOptions{}, at)),
			setupMocks: func() *Handler {
				inv := NewMockInvalidator(ctrl)
				inv.EXPECT().Invalidate(ctx, querykey.Returns.Lists(), cache.InvalidateOptions{}).Return(0)
				return NewHandler(inv, "instance-a", l)
			},
		},
		{
			name: "Own event is skipped",

			message: encode(kafka.NewEvent("instance-a", preview, cache.InvalidateOptions{}, at)),
			setupMocks: func() *Handler {
				return NewHandler(NewMockInvalidator(ctrl), "instance-a", l)
			},
		},
		{
			name: "Bad json",

			message: kafkago.Message{Value: []byte("{not json")},
			setupMocks: func() *Handler {
				return NewHandler(NewMockInvalidator(ctrl), "instance-a", l)
			},

			wantErr: kafka.ErrMalformed,
		},
		{
			name: "Missing key",

			message: encode(map[string]any{"origin": "instance-b", "refetch": "all"}),
			setupMocks: func() *Handler {
				return NewHandler(NewMockInvalidator(ctrl), "instance-a", l)
			},

			wantErr: kafka.ErrMalformed,
		},
		{
			name: "Unknown refetch type",

			message: encode(map[string]any{"origin": "instance-b", "key": []string{"orders"}, "refetch": "some"}),
			setupMocks: func() *Handler {
				return NewHandler(NewMockInvalidator(ctrl), "instance-a", l)
			},

			wantErr: kafka.ErrMalformed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := tc.setupMocks()
			err := h.Handle(ctx, tc.message)

			if tc.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.Nil(t, err)
			}
		})
	}
}
