package returns

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/config"
	"github.com/TemirB/orders-admin/internal/domain"
	"github.com/TemirB/orders-admin/internal/querykey"
)

type seededCache struct {
	cache   *cache.Cache
	fetches map[string]*atomic.Int32
}

var (
	orderDetail   = querykey.Orders.Detail("order_1", nil)
	orderList     = querykey.Orders.List(querykey.Filters{"limit": {"20"}})
	ownPreview    = querykey.Orders.Preview("order_1")
	otherPreview  = querykey.Orders.Preview("order_2")
	returnDetail  = querykey.Returns.Detail("ret_1", nil)
	returnList    = querykey.Returns.List(nil)
	paymentDetail = querykey.Payments.Detail("pay_1", nil)
)

func seedCache(t *testing.T) seededCache {
	t.Helper()
	c, err := cache.New(
		config.Cache{Cap: 64, StaleTime: time.Hour, RefetchWorkers: 2},
		config.Retry{Attempts: 1, Base: time.Millisecond, Max: time.Millisecond},
		nil,
		zap.NewNop(),
	)
	require.NoError(t, err)

	s := seededCache{cache: c, fetches: map[string]*atomic.Int32{}}
	for _, key := range []querykey.Key{orderDetail, orderList, ownPreview, otherPreview, returnDetail, returnList, paymentDetail} {
		n := &atomic.Int32{}
		s.fetches[key.String()] = n
		_, _, err := c.Fetch(context.Background(), key, func(context.Context) (any, error) {
			n.Add(1)
			return "value", nil
		})
		require.NoError(t, err)
	}
	return s
}

func (s seededCache) invalidated(key querykey.Key) bool { return s.cache.State(key).Invalidated }

func (s seededCache) fetched(key querykey.Key) int32 { return s.fetches[key.String()].Load() }

func TestConfirmReturnRequestMarksCacheStale(t *testing.T) {
	s := seedCache(t)
	h := NewHooks(&fakeClient{}, s.cache, nil, nil, zap.NewNop())

	_, err := h.ConfirmReturnRequest("ret_1", "order_1", Options[domain.ConfirmReturnRequest, domain.ReturnResponse]{}).
		Mutate(context.Background(), domain.ConfirmReturnRequest{})
	require.NoError(t, err)

	testCases := []struct {
		name        string
		key         querykey.Key
		invalidated bool
	}{
		{name: "order detail", key: orderDetail, invalidated: true},
		{name: "order list", key: orderList, invalidated: true},
		{name: "own preview", key: ownPreview, invalidated: true},
		{name: "return detail", key: returnDetail, invalidated: true},
		{name: "return list", key: returnList, invalidated: true},
		{name: "other order preview", key: otherPreview},
		{name: "payment detail", key: paymentDetail},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.invalidated, s.invalidated(tc.key))
			require.Equal(t, int32(1), s.fetched(tc.key))
		})
	}
}

func TestCancelReturnRequestRefetchesPreview(t *testing.T) {
	s := seedCache(t)
	h := NewHooks(&fakeClient{}, s.cache, nil, nil, zap.NewNop())

	_, err := h.CancelReturnRequest("ret_1", "order_1", Options[NoVars, domain.ReturnResponse]{}).
		Mutate(context.Background(), NoVars{})
	require.NoError(t, err)

	// The preview was fetched again before Mutate returned and is fresh.
	require.Equal(t, int32(2), s.fetched(ownPreview))
	require.False(t, s.invalidated(ownPreview))

	for _, key := range []querykey.Key{orderDetail, orderList, returnDetail, returnList} {
		require.True(t, s.invalidated(key), key.String())
		require.Equal(t, int32(1), s.fetched(key), key.String())
	}
	require.False(t, s.invalidated(otherPreview))
	require.False(t, s.invalidated(paymentDetail))
	require.Equal(t, int32(1), s.fetched(otherPreview))
}

func TestFailedCommandLeavesCacheFresh(t *testing.T) {
	s := seedCache(t)
	h := NewHooks(&fakeClient{err: context.DeadlineExceeded}, s.cache, nil, nil, zap.NewNop())

	_, err := h.CancelReturnRequest("ret_1", "order_1", Options[NoVars, domain.ReturnResponse]{}).
		Mutate(context.Background(), NoVars{})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	for key := range s.fetches {
		require.False(t, s.invalidated(querykey.Parse(key)), key)
	}
	require.Equal(t, int32(1), s.fetched(ownPreview))
}
