package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/commerce"
	"github.com/TemirB/orders-admin/internal/domain"
	"github.com/TemirB/orders-admin/internal/observability"
	"github.com/TemirB/orders-admin/internal/pkg/retry"
	"github.com/TemirB/orders-admin/internal/querykey"
	"github.com/TemirB/orders-admin/internal/returns"
)

//go:generate mockgen -source service.go -destination=service_mock_test.go -package=service

// Reader is the read side of the commerce API.
type Reader interface {
	ListOrders(ctx context.Context, query url.Values) (domain.OrderList, error)
	GetOrder(ctx context.Context, id string, query url.Values) (domain.Order, error)
	GetOrderPreview(ctx context.Context, id string) (domain.OrderPreview, error)
	GetPayment(ctx context.Context, id string) (domain.Payment, error)
	ListReturns(ctx context.Context, query url.Values) (domain.ReturnList, error)
	GetReturn(ctx context.Context, id string, query url.Values) (domain.Return, error)
}

type Cache interface {
	Fetch(ctx context.Context, key querykey.Key, fetch cache.Fetcher) (any, bool, error)
}

type Service struct {
	reader  Reader
	cache   Cache
	hooks   *returns.Hooks
	logger  *zap.Logger
	metrics observability.Metrics
}

func NewService(reader Reader, cache Cache, hooks *returns.Hooks, logger *zap.Logger, metrics observability.Metrics) *Service {
	return &Service{
		reader:  reader,
		cache:   cache,
		hooks:   hooks,
		logger:  logger,
		metrics: metrics,
	}
}

// Hooks exposes the mutation hooks for single commands.
func (s *Service) Hooks() *returns.Hooks { return s.hooks }

func (s *Service) OrderPreview(ctx context.Context, orderID string) (domain.OrderPreview, LookupStats, error) {
	return lookup(ctx, s, querykey.Orders.Preview(orderID), func(ctx context.Context) (domain.OrderPreview, error) {
		return s.reader.GetOrderPreview(ctx, orderID)
	})
}

func (s *Service) Order(ctx context.Context, id string, query url.Values) (domain.Order, LookupStats, error) {
	key := querykey.Orders.Detail(id, querykey.FiltersFromQuery(query))
	return lookup(ctx, s, key, func(ctx context.Context) (domain.Order, error) {
		return s.reader.GetOrder(ctx, id, query)
	})
}

func (s *Service) Orders(ctx context.Context, query url.Values) (domain.OrderList, LookupStats, error) {
	key := querykey.Orders.List(querykey.FiltersFromQuery(query))
	return lookup(ctx, s, key, func(ctx context.Context) (domain.OrderList, error) {
		return s.reader.ListOrders(ctx, query)
	})
}

func (s *Service) Return(ctx context.Context, id string, query url.Values) (domain.Return, LookupStats, error) {
	key := querykey.Returns.Detail(id, querykey.FiltersFromQuery(query))
	return lookup(ctx, s, key, func(ctx context.Context) (domain.Return, error) {
		return s.reader.GetReturn(ctx, id, query)
	})
}

func (s *Service) Returns(ctx context.Context, query url.Values) (domain.ReturnList, LookupStats, error) {
	key := querykey.Returns.List(querykey.FiltersFromQuery(query))
	return lookup(ctx, s, key, func(ctx context.Context) (domain.ReturnList, error) {
		return s.reader.ListReturns(ctx, query)
	})
}

func (s *Service) Payment(ctx context.Context, id string) (domain.Payment, LookupStats, error) {
	return lookup(ctx, s, querykey.Payments.Detail(id, nil), func(ctx context.Context) (domain.Payment, error) {
		return s.reader.GetPayment(ctx, id)
	})
}

// OrderIDForReturn resolves the order a return belongs to.
func (s *Service) OrderIDForReturn(ctx context.Context, returnID string) (string, error) {
	ret, _, err := s.Return(ctx, returnID, nil)
	if err != nil {
		return "", err
	}
	return ret.OrderID, nil
}

func lookup[T any](ctx context.Context, s *Service, key querykey.Key, fetch func(ctx context.Context) (T, error)) (T, LookupStats, error) {
	var (
		st   LookupStats
		zero T
	)

	t0 := time.Now()
	v, hit, err := s.cache.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		res, err := fetch(ctx)
		if err != nil {
			return nil, permanent(err)
		}
		return res, nil
	})
	elapsed := convertToMs(t0)

	if err != nil {
		s.logger.Error("Lookup failed",
			zap.Strings("key", []string(key)),
			zap.Float64("elapsed_ms", elapsed),
			zap.Error(err),
		)
		return zero, st, err
	}

	res, ok := v.(T)
	if !ok {
		return zero, st, fmt.Errorf("cache entry %v holds %T", []string(key), v)
	}

	if hit {
		st.Source = SourceCache
		st.CacheMs = elapsed
		s.metrics.ObserveLookup(string(st.Source), st.CacheMs, 0)
		s.logger.Debug("Fetched from cache",
			zap.Strings("key", []string(key)),
			zap.Float64("cache_ms", st.CacheMs),
		)
		return res, st, nil
	}

	st.Source = SourceRemote
	st.RemoteMs = elapsed
	s.metrics.ObserveLookup(string(st.Source), 0, st.RemoteMs)
	s.logger.Info("Fetched from commerce api",
		zap.Strings("key", []string(key)),
		zap.Float64("remote_ms", st.RemoteMs),
	)
	return res, st, nil
}

// permanent stops query retries on answers a retry cannot change.
func permanent(err error) error {
	var apiErr *commerce.APIError
	if errors.As(err, &apiErr) && apiErr.ClientError() {
		return retry.Permanent(err)
	}
	if errors.Is(err, commerce.ErrUnavailable) {
		return retry.Permanent(err)
	}
	return err
}
