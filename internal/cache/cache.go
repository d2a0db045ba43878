// Package cache is a process-local query cache for admin reads.
//
// Entries are addressed by hierarchical querykey.Key values. Invalidation
// works on key prefixes and bumps a per-entry generation; data fetched for an
// older generation is still stored but stays stale. Concurrent fetches of the
// same key and generation share one remote call.
package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/TemirB/orders-admin/internal/config"
	"github.com/TemirB/orders-admin/internal/observability"
	"github.com/TemirB/orders-admin/internal/pkg/pool"
	"github.com/TemirB/orders-admin/internal/pkg/retry"
	"github.com/TemirB/orders-admin/internal/querykey"
)

// Fetcher loads the value for one key from the remote side. Errors wrapped
// with retry.Permanent are not retried.
type Fetcher func(ctx context.Context) (any, error)

type RefetchType int

const (
	// RefetchActive marks entries stale; the next read refetches them.
	RefetchActive RefetchType = iota
	// RefetchAll refetches every matched entry before Invalidate returns.
	RefetchAll
)

func (r RefetchType) String() string {
	if r == RefetchAll {
		return "all"
	}
	return "active"
}

// ParseRefetchType reverses String. Unknown values fall back to
// RefetchActive and report false.
func ParseRefetchType(s string) (RefetchType, bool) {
	switch s {
	case "all":
		return RefetchAll, true
	case "active", "":
		return RefetchActive, true
	}
	return RefetchActive, false
}

type InvalidateOptions struct {
	Refetch RefetchType
}

type entry struct {
	key       querykey.Key
	value     any
	hasData   bool
	updatedAt time.Time
	// generation is bumped on every invalidation; dataGen is the generation
	// the stored value was fetched under.
	generation uint64
	dataGen    uint64
	fetch      Fetcher
}

func (e *entry) invalidated() bool { return e.dataGen < e.generation }

// EntryState is a snapshot of one entry's flags.
type EntryState struct {
	Exists      bool
	HasData     bool
	Invalidated bool
	Stale       bool
	UpdatedAt   time.Time
	Generation  uint64
}

type Cache struct {
	mu        sync.Mutex
	lru       *lru.Cache[string, *entry]
	group     singleflight.Group
	staleTime time.Duration
	workers   int
	retry     config.Retry
	metrics   observability.Metrics
	logger    *zap.Logger
	now       func() time.Time
}

func New(cfg config.Cache, retryPolicy config.Retry, metrics observability.Metrics, logger *zap.Logger) (*Cache, error) {
	l, err := lru.New[string, *entry](cfg.Cap)
	if err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = observability.Noop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if retryPolicy.Attempts < 1 {
		retryPolicy.Attempts = 1
	}
	return &Cache{
		lru:       l,
		staleTime: cfg.StaleTime,
		workers:   cfg.RefetchWorkers,
		retry:     retryPolicy,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// Fetch returns the cached value for key when it is fresh and otherwise calls
// fetch, stores the result and returns it. hit reports a fresh cache read.
func (c *Cache) Fetch(ctx context.Context, key querykey.Key, fetch Fetcher) (value any, hit bool, err error) {
	k := key.String()

	c.mu.Lock()
	e, ok := c.lru.Get(k)
	if ok && c.fresh(e) {
		v := e.value
		c.mu.Unlock()
		c.metrics.IncCacheHit()
		return v, true, nil
	}
	if !ok {
		e = &entry{key: key}
		c.lru.Add(k, e)
	}
	e.fetch = fetch
	gen := e.generation
	c.mu.Unlock()

	c.metrics.IncCacheMiss()
	value, err = c.load(ctx, key, gen, fetch)
	return value, false, err
}

// Get is Fetch with a typed result.
func Get[T any](ctx context.Context, c *Cache, key querykey.Key, fetch func(ctx context.Context) (T, error)) (T, bool, error) {
	v, hit, err := c.Fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	t, _ := v.(T)
	return t, hit, nil
}

// load shares one remote call per key and generation. A fetch started after
// an invalidation never joins one started before it.
func (c *Cache) load(ctx context.Context, key querykey.Key, gen uint64, fetch Fetcher) (any, error) {
	flight := key.String() + "#" + strconv.FormatUint(gen, 10)

	v, err, _ := c.group.Do(flight, func() (any, error) {
		fctx := context.WithoutCancel(ctx)
		var value any
		err := retry.Do(fctx, c.retry, func() error {
			var err error
			value, err = fetch(fctx)
			return err
		})
		if err != nil {
			return nil, err
		}
		c.store(key, gen, value)
		return value, nil
	})
	return v, err
}

func (c *Cache) store(key querykey.Key, gen uint64, value any) {
	k := key.String()

	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Peek(k)
	if !ok {
		e = &entry{key: key, generation: gen}
		c.lru.Add(k, e)
	}
	if e.hasData && gen < e.dataGen {
		return
	}
	e.value = value
	e.hasData = true
	e.dataGen = gen
	e.updatedAt = c.now()
}

// Set stores value as fresh data for key.
func (c *Cache) Set(key querykey.Key, value any) {
	c.mu.Lock()
	e, ok := c.lru.Peek(key.String())
	gen := uint64(0)
	if ok {
		gen = e.generation
	}
	c.mu.Unlock()
	c.store(key, gen, value)
}

type target struct {
	key   querykey.Key
	gen   uint64
	fetch Fetcher
}

// Invalidate marks every entry whose key starts with prefix as stale and
// returns the number of matched entries. With RefetchAll the matched entries
// are refetched before it returns; refetch failures are logged and leave the
// entry stale.
func (c *Cache) Invalidate(ctx context.Context, prefix querykey.Key, opts InvalidateOptions) int {
	var targets []target

	c.mu.Lock()
	for _, k := range c.lru.Keys() {
		e, ok := c.lru.Peek(k)
		if !ok || !e.key.HasPrefix(prefix) {
			continue
		}
		e.generation++
		targets = append(targets, target{key: e.key, gen: e.generation, fetch: e.fetch})
	}
	c.mu.Unlock()

	resource := ""
	if len(prefix) > 0 {
		resource = prefix[0]
	}
	c.metrics.ObserveInvalidation(resource, opts.Refetch == RefetchAll, len(targets))

	if opts.Refetch == RefetchAll && len(targets) > 0 {
		c.refetch(ctx, targets)
	}
	return len(targets)
}

func (c *Cache) refetch(ctx context.Context, targets []target) {
	n := c.workers
	if n > len(targets) {
		n = len(targets)
	}
	p := pool.New(n, pool.WithPanicHandler(func(v any) {
		c.logger.Error("forced refetch panicked", zap.Any("panic", v))
	}))
	for _, t := range targets {
		if t.fetch == nil {
			continue
		}
		t := t
		err := p.Submit(ctx, func() {
			if _, err := c.load(ctx, t.key, t.gen, t.fetch); err != nil {
				c.logger.Warn("forced refetch failed",
					zap.Strings("key", []string(t.key)),
					zap.Error(err),
				)
			}
		})
		if err != nil {
			break
		}
	}
	p.Close()
	p.Wait()
}

func (c *Cache) State(key querykey.Key) EntryState {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.lru.Peek(key.String())
	if !ok {
		return EntryState{}
	}
	return EntryState{
		Exists:      true,
		HasData:     e.hasData,
		Invalidated: e.invalidated(),
		Stale:       !c.fresh(e),
		UpdatedAt:   e.updatedAt,
		Generation:  e.generation,
	}
}

func (c *Cache) Len() int { return c.lru.Len() }

func (c *Cache) fresh(e *entry) bool {
	return e.hasData && !e.invalidated() && c.now().Sub(e.updatedAt) < c.staleTime
}
