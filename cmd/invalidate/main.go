// Command invalidate publishes a manual cache invalidation to every admin
// instance listening on the invalidation topic.
//
//	invalidate -resource orders -scope preview -id order_123 -force
//	invalidate -resource returns -scope list -filters 'status=requested'
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/config"
	"github.com/TemirB/orders-admin/internal/kafka"
	"github.com/TemirB/orders-admin/internal/querykey"
)

func main() {
	_ = godotenv.Load("env/.env")

	var (
		resource, scope, id, filters string
		brokers, topic               string
		force                        bool
		timeout                      time.Duration
	)
	flag.StringVar(&resource, "resource", "", "orders, returns or payments")
	flag.StringVar(&scope, "scope", "all", "all, list, detail or preview")
	flag.StringVar(&id, "id", "", "resource id for detail and preview")
	flag.StringVar(&filters, "filters", "", "list filters as a query string, e.g. 'status=requested&limit=20'")
	flag.BoolVar(&force, "force", false, "refetch matched entries right away")
	flag.StringVar(&brokers, "brokers", os.Getenv("KAFKA_BROKERS"), "comma separated kafka brokers (or KAFKA_BROKERS)")
	flag.StringVar(&topic, "topic", envOr("KAFKA_TOPIC", "admin-cache-invalidations"), "invalidation topic (or KAFKA_TOPIC)")
	flag.DurationVar(&timeout, "timeout", 10*time.Second, "publish timeout")
	flag.Parse()

	logger, err := zap.NewDevelopment()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	key, err := buildKey(resource, scope, id, filters)
	if err != nil {
		logger.Fatal("bad key", zap.Error(err))
	}
	opts := cache.InvalidateOptions{}
	if force {
		opts.Refetch = cache.RefetchAll
	}

	cfg := config.Kafka{Topic: topic}
	for _, b := range strings.Split(brokers, ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.Brokers = append(cfg.Brokers, b)
		}
	}
	if len(cfg.Brokers) == 0 {
		logger.Fatal("no brokers: set -brokers or KAFKA_BROKERS")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	writer := kafka.NewWriter(cfg)
	defer writer.Close()

	origin := "cli-" + uuid.NewString()
	// The CLI has no cache of its own, so only Publish is used.
	b := kafka.NewBroadcaster(nil, writer, origin, logger)
	if err := b.Publish(ctx, key, opts); err != nil {
		logger.Fatal("publish failed", zap.Error(err))
	}
	logger.Info("invalidation published",
		zap.Strings("key", key),
		zap.Stringer("refetch", opts.Refetch),
		zap.String("topic", cfg.Topic),
		zap.String("origin", origin),
	)
}

var factories = map[string]querykey.Factory{
	querykey.Orders.Resource():   querykey.Orders.Factory,
	querykey.Returns.Resource():  querykey.Returns,
	querykey.Payments.Resource(): querykey.Payments,
}

// buildKey turns the flags into the key prefix to invalidate.
func buildKey(resource, scope, id, filters string) (querykey.Key, error) {
	f, ok := factories[resource]
	if !ok {
		return nil, fmt.Errorf("unknown resource %q", resource)
	}

	switch scope {
	case "", "all":
		return f.All(), nil
	case querykey.ScopeList:
		if filters == "" {
			return f.Lists(), nil
		}
		q, err := url.ParseQuery(filters)
		if err != nil {
			return nil, fmt.Errorf("filters: %w", err)
		}
		return f.List(querykey.FiltersFromQuery(q)), nil
	case querykey.ScopeDetail:
		if id == "" {
			return f.Details(), nil
		}
		return f.Scoped(querykey.ScopeDetail, id), nil
	case querykey.ScopePreview:
		if resource != querykey.Orders.Resource() {
			return nil, errors.New("preview scope exists only for orders")
		}
		if id == "" {
			return querykey.Orders.Scoped(querykey.ScopePreview), nil
		}
		return querykey.Orders.Preview(id), nil
	}
	return nil, fmt.Errorf("unknown scope %q", scope)
}

func envOr(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
