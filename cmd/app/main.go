package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/TemirB/orders-admin/internal/application/handler"
	"github.com/TemirB/orders-admin/internal/application/service"
	"github.com/TemirB/orders-admin/internal/cache"
	"github.com/TemirB/orders-admin/internal/commerce"
	"github.com/TemirB/orders-admin/internal/config"
	"github.com/TemirB/orders-admin/internal/database"
	"github.com/TemirB/orders-admin/internal/httpapi"
	"github.com/TemirB/orders-admin/internal/kafka"
	"github.com/TemirB/orders-admin/internal/observability"
	"github.com/TemirB/orders-admin/internal/pkg/circuit"
	"github.com/TemirB/orders-admin/internal/returns"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	logger = logger.With(zap.String("instance", cfg.InstanceID))

	for _, w := range cfg.Warnings {
		logger.Warn("config", zap.String("warning", w))
	}
	if insecure := cfg.InsecureDefaults(); len(insecure) > 0 {
		logger.Warn("using the public default secret, set these before deploying", zap.Strings("keys", insecure))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := observability.NewPrometheus(registry)

	breaker := circuit.New(cfg.Breaker.Threshold, cfg.Breaker.OpenTimeout, cfg.Breaker.MaxHalfOpen)
	client := commerce.New(cfg.Commerce, breaker, logger.Named("commerce"))

	queryCache, err := cache.New(cfg.Cache, cfg.Retry, metrics, logger.Named("cache"))
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}

	journal, closeDB, err := openJournal(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeDB()

	g, ctx := errgroup.WithContext(ctx)

	var invalidator returns.Invalidator = queryCache
	if cfg.KafkaEnabled() {
		if err := kafka.EnsureTopic(ctx, cfg.Kafka, 1, logger); err != nil {
			return fmt.Errorf("kafka topic: %w", err)
		}
		writer := kafka.NewWriter(cfg.Kafka)
		defer writer.Close()
		reader := kafka.NewReader(cfg.Kafka)
		defer reader.Close()

		invalidator = kafka.NewBroadcaster(queryCache, writer, cfg.InstanceID, logger.Named("broadcast"))
		consumer := kafka.NewConsumer(
			handler.NewHandler(queryCache, cfg.InstanceID, logger.Named("handler")),
			reader,
			cfg.Kafka.Workers,
			metrics,
			logger.Named("consumer"),
		)
		g.Go(func() error {
			consumer.Start(ctx)
			return nil
		})
	} else {
		logger.Info("kafka disabled, invalidations stay local")
	}

	hooks := returns.NewHooks(client, invalidator, journal, metrics, logger.Named("returns"))
	svc := service.NewService(client, queryCache, hooks, logger.Named("service"), metrics)

	opts := httpapi.Options{
		Breaker:  breaker,
		Gatherer: registry,
		CORS:     cfg.CORS,

		CookieSecret: cfg.Secrets.Cookie,
	}
	if cfg.DB.URL != "" {
		opts.Journal = journal
	}
	server := httpapi.New(svc, hooks, opts, logger.Named("http"), metrics)

	g.Go(func() error {
		logger.Info("http listening", zap.String("addr", cfg.HTTPAddr))
		return server.ListenAndServe(ctx, cfg.HTTPAddr)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("stopped")
	return nil
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	if cfg.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

// journalStore is what both the hooks and the journal endpoint need.
type journalStore interface {
	returns.Recorder
	httpapi.Journal
}

// openJournal connects to Postgres when DATABASE_URL is set. Without it the
// journal is a no-op.
func openJournal(ctx context.Context, cfg config.Config, logger *zap.Logger) (journalStore, func(), error) {
	if cfg.DB.URL == "" {
		logger.Info("DATABASE_URL not set, mutation journal disabled")
		return database.NopJournal{}, func() {}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	level := tracelog.LogLevelWarn
	if !cfg.IsProduction() {
		level = tracelog.LogLevelDebug
	}
	pool, err := database.Connect(connectCtx, cfg.DB, level, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("database: %w", err)
	}

	j := database.NewJournal(pool, cfg.DB.Schema, logger.Named("journal"))
	if err := j.EnsureSchema(connectCtx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("journal schema: %w", err)
	}
	return j, pool.Close, nil
}
