// Package database stores the admin mutation journal in Postgres.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/tracelog"
	"go.uber.org/zap"

	"github.com/TemirB/orders-admin/internal/config"
	"github.com/TemirB/orders-admin/internal/domain"
)

const journalTable = "admin_journal"

// Connect opens a pool and pings it. Queries are logged at level and above.
func Connect(ctx context.Context, cfg config.Database, level tracelog.LogLevel, logger *zap.Logger) (*pgxpool.Pool, error) {
	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	pcfg.ConnConfig.Tracer = &tracelog.TraceLog{
		Logger:   newZapTracer(logger),
		LogLevel: level,
	}
	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, err
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// Journal appends mutation outcomes. Write failures are logged and swallowed.
type Journal struct {
	db      DB
	schema  string
	timeout time.Duration
	logger  *zap.Logger
}

func NewJournal(db DB, schema string, logger *zap.Logger) *Journal {
	if schema == "" {
		schema = "public"
	}
	return &Journal{db: db, schema: schema, timeout: 2 * time.Second, logger: logger}
}

func (j *Journal) qt(tbl string) string {
	return pgx.Identifier{j.schema, tbl}.Sanitize()
}

func (j *Journal) EnsureSchema(ctx context.Context) error {
	stmts := []string{
		fmt.Sprintf(`CREATE SCHEMA IF NOT EXISTS %s`, pgx.Identifier{j.schema}.Sanitize()),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
			  id          uuid PRIMARY KEY,
			  command     text NOT NULL,
			  return_id   text NOT NULL DEFAULT '',
			  order_id    text NOT NULL DEFAULT '',
			  payment_id  text NOT NULL DEFAULT '',
			  ok          boolean NOT NULL,
			  message     text NOT NULL DEFAULT '',
			  duration_ms double precision NOT NULL,
			  at          timestamptz NOT NULL
			)`, j.qt(journalTable)),
		fmt.Sprintf(`CREATE INDEX IF NOT EXISTS admin_journal_at_idx ON %s (at DESC)`, j.qt(journalTable)),
	}
	for _, s := range stmts {
		if _, err := j.db.Exec(ctx, s); err != nil {
			return fmt.Errorf("ensure journal schema: %w", err)
		}
	}
	return nil
}

func (j *Journal) Record(ctx context.Context, e domain.JournalEntry) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), j.timeout)
	defer cancel()

	_, err := j.db.Exec(ctx, fmt.Sprintf(`
		INSERT INTO %s (id, command, return_id, order_id, payment_id, ok, message, duration_ms, at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		ON CONFLICT (id) DO NOTHING
	`, j.qt(journalTable)),
		e.ID, e.Command, e.ReturnID, e.OrderID, e.PaymentID, e.OK, e.Message, e.DurationMs, e.At,
	)
	if err != nil {
		j.logger.Error("journal write failed",
			zap.String("command", e.Command),
			zap.String("entry_id", e.ID.String()),
			zap.Error(err),
		)
	}
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]domain.JournalEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 50
	}
	rows, err := j.db.Query(ctx, fmt.Sprintf(`
		SELECT id, command, return_id, order_id, payment_id, ok, message, duration_ms, at
		FROM %s ORDER BY at DESC LIMIT $1
	`, j.qt(journalTable)), limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.JournalEntry, error) {
		var e domain.JournalEntry
		err := row.Scan(&e.ID, &e.Command, &e.ReturnID, &e.OrderID, &e.PaymentID, &e.OK, &e.Message, &e.DurationMs, &e.At)
		return e, err
	})
}

// NopJournal is used when no database is configured.
type NopJournal struct{}

func (NopJournal) Record(context.Context, domain.JournalEntry) {}

func (NopJournal) Recent(context.Context, int) ([]domain.JournalEntry, error) { return nil, nil }
