package database

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/TemirB/orders-admin/internal/domain"
)

type execCall struct {
	sql  string
	args []any
}

type fakeDB struct {
	execs    []execCall
	execErr  error
	queryErr error
	deadline bool
}

func (f *fakeDB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	_, f.deadline = ctx.Deadline()
	f.execs = append(f.execs, execCall{sql: sql, args: args})
	return pgconn.NewCommandTag("INSERT 0 1"), f.execErr
}

func (f *fakeDB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, f.queryErr
}

func TestEnsureSchema(t *testing.T) {
	db := &fakeDB{}
	j := NewJournal(db, "admin", zap.NewNop())

	require.NoError(t, j.EnsureSchema(context.Background()))
	require.Len(t, db.execs, 3)
	require.Contains(t, db.execs[0].sql, `CREATE SCHEMA IF NOT EXISTS "admin"`)
	require.Contains(t, db.execs[1].sql, `"admin"."admin_journal"`)

	db.execErr = errors.New("permission denied")
	require.ErrorContains(t, j.EnsureSchema(context.Background()), "permission denied")
}

func TestRecord(t *testing.T) {
	entry := domain.JournalEntry{
		ID:         uuid.New(),
		Command:    "cancel_receive",
		ReturnID:   "ret_1",
		OrderID:    "order_1",
		OK:         true,
		DurationMs: 12.5,
		At:         time.Unix(1700000000, 0).UTC(),
	}

	testCases := []struct {
		name     string
		execErr  error
		wantLogs int
	}{
		{name: "Written"},
		{name: "Failure is logged", execErr: errors.New("connection refused"), wantLogs: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.ErrorLevel)
			db := &fakeDB{execErr: tc.execErr}
			j := NewJournal(db, "", zap.New(core))

			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			j.Record(ctx, entry)

			require.Len(t, db.execs, 1)
			require.True(t, db.deadline)
			require.Contains(t, db.execs[0].sql, `"public"."admin_journal"`)
			require.Equal(t, []any{
				entry.ID, entry.Command, entry.ReturnID, entry.OrderID, entry.PaymentID,
				entry.OK, entry.Message, entry.DurationMs, entry.At,
			}, db.execs[0].args)
			require.Equal(t, tc.wantLogs, logs.Len())
		})
	}
}

func TestRecentQueryError(t *testing.T) {
	j := NewJournal(&fakeDB{queryErr: errors.New("boom")}, "admin", zap.NewNop())
	_, err := j.Recent(context.Background(), 10)
	require.EqualError(t, err, "boom")
}

func TestNopJournal(t *testing.T) {
	var j NopJournal
	j.Record(context.Background(), domain.JournalEntry{})
	got, err := j.Recent(context.Background(), 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestZapTracer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr := newZapTracer(zap.New(core))

	tr.Log(context.Background(), tracelog.LogLevelInfo, "Query", map[string]any{"sql": "select 1", "time": time.Millisecond})
	tr.Log(context.Background(), tracelog.LogLevelError, "Query", map[string]any{"sql": "select x", "err": errors.New("no column x")})

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "select 1", entries[0].ContextMap()["sql"])
	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.True(t, strings.Contains(entries[1].ContextMap()["error"].(string), "no column x"))
	require.Equal(t, "pgx", entries[0].LoggerName)
}
