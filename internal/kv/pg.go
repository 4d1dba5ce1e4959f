package kv

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PG is a Store backed by the kv_blobs Postgres table (see migrations).
// One row per key; Set upserts. The schema is managed by goose.
type PG struct {
	db db
}

// NewPG constructs a Postgres-backed Store.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPG(db db) *PG {
	return &PG{db: db}
}

// Get returns the value stored under key. A missing row is (_, false, nil).
func (p *PG) Get(ctx context.Context, key string) (string, bool, error) {
	const q = `
		SELECT value
		FROM kv_blobs
		WHERE key = @key`

	var value string
	err := p.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("kv.PG.Get: %w", err)
	}
	return value, true, nil
}

// Set upserts value under key.
func (p *PG) Set(ctx context.Context, key, value string) error {
	const q = `
		INSERT INTO kv_blobs (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = now()`

	if _, err := p.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "value": value}); err != nil {
		return fmt.Errorf("kv.PG.Set: %w", err)
	}
	return nil
}

var _ Store = (*PG)(nil)
