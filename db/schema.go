// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Querier is the subset of *sql.DB and *sql.Tx used by query helpers, so the
// same code runs inside and outside transactions.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// IsUniqueViolation reports whether err is a uniqueness-constraint failure.
// Covers both drivers: lib/pq reports "duplicate key value violates unique
// constraint", sqlite reports "UNIQUE constraint failed".
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint")
}

// The DDL is shared between postgres and sqlite: TEXT keys, TIMESTAMP
// columns with no database-side defaults (all timestamps are written by the
// application in UTC), and uniqueness expressed as table constraints.
const schema = `
-- Voting periods (lifecycle administered externally; read-only to the core)
CREATE TABLE IF NOT EXISTS periods (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    start_at TIMESTAMP NOT NULL,
    end_at TIMESTAMP NOT NULL,
    status TEXT NOT NULL DEFAULT 'upcoming' CHECK (status IN ('upcoming', 'active', 'closed'))
);

CREATE INDEX IF NOT EXISTS idx_periods_status ON periods(status);

-- Permanent PID <-> order number bindings. Both columns are globally unique:
-- an order number, once bound, belongs to that PID forever.
CREATE TABLE IF NOT EXISTS order_bindings (
    pid TEXT NOT NULL UNIQUE,
    order_id TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);

-- Votes: at most one per (period, order number), enforced by the store.
CREATE TABLE IF NOT EXISTS votes (
    id TEXT PRIMARY KEY,
    period_id TEXT NOT NULL REFERENCES periods(id),
    order_id TEXT NOT NULL,
    candidate_id TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'valid' CHECK (status IN ('valid', 'frozen', 'invalid')),
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL,
    UNIQUE (period_id, order_id)
);

CREATE INDEX IF NOT EXISTS idx_votes_period_candidate ON votes(period_id, candidate_id);

-- Change secrets: one live record per (order number, period). Rotation
-- replaces the row inside the change transaction.
CREATE TABLE IF NOT EXISTS change_secrets (
    order_id TEXT NOT NULL,
    period_id TEXT NOT NULL REFERENCES periods(id),
    key_hash TEXT NOT NULL,
    issued_at TIMESTAMP NOT NULL,
    UNIQUE (order_id, period_id)
);

-- Append-only audit trail of vote changes. The row count per
-- (order number, period) is the authoritative changes-used counter; the
-- UNIQUE pair makes the single-change limit hold under concurrent requests.
CREATE TABLE IF NOT EXISTS change_logs (
    id TEXT PRIMARY KEY,
    pid TEXT NOT NULL,
    order_id TEXT NOT NULL,
    period_id TEXT NOT NULL REFERENCES periods(id),
    from_candidate_id TEXT NOT NULL,
    to_candidate_id TEXT NOT NULL,
    changed_at TIMESTAMP NOT NULL,
    UNIQUE (order_id, period_id)
);
`
