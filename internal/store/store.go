// Package store holds the console's own Postgres state. The delivery
// backend owns all business data; this package only persists
// presentation-tier records: saved table views and an audit trail of
// console actions.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DBTX is the interface for database operations.
// Satisfied by both *pgxpool.Pool and pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// Store provides access to the console's tables.
type Store struct {
	db DBTX
}

// New creates a Store backed by the given pool or transaction.
func New(db DBTX) *Store {
	return &Store{db: db}
}

// Migrate creates the console tables if they do not exist. The console
// owns exactly these two tables; everything else lives behind the
// backend API.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	const schema = `
CREATE TABLE IF NOT EXISTS saved_views (
	id          UUID PRIMARY KEY,
	table_key   TEXT NOT NULL,
	name        TEXT NOT NULL,
	query       TEXT NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (table_key, name)
);

CREATE TABLE IF NOT EXISTS console_audit (
	id          UUID PRIMARY KEY,
	actor       TEXT NOT NULL DEFAULT '',
	action      TEXT NOT NULL,
	entity      TEXT NOT NULL,
	entity_id   TEXT NOT NULL DEFAULT '',
	detail      TEXT NOT NULL DEFAULT '',
	ip_address  TEXT NOT NULL DEFAULT '',
	user_agent  TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS console_audit_created_at_idx
	ON console_audit (created_at DESC);
`
	if _, err := pool.Exec(ctx, schema); err != nil {
		return err
	}
	return nil
}
