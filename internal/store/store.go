// Package store implements the locally-owned persistence layer: the job
// table, the job/skill and company/city join tables, and the small catalog
// tables of the surrounding CRUD surface.
package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgx every store runs on. Both *pgxpool.Pool and
// pgx.Tx satisfy it, which is what lets a mutating operation join the
// caller's transaction instead of committing on its own.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
