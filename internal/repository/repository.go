package repository

import (
	"context"
	"database/sql"
)

// Querier is the slice of db.Gateway the repositories need.
type Querier interface {
	Select(ctx context.Context, dest any, query string, args ...any) error
	Get(ctx context.Context, dest any, query string, args ...any) error
	Exec(ctx context.Context, query string, args ...any) (sql.Result, error)
}
