package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/bistro/internal/apperr"
)

const uniqueViolation = "23505"

// Gateway is the only path to the database. Every query is parameterized
// positionally ($1..$n) and every driver error comes back translated into the
// apperr taxonomy.
type Gateway struct {
	db *sqlx.DB
}

func NewGateway(db *sqlx.DB) *Gateway {
	return &Gateway{db: db}
}

// Select scans all rows into dest, which must be a pointer to a slice.
func (g *Gateway) Select(ctx context.Context, dest any, query string, args ...any) error {
	return translate("select", g.db.SelectContext(ctx, dest, query, args...))
}

// Get scans exactly one row into dest. No row is apperr.ErrNotFound.
func (g *Gateway) Get(ctx context.Context, dest any, query string, args ...any) error {
	return translate("get", g.db.GetContext(ctx, dest, query, args...))
}

func (g *Gateway) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := g.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, translate("exec", err)
	}
	return res, nil
}

func (g *Gateway) Ping(ctx context.Context) error {
	return translate("ping", g.db.PingContext(ctx))
}

func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return &apperr.PersistenceError{
			Op:  op,
			Err: fmt.Errorf("%w: %s", apperr.ErrConflict, pgErr.ConstraintName),
		}
	}
	return &apperr.PersistenceError{Op: op, Err: err}
}
