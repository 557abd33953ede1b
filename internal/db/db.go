package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/vaughan-dsouza/bistro/internal/config"
)

// Connect opens the shared connection pool and fails fast if Postgres is unreachable.
func Connect(ctx context.Context, cfg *config.Config, log *slog.Logger) (*sqlx.DB, error) {
	// Parse DSN → pgx config struct
	pgCfg, err := pgx.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db: failed to parse DSN: %w", err)
	}
	pgCfg.ConnectTimeout = 5 * time.Second

	db := sqlx.NewDb(stdlib.OpenDB(*pgCfg), "pgx")

	db.SetMaxOpenConns(cfg.DBMaxOpen)
	db.SetMaxIdleConns(cfg.DBMaxIdle)
	db.SetConnMaxLifetime(cfg.DBMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		log.Error("error connecting to the database", "error", err, "host", pgCfg.Host)
		return nil, fmt.Errorf("db: failed to connect to Postgres: %w", err)
	}

	log.Info("connected to database", "host", pgCfg.Host, "database", pgCfg.Database)
	return db, nil
}
