package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Domenick1991/kiosk/config"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotConfigured = errors.New("database not configured")

// Querier is the subset of DB the repositories depend on.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// DB wraps a Postgres pool. A DB built from an empty config has no pool:
// every query fails with ErrNotConfigured and Ping reports false.
type DB struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func New(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*DB, error) {
	if !cfg.Configured() {
		logger.Warn("no postgres configuration found, database features use in-memory fallbacks")
		return &DB{logger: logger}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &DB{pool: pool, logger: logger}, nil
}

func (d *DB) Configured() bool {
	return d != nil && d.pool != nil
}

func (d *DB) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if !d.Configured() {
		return nil, ErrNotConfigured
	}
	return d.pool.Query(ctx, sql, args...)
}

func (d *DB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	if !d.Configured() {
		return errRow{err: ErrNotConfigured}
	}
	return d.pool.QueryRow(ctx, sql, args...)
}

func (d *DB) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	if !d.Configured() {
		return pgconn.CommandTag{}, ErrNotConfigured
	}
	return d.pool.Exec(ctx, sql, args...)
}

// Ping runs SELECT 1 and reports whether it succeeded.
func (d *DB) Ping(ctx context.Context) bool {
	if !d.Configured() {
		return false
	}
	var one int
	if err := d.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		d.logger.Error("postgres connection test failed", "error", err)
		return false
	}
	return true
}

func (d *DB) Close() {
	if d.Configured() {
		d.pool.Close()
	}
}

type errRow struct {
	err error
}

func (r errRow) Scan(...any) error {
	return r.err
}

var _ Querier = (*DB)(nil)
