// Package dbpg wraps a PostgreSQL connection and applies the toolkit's retry
// strategies to statement execution.
package dbpg

import (
	"context"
	"database/sql"
	"time"

	// Register PostgreSQL driver for database/sql.
	_ "github.com/lib/pq"

	"github.com/go-again/again/retry"
)

// DB wraps a single PostgreSQL connection pool.
type DB struct {
	*sql.DB
}

// Options defines database connection configuration options.
type Options struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

func applyOptions(db *sql.DB, opts *Options) {
	if opts == nil {
		return
	}
	if opts.MaxOpenConns > 0 {
		db.SetMaxOpenConns(opts.MaxOpenConns)
	}
	if opts.MaxIdleConns > 0 {
		db.SetMaxIdleConns(opts.MaxIdleConns)
	}
	if opts.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(opts.ConnMaxLifetime)
	}
}

// New opens a connection pool for the given DSN.
func New(dsn string, opts *Options) (*DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}
	applyOptions(db, opts)
	return &DB{db}, nil
}

// ExecWithRetry executes a statement, re-attempting per the given strategy.
func (db *DB) ExecWithRetry(
	ctx context.Context,
	strat retry.Strategy,
	query string,
	args ...interface{},
) (sql.Result, error) {
	return retry.DoValue(func() (sql.Result, error) {
		return db.ExecContext(ctx, query, args...)
	}, strat)
}

// QueryWithRetry executes a query, re-attempting per the given strategy.
// A result set delivered with an error is closed before the next attempt.
func (db *DB) QueryWithRetry(
	ctx context.Context,
	strat retry.Strategy,
	query string,
	args ...interface{},
) (*sql.Rows, error) {
	return retry.DoValue(func() (*sql.Rows, error) {
		rows, err := db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, err
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			_ = rows.Close()
			return nil, rowsErr
		}
		return rows, nil
	}, strat)
}

// PingWithRetry verifies the connection, re-attempting per the given strategy.
func (db *DB) PingWithRetry(ctx context.Context, strat retry.Strategy) error {
	return retry.DoContext(ctx, strat, func() error {
		return db.PingContext(ctx)
	})
}

// WithTx executes fn within a transaction, rolling back on error.
func (db *DB) WithTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// WithTxWithRetry executes fn within a transaction, re-attempting the whole
// transaction per the given strategy.
func (db *DB) WithTxWithRetry(
	ctx context.Context,
	strat retry.Strategy,
	fn func(*sql.Tx) error,
) error {
	return retry.DoContext(ctx, strat, func() error {
		return db.WithTx(ctx, fn)
	})
}
