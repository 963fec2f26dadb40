// Package postgres keeps kingdom saves in a PostgreSQL saves table using pgx v5.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/frontier/internal/config"
)

// ErrSchemaMissing is returned by Ready when the saves table has not been migrated.
var ErrSchemaMissing = errors.New("saves table missing; run cmd/migrate first")

// Pool is the connection pool behind the save backend.
type Pool struct {
	pool *pgxpool.Pool
}

// NewPool connects to the save database with the configured pool limits.
//
// Precondition: cfg must contain valid database connection parameters.
// Postcondition: Returns a pinged Pool or a non-nil error; nothing is left open on error.
func NewPool(ctx context.Context, cfg config.DatabaseConfig) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	poolCfg.MaxConns = cfg.MaxConns
	poolCfg.MinConns = cfg.MinConns
	poolCfg.MaxConnLifetime = cfg.MaxConnLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("opening save database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging save database: %w", err)
	}
	return &Pool{pool: pool}, nil
}

// Ready checks, within timeout, that the database answers and that the saves
// table exists.
//
// Postcondition: Returns nil, ErrSchemaMissing, or a connection error.
func (p *Pool) Ready(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var exists bool
	err := p.pool.QueryRow(ctx, `SELECT to_regclass('saves') IS NOT NULL`).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking saves table: %w", err)
	}
	if !exists {
		return ErrSchemaMissing
	}
	return nil
}

// Saves returns a repository over this pool's saves table.
func (p *Pool) Saves() *SaveRepository { return NewSaveRepository(p.pool) }

// Close releases all pool resources.
func (p *Pool) Close() { p.pool.Close() }

// DB exposes the raw pool for schema setup in tests.
func (p *Pool) DB() *pgxpool.Pool { return p.pool }
