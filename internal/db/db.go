package db

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/procoat-sa/site-backend/config"
)

// ErrUnavailable is returned for write operations when the service runs
// without a configured database (offline mode).
var ErrUnavailable = errors.New("database not configured")

// DB is the process-wide database handle. It is opened once at startup and
// shared by all repositories; individual calls borrow pooled connections.
// In offline mode Pool is nil and every access goes through the guard.
type DB struct {
	Pool    *pgxpool.Pool
	offline bool
}

func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	if cfg.Offline {
		log.Println("database offline mode: reads fall back, writes disabled")
		return &DB{offline: true}, nil
	}

	pcfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pcfg.MaxConns = int32(cfg.MaxConns)
	pcfg.MinConns = int32(cfg.MinConns)
	pcfg.MaxConnIdleTime = 5 * time.Minute
	pcfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, pcfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Fail fast
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}

	return &DB{Pool: pool}, nil
}

func (d *DB) Offline() bool {
	return d == nil || d.offline || d.Pool == nil
}

func (d *DB) Ping(ctx context.Context) error {
	if d.Offline() {
		return ErrUnavailable
	}
	return d.Pool.Ping(ctx)
}

func (d *DB) Close() {
	if d != nil && d.Pool != nil {
		d.Pool.Close()
	}
}
