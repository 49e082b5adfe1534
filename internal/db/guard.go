package db

import (
	"context"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Read runs op against the pool and returns fallback without touching the
// database when the handle is offline. Build and static-generation
// environments run without a DATABASE_URL; public reads must degrade to an
// empty result instead of failing.
func Read[T any](ctx context.Context, d *DB, fallback T, op func(context.Context, *pgxpool.Pool) (T, error)) (T, error) {
	if d.Offline() {
		return fallback, nil
	}

	v, err := op(ctx, d.Pool)
	if err != nil {
		log.Printf("database read failed: %v", err)
		return fallback, err
	}
	return v, nil
}

// Write runs op against the pool. Offline handles reject writes with
// ErrUnavailable rather than silently dropping them.
func Write[T any](ctx context.Context, d *DB, op func(context.Context, *pgxpool.Pool) (T, error)) (T, error) {
	var zero T
	if d.Offline() {
		return zero, ErrUnavailable
	}

	v, err := op(ctx, d.Pool)
	if err != nil {
		log.Printf("database write failed: %v", err)
		return zero, err
	}
	return v, nil
}
