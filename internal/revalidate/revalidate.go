package revalidate

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	pageKeyPrefix = "page:"      // Cached page payload: page:{path}
	channel       = "revalidate" // Pub/Sub channel the rendering layer subscribes to
)

// Invalidator signals the rendering layer that cached page output for the
// given paths is stale.
type Invalidator interface {
	Invalidate(ctx context.Context, paths ...string) error
}

// RedisInvalidator drops cached page payloads and announces each stale path
// on the revalidate channel.
type RedisInvalidator struct {
	client *redis.Client
}

func New(client *redis.Client) *RedisInvalidator {
	return &RedisInvalidator{client: client}
}

func (r *RedisInvalidator) Invalidate(ctx context.Context, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}

	pipe := r.client.Pipeline()
	for _, p := range paths {
		pipe.Del(ctx, PageKey(p))
		pipe.Publish(ctx, channel, p)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to invalidate pages: %w", err)
	}
	return nil
}

// PageKey returns the cache key holding the rendered payload for a path.
func PageKey(path string) string {
	return pageKeyPrefix + path
}

// Channel returns the pub/sub channel stale paths are announced on.
func Channel() string {
	return channel
}

type nopInvalidator struct{}

// NewNop returns an Invalidator for deployments without Redis.
func NewNop() Invalidator {
	return nopInvalidator{}
}

func (nopInvalidator) Invalidate(context.Context, ...string) error { return nil }
