package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// PageCache stores rendered public payloads in Redis so the marketing site
// can serve list and detail pages without hitting the document store.
// Key format: page:<resource>:<key>
//
// Mutating a resource drops every key under its prefix; deleted content
// must stop serving from cache immediately.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

const defaultPageTTL = 15 * time.Minute

// NewPageCache creates a PageCache wrapping the given Redis client.
func NewPageCache(client *redis.Client) *PageCache {
	return &PageCache{client: client, ttl: defaultPageTTL}
}

func (c *PageCache) Get(ctx context.Context, res domain.Resource, key string) ([]byte, error) {
	payload, err := c.client.Get(ctx, c.key(res, key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("page cache get: %w", err)
	}
	return payload, nil
}

func (c *PageCache) Set(ctx context.Context, res domain.Resource, key string, payload []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = c.ttl
	}
	if err := c.client.Set(ctx, c.key(res, key), payload, ttl).Err(); err != nil {
		return fmt.Errorf("page cache set: %w", err)
	}
	return nil
}

// Invalidate removes every cached render of the resource.
func (c *PageCache) Invalidate(ctx context.Context, res domain.Resource) error {
	pattern := c.key(res, "*")

	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("page cache scan: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("page cache del: %w", err)
	}
	return nil
}

func (c *PageCache) key(res domain.Resource, key string) string {
	return fmt.Sprintf("page:%s:%s", res, key)
}
