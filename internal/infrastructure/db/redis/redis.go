// Package redis holds the render cache. Public pages are served from the
// JSON payloads stored here; the Mongo collections stay the source of truth.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config selects the cache instance.
type Config struct {
	Addr     string
	Password string
	DB       int
	// Timeout bounds the connectivity check. Zero means 5s.
	Timeout time.Duration
}

// Connect opens a client and proves the instance is reachable before the
// server starts taking traffic.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}
