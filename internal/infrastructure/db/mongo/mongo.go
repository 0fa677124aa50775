// Package mongo persists the studio's content collections: projects,
// services, blog posts, team members, leads, accounts and the broadcast
// note.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultTimeout = 10 * time.Second

// Config selects the cluster and database.
type Config struct {
	URI      string
	Database string
	// Timeout bounds connect and the initial ping. Zero means 10s.
	Timeout time.Duration
}

// Connect dials the cluster, pings it, and hands back the client together
// with the configured database. Startup aborts on any failure here; the
// service has nothing to serve without its document store.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	dialCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(dialCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(dialCtx, nil); err != nil {
		_ = client.Disconnect(dialCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
