package ports

import (
	"context"
	"time"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// PageCache stores rendered public payloads keyed by resource. Mutating a
// resource must invalidate every cached render that lists it; the public
// site serves cached responses, and a stale entry would keep deleted
// content visible.
type PageCache interface {
	Get(ctx context.Context, res domain.Resource, key string) ([]byte, error)
	Set(ctx context.Context, res domain.Resource, key string, payload []byte, ttl time.Duration) error
	// Invalidate drops every cached render of the resource.
	Invalidate(ctx context.Context, res domain.Resource) error
}
