package ports

import (
	"context"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// Filter is a storage-agnostic query filter keyed by document field name.
type Filter map[string]any

// Document constrains the pointer type of a stored content entity so the
// generic service and repository can manage every collection uniformly.
type Document[T any] interface {
	*T
	DocumentID() string
	SetDocumentID(id string)
	Lifecycle() *domain.Stamps
}

// ContentRepository is the persistence contract for one document collection.
type ContentRepository[T any, D Document[T]] interface {
	// Find returns matching documents ordered by created_at descending.
	Find(ctx context.Context, filter Filter) ([]D, error)
	FindByID(ctx context.Context, id string) (D, error)
	FindOne(ctx context.Context, filter Filter) (D, error)
	Insert(ctx context.Context, doc D) error
	Replace(ctx context.Context, id string, doc D) error
	Delete(ctx context.Context, id string) error
}

// ContentService is the authorization-gated CRUD facade over one collection.
// Every method takes the caller's resolved role and checks the policy table
// before touching storage.
type ContentService[T any, D Document[T]] interface {
	// List degrades to an empty slice when storage is unreachable; the only
	// error it returns is an authorization failure.
	List(ctx context.Context, role domain.Role) ([]D, error)
	GetByID(ctx context.Context, role domain.Role, id string) (D, error)
	GetBySlug(ctx context.Context, role domain.Role, slug string) (D, error)
	Create(ctx context.Context, role domain.Role, doc D) (string, error)
	Update(ctx context.Context, role domain.Role, id string, doc D) error
	Delete(ctx context.Context, role domain.Role, id string) error
}
