package ports

import (
	"context"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// CreateUserInput carries the fields of a provisioning request.
type CreateUserInput struct {
	Username string
	Password string
	Email    string
	Role     domain.Role
}

// UpdateUserInput mirrors CreateUserInput for updates. An empty Password
// leaves the stored hash untouched.
type UpdateUserInput struct {
	Username string
	Password string
	Email    string
	Role     domain.Role
}

// UserService manages dashboard accounts. Every operation requires
// super-admin.
type UserService interface {
	List(ctx context.Context, role domain.Role) ([]*domain.User, error)
	Get(ctx context.Context, role domain.Role, id string) (*domain.User, error)
	Create(ctx context.Context, role domain.Role, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, role domain.Role, id string, in UpdateUserInput) (*domain.User, error)
	Delete(ctx context.Context, role domain.Role, id string) error
}
