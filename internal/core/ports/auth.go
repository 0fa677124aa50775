package ports

import (
	"context"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// AuthService authenticates dashboard users and mints session tokens.
type AuthService interface {
	// Login verifies the credentials and returns a signed session token
	// carrying the account's role. Any mismatch, unknown username or wrong
	// password alike, yields domain.ErrInvalidCredentials so callers cannot
	// enumerate accounts.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

// UserRepository is the persistence contract for dashboard accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
