package service

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
	"github.com/atelier-interiors/studio-api/internal/core/token"
)

// AuthService verifies credentials and mints session tokens.
type AuthService struct {
	users     ports.UserRepository
	jwtSecret string
}

func NewAuthService(users ports.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{users: users, jwtSecret: jwtSecret}
}

// Login authenticates the account and returns a signed session token
// carrying its role. Unknown username and wrong password collapse into the
// same ErrInvalidCredentials so responses cannot be used to enumerate
// accounts.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tkn, err := token.Issue(s.jwtSecret, user.Username, user.Role, time.Now().UTC())
	if err != nil {
		return "", nil, err
	}

	return tkn, user, nil
}
