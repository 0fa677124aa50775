package service

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"
	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// UserService manages dashboard accounts. The policy table pins every
// operation on the users collection to super-admin.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger.With().Str("resource", "users").Logger()}
}

func (s *UserService) List(ctx context.Context, role domain.Role) ([]*domain.User, error) {
	if _, err := domain.Require(role, domain.ResourceUsers, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.users.FindAll(ctx)
}

func (s *UserService) Get(ctx context.Context, role domain.Role, id string) (*domain.User, error) {
	if _, err := domain.Require(role, domain.ResourceUsers, domain.ActionRead); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}

// Create provisions a new account with a bcrypt password hash.
func (s *UserService) Create(ctx context.Context, role domain.Role, in ports.CreateUserInput) (*domain.User, error) {
	if _, err := domain.Require(role, domain.ResourceUsers, domain.ActionCreate); err != nil {
		return nil, err
	}
	if in.Username == "" || in.Password == "" || !in.Role.Valid() {
		return nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("user provisioned")
	return created, nil
}

// Update modifies an account. An empty password leaves the stored hash
// byte-for-byte unchanged; a non-empty one replaces it.
func (s *UserService) Update(ctx context.Context, role domain.Role, id string, in ports.UpdateUserInput) (*domain.User, error) {
	if _, err := domain.Require(role, domain.ResourceUsers, domain.ActionUpdate); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Role != "" {
		if !in.Role.Valid() {
			return nil, domain.ErrValidation
		}
		user.Role = in.Role
	}
	if in.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = string(hash)
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Str("id", id).Msg("user updated")
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, role domain.Role, id string) error {
	if _, err := domain.Require(role, domain.ResourceUsers, domain.ActionDelete); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("id", id).Msg("user deleted")
	return nil
}
