package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	user.ID = fmt.Sprintf("u-%d", r.nextID)
	cp := *user
	r.users[user.ID] = &cp
	return user, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func TestUserService_SuperAdminOnly(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	for _, role := range []domain.Role{domain.RoleAgent, domain.RoleAdmin} {
		if _, err := svc.List(context.Background(), role); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s list: expected ErrForbidden, got %v", role, err)
		}
		if _, err := svc.Create(context.Background(), role, ports.CreateUserInput{Username: "x", Password: "pw", Role: domain.RoleAgent}); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s create: expected ErrForbidden, got %v", role, err)
		}
		if err := svc.Delete(context.Background(), role, "u-1"); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("%s delete: expected ErrForbidden, got %v", role, err)
		}
	}
	if _, err := svc.List(context.Background(), domain.RoleAnonymous); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("anonymous list: expected ErrUnauthorized, got %v", err)
	}
}

func TestUserService_CreateHashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), domain.RoleSuperAdmin, ports.CreateUserInput{
		Username: "elena", Email: "elena@studio.test", Password: "staging-room", Role: domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.PasswordHash == "" || created.PasswordHash == "staging-room" {
		t.Fatal("password must be stored as a hash")
	}
	if created.Role != domain.RoleAdmin {
		t.Fatalf("role not persisted: %q", created.Role)
	}

	if _, err := svc.Create(context.Background(), domain.RoleSuperAdmin, ports.CreateUserInput{Username: "", Password: "pw", Role: domain.RoleAgent}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("blank username: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.RoleSuperAdmin, ports.CreateUserInput{Username: "x", Password: "pw", Role: "owner"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("unknown role: expected ErrValidation, got %v", err)
	}
	if _, err := svc.Create(context.Background(), domain.RoleSuperAdmin, ports.CreateUserInput{Username: "elena", Password: "pw", Role: domain.RoleAgent}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("duplicate username: expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdatePasswordSemantics(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())

	created, err := svc.Create(context.Background(), domain.RoleSuperAdmin, ports.CreateUserInput{
		Username: "elena", Password: "staging-room", Role: domain.RoleAgent,
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	originalHash := repo.users[created.ID].PasswordHash

	if _, err := svc.Update(context.Background(), domain.RoleSuperAdmin, created.ID, ports.UpdateUserInput{Email: "e@studio.test"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.users[created.ID].PasswordHash != originalHash {
		t.Fatal("empty password must leave the stored hash unchanged")
	}
	if repo.users[created.ID].Email != "e@studio.test" {
		t.Fatalf("email not applied: %q", repo.users[created.ID].Email)
	}

	if _, err := svc.Update(context.Background(), domain.RoleSuperAdmin, created.ID, ports.UpdateUserInput{Password: "new-secret"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if repo.users[created.ID].PasswordHash == originalHash {
		t.Fatal("new password must replace the stored hash")
	}
}

func TestUserService_DeleteMissing(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())
	if err := svc.Delete(context.Background(), domain.RoleSuperAdmin, "absent"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
