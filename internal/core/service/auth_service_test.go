package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/token"
)

const testSecret = "test-signing-secret"

func seedUser(t *testing.T, repo *stubUserRepo, username, password string, role domain.Role) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if _, err := repo.Insert(context.Background(), &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
	}); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "elena", "staging-room", domain.RoleAdmin)
	svc := NewAuthService(repo, testSecret)

	tkn, user, err := svc.Login(context.Background(), "elena", "staging-room")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %q", user.Role)
	}

	claims, ok := token.Parse(testSecret, tkn)
	if !ok {
		t.Fatal("issued token must parse")
	}
	if claims.Username != "elena" || claims.Role != domain.RoleAdmin {
		t.Fatalf("token carries wrong identity: %+v", claims)
	}
}

// Unknown username and wrong password must be indistinguishable.
func TestLogin_InvalidCredentials(t *testing.T) {
	repo := newStubUserRepo()
	seedUser(t, repo, "elena", "staging-room", domain.RoleAdmin)
	svc := NewAuthService(repo, testSecret)

	cases := []struct{ name, username, password string }{
		{"wrong password", "elena", "guess"},
		{"unknown user", "nobody", "staging-room"},
		{"empty username", "", "staging-room"},
		{"empty password", "elena", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tkn, user, err := svc.Login(context.Background(), tc.username, tc.password)
			if !errors.Is(err, domain.ErrInvalidCredentials) {
				t.Fatalf("expected ErrInvalidCredentials, got %v", err)
			}
			if tkn != "" || user != nil {
				t.Fatal("no token or user may leak on a failed login")
			}
		})
	}
}
