package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

const secret = "test-secret"

func TestIssueAndParse(t *testing.T) {
	raw, err := Issue(secret, "maya", domain.RoleAdmin, time.Now().UTC())
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, ok := Parse(secret, raw)
	if !ok {
		t.Fatal("expected token to parse")
	}
	if claims.Username != "maya" {
		t.Fatalf("unexpected username: %q", claims.Username)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %q", claims.Role)
	}
}

func TestParse_Absent(t *testing.T) {
	if _, ok := Parse(secret, ""); ok {
		t.Fatal("empty token must resolve to anonymous")
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, ok := Parse(secret, "not-a-token"); ok {
		t.Fatal("garbage token must resolve to anonymous")
	}
}

func TestParse_Expired(t *testing.T) {
	issued := time.Now().UTC().Add(-TTL - time.Minute)
	raw, err := Issue(secret, "maya", domain.RoleAgent, issued)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, ok := Parse(secret, raw); ok {
		t.Fatal("expired token must resolve to anonymous")
	}
}

func TestParse_WrongSecret(t *testing.T) {
	raw, _ := Issue(secret, "maya", domain.RoleAgent, time.Now().UTC())
	if _, ok := Parse("other-secret", raw); ok {
		t.Fatal("token signed with a different secret must resolve to anonymous")
	}
}

func TestParse_UnknownRole(t *testing.T) {
	// A structurally valid token whose role claim is not one of the three
	// tiers must resolve to anonymous.
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  "maya",
		"role": "owner",
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, ok := Parse(secret, raw); ok {
		t.Fatal("unknown role claim must resolve to anonymous")
	}
}

func TestParse_RejectsUnexpectedAlgorithm(t *testing.T) {
	claims := jwt.MapClaims{"sub": "maya", "role": "admin"}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, ok := Parse(secret, raw); ok {
		t.Fatal("alg=none token must resolve to anonymous")
	}
}
