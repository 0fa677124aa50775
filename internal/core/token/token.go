// Package token issues and verifies the signed session token that carries a
// dashboard user's role. The token is the only session state in the system:
// the server keeps no session table and trusts the HMAC signature plus the
// embedded expiry on every request.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// TTL is how long an issued session stays valid.
const TTL = 24 * time.Hour

// Claims is the decoded content of a valid session token.
type Claims struct {
	Username string
	Role     domain.Role
}

// Issue signs a session token for the given account. The role travels in
// the token itself.
func Issue(secret, username string, role domain.Role, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  username,
		"role": string(role),
		"iat":  now.Unix(),
		"exp":  now.Add(TTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

// Parse verifies a raw token and extracts its claims. It never returns an
// error: an absent, malformed, expired, or wrongly-signed token, or one
// carrying an unknown role string, all resolve to (zero, false) so callers
// treat the request as anonymous.
func Parse(secret, raw string) (Claims, bool) {
	if raw == "" {
		return Claims{}, false
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return Claims{}, false
	}

	roleStr, _ := claims["role"].(string)
	role := domain.ParseRole(roleStr)
	if !role.Valid() {
		return Claims{}, false
	}

	username, _ := claims["sub"].(string)
	return Claims{Username: username, Role: role}, true
}
