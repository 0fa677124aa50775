package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/core/token"
)

// SessionCookie is the name of the cookie carrying the signed session token.
const SessionCookie = "studio_session"

// Context keys set by Session when a valid token is present.
const (
	ContextRole     = "role"
	ContextUsername = "username"
)

// Session resolves the caller's role from the session cookie and injects it
// into the request context. Resolution never rejects a request: an absent,
// expired, or malformed token simply leaves the request anonymous, and the
// service layer's policy check decides what an anonymous caller may do.
func Session(jwtSecret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookie)
			if err == nil {
				if claims, ok := token.Parse(jwtSecret, cookie.Value); ok {
					c.Set(ContextRole, claims.Role)
					c.Set(ContextUsername, claims.Username)
				}
			}
			return next(c)
		}
	}
}
