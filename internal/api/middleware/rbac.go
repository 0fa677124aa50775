package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// RequireSession gates the dashboard route group: any authenticated role
// may enter. Per-operation tiers are deliberately NOT checked here; the
// policy table is enforced once, in the service layer, so the rules cannot
// drift between the transport and the core.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get(ContextRole).(domain.Role)
			if !role.Valid() {
				return domain.ErrUnauthorized
			}
			return next(c)
		}
	}
}
