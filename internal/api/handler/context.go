package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/api/middleware"
	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// callerRole returns the role resolved by the session middleware, or
// RoleAnonymous when the request carries no valid session. Handlers pass it
// through to the service layer, which owns the policy decision.
func callerRole(c echo.Context) domain.Role {
	role, _ := c.Get(middleware.ContextRole).(domain.Role)
	return role
}

func callerName(c echo.Context) string {
	name, _ := c.Get(middleware.ContextUsername).(string)
	return name
}
