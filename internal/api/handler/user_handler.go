package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// UserHandler exposes account provisioning. Every operation is super-admin
// tier; the service enforces it.
type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

func (h *UserHandler) Register(g *echo.Group) {
	g.GET("/users", h.list)
	g.GET("/users/:id", h.get)
	g.POST("/users", h.create)
	g.PUT("/users/:id", h.update)
	g.DELETE("/users/:id", h.delete)
}

type createUserRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"required,oneof=agent admin super-admin"`
}

type updateUserRequest struct {
	Username string `json:"username" validate:"omitempty,min=3"`
	// Empty password means "keep the current one".
	Password string `json:"password" validate:"omitempty,min=8"`
	Email    string `json:"email" validate:"omitempty,email"`
	Role     string `json:"role" validate:"omitempty,oneof=agent admin super-admin"`
}

func (h *UserHandler) list(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), callerRole(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserHandler) get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), callerRole(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

func (h *UserHandler) create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.users.Create(c.Request().Context(), callerRole(c), ports.CreateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]any{"success": true, "id": user.ID})
}

func (h *UserHandler) update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	_, err := h.users.Update(c.Request().Context(), callerRole(c), c.Param("id"), ports.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *UserHandler) delete(c echo.Context) error {
	if err := h.users.Delete(c.Request().Context(), callerRole(c), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
