package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/api/metrics"
	"github.com/atelier-interiors/studio-api/internal/api/middleware"
	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
	"github.com/atelier-interiors/studio-api/internal/core/token"
)

// AuthHandler manages the session cookie lifecycle.
type AuthHandler struct {
	authService ports.AuthService
	// secureCookies toggles the Secure attribute; on in production.
	secureCookies bool
}

func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secureCookies: secureCookies}
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	Authenticated bool        `json:"authenticated"`
	Username      string      `json:"username,omitempty"`
	Role          domain.Role `json:"role,omitempty"`
}

// Login authenticates a user and sets the session cookie.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	tkn, user, err := h.authService.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	h.setSessionCookie(c, tkn, int(token.TTL.Seconds()))
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Username:      user.Username,
		Role:          user.Role,
	})
}

// Logout clears the session cookie. Idempotent: logging out an anonymous
// caller is a no-op success.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	h.setSessionCookie(c, "", -1)
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

// Session reports the caller's current authentication state. Safe for
// anonymous callers; the dashboard uses it to decide what to render.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	role := callerRole(c)
	if !role.Valid() {
		return c.JSON(http.StatusOK, sessionResponse{Authenticated: false})
	}
	return c.JSON(http.StatusOK, sessionResponse{
		Authenticated: true,
		Username:      callerName(c),
		Role:          role,
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, value string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteStrictMode,
	})
}
