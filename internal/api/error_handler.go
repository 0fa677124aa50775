package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/atelier-interiors/studio-api/internal/api/metrics"
	"github.com/atelier-interiors/studio-api/internal/core/domain"
)

// errorResponse is the canonical envelope for declined or failed
// operations. The success flag lets the dashboard treat every error reply
// uniformly: decline the action, keep rendering.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"success": false, "error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors map to deterministic HTTP codes. Unauthorized and
	// Forbidden are distinct internally but equally terse to the client:
	// denied mutations never explain why.
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		metrics.AuthDenialsTotal.WithLabelValues("unauthorized").Inc()
		return http.StatusUnauthorized, "not authorized"
	case errors.Is(err, domain.ErrForbidden):
		metrics.AuthDenialsTotal.WithLabelValues("forbidden").Inc()
		return http.StatusForbidden, "not authorized"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrInvalidLeadStatus):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
