package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/api/metrics"
	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// ContactHandler accepts public contact-form submissions, the one
// unauthenticated write in the system.
type ContactHandler struct {
	leads ports.LeadService
}

func NewContactHandler(leads ports.LeadService) *ContactHandler {
	return &ContactHandler{leads: leads}
}

type contactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Message string `json:"message" validate:"required"`
}

// Submit persists the lead and notifies the studio. The visitor sees
// success even when one of the two paths failed; the form must never block
// on a transient fault.
//
// @Summary      Submit a contact inquiry
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Inquiry details"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Router       /v1/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead := &domain.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	}

	warned, err := h.leads.SubmitContact(c.Request().Context(), lead)
	if err != nil {
		return err
	}

	outcome := "clean"
	if warned {
		outcome = "degraded"
	}
	metrics.LeadsReceivedTotal.WithLabelValues(outcome).Inc()

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
