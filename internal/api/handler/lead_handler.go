package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/api/metrics"
	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// LeadHandler exposes staff follow-up on inbound inquiries. Listing and
// mutating leads is admin-tier per the policy table; the service enforces it.
type LeadHandler struct {
	leads ports.LeadService
}

func NewLeadHandler(leads ports.LeadService) *LeadHandler {
	return &LeadHandler{leads: leads}
}

// Register mounts the lead routes on the dashboard group. Leads have no
// public surface beyond the contact form.
func (h *LeadHandler) Register(g *echo.Group) {
	g.GET("/leads", h.list)
	g.GET("/leads/:id", h.get)
	g.PATCH("/leads/:id/status", h.updateStatus)
	g.DELETE("/leads/:id", h.delete)
}

type leadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted"`
}

func (h *LeadHandler) list(c echo.Context) error {
	leads, err := h.leads.List(c.Request().Context(), callerRole(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, leads)
}

func (h *LeadHandler) get(c echo.Context) error {
	lead, err := h.leads.GetByID(c.Request().Context(), callerRole(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lead)
}

// updateStatus moves a lead between the follow-up states.
//
// @Summary      Update lead follow-up status
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Lead id"
// @Param        body  body      leadStatusRequest  true  "New status"
// @Success      200   {object}  map[string]bool
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /dashboard/leads/{id}/status [patch]
func (h *LeadHandler) updateStatus(c echo.Context) error {
	var req leadStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.leads.UpdateStatus(c.Request().Context(), callerRole(c), c.Param("id"), domain.LeadStatus(req.Status))
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(domain.ResourceLeads), "update").Inc()
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}

func (h *LeadHandler) delete(c echo.Context) error {
	if err := h.leads.Delete(c.Request().Context(), callerRole(c), c.Param("id")); err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(domain.ResourceLeads), "delete").Inc()
	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
