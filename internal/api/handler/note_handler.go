package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// NoteHandler exposes the studio broadcast note.
type NoteHandler struct {
	notes ports.NoteService
}

func NewNoteHandler(notes ports.NoteService) *NoteHandler {
	return &NoteHandler{notes: notes}
}

type noteRequest struct {
	Text string `json:"text" validate:"required"`
}

// Get returns the current note; public, always renders.
func (h *NoteHandler) Get(c echo.Context) error {
	note, err := h.notes.Get(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}

// Put rewrites the note; any authenticated role. The author is taken from
// the session, not the payload.
func (h *NoteHandler) Put(c echo.Context) error {
	var req noteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	note, err := h.notes.Put(c.Request().Context(), callerRole(c), req.Text, callerName(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, note)
}
