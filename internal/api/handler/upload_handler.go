package handler

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/api/metrics"
	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// maxUploadBytes caps pass-through image uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// UploadHandler passes dashboard image uploads through to the object store
// and returns the public URL the content documents keep. The core never
// interprets the image itself.
type UploadHandler struct {
	store ports.ObjectStore
}

func NewUploadHandler(store ports.ObjectStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload accepts a multipart "file" field. Any authenticated role may
// upload: images are inert until a document references them, and document
// writes are where the policy tiers apply.
//
// @Summary      Upload an image
// @Tags         uploads
// @Accept       multipart/form-data
// @Produce      json
// @Success      201  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Router       /dashboard/uploads [post]
func (h *UploadHandler) Upload(c echo.Context) error {
	if !callerRole(c).Valid() {
		return domain.ErrUnauthorized
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if fh.Size > maxUploadBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "file too large")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable file")
	}
	defer src.Close()

	contentType := fh.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("uploads/%d-%s", time.Now().UnixNano(), filepath.Base(fh.Filename))
	url, err := h.store.Upload(c.Request().Context(), key, src, contentType)
	if err != nil {
		metrics.UploadsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.UploadsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "url": url})
}
