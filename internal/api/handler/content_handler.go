package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/atelier-interiors/studio-api/internal/api/metrics"
	"github.com/atelier-interiors/studio-api/internal/core/domain"
	"github.com/atelier-interiors/studio-api/internal/core/ports"
)

// ContentHandler is the one HTTP facade shared by every content collection.
// Public reads are served from the page cache when possible; the cache is
// repopulated on miss and dropped by the service layer on every mutation.
type ContentHandler[T any, D ports.Document[T]] struct {
	resource domain.Resource
	svc      ports.ContentService[T, D]
	cache    ports.PageCache
	slugged  bool
}

func NewContentHandler[T any, D ports.Document[T]](
	resource domain.Resource,
	svc ports.ContentService[T, D],
	cache ports.PageCache,
	slugged bool,
) *ContentHandler[T, D] {
	return &ContentHandler[T, D]{resource: resource, svc: svc, cache: cache, slugged: slugged}
}

// RegisterPublic mounts the read-only routes the marketing site consumes.
func (h *ContentHandler[T, D]) RegisterPublic(g *echo.Group) {
	base := "/" + string(h.resource)
	g.GET(base, h.publicList)
	g.GET(base+"/:id", h.publicGet)
	if h.slugged {
		g.GET(base+"/slug/:slug", h.publicGetBySlug)
	}
}

// RegisterDashboard mounts the full CRUD surface for staff.
func (h *ContentHandler[T, D]) RegisterDashboard(g *echo.Group) {
	base := "/" + string(h.resource)
	g.GET(base, h.list)
	g.GET(base+"/:id", h.get)
	g.POST(base, h.create)
	g.PUT(base+"/:id", h.update)
	g.DELETE(base+"/:id", h.delete)
}

func (h *ContentHandler[T, D]) publicList(c echo.Context) error {
	ctx := c.Request().Context()

	if h.cache != nil {
		if payload, err := h.cache.Get(ctx, h.resource, "list"); err == nil {
			return c.JSONBlob(http.StatusOK, payload)
		}
	}

	docs, err := h.svc.List(ctx, callerRole(c))
	if err != nil {
		return err
	}

	payload, err := json.Marshal(docs)
	if err != nil {
		return err
	}
	if h.cache != nil {
		// A failed fill only costs the next request a storage read.
		_ = h.cache.Set(ctx, h.resource, "list", payload, 0)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

func (h *ContentHandler[T, D]) publicGet(c echo.Context) error {
	return h.cachedGet(c, "id:"+c.Param("id"), func() (D, error) {
		return h.svc.GetByID(c.Request().Context(), callerRole(c), c.Param("id"))
	})
}

func (h *ContentHandler[T, D]) publicGetBySlug(c echo.Context) error {
	return h.cachedGet(c, "slug:"+c.Param("slug"), func() (D, error) {
		return h.svc.GetBySlug(c.Request().Context(), callerRole(c), c.Param("slug"))
	})
}

func (h *ContentHandler[T, D]) cachedGet(c echo.Context, key string, load func() (D, error)) error {
	ctx := c.Request().Context()

	if h.cache != nil {
		if payload, err := h.cache.Get(ctx, h.resource, key); err == nil {
			return c.JSONBlob(http.StatusOK, payload)
		}
	}

	doc, err := load()
	if err != nil {
		return err
	}

	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	if h.cache != nil {
		_ = h.cache.Set(ctx, h.resource, key, payload, 0)
	}
	return c.JSONBlob(http.StatusOK, payload)
}

// list serves the dashboard, always fresh from storage.
func (h *ContentHandler[T, D]) list(c echo.Context) error {
	docs, err := h.svc.List(c.Request().Context(), callerRole(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, docs)
}

func (h *ContentHandler[T, D]) get(c echo.Context) error {
	doc, err := h.svc.GetByID(c.Request().Context(), callerRole(c), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *ContentHandler[T, D]) create(c echo.Context) error {
	var doc T
	var d D = &doc
	if err := c.Bind(d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.svc.Create(c.Request().Context(), callerRole(c), d)
	if err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(h.resource), "create").Inc()
	return c.JSON(http.StatusCreated, map[string]any{"success": true, "id": id})
}

func (h *ContentHandler[T, D]) update(c echo.Context) error {
	var doc T
	var d D = &doc
	if err := c.Bind(d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(d); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.svc.Update(c.Request().Context(), callerRole(c), c.Param("id"), d); err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(h.resource), "update").Inc()
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}

func (h *ContentHandler[T, D]) delete(c echo.Context) error {
	if err := h.svc.Delete(c.Request().Context(), callerRole(c), c.Param("id")); err != nil {
		return err
	}

	metrics.ContentMutationsTotal.WithLabelValues(string(h.resource), "delete").Inc()
	return c.JSON(http.StatusOK, map[string]any{"success": true})
}
