package handlers

import (
	"bytes"
	"log"
	"net/http"

	"tanvir.dev/internal/middleware"
	"tanvir.dev/internal/nav"
	"tanvir.dev/internal/site"
	"tanvir.dev/internal/views"
)

// PageHandler renders server-side pages
type PageHandler struct {
	composer *views.Composer
	renderer *views.Renderer
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(c *views.Composer, r *views.Renderer) *PageHandler {
	return &PageHandler{composer: c, renderer: r}
}

// ServePage handles every page route and unmatched path
func (h *PageHandler) ServePage(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	data := h.composer.Compose(site.Resolve(path), path, nav.MenuFromQuery(r.URL.Query()))

	// Render into a buffer so a template failure can still become a 500
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, data); err != nil {
		log.Printf("Error rendering %s [%s]: %v", path, middleware.GetRequestID(r.Context()), err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusOf(data))
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("Error writing %s: %v", path, err)
	}
}

// statusOf is 404 for the error page and for an unknown project id
func statusOf(d *views.PageData) int {
	switch {
	case d.Page == site.PageError:
		return http.StatusNotFound
	case d.Detail != nil && !d.Detail.Found():
		return http.StatusNotFound
	}
	return http.StatusOK
}
