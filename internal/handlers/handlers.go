package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"tanvir.dev/internal/config"
	"tanvir.dev/internal/content"
	"tanvir.dev/internal/middleware"
	"tanvir.dev/internal/services"
	"tanvir.dev/internal/site"
	"tanvir.dev/internal/views"
	"tanvir.dev/web"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, bundle *content.Bundle) (http.Handler, error) {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(chimw.GetHead)

	// Initialize services
	projectService := services.NewProjectService(bundle.Projects)

	renderer, err := views.NewRenderer(web.FS())
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}
	composer := views.NewComposer(projectService, bundle.Copy, views.Options{
		SiteTitle:  cfg.Site.Title,
		Owner:      cfg.Site.Owner,
		CVURL:      cfg.Site.CVURL,
		ActiveRule: cfg.ActiveRule(),
	})

	// Initialize handlers
	pageHandler := NewPageHandler(composer, renderer)
	projectHandler := NewProjectHandler(projectService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.FS(web.Static()))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Pages. Every page path goes through site.Resolve, so the router only
	// decides which requests are pages at all.
	for _, rt := range site.Routes {
		r.Get(rt.Path, pageHandler.ServePage)
	}
	r.Get(site.ProjectPrefix+"*", pageHandler.ServePage)
	r.NotFound(pageHandler.ServePage)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON: %v", err)
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
