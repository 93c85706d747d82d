// Package router sets up all HTTP routes and middleware chains for the
// site backend.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"oxonnsite/internal/handlers"
	"oxonnsite/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(content *handlers.Content, forms *handlers.Forms) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Form submissions.
		r.Post("/contact", forms.Contact)
		r.Post("/newsletter", forms.Newsletter)

		// Open Graph preview image.
		r.Get("/og", handlers.OGImage)

		// Insights (blog).
		r.Route("/insights", func(r chi.Router) {
			r.Get("/", content.ListInsights)
			r.Get("/slugs", content.InsightSlugs)
			r.Get("/{slug}", content.InsightBySlug)
			r.Get("/{slug}/related", content.RelatedInsights)
		})

		// Static content.
		r.Get("/services", content.ListServices)
		r.Get("/services/{slug}", content.ServiceBySlug)
		r.Get("/team", content.Team)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
