// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"oxonnsite/internal/blog"
	"oxonnsite/internal/content"
	"oxonnsite/internal/models"
)

// Content groups the read-only JSON endpoints over the insight library and
// the static content store. Every read is served from the library's
// TTL-bounded snapshot; unknown slugs are 404s, never errors.
type Content struct {
	library *blog.Library
	now     func() time.Time
}

// NewContent creates the content handler group.
func NewContent(library *blog.Library) *Content {
	return &Content{library: library, now: time.Now}
}

// ListInsights handles GET /api/insights with an optional category filter.
func (h *Content) ListInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if category := r.URL.Query().Get("category"); category != "" {
		posts := h.library.PostsByCategory(ctx, h.now(), models.Category(category))
		writeJSON(w, http.StatusOK, map[string]any{"posts": posts})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"posts": h.library.Posts(ctx, h.now())})
}

// InsightBySlug handles GET /api/insights/{slug}.
func (h *Content) InsightBySlug(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post := h.library.PostBySlug(r.Context(), h.now(), slug)
	if post == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// RelatedInsights handles GET /api/insights/{slug}/related. The current
// post is always excluded, and the result is capped by the optional limit
// query parameter.
func (h *Content) RelatedInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slug := chi.URLParam(r, "slug")

	post := h.library.PostBySlug(ctx, h.now(), slug)
	if post == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	limit := blog.DefaultRelatedLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	related := h.library.RelatedPosts(ctx, h.now(), post.Slug, post.Category, limit)
	writeJSON(w, http.StatusOK, map[string]any{"posts": related})
}

// InsightSlugs handles GET /api/insights/slugs, used for static path
// enumeration by the frontend build.
func (h *Content) InsightSlugs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"slugs": h.library.Slugs(r.Context(), h.now()),
	})
}

// ListServices handles GET /api/services.
func (h *Content) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"services": content.Services()})
}

// ServiceBySlug handles GET /api/services/{slug}.
func (h *Content) ServiceBySlug(w http.ResponseWriter, r *http.Request) {
	service := content.ServiceBySlug(chi.URLParam(r, "slug"))
	if service == nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, service)
}

// Team handles GET /api/team.
func (h *Content) Team(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"team": content.Team()})
}
