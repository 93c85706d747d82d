// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"oxonnsite/internal/ogimage"
)

// OGImage handles GET /api/og?title=&subtitle=, serving the 1200x630 PNG
// social preview card. Missing parameters fall back to the brand defaults.
func OGImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	img, err := ogimage.Render(q.Get("title"), q.Get("subtitle"))
	if err != nil {
		slog.Error("og image render failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(img)))
	w.Header().Set("Cache-Control", "public, max-age=86400, immutable")
	w.Write(img)
}
