// Copyright (c) 2026 OXONN Technologies <contact@oxonn-tech.com>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP API: form submissions, insight and
// content reads, and the Open Graph image endpoint.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// writeJSON serializes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError sends a JSON error body with a human-readable message.
// Internal error detail never goes through here.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
