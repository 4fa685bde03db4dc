// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// ResetDependencies defines the interface for wiping a day.
type ResetDependencies interface {
	ResetDay(ctx context.Context, date string) (DayView, error)
}

// ResetHandler handles reset requests.
type ResetHandler struct {
	deps ResetDependencies
}

// NewResetHandler creates a new reset handler.
func NewResetHandler(deps ResetDependencies) *ResetHandler {
	return &ResetHandler{deps: deps}
}

// resetRequest mirrors the OpenAPI schema for POST /api/reset. An empty
// body resets today.
type resetRequest struct {
	Date string `json:"date"`
}

// HandlePostReset handles POST /api/reset requests.
func (h *ResetHandler) HandlePostReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req resetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}

	day, err := h.deps.ResetDay(r.Context(), req.Date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}
