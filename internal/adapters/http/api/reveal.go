// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/highOnBits/time-guess/internal/domain/timeofday"
)

// RevealDependencies defines the interface for revealing a day.
type RevealDependencies interface {
	Reveal(ctx context.Context, date string, actual timeofday.Time) ([]DayResult, error)
}

// RevealHandler handles reveal requests.
type RevealHandler struct {
	deps RevealDependencies
}

// NewRevealHandler creates a new reveal handler.
func NewRevealHandler(deps RevealDependencies) *RevealHandler {
	return &RevealHandler{deps: deps}
}

// revealRequest mirrors the OpenAPI schema for POST /api/reveal.
type revealRequest struct {
	Date       string `json:"date"`
	ActualTime string `json:"actual_time"`
}

// HandlePostReveal handles POST /api/reveal requests. Responds with the
// day's ranked results.
func (h *RevealHandler) HandlePostReveal(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req revealRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if strings.TrimSpace(req.ActualTime) == "" {
		writeError(w, http.StatusBadRequest, "bad_request", errors.New("missing actual_time"))
		return
	}
	actual, err := timeofday.Parse(req.ActualTime)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	results, err := h.deps.Reveal(r.Context(), req.Date, actual)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}
