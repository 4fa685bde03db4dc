// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"
)

// DayDependencies defines the interface for day view operations.
type DayDependencies interface {
	Roster() []string
	Day(ctx context.Context, date string) (DayView, error)
}

// DayHandler handles day view requests.
type DayHandler struct {
	deps DayDependencies
}

// NewDayHandler creates a new day handler.
func NewDayHandler(deps DayDependencies) *DayHandler {
	return &DayHandler{deps: deps}
}

type dayResponse struct {
	DayView
	Roster []string `json:"roster"`
}

// HandleGetDay handles GET /api/day?date=YYYY-MM-DD requests. An absent
// date means today.
func (h *DayHandler) HandleGetDay(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	day, err := h.deps.Day(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dayResponse{DayView: day, Roster: h.deps.Roster()})
}
