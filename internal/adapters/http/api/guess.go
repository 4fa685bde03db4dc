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

// GuessDependencies defines the interface for guess submission.
type GuessDependencies interface {
	SubmitGuess(ctx context.Context, date, participant string, guess timeofday.Time) (DayView, error)
}

// GuessHandler handles guess submissions.
type GuessHandler struct {
	deps GuessDependencies
}

// NewGuessHandler creates a new guess handler.
func NewGuessHandler(deps GuessDependencies) *GuessHandler {
	return &GuessHandler{deps: deps}
}

// guessRequest mirrors the OpenAPI schema for POST /api/guesses.
type guessRequest struct {
	Date        string `json:"date"`
	Participant string `json:"participant"`
	Guess       string `json:"guess"`
}

func (g guessRequest) validate() error {
	switch {
	case strings.TrimSpace(g.Participant) == "":
		return errors.New("missing participant")
	case strings.TrimSpace(g.Guess) == "":
		return errors.New("missing guess")
	}
	return nil
}

// HandlePostGuess handles POST /api/guesses requests. An absent date means
// today.
func (h *GuessHandler) HandlePostGuess(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req guessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", err)
		return
	}
	guess, err := timeofday.Parse(req.Guess)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	day, err := h.deps.SubmitGuess(r.Context(), req.Date, req.Participant, guess)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, day)
}
