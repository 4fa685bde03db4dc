package api

import (
	"errors"
	"net/http"

	repository "github.com/highOnBits/time-guess/internal/adapters/repository"
	"github.com/highOnBits/time-guess/internal/domain/game"
	"github.com/highOnBits/time-guess/internal/domain/leaderboard"
	"github.com/highOnBits/time-guess/internal/domain/timeofday"
)

// Sentinel kinds for API errors.
var (
	ErrServe      = errors.New("http serve failed")
	ErrBadRequest = errors.New("bad request")
)

// statusFor maps a service error to its HTTP status and machine-readable
// code. Anything unrecognized is a 500.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, timeofday.ErrMalformedTime):
		return http.StatusBadRequest, "malformed_time"
	case errors.Is(err, game.ErrInvalidParticipant):
		return http.StatusUnprocessableEntity, "invalid_participant"
	case errors.Is(err, game.ErrDuplicateGuess):
		return http.StatusConflict, "duplicate_guess"
	case errors.Is(err, game.ErrAlreadyRevealed):
		return http.StatusConflict, "already_revealed"
	case errors.Is(err, game.ErrIncompleteGuesses):
		return http.StatusConflict, "incomplete_guesses"
	case errors.Is(err, leaderboard.ErrNotRevealed):
		return http.StatusConflict, "not_revealed"
	case errors.Is(err, repository.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, "storage_unavailable"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	status, code := statusFor(err)
	writeError(w, status, code, err)
}
