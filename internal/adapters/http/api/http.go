// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/highOnBits/time-guess/internal/adapters/ws"
	service "github.com/highOnBits/time-guess/internal/app"
	"github.com/highOnBits/time-guess/internal/domain/leaderboard"
	"github.com/highOnBits/time-guess/internal/domain/timeofday"
	"github.com/highOnBits/time-guess/pkg/logger"
)

// Read shapes returned by the service layer.
type (
	DayView      = service.DayView
	DayResult    = leaderboard.DayResult
	Standing     = leaderboard.Standing
	HistoryEntry = service.HistoryEntry
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	Roster() []string
	Today() string
	Day(ctx context.Context, date string) (DayView, error)
	SubmitGuess(ctx context.Context, date, participant string, guess timeofday.Time) (DayView, error)
	Reveal(ctx context.Context, date string, actual timeofday.Time) ([]DayResult, error)
	ResetDay(ctx context.Context, date string) (DayView, error)
	Results(ctx context.Context, date string) ([]DayResult, error)
	Standings(ctx context.Context) ([]Standing, error)
	History(ctx context.Context) ([]HistoryEntry, error)
	GetStats(ctx context.Context) map[string]interface{}
}

// Server wires HTTP routes for the business API.
type Server struct {
	dayHandler         *DayHandler
	guessHandler       *GuessHandler
	revealHandler      *RevealHandler
	resetHandler       *ResetHandler
	resultsHandler     *ResultsHandler
	leaderboardHandler *LeaderboardHandler
	historyHandler     *HistoryHandler
	statsHandler       *StatsHandler
	healthHandler      *HealthHandler
	qrHandler          *QRHandler

	hub *ws.Hub
}

// NewServer creates a new API server with all handlers. hub may be nil to
// disable the live endpoint; publicURL may be empty to disable /qr.
func NewServer(deps Dependencies, hub *ws.Hub, publicURL string) *Server {
	return &Server{
		dayHandler:         NewDayHandler(deps),
		guessHandler:       NewGuessHandler(deps),
		revealHandler:      NewRevealHandler(deps),
		resetHandler:       NewResetHandler(deps),
		resultsHandler:     NewResultsHandler(deps),
		leaderboardHandler: NewLeaderboardHandler(deps),
		historyHandler:     NewHistoryHandler(deps),
		statsHandler:       NewStatsHandler(deps),
		healthHandler:      NewHealthHandler(),
		qrHandler:          NewQRHandler(publicURL),
		hub:                hub,
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/qr", MetricsMiddleware(s.qrHandler.HandleQR, "qr"))
	mux.HandleFunc("/api/day", MetricsMiddleware(s.dayHandler.HandleGetDay, "day"))
	mux.HandleFunc("/api/guesses", MetricsMiddleware(s.guessHandler.HandlePostGuess, "guesses"))
	mux.HandleFunc("/api/reveal", MetricsMiddleware(s.revealHandler.HandlePostReveal, "reveal"))
	mux.HandleFunc("/api/reset", MetricsMiddleware(s.resetHandler.HandlePostReset, "reset"))
	mux.HandleFunc("/api/results", MetricsMiddleware(s.resultsHandler.HandleGetResults, "results"))
	mux.HandleFunc("/api/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/api/history", MetricsMiddleware(s.historyHandler.HandleGetHistory, "history"))

	if s.hub != nil {
		mux.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
			ws.ServeWS(s.hub, logger.Get(), w, r)
		})
	}
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
