// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/jonboulle/clockwork"

	repository "github.com/highOnBits/time-guess/internal/adapters/repository"
	"github.com/highOnBits/time-guess/internal/domain/game"
	"github.com/highOnBits/time-guess/internal/domain/leaderboard"
	"github.com/highOnBits/time-guess/internal/domain/model"
	"github.com/highOnBits/time-guess/internal/domain/timeofday"
	"github.com/highOnBits/time-guess/pkg/logger"
	"github.com/highOnBits/time-guess/pkg/metrics"
)

const dateLayout = "2006-01-02"

// Broadcaster pushes state snapshots to connected live clients.
type Broadcaster interface {
	Broadcast(data interface{})
	ClientCount() int
}

// DayView is the external shape of one day's round.
type DayView struct {
	Date       string          `json:"date"`
	State      game.State      `json:"state"`
	Guessed    []string        `json:"guessed"`
	Missing    []string        `json:"missing"`
	ActualTime *timeofday.Time `json:"actual_time,omitempty"`
}

// HistoryEntry is one day's line in the archive, newest first.
type HistoryEntry struct {
	Date       string                  `json:"date"`
	State      game.State              `json:"state"`
	ActualTime *timeofday.Time         `json:"actual_time,omitempty"`
	Results    []leaderboard.DayResult `json:"results,omitempty"`
}

// Snapshot is the frame broadcast to live clients after every mutation.
type Snapshot struct {
	Day       DayView                `json:"day"`
	Standings []leaderboard.Standing `json:"standings"`
}

// Service implements the API dependencies for the guessing game. All
// mutations go through a single mutex so concurrent requests serialize into
// clean load, change, save cycles against the document store.
type Service struct {
	mu sync.Mutex

	store  repository.Store
	roster game.Roster
	clock  clockwork.Clock
	hub    Broadcaster

	started bool

	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithStore sets the document store backing the service.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithRoster sets the fixed set of participants.
func WithRoster(roster game.Roster) Option {
	return func(s *Service) {
		if len(roster) > 0 {
			s.roster = roster
		}
	}
}

// WithClock overrides the wall clock used to derive "today".
func WithClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithHub sets the broadcaster notified after every mutation.
func WithHub(hub Broadcaster) Option {
	return func(s *Service) {
		s.hub = hub
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		clock:  clockwork.NewRealClock(),
		logger: nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start validates the wiring and primes gauges from the stored document.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}
	if s.store == nil {
		s.store = repository.NewFileStore("data/data.json")
	}
	if len(s.roster) == 0 {
		return ErrNoRoster
	}

	s.logger.Info(ctx, "starting game service...")

	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	s.refreshGauges(doc)

	s.started = true
	s.logger.Info(ctx, "game service started",
		logger.Any("roster", []string(s.roster)),
		logger.Int("trackedDays", len(doc)),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.started = false
	s.logger.Info(context.Background(), "game service stopped")
}

// Roster returns the participants, in configured order.
func (s *Service) Roster() []string {
	out := make([]string, len(s.roster))
	copy(out, s.roster)
	return out
}

// Today returns the current date in the service's clock.
func (s *Service) Today() string {
	return s.clock.Now().Format(dateLayout)
}

// Day returns the view of a single day. An empty date means today.
func (s *Service) Day(ctx context.Context, date string) (DayView, error) {
	if date == "" {
		date = s.Today()
	}
	doc, err := s.load(ctx)
	if err != nil {
		return DayView{}, err
	}
	return s.dayView(doc, date), nil
}

// SubmitGuess records a participant's guess for the date.
func (s *Service) SubmitGuess(ctx context.Context, date, participant string, guess timeofday.Time) (DayView, error) {
	if date == "" {
		date = s.Today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return DayView{}, err
	}

	if err := game.SubmitGuess(doc, s.roster, date, participant, guess); err != nil {
		metrics.RecordGuessRejected(rejectionReason(err))
		s.logger.Warn(ctx, "guess rejected",
			logger.String("date", date),
			logger.String("participant", participant),
			logger.Error(err),
		)
		return DayView{}, err
	}

	if err := s.save(ctx, doc); err != nil {
		return DayView{}, err
	}

	metrics.RecordGuessSubmitted(participant)
	s.logger.Info(ctx, "guess recorded",
		logger.String("date", date),
		logger.String("participant", participant),
		logger.String("guess", guess.String()),
	)
	s.afterMutation(doc, date)
	return s.dayView(doc, date), nil
}

// Reveal records the day's actual time, freezing the round, and returns the
// ranked results.
func (s *Service) Reveal(ctx context.Context, date string, actual timeofday.Time) ([]leaderboard.DayResult, error) {
	if date == "" {
		date = s.Today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	if err := game.Reveal(doc, s.roster, date, actual); err != nil {
		s.logger.Warn(ctx, "reveal rejected",
			logger.String("date", date),
			logger.Error(err),
		)
		return nil, err
	}

	if err := s.save(ctx, doc); err != nil {
		return nil, err
	}

	metrics.RecordReveal()
	s.logger.Info(ctx, "day revealed",
		logger.String("date", date),
		logger.String("actual", actual.String()),
	)
	s.afterMutation(doc, date)
	return leaderboard.DayResults(game.Record(doc, date), s.roster)
}

// ResetDay wipes a day's record, guesses and actual time alike.
func (s *Service) ResetDay(ctx context.Context, date string) (DayView, error) {
	if date == "" {
		date = s.Today()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load(ctx)
	if err != nil {
		return DayView{}, err
	}

	game.Reset(doc, date)

	if err := s.save(ctx, doc); err != nil {
		return DayView{}, err
	}

	metrics.RecordReset()
	s.logger.Info(ctx, "day reset", logger.String("date", date))
	s.afterMutation(doc, date)
	return s.dayView(doc, date), nil
}

// Results returns the ranked results for a revealed day.
func (s *Service) Results(ctx context.Context, date string) ([]leaderboard.DayResult, error) {
	if date == "" {
		date = s.Today()
	}
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.DayResults(game.Record(doc, date), s.roster)
}

// Standings returns the cumulative leaderboard across all revealed days.
func (s *Service) Standings(ctx context.Context) ([]leaderboard.Standing, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return leaderboard.Standings(doc, s.roster), nil
}

// History returns every tracked day, newest first.
func (s *Service) History(ctx context.Context) ([]HistoryEntry, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	dates := make([]string, 0, len(doc))
	for date := range doc {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	entries := make([]HistoryEntry, 0, len(dates))
	for _, date := range dates {
		rec := doc[date]
		entry := HistoryEntry{
			Date:       date,
			State:      s.roster.StateOf(rec),
			ActualTime: rec.ActualTime,
		}
		if rec.Revealed() {
			if results, err := leaderboard.DayResults(rec, s.roster); err == nil {
				entry.Results = results
			}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats(ctx context.Context) map[string]interface{} {
	stats := map[string]interface{}{
		"started": s.started,
		"today":   s.Today(),
		"roster":  s.Roster(),
	}

	if s.hub != nil {
		stats["liveClients"] = s.hub.ClientCount()
	}

	doc, err := s.load(ctx)
	if err != nil {
		stats["storeError"] = err.Error()
		return stats
	}

	guesses := 0
	for _, rec := range doc {
		guesses += rec.GuessCount()
	}
	stats["trackedDays"] = len(doc)
	stats["revealedDays"] = len(doc.RevealedDates())
	stats["totalGuesses"] = guesses
	stats["store"] = s.store.Info(ctx)

	return stats
}

func (s *Service) load(ctx context.Context) (model.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		metrics.RecordStoreError()
		s.logger.Error(ctx, "document load failed", logger.Error(err))
	}
	return doc, err
}

func (s *Service) save(ctx context.Context, doc model.Document) error {
	if err := s.store.Save(ctx, doc); err != nil {
		metrics.RecordStoreError()
		s.logger.Error(ctx, "document save failed", logger.Error(err))
		return err
	}
	return nil
}

// afterMutation pushes a fresh snapshot to live clients and refreshes the
// document gauges. Callers hold the mutex.
func (s *Service) afterMutation(doc model.Document, date string) {
	s.refreshGauges(doc)
	if s.hub != nil {
		s.hub.Broadcast(Snapshot{
			Day:       s.dayView(doc, date),
			Standings: leaderboard.Standings(doc, s.roster),
		})
	}
}

func (s *Service) refreshGauges(doc model.Document) {
	guesses := 0
	for _, rec := range doc {
		guesses += rec.GuessCount()
	}
	metrics.UpdateTrackedDays(len(doc))
	metrics.UpdateRevealedDays(len(doc.RevealedDates()))
	metrics.UpdateTotalGuesses(guesses)
	for _, st := range leaderboard.Standings(doc, s.roster) {
		metrics.UpdateParticipantWins(st.Name, st.Wins)
	}
}

func (s *Service) dayView(doc model.Document, date string) DayView {
	rec := game.Record(doc, date)

	guessed := make([]string, 0, len(s.roster))
	for _, name := range s.roster {
		if _, ok := rec.Guesses[name]; ok {
			guessed = append(guessed, name)
		}
	}

	return DayView{
		Date:       date,
		State:      s.roster.StateOf(rec),
		Guessed:    guessed,
		Missing:    s.roster.Missing(rec),
		ActualTime: rec.ActualTime,
	}
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, game.ErrInvalidParticipant):
		return "invalid_participant"
	case errors.Is(err, game.ErrDuplicateGuess):
		return "duplicate"
	case errors.Is(err, game.ErrAlreadyRevealed):
		return "revealed"
	default:
		return "other"
	}
}
