// Package game owns the daily guessing rules: one guess per participant per
// day, reveal only once everyone has guessed, reveal locks the day, reset
// wipes it. Operations are pure functions over an explicit Document; there
// is no hidden process-wide state.
package game

import (
	"fmt"

	"github.com/highOnBits/time-guess/internal/domain/model"
	"github.com/highOnBits/time-guess/internal/domain/timeofday"
)

// State describes where a day sits in its lifecycle.
type State string

// Day lifecycle. A revealed day is terminal until reset.
const (
	StateEmpty         State = "empty"
	StateGuessing      State = "guessing"
	StateReadyToReveal State = "ready_to_reveal"
	StateRevealed      State = "revealed"
)

// StateOf derives the lifecycle state of rec for the given roster.
func (r Roster) StateOf(rec model.DailyRecord) State {
	switch {
	case rec.Revealed():
		return StateRevealed
	case rec.GuessCount() == 0:
		return StateEmpty
	case r.Complete(rec):
		return StateReadyToReveal
	default:
		return StateGuessing
	}
}

// Record returns the day's record, an empty one if the date has never been
// played. Never fails.
func Record(doc model.Document, date string) model.DailyRecord {
	if rec, ok := doc[date]; ok {
		return rec
	}
	return model.DailyRecord{}
}

// SubmitGuess stores a participant's guess for the date, creating the day's
// record on first use. First guess wins: resubmitting fails with
// ErrDuplicateGuess rather than overwriting. Guesses are locked once the
// day is revealed.
func SubmitGuess(doc model.Document, roster Roster, date, participant string, t timeofday.Time) error {
	if !roster.Contains(participant) {
		return fmt.Errorf("%w: %q", ErrInvalidParticipant, participant)
	}
	rec := Record(doc, date)
	if rec.Revealed() {
		return fmt.Errorf("%w: %s", ErrAlreadyRevealed, date)
	}
	if _, ok := rec.Guesses[participant]; ok {
		return fmt.Errorf("%w: %q on %s", ErrDuplicateGuess, participant, date)
	}
	if rec.Guesses == nil {
		rec.Guesses = make(map[string]timeofday.Time, RosterSize)
	}
	rec.Guesses[participant] = t
	doc[date] = rec
	return nil
}

// Reveal records the actual time for the date, freezing the day. It fails
// with ErrIncompleteGuesses until every roster member has guessed, and with
// ErrAlreadyRevealed on a second attempt.
func Reveal(doc model.Document, roster Roster, date string, t timeofday.Time) error {
	rec := Record(doc, date)
	if rec.Revealed() {
		return fmt.Errorf("%w: %s", ErrAlreadyRevealed, date)
	}
	if missing := roster.Missing(rec); len(missing) > 0 {
		return fmt.Errorf("%w: waiting on %v", ErrIncompleteGuesses, missing)
	}
	rec.ActualTime = &t
	doc[date] = rec
	return nil
}

// Reset deletes the date's record entirely, guesses and actual time both.
// Resetting an absent date is a no-op; other dates are never touched.
func Reset(doc model.Document, date string) {
	delete(doc, date)
}
