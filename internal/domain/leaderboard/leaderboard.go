// Package leaderboard derives rankings from the stored document. Everything
// here is a pure function of its inputs; nothing is persisted.
package leaderboard

import (
	"fmt"
	"sort"

	game "github.com/highOnBits/time-guess/internal/domain/game"
	model "github.com/highOnBits/time-guess/internal/domain/model"
	"github.com/highOnBits/time-guess/internal/domain/timeofday"
)

// DayResult is one participant's outcome on a revealed day.
type DayResult struct {
	Rank        int            `json:"rank"`
	Name        string         `json:"name"`
	Guess       timeofday.Time `json:"guess"`
	MissMinutes int            `json:"miss_minutes"`
	Miss        string         `json:"miss"`
	Winner      bool           `json:"winner"`
}

// Standing is one participant's cumulative line on the leaderboard.
// Wins is the primary metric; MissMinutes accumulates total error across
// revealed days as a secondary display value.
type Standing struct {
	Rank        int    `json:"rank"`
	Name        string `json:"name"`
	Wins        int    `json:"wins"`
	MissMinutes int    `json:"miss_minutes"`
	DaysPlayed  int    `json:"days_played"`
}

// DayResults ranks the roster's guesses against a revealed day's actual
// time, closest first. Ties share a rank, and every participant tied at the
// smallest miss is marked a winner. Fails with ErrNotRevealed for a day
// whose actual time is not recorded yet.
func DayResults(rec model.DailyRecord, roster game.Roster) ([]DayResult, error) {
	if !rec.Revealed() {
		return nil, fmt.Errorf("%w", ErrNotRevealed)
	}
	actual := *rec.ActualTime

	results := make([]DayResult, 0, len(roster))
	for _, name := range roster {
		guess, ok := rec.Guesses[name]
		if !ok {
			continue
		}
		miss := guess.DiffMinutes(actual)
		results = append(results, DayResult{
			Name:        name,
			Guess:       guess,
			MissMinutes: miss,
			Miss:        timeofday.FormatMiss(miss),
		})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].MissMinutes != results[j].MissMinutes {
			return results[i].MissMinutes < results[j].MissMinutes
		}
		return results[i].Name < results[j].Name
	})

	// Competition ranking: equal misses share a rank.
	for i := range results {
		if i > 0 && results[i].MissMinutes == results[i-1].MissMinutes {
			results[i].Rank = results[i-1].Rank
		} else {
			results[i].Rank = i + 1
		}
		results[i].Winner = results[i].Rank == 1
	}
	return results, nil
}

// Standings folds every revealed day in the document into cumulative
// standings for the roster. Days without a revealed actual time contribute
// nothing. Ordering: wins descending, then name ascending.
func Standings(doc model.Document, roster game.Roster) []Standing {
	wins := make(map[string]int, len(roster))
	miss := make(map[string]int, len(roster))
	played := make(map[string]int, len(roster))

	for _, date := range doc.RevealedDates() {
		results, err := DayResults(doc[date], roster)
		if err != nil {
			continue
		}
		for _, res := range results {
			played[res.Name]++
			miss[res.Name] += res.MissMinutes
			if res.Winner {
				wins[res.Name]++
			}
		}
	}

	standings := make([]Standing, 0, len(roster))
	for _, name := range roster {
		standings = append(standings, Standing{
			Name:        name,
			Wins:        wins[name],
			MissMinutes: miss[name],
			DaysPlayed:  played[name],
		})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].Wins != standings[j].Wins {
			return standings[i].Wins > standings[j].Wins
		}
		return standings[i].Name < standings[j].Name
	})
	for i := range standings {
		if i > 0 && standings[i].Wins == standings[i-1].Wins {
			standings[i].Rank = standings[i-1].Rank
		} else {
			standings[i].Rank = i + 1
		}
	}
	return standings
}
