// Package model contains the persisted domain records passed between layers.
package model

import (
	"github.com/highOnBits/time-guess/internal/domain/timeofday"
)

// DailyRecord holds one calendar day of play: who guessed what, and the
// actual time once it has been revealed. ActualTime stays nil until every
// roster member has a guess in.
type DailyRecord struct {
	Guesses    map[string]timeofday.Time `json:"guesses"`
	ActualTime *timeofday.Time           `json:"actual_time,omitempty"`
}

// Revealed reports whether the day's actual time has been recorded.
func (r DailyRecord) Revealed() bool {
	return r.ActualTime != nil
}

// GuessCount returns the number of guesses submitted so far.
func (r DailyRecord) GuessCount() int {
	return len(r.Guesses)
}

// Clone returns a deep copy so callers can mutate freely.
func (r DailyRecord) Clone() DailyRecord {
	out := DailyRecord{}
	if r.Guesses != nil {
		out.Guesses = make(map[string]timeofday.Time, len(r.Guesses))
		for name, t := range r.Guesses {
			out.Guesses[name] = t
		}
	}
	if r.ActualTime != nil {
		t := *r.ActualTime
		out.ActualTime = &t
	}
	return out
}

// Document is the whole persisted state: every day ever played, keyed by
// ISO date ("YYYY-MM-DD"). It is loaded fresh and saved whole on each
// mutation; there is no partial-update path.
type Document map[string]DailyRecord

// Clone deep-copies the document.
func (d Document) Clone() Document {
	out := make(Document, len(d))
	for date, rec := range d {
		out[date] = rec.Clone()
	}
	return out
}

// RevealedDates returns the dates whose actual time has been recorded,
// in no particular order.
func (d Document) RevealedDates() []string {
	var dates []string
	for date, rec := range d {
		if rec.Revealed() {
			dates = append(dates, date)
		}
	}
	return dates
}
