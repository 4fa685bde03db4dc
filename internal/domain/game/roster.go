package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/highOnBits/time-guess/internal/domain/model"
)

// RosterSize is the fixed number of players. The game is built around three
// friends guessing against each other; the roster is configuration, never
// edited at runtime.
const RosterSize = 3

// Roster is the fixed, ordered set of participant names.
type Roster []string

// NewRoster validates and returns a roster. Names must be non-empty,
// unique, and exactly RosterSize in count.
func NewRoster(names ...string) (Roster, error) {
	if len(names) != RosterSize {
		return nil, fmt.Errorf("roster must have exactly %d participants, got %d", RosterSize, len(names))
	}
	seen := make(map[string]struct{}, len(names))
	out := make(Roster, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, errors.New("roster names must not be empty")
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("duplicate roster name %q", name)
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out, nil
}

// Contains reports whether name is on the roster.
func (r Roster) Contains(name string) bool {
	for _, n := range r {
		if n == name {
			return true
		}
	}
	return false
}

// Missing returns the roster members without a guess in rec, in roster order.
func (r Roster) Missing(rec model.DailyRecord) []string {
	var missing []string
	for _, name := range r {
		if _, ok := rec.Guesses[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Complete reports whether every roster member has a guess in rec.
func (r Roster) Complete(rec model.DailyRecord) bool {
	return len(r.Missing(rec)) == 0
}
