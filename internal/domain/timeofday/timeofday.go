// Package timeofday provides the wall-clock time value used throughout the
// game: minutes past midnight, rendered as 24-hour "HH:MM".
package timeofday

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Layout constants for the wire format.
const (
	minutesPerHour = 60
	hoursPerDay    = 24
	minutesPerDay  = hoursPerDay * minutesPerHour
)

// Time is a time of day expressed as minutes past midnight.
// The zero value is midnight ("00:00").
type Time int

// Parse converts a 24-hour "HH:MM" string into a Time.
// Anything else fails with ErrMalformedTime; callers at the API boundary
// translate that into a user-facing validation error.
func Parse(s string) (Time, error) {
	h, m, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(h) == 0 || len(h) > 2 || len(m) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	hours, err := strconv.Atoi(h)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minutes, err := strconv.Atoi(m)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	if hours < 0 || hours >= hoursPerDay || minutes < 0 || minutes >= minutesPerHour {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return Time(hours*minutesPerHour + minutes), nil
}

// String renders the canonical "HH:MM" form.
func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/minutesPerHour, int(t)%minutesPerHour)
}

// Valid reports whether t falls inside a single day.
func (t Time) Valid() bool {
	return t >= 0 && t < minutesPerDay
}

// DiffMinutes returns the absolute difference between two times on the
// linear minutes-past-midnight scale. Differences are never circular; the
// game assumes guess and actual fall on the same day.
func (t Time) DiffMinutes(other Time) int {
	d := int(t) - int(other)
	if d < 0 {
		d = -d
	}
	return d
}

// FormatMiss renders a minute count the way the results view shows it:
// "5m" below an hour, "1h 5m" above.
func FormatMiss(minutes int) string {
	if minutes < minutesPerHour {
		return fmt.Sprintf("%dm", minutes)
	}
	return fmt.Sprintf("%dh %dm", minutes/minutesPerHour, minutes%minutesPerHour)
}

// MarshalJSON encodes t as its "HH:MM" string so the persisted document
// matches the wire schema exactly.
func (t Time) MarshalJSON() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrMalformedTime, int(t))
	}
	return json.Marshal(t.String())
}

// UnmarshalJSON decodes an "HH:MM" string.
func (t *Time) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedTime, data)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
