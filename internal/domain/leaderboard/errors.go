package leaderboard

import "errors"

// Sentinel kinds for leaderboard errors.
var (
	ErrNotRevealed = errors.New("day not revealed yet")
)
