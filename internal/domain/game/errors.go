package game

import "errors"

// Sentinel kinds for game rule violations. All of them are user-recoverable;
// the HTTP layer maps them onto 4xx responses.
var (
	ErrInvalidParticipant = errors.New("participant not on the roster")
	ErrDuplicateGuess     = errors.New("participant already guessed today")
	ErrAlreadyRevealed    = errors.New("actual time already revealed")
	ErrIncompleteGuesses  = errors.New("not every participant has guessed")
)
