package service

import "errors"

// ErrNoRoster is returned by Start when the service was built without a
// participant roster.
var ErrNoRoster = errors.New("service: no roster configured")
