package timeofday

import "errors"

// Sentinel kinds for time parsing errors.
var (
	ErrMalformedTime = errors.New("malformed time of day")
)
