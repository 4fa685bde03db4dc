package repository

import "errors"

// Sentinel kinds for storage errors.
var (
	// ErrStorageUnavailable covers unreadable, unwritable, or corrupt
	// state. The service surfaces it; it never attempts repair.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
