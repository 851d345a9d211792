package storage

import "errors"

// Sentinel errors for storage operations.
var (
	ErrNotFound = errors.New("entry not found")
	ErrStorage  = errors.New("storage error")
)
