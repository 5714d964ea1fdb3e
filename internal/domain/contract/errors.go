package contract

import "errors"

var (
	// ErrNotFound is returned by repositories when no document matches.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateKey is returned when an insert violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)
