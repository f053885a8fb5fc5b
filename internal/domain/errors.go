package domain

import "errors"

// Sentinel errors returned by store operations. Callers distinguish them
// with errors.Is; the HTTP layer maps them to status codes.
var (
	// ErrNotFound is returned when an edit, delete or lookup targets an
	// id that does not exist (or existed and was deleted).
	ErrNotFound = errors.New("bookmark not found")

	// ErrValidation is returned when a title or URL is empty or malformed.
	// Always wrapped with a message naming the offending field.
	ErrValidation = errors.New("invalid bookmark")
)
