package store

import "errors"

var (
	// ErrNotFound is returned when no record matches the given lookup. Any
	// other storage failure is propagated wrapped, untranslated.
	ErrNotFound = errors.New("record not found")

	// ErrImmutableID is returned when an update tries to change a user's id.
	ErrImmutableID = errors.New("user id is immutable")
)
