package database

import "errors"

var (
	// ErrNotFound is returned when no document matches the identifier.
	// A syntactically invalid identifier maps to it as well.
	ErrNotFound = errors.New("document not found")

	// ErrDuplicate is returned when a unique index rejects an insert.
	ErrDuplicate = errors.New("duplicate document")
)
