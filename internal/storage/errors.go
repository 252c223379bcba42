package storage

import "errors"

var (
	// ErrNotFound is returned when no recipe carries the requested ID
	ErrNotFound = errors.New("recipe not found")

	// ErrIndexOutOfRange is returned for positions outside the collection
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrIDMismatch is returned when a replacement would change a recipe's identity
	ErrIDMismatch = errors.New("replacement recipe has a different ID")
)
