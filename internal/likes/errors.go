package likes

import "errors"

var (
	// ErrNotFound indicates the like does not exist.
	ErrNotFound = errors.New("like not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)
