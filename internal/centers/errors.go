package centers

import "errors"

var (
	// ErrNotFound indicates the center does not exist.
	ErrNotFound = errors.New("center not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrAlreadyExists indicates the account already owns a center.
	ErrAlreadyExists = errors.New("center already registered")
)
