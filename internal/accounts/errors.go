package accounts

import "errors"

var (
	// ErrNotFound indicates the profile does not exist.
	ErrNotFound = errors.New("profile not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateEmail indicates the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	// Callers see one generic message for either case.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
