package jobpostings

import "errors"

var (
	// ErrNotFound indicates the job posting does not exist.
	ErrNotFound = errors.New("job posting not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates the caller does not own the posting.
	ErrForbidden = errors.New("forbidden")
)
