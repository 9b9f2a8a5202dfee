package applications

import "errors"

var (
	// ErrNotFound indicates the application does not exist.
	ErrNotFound = errors.New("application not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrForbidden indicates the caller may not act on this application.
	ErrForbidden = errors.New("forbidden")

	// ErrAlreadyApplied indicates the caller already applied to the posting.
	ErrAlreadyApplied = errors.New("already applied")

	// ErrInvalidTransition indicates the requested status change is not
	// reachable from the current status.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNotCancellable indicates the application has left the pending state.
	ErrNotCancellable = errors.New("only pending applications may be cancelled")

	// ErrPostingClosed indicates the posting is inactive or past its deadline.
	ErrPostingClosed = errors.New("job posting is closed")
)
