package errors

import "errors"

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrInvalidTransition signals a challenge status change that the
	// pending -> done|skipped state machine does not allow.
	ErrInvalidTransition = errors.New("invalid status transition")
)
