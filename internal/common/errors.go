// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Storage errors.
	ErrNotFound        = errors.New("not found")
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")
	ErrStorageUnusable = errors.New("storage unusable")

	// Parsing assist errors.
	ErrNoSuggestion    = errors.New("no suggestion available")
	ErrPartialResponse = errors.New("partial parse response")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// IsRecoverable reports whether an error should degrade to prior/default
// state rather than surface. Everything in this application recovers; the
// only exceptions are programmer mistakes like a nil context.
func IsRecoverable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	return errors.Is(err, ErrSnapshotCorrupt) ||
		errors.Is(err, ErrNoSuggestion) ||
		errors.Is(err, ErrPartialResponse) ||
		errors.Is(err, ErrNotFound)
}
