package core

import (
	"errors"
)

var (
	// ErrNotFound is returned when a requested record does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput marks a precondition failure detected before any collaborator call
	ErrInvalidInput = errors.New("invalid input")

	// ErrUpstream marks a failed call to the generation or validation model.
	// It is surfaced once to the caller and never retried internally.
	ErrUpstream = errors.New("upstream service failure")
)

// IsNotFoundError checks if an error is a "not found" error
func IsNotFoundError(err error) bool {
	return err != nil && errors.Is(err, ErrNotFound)
}

// IsInvalidInputError checks if an error is a precondition failure
func IsInvalidInputError(err error) bool {
	return err != nil && errors.Is(err, ErrInvalidInput)
}

// IsUpstreamError checks if an error came from a failed model call
func IsUpstreamError(err error) bool {
	return err != nil && errors.Is(err, ErrUpstream)
}
