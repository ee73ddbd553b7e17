// Package apperrors defines the typed error kinds the optimizer and its
// surrounding service raise.
package apperrors

import "fmt"

// DataError reports a problem with the input data the optimizer was asked
// to work on, such as a missing foreign key or a non-positive duration. It
// is never recovered internally; it propagates to the caller.
type DataError struct {
	Message string
	Err     error
}

func (e *DataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DataError) Unwrap() error { return e.Err }

// NewDataError builds a DataError with no wrapped cause.
func NewDataError(message string) *DataError {
	return &DataError{Message: message}
}

// WrapDataError attaches context to an existing error.
func WrapDataError(err error, message string) *DataError {
	return &DataError{Message: message, Err: err}
}

// InvariantViolation signals that a structural invariant of the schedule
// candidate was found broken. This is a programmer-visible bug, not a data
// problem; it is raised via panic and recovered exactly once at the
// Optimize boundary (and again at the HTTP Recover middleware), never
// silently swallowed.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return "invariant violation: " + e.Message
}

// Raise panics with an *InvariantViolation carrying message.
func Raise(message string) {
	panic(&InvariantViolation{Message: message})
}
