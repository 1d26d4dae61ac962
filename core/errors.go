package core

import (
	"errors"
	"fmt"
)

// Sentinel errors. The constraint engine itself never fails; these are
// reported by the diagnostic validators and the session.
var (
	// ErrEmptyRange indicates a range whose lower bound exceeds its upper bound.
	ErrEmptyRange = errors.New("range lower bound exceeds upper bound")

	// ErrNegativeBound indicates a system limit below zero.
	ErrNegativeBound = errors.New("range bound is negative")

	// ErrLengthFloor indicates a length that cannot hold every class minimum.
	ErrLengthFloor = errors.New("length floor is below the sum of class minimums")

	// ErrSessionComplete indicates an update to a finalized session.
	ErrSessionComplete = errors.New("session is complete")
)

// ValidationError provides detailed validation failure information.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("validation error on %s: %s: %v", e.Field, e.Message, e.Err)
	}
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func newValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
