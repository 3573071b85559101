package service

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// Engine error taxonomy
// ---------------------------------------------------------------------------

// Sentinel errors for classifying engine failures with errors.Is. The engines
// emit structured error values only; rendering a user-facing, localized
// message is the caller's responsibility.
var (
	// ErrInvalidInput marks malformed or out-of-domain arguments.
	ErrInvalidInput = errors.New("invalid input")
	// ErrPreconditionViolation marks structurally incomplete records handed
	// to an engine.
	ErrPreconditionViolation = errors.New("precondition violation")
)

// InvalidInputError reports which field of an engine call was out of domain.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrInvalidInput) match.
func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// PreconditionError reports a structurally missing required field on a record
// handed to an engine.
type PreconditionError struct {
	Field  string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition violation: %s: %s", e.Field, e.Reason)
}

// Unwrap lets errors.Is(err, ErrPreconditionViolation) match.
func (e *PreconditionError) Unwrap() error { return ErrPreconditionViolation }

func invalidInput(field, reason string) error {
	return &InvalidInputError{Field: field, Reason: reason}
}

func precondition(field, reason string) error {
	return &PreconditionError{Field: field, Reason: reason}
}
