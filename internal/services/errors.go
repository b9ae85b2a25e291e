package services

import (
	"errors"
	"fmt"
)

// Request-terminal error taxonomy. None of these are retried internally; the
// handlers map each to an HTTP status.
var (
	ErrNotFound         = errors.New("idea not found")
	ErrPasswordRequired = errors.New("password required for private idea")
	ErrPasswordInvalid  = errors.New("invalid password")
	ErrUnauthorized     = errors.New("unauthorized")
)

// ValidationError marks malformed input: a bad idea id, a missing required
// field, or a rating out of range.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// StoreError wraps a persistence failure. It is surfaced as a generic failure
// and logged; the triggering request is not retried.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
