// File: api/errors.go
// Author: Jonathan Simmonds
// License: MIT
//
// Common error types and error handling utilities for the containers library.

package api

import "fmt"

// Common errors used across the library.
var (
	ErrOutOfRange = fmt.Errorf("index out of range")
	ErrEmpty      = fmt.Errorf("container is empty")
)

// ErrorCode represents specific error conditions in the library.
type ErrorCode int

const (
	ErrCodeOK ErrorCode = iota
	ErrCodeOutOfRange
	ErrCodeEmpty
	ErrCodeInvalidCapacity
)

// Error represents a structured error with code and context.
type Error struct {
	Code    ErrorCode
	Message string
	Context map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if len(e.Context) == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (context: %+v)", e.Message, e.Context)
}

// Unwrap maps the code to the matching sentinel so callers can use errors.Is.
func (e *Error) Unwrap() error {
	switch e.Code {
	case ErrCodeOutOfRange:
		return ErrOutOfRange
	case ErrCodeEmpty:
		return ErrEmpty
	default:
		return nil
	}
}

// NewError creates a new structured error.
func NewError(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Context: make(map[string]any),
	}
}

// WithContext adds context information to the error.
func (e *Error) WithContext(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// OutOfRange builds the error returned by checked indexed access when pos is
// not within [0, length).
func OutOfRange(pos, length int) *Error {
	return NewError(ErrCodeOutOfRange, ErrOutOfRange.Error()).
		WithContext("pos", pos).
		WithContext("len", length)
}
