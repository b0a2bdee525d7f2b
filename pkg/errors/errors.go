// Package errors provides structured error types for drift.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the CLI, the HTTP server and the render adapters
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: configuration and input validation failures
//   - RENDER_*: environment failures of the render back end
//   - NOT_FOUND: missing resources (cache entries, files)
//   - INTERNAL_*: unexpected internal errors
//
// Configuration errors (for example a combination slot with no variations) are fatal
// at construction time. Environment errors are caught at the adapter boundary and
// turn the animation into a frozen, user-visible error state.
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidConfiguration, "slot %q: cardinality must be positive", name)
//	if errors.Is(err, errors.ErrCodeInvalidConfiguration) {
//	    // Handle configuration error
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeRenderUnavailable, origErr, "window back end failed")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Configuration and input errors
	ErrCodeInvalidConfiguration Code = "INVALID_CONFIGURATION"
	ErrCodeInvalidInput         Code = "INVALID_INPUT"
	ErrCodeInvalidSeed          Code = "INVALID_SEED"
	ErrCodeInvalidPath          Code = "INVALID_PATH"

	// Environment errors
	ErrCodeRenderUnavailable Code = "RENDER_UNAVAILABLE"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	var env *EnvironmentError
	if errors.As(err, &env) {
		return env.Code() == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error carries no code.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	var env *EnvironmentError
	if errors.As(err, &env) {
		return env.Code()
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	var env *EnvironmentError
	if errors.As(err, &env) {
		return env.Error()
	}
	return err.Error()
}

// EnvironmentError reports that a render back end is unavailable or was lost
// mid-session. It is never retried; the session stays frozen until reload.
type EnvironmentError struct {
	Backend string // Name of the failing back end (e.g. "window")
	Err     error  // Underlying failure
}

// Error implements the error interface.
func (e *EnvironmentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s back end unavailable: %v", e.Backend, e.Err)
	}
	return fmt.Sprintf("%s back end unavailable", e.Backend)
}

// Unwrap returns the underlying failure.
func (e *EnvironmentError) Unwrap() error {
	return e.Err
}

// Code returns the error code for this error type.
func (e *EnvironmentError) Code() Code {
	return ErrCodeRenderUnavailable
}
