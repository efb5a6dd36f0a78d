// Package errors provides domain-specific error types for the autoport application.
//
// This package defines structured errors with error codes, making it easier to handle
// and test different error conditions consistently across the application.
package errors

import "fmt"

// ErrorCode represents a category of error that can occur in the application.
type ErrorCode string

const (
	// ErrCodeConfig indicates a settings or rule-file loading error.
	ErrCodeConfig ErrorCode = "CONFIG_ERROR"

	// ErrCodeRules indicates an invalid rule table (structural validation failure).
	ErrCodeRules ErrorCode = "RULES_ERROR"

	// ErrCodeTransport indicates an error communicating with the switch eAPI.
	ErrCodeTransport ErrorCode = "TRANSPORT_ERROR"

	// ErrCodeApply indicates a failure while pushing interface configuration.
	ErrCodeApply ErrorCode = "APPLY_ERROR"

	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Error represents a domain-specific error with an error code and optional cause.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a new domain error with the specified code and message.
func New(code ErrorCode, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   nil,
	}
}

// Wrap creates a new domain error wrapping an existing error.
func Wrap(code ErrorCode, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a new settings/rule-file loading error.
func NewConfigError(message string, cause error) *Error {
	return Wrap(ErrCodeConfig, message, cause)
}

// NewRulesError creates a new rule-table validation error.
func NewRulesError(message string, cause error) *Error {
	return Wrap(ErrCodeRules, message, cause)
}

// NewTransportError creates a new switch communication error.
func NewTransportError(message string, cause error) *Error {
	return Wrap(ErrCodeTransport, message, cause)
}

// NewApplyError creates a new configuration push error.
func NewApplyError(message string, cause error) *Error {
	return Wrap(ErrCodeApply, message, cause)
}

// NewInternalError creates a new internal error.
func NewInternalError(message string, cause error) *Error {
	return Wrap(ErrCodeInternal, message, cause)
}
