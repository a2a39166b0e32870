package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Error codes for categorizing failures. Target-resolution codes map 1:1
// onto the conditions a caller may want to branch on; all of them are
// terminal for the current invocation.
const (
	ErrConfig           = "CONFIG"
	ErrState            = "STATE"
	ErrNotInitialized   = "NOT_INITIALIZED"
	ErrProviderConflict = "PROVIDER_CONFLICT"
	ErrMachineNotFound  = "MACHINE_NOT_FOUND"
	ErrNoMatch          = "NO_MATCH"
	ErrPattern          = "PATTERN"
	ErrMultiTarget      = "MULTI_TARGET"
	ErrCLI              = "CLI"
)

// Error is a structured error with code, message, suggestion, and optional
// cause. Rendered as:
//
//	✗ <What failed>
//
//	  <Why it failed - technical details>
//
//	  <How to fix it - actionable steps>
type Error struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// New creates a structured error with the given code, message, and suggestion.
func New(code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
	}
}

// Wrap wraps an existing error with a message, defaulting to ErrState code.
func Wrap(err error, message string) *Error {
	return &Error{
		Code:    ErrState,
		Message: message,
		Cause:   err,
	}
}

// WrapWithCode wraps an existing error with a specific code, message, and suggestion.
func WrapWithCode(err error, code, message, suggestion string) *Error {
	return &Error{
		Code:       code,
		Message:    message,
		Suggestion: suggestion,
		Cause:      err,
	}
}

// Error implements the error interface with the formatted three-part output.
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("✗ %s\n", e.Message))

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Cause.Error()))
	}

	if e.Suggestion != "" {
		b.WriteString(fmt.Sprintf("\n  %s\n", e.Suggestion))
	}

	return b.String()
}

// Unwrap returns the underlying cause for use with errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// IsCode checks if an error is a structured Error with the given code.
func IsCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var machErr *Error
	if errors.As(err, &machErr) {
		return machErr.Code == code
	}
	return false
}
