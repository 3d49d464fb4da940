// Package errors provides coded errors for stencil.
//
// Every failure that leaves the reconciliation core carries a stable ErrorCode
// so callers and tests can branch on the kind of failure without matching on
// message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Manifest errors
	ErrManifestParse ErrorCode = "MANIFEST_PARSE"

	// Reconciliation errors
	ErrTemplateRender ErrorCode = "TEMPLATE_RENDER"
	ErrPrompt         ErrorCode = "PROMPT"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
)

// StencilError represents a structured error with code and details
type StencilError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *StencilError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *StencilError) Unwrap() error {
	return e.Wrapped
}

// Is matches any StencilError carrying the same code
func (e *StencilError) Is(target error) bool {
	var targetErr *StencilError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new StencilError with the given code and message
func New(code ErrorCode, message string) *StencilError {
	return &StencilError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new StencilError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *StencilError {
	return &StencilError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a StencilError
func Wrap(err error, code ErrorCode, message string) *StencilError {
	if err == nil {
		return nil
	}
	return &StencilError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *StencilError {
	if err == nil {
		return nil
	}
	return &StencilError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *StencilError) WithDetail(key string, value interface{}) *StencilError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *StencilError) WithDetails(details map[string]interface{}) *StencilError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var stencilErr *StencilError
	if errors.As(err, &stencilErr) {
		return stencilErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a StencilError
func GetErrorCode(err error) ErrorCode {
	var stencilErr *StencilError
	if errors.As(err, &stencilErr) {
		return stencilErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a StencilError
func GetErrorDetails(err error) map[string]interface{} {
	var stencilErr *StencilError
	if errors.As(err, &stencilErr) {
		return stencilErr.Details
	}
	return nil
}
