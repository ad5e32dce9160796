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

	// Source configuration errors
	ErrConfigLoad   ErrorCode = "CONFIG_LOAD"
	ErrConfigParse  ErrorCode = "CONFIG_PARSE"
	ErrConfigExists ErrorCode = "CONFIG_EXISTS"

	// Tool settings and device profile errors
	ErrSettingsLoad    ErrorCode = "SETTINGS_LOAD"
	ErrProfileInvalid  ErrorCode = "PROFILE_INVALID"
	ErrUnknownDevice   ErrorCode = "UNKNOWN_DEVICE"
	ErrNoSections      ErrorCode = "NO_SECTIONS"
	ErrTemplateMissing ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrMissingOption   ErrorCode = "MISSING_OPTION"
	ErrInvalidMode     ErrorCode = "INVALID_MODE"

	// Destination errors
	ErrDestinationExists ErrorCode = "DEST_EXISTS"
	ErrFileWrite         ErrorCode = "FILE_WRITE"
)

// GenError represents a structured error with code and details
type GenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *GenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *GenError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target carries the same code.
func (e *GenError) Is(target error) bool {
	var targetErr *GenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new GenError with the given code and message
func New(code ErrorCode, message string) *GenError {
	return &GenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new GenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *GenError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a GenError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *GenError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *GenError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *GenError) WithDetail(key string, value interface{}) *GenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a GenError
func GetErrorCode(err error) ErrorCode {
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a GenError
func GetErrorDetails(err error) map[string]interface{} {
	var genErr *GenError
	if errors.As(err, &genErr) {
		return genErr.Details
	}
	return nil
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
