// Package errors provides structured, code-carrying errors for fileicons.
//
// Codes are stable strings so callers and tests can branch on the kind of
// failure without matching message text.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode identifies a category of failure
type ErrorCode string

const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Icon database errors. All of these are fatal at startup.
	ErrDatabaseLoad   ErrorCode = "DATABASE_LOAD"
	ErrDatabaseFormat ErrorCode = "DATABASE_FORMAT"
	ErrOffsetRange    ErrorCode = "OFFSET_RANGE"
	ErrPatternInvalid ErrorCode = "PATTERN_INVALID"

	// Output errors
	ErrOutputRender ErrorCode = "OUTPUT_RENDER"
)

// FileIconsError is an error with a code and optional structured details
type FileIconsError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FileIconsError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FileIconsError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is a FileIconsError with the same code
func (e *FileIconsError) Is(target error) bool {
	var targetErr *FileIconsError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FileIconsError with the given code and message
func New(code ErrorCode, message string) *FileIconsError {
	return &FileIconsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FileIconsError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FileIconsError {
	return &FileIconsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps err with a code and message. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *FileIconsError {
	if err == nil {
		return nil
	}
	return &FileIconsError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps err with a code and formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FileIconsError {
	if err == nil {
		return nil
	}
	return &FileIconsError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FileIconsError) WithDetail(key string, value interface{}) *FileIconsError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fiErr *FileIconsError
	if errors.As(err, &fiErr) {
		return fiErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown
func GetErrorCode(err error) ErrorCode {
	var fiErr *FileIconsError
	if errors.As(err, &fiErr) {
		return fiErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil
func GetErrorDetails(err error) map[string]interface{} {
	var fiErr *FileIconsError
	if errors.As(err, &fiErr) {
		return fiErr.Details
	}
	return nil
}
