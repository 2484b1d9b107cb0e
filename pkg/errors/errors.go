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

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"
	ErrOptionUnknown ErrorCode = "OPTION_UNKNOWN"
	ErrColorUnknown  ErrorCode = "COLOR_UNKNOWN"

	// Tree input errors
	ErrTreeParse   ErrorCode = "TREE_PARSE"
	ErrTreeInvalid ErrorCode = "TREE_INVALID"

	// Pager errors
	ErrPagerNotFound ErrorCode = "PAGER_NOT_FOUND"
	ErrPagerExec     ErrorCode = "PAGER_EXEC"
)

// SitterError represents a structured error with code and details
type SitterError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SitterError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SitterError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SitterError) Is(target error) bool {
	var targetErr *SitterError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SitterError with the given code and message
func New(code ErrorCode, message string) *SitterError {
	return &SitterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SitterError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SitterError {
	return &SitterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SitterError
func Wrap(err error, code ErrorCode, message string) *SitterError {
	if err == nil {
		return nil
	}
	return &SitterError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SitterError {
	if err == nil {
		return nil
	}
	return &SitterError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SitterError) WithDetail(key string, value interface{}) *SitterError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sitterErr *SitterError
	if errors.As(err, &sitterErr) {
		return sitterErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SitterError
func GetErrorCode(err error) ErrorCode {
	var sitterErr *SitterError
	if errors.As(err, &sitterErr) {
		return sitterErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SitterError
func GetErrorDetails(err error) map[string]interface{} {
	var sitterErr *SitterError
	if errors.As(err, &sitterErr) {
		return sitterErr.Details
	}
	return nil
}
