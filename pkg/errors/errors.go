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
	ErrUnknown         ErrorCode = "UNKNOWN"
	ErrInternal        ErrorCode = "INTERNAL"
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	ErrNotImplemented  ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Mapping file errors
	ErrMalformedLine ErrorCode = "MALFORMED_LINE"
	ErrMissingTarget ErrorCode = "MISSING_TARGET"
	ErrSelfLink      ErrorCode = "SELF_LINK"

	// Link site errors
	ErrUnsupportedLinkSite    ErrorCode = "UNSUPPORTED_LINK_SITE"
	ErrUnclassifiableLinkSite ErrorCode = "UNCLASSIFIABLE_LINK_SITE"
	ErrBackupExists           ErrorCode = "BACKUP_EXISTS"
	ErrBackupFailure          ErrorCode = "BACKUP_FAILURE"
	ErrLinkCreationFailure    ErrorCode = "LINK_CREATION_FAILURE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// External process errors
	ErrEditorFailed ErrorCode = "EDITOR_FAILED"
)

// DroplinkError represents a structured error with code and details
type DroplinkError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DroplinkError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DroplinkError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DroplinkError) Is(target error) bool {
	var targetErr *DroplinkError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DroplinkError with the given code and message
func New(code ErrorCode, message string) *DroplinkError {
	return &DroplinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DroplinkError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DroplinkError {
	return &DroplinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DroplinkError
func Wrap(err error, code ErrorCode, message string) *DroplinkError {
	if err == nil {
		return nil
	}
	return &DroplinkError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DroplinkError {
	if err == nil {
		return nil
	}
	return &DroplinkError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DroplinkError) WithDetail(key string, value interface{}) *DroplinkError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dlErr *DroplinkError
	if errors.As(err, &dlErr) {
		return dlErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DroplinkError
func GetErrorCode(err error) ErrorCode {
	var dlErr *DroplinkError
	if errors.As(err, &dlErr) {
		return dlErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DroplinkError
func GetErrorDetails(err error) map[string]interface{} {
	var dlErr *DroplinkError
	if errors.As(err, &dlErr) {
		return dlErr.Details
	}
	return nil
}
