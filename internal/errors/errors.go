package errors

import (
	"fmt"
)

// LensError is the structured error type for FundLens.
// It provides context for error handling, logging, and user presentation.
type LensError struct {
	// Code is the unique error code (e.g., "ERR_202_CATALOG_INVALID").
	Code string

	// Message is the human-readable error message.
	Message string

	// Category is the error category (Config, Catalog, Query, Internal).
	Category Category

	// Severity is the error severity level.
	Severity Severity

	// Details contains additional context as key-value pairs.
	Details map[string]string

	// Cause is the underlying error that caused this error.
	Cause error
}

// Error implements the error interface.
func (e *LensError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for error chain support.
func (e *LensError) Unwrap() error {
	return e.Cause
}

// Is checks if this error matches the target error by code.
// This enables errors.Is() to work with LensError.
func (e *LensError) Is(target error) bool {
	if t, ok := target.(*LensError); ok {
		return e.Code == t.Code
	}
	return false
}

// WithDetail adds a key-value detail to the error.
// Returns the error for method chaining.
func (e *LensError) WithDetail(key, value string) *LensError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

// New creates a new LensError with the given code and message.
// Category and severity are derived from the code.
func New(code string, message string, cause error) *LensError {
	return &LensError{
		Code:     code,
		Message:  message,
		Category: categoryFromCode(code),
		Severity: severityFromCode(code),
		Cause:    cause,
	}
}

// Wrap creates a LensError from an existing error.
// The error's message becomes the LensError message.
func Wrap(code string, err error) *LensError {
	if err == nil {
		return nil
	}
	return New(code, err.Error(), err)
}

// ConfigError creates a configuration-related error.
func ConfigError(message string, cause error) *LensError {
	return New(ErrCodeConfigInvalid, message, cause)
}

// CatalogError creates a catalog load/validation error.
// Catalog errors are fatal at construction time: the engine must never be
// handed a partially loaded catalog.
func CatalogError(message string, cause error) *LensError {
	return New(ErrCodeCatalogInvalid, message, cause)
}

// QueryError creates a query contract violation error.
func QueryError(message string, cause error) *LensError {
	return New(ErrCodeQueryEmpty, message, cause)
}

// InternalError creates an internal error.
func InternalError(message string, cause error) *LensError {
	return New(ErrCodeInternal, message, cause)
}

// IsFatal reports whether an error carries fatal severity.
func IsFatal(err error) bool {
	if e, ok := err.(*LensError); ok {
		return e.Severity == SeverityFatal
	}
	return false
}
