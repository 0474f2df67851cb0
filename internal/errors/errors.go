// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates a request validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeUnknownTechnology indicates an option missing from the knowledge base
	TypeUnknownTechnology Type = "UNKNOWN_TECHNOLOGY"

	// TypeProvider indicates a failed or malformed AI provider call
	TypeProvider Type = "PROVIDER_ERROR"

	// TypeCatalog indicates an invalid knowledge catalog file
	TypeCatalog Type = "CATALOG_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// TypeOf returns the Type of the first *Error in err's chain, or "" if none.
func TypeOf(err error) Type {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Type
	}
	return ""
}

// IsType checks if any error in err's chain is of a specific type
func IsType(err error, t Type) bool {
	return err != nil && TypeOf(err) == t
}

// Input creates an input validation error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// UnknownTechnology reports an option the knowledge base cannot resolve.
func UnknownTechnology(name string) *Error {
	return Newf(TypeUnknownTechnology, "unknown technology: %s", name).WithContext("option", name)
}

// Provider wraps an AI provider failure
func Provider(provider string, cause error) *Error {
	return Wrap(TypeProvider, provider+" provider failed", cause).WithContext("provider", provider)
}

// Catalog creates a catalog error for the given file
func Catalog(file, message string) *Error {
	return Newf(TypeCatalog, "%s: %s", file, message)
}

// Config wraps a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
