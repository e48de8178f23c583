package errors

import (
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryElement  Category = "element"
	CategoryInject   Category = "inject"
	CategoryManifest Category = "manifest"
	CategoryConfig   Category = "config"
	CategoryCLI      Category = "cli"
)

// NSError is a structured error with a code, explanation and fix suggestion.
type NSError struct {
	// Code is a unique error identifier (e.g., "E201").
	Code string

	// Category is the error type (element, inject, etc.).
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Subject is the element name, token or source the error is about.
	Subject string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *NSError) Error() string {
	msg := e.Message
	if e.Detail != "" {
		msg = e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, msg)
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *NSError) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *NSError with the same code.
// Errors without a code only match themselves.
func (e *NSError) Is(target error) bool {
	t, ok := target.(*NSError)
	if !ok {
		return false
	}
	if e.Code == "" || t.Code == "" {
		return e == t
	}
	return e.Code == t.Code
}

// WithSubject records what the error is about.
func (e *NSError) WithSubject(s string) *NSError {
	e.Subject = s
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *NSError) WithSuggestion(s string) *NSError {
	e.Suggestion = s
	return e
}

// WithDetail adds a detailed explanation to the error.
func (e *NSError) WithDetail(d string) *NSError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *NSError) Wrap(err error) *NSError {
	e.Wrapped = err
	return e
}

// New creates an NSError from a registered error code.
func New(code string) *NSError {
	template, ok := registry[code]
	if !ok {
		return &NSError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &NSError{
		Code:       code,
		Category:   template.Category,
		Message:    template.Message,
		Suggestion: template.Suggestion,
	}
}

// Newf creates a new NSError with a formatted message (no code).
func Newf(category Category, format string, args ...any) *NSError {
	return &NSError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an NSError.
func FromError(err error, code string) *NSError {
	if err == nil {
		return nil
	}
	if ne, ok := err.(*NSError); ok {
		return ne
	}
	return New(code).Wrap(err)
}
