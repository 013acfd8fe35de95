package errors

import (
	"fmt"
)

// ParseError represents a style pack manifest that could not be decoded.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures manifest or configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// PackError indicates issues while discovering or loading a style pack.
type PackError struct {
	Pack    string
	Message string
	Err     error
}

// NewPackError constructs a PackError for the named style pack.
func NewPackError(pack string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &PackError{Pack: pack, Message: message, Err: err}
}

func (e *PackError) Error() string {
	if e == nil {
		return ""
	}
	if e.Pack != "" {
		return fmt.Sprintf("style pack %s: %s", e.Pack, e.Message)
	}
	return fmt.Sprintf("style pack error: %s", e.Message)
}

// Unwrap exposes the root error.
func (e *PackError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RegistryError indicates issues within component registration.
type RegistryError struct {
	Component string
	Message   string
	Err       error
}

// NewRegistryError constructs a RegistryError for the given component name.
func NewRegistryError(component string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &RegistryError{Component: component, Message: message, Err: err}
}

func (e *RegistryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Component != "" {
		return fmt.Sprintf("registry error: %s: %s", e.Component, e.Message)
	}
	return fmt.Sprintf("registry error: %s", e.Message)
}

// Unwrap exposes the root error.
func (e *RegistryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
