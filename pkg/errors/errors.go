package errors

import (
	"fmt"
)

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
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

// ValidationError captures configuration validation issues.
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

// ColorError reports a colour value that could not be interpreted.
type ColorError struct {
	Value string
	Err   error
}

// NewColorError constructs a ColorError for the given raw colour value.
func NewColorError(value string, err error) error {
	return &ColorError{Value: value, Err: err}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid color %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid color %q", e.Value)
}

// Unwrap exposes the underlying error.
func (e *ColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// AudioError indicates the audio backend could not perform an operation.
type AudioError struct {
	Op  string
	Err error
}

// NewAudioError constructs an AudioError for the failed operation.
func NewAudioError(op string, err error) error {
	return &AudioError{Op: op, Err: err}
}

func (e *AudioError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("audio error [%s]: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("audio error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *AudioError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
