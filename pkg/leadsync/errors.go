package leadsync

import (
	"errors"
	"fmt"

	"github.com/jcanalytics/leadsync-go/pkg/leadsync/store"
)

// ErrNotFound indicates a required file or directory does not exist.
var ErrNotFound = store.ErrNotFound

// ErrSchema indicates a required logical column could not be resolved.
var ErrSchema = errors.New("required column not found")

// ErrValidation indicates malformed caller arguments.
var ErrValidation = errors.New("invalid request")

// ErrIO indicates a read, write or rename failure.
var ErrIO = errors.New("i/o failure")

// SchemaError reports the file and logical column that failed to resolve.
type SchemaError struct {
	File   string
	Column string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("column %q not found in %s", e.Column, e.File)
}

func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// NewSchemaError creates a new SchemaError.
func NewSchemaError(file, column string) *SchemaError {
	return &SchemaError{File: file, Column: column}
}

// ValidationError reports an argument rejected before any file I/O.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func validationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IOError represents a failed file operation.
type IOError struct {
	Op   string // "read", "write", "list", "archive"
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// NewIOError wraps err unless it already reports a missing file, which is
// passed through so callers can tell the two apart.
func NewIOError(op, path string, err error) error {
	if errors.Is(err, ErrNotFound) {
		return err
	}
	return &IOError{Op: op, Path: path, Err: err}
}

// Kind classifies err for structured failure results.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrValidation):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrSchema):
		return "schema"
	case errors.Is(err, ErrIO):
		return "io"
	default:
		return "internal"
	}
}
