// Package errors provides custom error types for the shelfmark system.
// These errors enable better error handling, programmatic error checking,
// and improved debugging throughout the application.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// As is an alias for the standard library errors.As.
var As = errors.As

// Is is an alias for the standard library errors.Is.
var Is = errors.Is

// Common sentinel errors for the shelfmark system
var (
	// ErrNotFound indicates that a requested record was not found
	ErrNotFound = errors.New("not found")

	// ErrMalformedEntry indicates that a catalog line or operation string
	// failed structural or field-level validation
	ErrMalformedEntry = errors.New("malformed book entry")

	// ErrInvalidISBN indicates that an ISBN is not exactly 13 digits
	ErrInvalidISBN = errors.New("invalid ISBN")

	// ErrDuplicateISBN indicates that more than one record shares an ISBN
	ErrDuplicateISBN = errors.New("duplicate ISBN")

	// ErrInsufficientArguments indicates too few command-line arguments
	ErrInsufficientArguments = errors.New("insufficient arguments")

	// ErrInvalidFileName indicates the catalog path has the wrong extension
	ErrInvalidFileName = errors.New("invalid file name")
)

// MalformedEntryError represents a catalog line or operation string that
// failed structural or field-level validation
type MalformedEntryError struct {
	Field   string // Field that failed validation, if known
	Value   string // Offending raw value
	Message string
}

// Error implements the error interface
func (e *MalformedEntryError) Error() string {
	return e.Message
}

// Is implements errors.Is support
func (e *MalformedEntryError) Is(target error) bool {
	return target == ErrMalformedEntry
}

// NewMalformedEntryError creates a new MalformedEntryError
func NewMalformedEntryError(field, value, message string) *MalformedEntryError {
	return &MalformedEntryError{Field: field, Value: value, Message: message}
}

// InvalidISBNError represents an ISBN that is not exactly 13 ASCII digits
type InvalidISBNError struct {
	ISBN    string
	Message string
}

// Error implements the error interface
func (e *InvalidISBNError) Error() string {
	return e.Message
}

// Is implements errors.Is support
func (e *InvalidISBNError) Is(target error) bool {
	return target == ErrInvalidISBN
}

// NewInvalidISBNError creates a new InvalidISBNError
func NewInvalidISBNError(isbn, message string) *InvalidISBNError {
	return &InvalidISBNError{ISBN: isbn, Message: message}
}

// DuplicateISBNError signals a corrupt catalog where an ISBN search matched
// more than one record
type DuplicateISBNError struct {
	ISBN  string
	Count int
}

// Error implements the error interface
func (e *DuplicateISBNError) Error() string {
	return fmt.Sprintf("More than one book with this ISBN was found: %s", e.ISBN)
}

// Is implements errors.Is support
func (e *DuplicateISBNError) Is(target error) bool {
	return target == ErrDuplicateISBN
}

// NewDuplicateISBNError creates a new DuplicateISBNError
func NewDuplicateISBNError(isbn string, count int) *DuplicateISBNError {
	return &DuplicateISBNError{ISBN: isbn, Count: count}
}

// UsageError represents invalid command-line usage
type UsageError struct {
	Kind    error // ErrInsufficientArguments or ErrInvalidFileName
	Message string
}

// Error implements the error interface
func (e *UsageError) Error() string {
	return e.Message
}

// Is implements errors.Is support
func (e *UsageError) Is(target error) bool {
	return target == e.Kind
}

// NewInsufficientArgumentsError creates a UsageError for too few arguments
func NewInsufficientArgumentsError(message string) *UsageError {
	return &UsageError{Kind: ErrInsufficientArguments, Message: message}
}

// NewInvalidFileNameError creates a UsageError for a bad catalog path
func NewInvalidFileNameError(message string) *UsageError {
	return &UsageError{Kind: ErrInvalidFileName, Message: message}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "append"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// LineError pairs a raw catalog line with the validation error it produced.
// Load reports these without aborting; callers surface them in the summary.
type LineError struct {
	Line string // raw offending line text, already trimmed
	Err  error
}

// Error implements the error interface
func (e *LineError) Error() string {
	return fmt.Sprintf("invalid catalog line %q: %v", e.Line, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *LineError) Unwrap() error {
	return e.Err
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsMalformedEntry checks if an error is a malformed entry error
func IsMalformedEntry(err error) bool {
	return errors.Is(err, ErrMalformedEntry)
}

// IsInvalidISBN checks if an error is an invalid ISBN error
func IsInvalidISBN(err error) bool {
	return errors.Is(err, ErrInvalidISBN)
}

// IsDuplicateISBN checks if an error is a duplicate ISBN error
func IsDuplicateISBN(err error) bool {
	return errors.Is(err, ErrDuplicateISBN)
}

// IsUsageError checks if an error is a command-line usage error
func IsUsageError(err error) bool {
	return errors.Is(err, ErrInsufficientArguments) || errors.Is(err, ErrInvalidFileName)
}

// Kind maps an error to its classification name for audit logging and
// run summaries. Unknown errors classify as "Unexpected".
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidISBN):
		return "InvalidISBN"
	case errors.Is(err, ErrDuplicateISBN):
		return "DuplicateISBN"
	case errors.Is(err, ErrMalformedEntry):
		return "MalformedBookEntry"
	case errors.Is(err, ErrInsufficientArguments):
		return "InsufficientArguments"
	case errors.Is(err, ErrInvalidFileName):
		return "InvalidFileName"
	default:
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			return "IOError"
		}
		return "Unexpected"
	}
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapLine wraps a validation error with the raw line that produced it
func WrapLine(line string, err error) error {
	if err == nil {
		return nil
	}
	return &LineError{Line: line, Err: err}
}
