package widget

import (
	"errors"
	"fmt"
)

// Error types for widget sessions

// ErrorType represents the category of error that occurred
type ErrorType int

const (
	// ErrTypeValidation indicates bad or missing identity input, detected
	// before any network interaction
	ErrTypeValidation ErrorType = iota
	// ErrTypeLoad indicates the embedded surface failed to render the target
	ErrTypeLoad
	// ErrTypeHTTP indicates the target responded with a non-success status
	ErrTypeHTTP
)

// UnknownCode is rendered in place of a missing load-failure code.
const UnknownCode = "unknown"

// String returns a human-readable name for the error type
func (et ErrorType) String() string {
	switch et {
	case ErrTypeValidation:
		return "Validation Error"
	case ErrTypeLoad:
		return "Load Error"
	case ErrTypeHTTP:
		return "HTTP Error"
	default:
		return fmt.Sprintf("ErrorType(%d)", et)
	}
}

// Error represents a failure of a widget session. Every failure path of
// the session controller resolves to one of these; none is fatal to the
// host.
type Error struct {
	Type        ErrorType // Category of error
	Message     string    // Validation message (validation errors only)
	Description string    // Description reported by the surface
	Code        string    // Machine code of a load failure (may be empty)
	StatusCode  int       // HTTP status (HTTP errors only)
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Type, e.Reason())
}

// Reason returns the exact text a rendering layer shows in place of the
// widget.
func (e *Error) Reason() string {
	switch e.Type {
	case ErrTypeLoad:
		code := e.Code
		if code == "" {
			code = UnknownCode
		}
		return fmt.Sprintf("Error loading widget: %s (Code: %s)", e.Description, code)
	case ErrTypeHTTP:
		return fmt.Sprintf("HTTP Error: %d - %s", e.StatusCode, e.Description)
	default:
		return e.Message
	}
}

// NewValidationError creates a validation error
func NewValidationError(message string) *Error {
	return &Error{
		Type:    ErrTypeValidation,
		Message: message,
	}
}

// NewLoadError creates a load error. code may be empty when the surface
// did not report one.
func NewLoadError(description, code string) *Error {
	return &Error{
		Type:        ErrTypeLoad,
		Description: description,
		Code:        code,
	}
}

// NewHTTPError creates an HTTP-level error
func NewHTTPError(statusCode int, description string) *Error {
	return &Error{
		Type:        ErrTypeHTTP,
		Description: description,
		StatusCode:  statusCode,
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrTypeValidation)
}

// IsLoadError checks if an error is a load error
func IsLoadError(err error) bool {
	return hasType(err, ErrTypeLoad)
}

// IsHTTPError checks if an error is an HTTP error
func IsHTTPError(err error) bool {
	return hasType(err, ErrTypeHTTP)
}

func hasType(err error, t ErrorType) bool {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Type == t
	}
	return false
}
