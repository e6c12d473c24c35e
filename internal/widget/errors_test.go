package widget

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Reason(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name:     "validation",
			err:      NewValidationError(ErrMsgEmptyPublicKey),
			expected: "publicKey must not be empty",
		},
		{
			name:     "load with code",
			err:      NewLoadError("The Internet connection appears to be offline.", "-1009"),
			expected: "Error loading widget: The Internet connection appears to be offline. (Code: -1009)",
		},
		{
			name:     "load without code",
			err:      NewLoadError("net::ERR_FAILED", ""),
			expected: "Error loading widget: net::ERR_FAILED (Code: unknown)",
		},
		{
			name:     "http",
			err:      NewHTTPError(404, "Not Found"),
			expected: "HTTP Error: 404 - Not Found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Reason(); got != tt.expected {
				t.Errorf("Reason() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	validation := NewValidationError("bad")
	load := NewLoadError("boom", "1")
	httpErr := NewHTTPError(500, "Internal Server Error")
	wrapped := fmt.Errorf("mount: %w", httpErr)
	plain := errors.New("plain")

	if !IsValidationError(validation) || IsValidationError(load) {
		t.Error("IsValidationError misclassified")
	}
	if !IsLoadError(load) || IsLoadError(httpErr) {
		t.Error("IsLoadError misclassified")
	}
	if !IsHTTPError(httpErr) || !IsHTTPError(wrapped) {
		t.Error("IsHTTPError should match direct and wrapped HTTP errors")
	}
	if IsValidationError(plain) || IsLoadError(plain) || IsHTTPError(plain) {
		t.Error("plain errors must not match any widget error type")
	}
}

func TestErrorType_String(t *testing.T) {
	if ErrTypeHTTP.String() != "HTTP Error" {
		t.Errorf("ErrTypeHTTP.String() = %q", ErrTypeHTTP.String())
	}
	if ErrorType(42).String() != "ErrorType(42)" {
		t.Errorf("unknown type String() = %q", ErrorType(42).String())
	}
}
