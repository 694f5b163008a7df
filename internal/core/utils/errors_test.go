package utils

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewFileSystemError(t *testing.T) {
	message := "stat failed"
	cause := errors.New("permission denied")

	err := NewFileSystemError(message, cause)

	if err == nil {
		t.Fatal("Expected error, got nil")
	}

	expectedMsg := "stat failed: permission denied"
	if err.Error() != expectedMsg {
		t.Errorf("Expected error message %q, got %q", expectedMsg, err.Error())
	}

	if !errors.Is(err, cause) {
		t.Error("Error should wrap the original cause")
	}
}

func TestErrorWithoutCause(t *testing.T) {
	message := "simple error"

	err := NewValidationError(message, nil)

	if err.Error() != message {
		t.Errorf("Expected error message %q, got %q", message, err.Error())
	}
}

func TestErrorTypes(t *testing.T) {
	cause := errors.New("base error")

	tests := []struct {
		name        string
		constructor func(string, error) *ShellError
		message     string
		wantType    ErrorType
	}{
		{"FileSystemError", NewFileSystemError, "filesystem error", ErrorTypeFileSystem},
		{"ValidationError", NewValidationError, "validation error", ErrorTypeValidation},
		{"WindowError", NewWindowError, "window error", ErrorTypeWindow},
		{"DialogError", NewDialogError, "dialog error", ErrorTypeDialog},
		{"ConfigError", NewConfigError, "config error", ErrorTypeConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.constructor(tt.message, cause)

			expectedMsg := tt.message + ": base error"
			if err.Error() != expectedMsg {
				t.Errorf("Expected %q, got %q", expectedMsg, err.Error())
			}
			if err.Type != tt.wantType {
				t.Errorf("Expected type %v, got %v", tt.wantType, err.Type)
			}
			if !errors.Is(err, cause) {
				t.Error("Error should wrap the cause")
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	wrapped := fmt.Errorf("dispatch: %w", NewValidationError("unknown command", nil))

	if !IsValidationError(wrapped) {
		t.Error("IsValidationError should see through fmt.Errorf wrapping")
	}
	if IsWindowError(wrapped) {
		t.Error("IsWindowError should be false for a validation error")
	}
	if !IsDialogError(NewDialogError("picker failed", nil)) {
		t.Error("IsDialogError should be true for a dialog error")
	}
	if !IsFileSystemError(NewFileSystemError("stat", nil)) {
		t.Error("IsFileSystemError should be true for a filesystem error")
	}
	if IsFileSystemError(errors.New("plain")) {
		t.Error("plain errors carry no type")
	}
}

func TestWithContext(t *testing.T) {
	err := NewWindowError("resize failed", nil).
		WithContext("width", 400).
		WithContext("height", 300)

	if len(err.Context) != 2 {
		t.Fatalf("Expected 2 context entries, got %d", len(err.Context))
	}
	if err.Context["width"] != 400 {
		t.Errorf("Expected width 400, got %v", err.Context["width"])
	}
}

func TestErrorTypeString(t *testing.T) {
	if ErrorTypeDialog.String() != "dialog" {
		t.Errorf("Expected dialog, got %s", ErrorTypeDialog.String())
	}
	if ErrorType(99).String() != "unknown" {
		t.Errorf("Expected unknown, got %s", ErrorType(99).String())
	}
}
