package utils

import (
	"errors"
	"fmt"
)

type ErrorType int

const (
	ErrorTypeFileSystem ErrorType = iota
	ErrorTypeValidation
	ErrorTypeWindow
	ErrorTypeDialog
	ErrorTypeConfig
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeFileSystem:
		return "filesystem"
	case ErrorTypeValidation:
		return "validation"
	case ErrorTypeWindow:
		return "window"
	case ErrorTypeDialog:
		return "dialog"
	case ErrorTypeConfig:
		return "config"
	default:
		return "unknown"
	}
}

type ShellError struct {
	Type    ErrorType
	Message string
	Cause   error
	Context map[string]interface{}
}

func (e *ShellError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ShellError) Unwrap() error {
	return e.Cause
}

func newShellError(t ErrorType, message string, cause error) *ShellError {
	return &ShellError{
		Type:    t,
		Message: message,
		Cause:   cause,
	}
}

func NewFileSystemError(message string, cause error) *ShellError {
	return newShellError(ErrorTypeFileSystem, message, cause)
}

func NewValidationError(message string, cause error) *ShellError {
	return newShellError(ErrorTypeValidation, message, cause)
}

func NewWindowError(message string, cause error) *ShellError {
	return newShellError(ErrorTypeWindow, message, cause)
}

func NewDialogError(message string, cause error) *ShellError {
	return newShellError(ErrorTypeDialog, message, cause)
}

func NewConfigError(message string, cause error) *ShellError {
	return newShellError(ErrorTypeConfig, message, cause)
}

func (e *ShellError) WithContext(key string, value interface{}) *ShellError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

func isType(err error, t ErrorType) bool {
	var se *ShellError
	if errors.As(err, &se) {
		return se.Type == t
	}
	return false
}

func IsFileSystemError(err error) bool {
	return isType(err, ErrorTypeFileSystem)
}

func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

func IsWindowError(err error) bool {
	return isType(err, ErrorTypeWindow)
}

func IsDialogError(err error) bool {
	return isType(err, ErrorTypeDialog)
}

func IsConfigError(err error) bool {
	return isType(err, ErrorTypeConfig)
}
