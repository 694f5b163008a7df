package security

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// MaxFilePathLength bounds paths accepted from the renderer.
const MaxFilePathLength = 4096

var pathTraversalPatterns = []string{
	"%2e%2e", "%252e%252e",
}

type ValidationError struct {
	Field   string
	Message string
	Value   string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error in field '%s': %s", e.Field, e.Message)
}

// PathValidator checks file paths that arrive over the renderer boundary
// before they reach the filesystem.
type PathValidator struct {
	allowedExtensions []string
}

func NewPathValidator(allowedExtensions []string) *PathValidator {
	return &PathValidator{allowedExtensions: allowedExtensions}
}

// ValidateFilePath requires an absolute, clean, UTF-8 path of bounded length
// with an allowed extension.
func (v *PathValidator) ValidateFilePath(field, path string) error {
	if path == "" {
		return ValidationError{Field: field, Message: "file path cannot be empty"}
	}
	if len(path) > MaxFilePathLength {
		return ValidationError{
			Field:   field,
			Message: fmt.Sprintf("value exceeds maximum length of %d characters", MaxFilePathLength),
			Value:   path[:100] + "...",
		}
	}
	if !utf8.ValidString(path) {
		return ValidationError{Field: field, Message: "contains invalid UTF-8 encoding"}
	}
	if strings.ContainsRune(path, 0) {
		return ValidationError{Field: field, Message: "contains NUL byte"}
	}
	if !filepath.IsAbs(path) {
		return ValidationError{Field: field, Message: "path must be absolute", Value: path}
	}

	for _, seg := range strings.FieldsFunc(filepath.ToSlash(path), func(r rune) bool { return r == '/' }) {
		if seg == ".." {
			return ValidationError{Field: field, Message: "path contains traversal attempt", Value: path}
		}
	}
	lower := strings.ToLower(path)
	for _, pattern := range pathTraversalPatterns {
		if strings.Contains(lower, pattern) {
			return ValidationError{
				Field:   field,
				Message: fmt.Sprintf("contains path traversal pattern: %s", pattern),
				Value:   path,
			}
		}
	}

	if !v.IsAllowedFileExtension(path) {
		return ValidationError{Field: field, Message: "file type not allowed", Value: path}
	}
	return nil
}

// IsAllowedFileExtension checks the extension case-insensitively. An empty
// allow-list accepts everything.
func (v *PathValidator) IsAllowedFileExtension(filename string) bool {
	if len(v.allowedExtensions) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(filename))
	for _, allowed := range v.allowedExtensions {
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}
