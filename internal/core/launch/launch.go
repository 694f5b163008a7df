// Package launch decides which image, if any, the viewer opens at startup.
package launch

import (
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Extensions is the image allow-list, lowercase with leading dot.
var Extensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp", ".svg"}

// IsImage reports whether path carries an allow-listed extension, ignoring case.
func IsImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// DialogPatterns returns the allow-list as glob patterns ("*.jpg", ...).
func DialogPatterns() []string {
	patterns := make([]string, len(Extensions))
	for i, e := range Extensions {
		patterns[i] = "*" + e
	}
	return patterns
}

// Resolver scans argument lists against a filesystem.
type Resolver struct {
	fs afero.Fs
}

func NewResolver(fs afero.Fs) *Resolver {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Resolver{fs: fs}
}

// Resolve returns the first argument after args[0] that is not a flag, has an
// allow-listed extension and exists. ok is false when nothing qualifies.
// An existence check that fails counts as "not a match" and the scan goes on.
func (r *Resolver) Resolve(args []string) (path string, ok bool) {
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if strings.HasPrefix(arg, "-") || !IsImage(arg) {
			continue
		}
		exists, err := afero.Exists(r.fs, arg)
		if err != nil || !exists {
			continue
		}
		return arg, true
	}
	return "", false
}

// Resolve scans args against the real filesystem.
func Resolve(args []string) (string, bool) {
	return NewResolver(nil).Resolve(args)
}
