package gui

import (
	"io"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/wailsapp/mimetype"

	"go-picview/internal/core/launch"
	"go-picview/internal/core/security"
	"go-picview/internal/core/utils"
)

// LocalFilePrefix is the asset-server route the renderer loads images from.
const LocalFilePrefix = "/localfile/"

// LocalFileURL returns the URL the renderer should load path from. Relative
// paths are anchored at the working directory, the same one the launch scan
// checked them against.
func LocalFileURL(path string) string {
	if path != "" && !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}
	return LocalFilePrefix + "?path=" + url.QueryEscape(path)
}

// FileServer serves allow-listed image files from disk to the webview.
type FileServer struct {
	fs        afero.Fs
	validator *security.PathValidator
	logger    *utils.Logger
}

func NewFileServer(fs afero.Fs, logger *utils.Logger) *FileServer {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileServer{
		fs:        fs,
		validator: security.NewPathValidator(launch.Extensions),
		logger:    logger.WithOperation("localfile"),
	}
}

func (s *FileServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != LocalFilePrefix {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	path := r.URL.Query().Get("path")
	if err := s.validator.ValidateFilePath("path", path); err != nil {
		status := http.StatusBadRequest
		if path != "" && !s.validator.IsAllowedFileExtension(path) {
			status = http.StatusForbidden
		}
		s.logger.WithError(err).Warn("refusing local file request")
		http.Error(w, http.StatusText(status), status)
		return
	}

	f, err := s.fs.Open(path)
	if err != nil {
		s.logger.WithError(utils.NewFileSystemError("open", err)).Debug("local file unavailable", "path", path)
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	mime, err := mimetype.DetectReader(f)
	if err != nil {
		s.logger.WithError(err).Warn("content sniffing failed", "path", path)
		http.Error(w, "unreadable file", http.StatusInternalServerError)
		return
	}
	if !strings.HasPrefix(mime.String(), "image/") {
		http.Error(w, "not an image", http.StatusUnsupportedMediaType)
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		http.Error(w, "unreadable file", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", mime.String())
	w.Header().Set("Cache-Control", "no-store")
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
