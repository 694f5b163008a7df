package shell

import (
	"go-picview/internal/core/launch"
	"go-picview/internal/core/utils"
)

type FileFilter struct {
	DisplayName string
	Patterns    []string
}

type DialogOptions struct {
	Title   string
	Filters []FileFilter
}

// ImageDialogOptions restricts a picker to the image allow-list.
func ImageDialogOptions() DialogOptions {
	return DialogOptions{
		Title: "Open Image",
		Filters: []FileFilter{
			{DisplayName: "Images", Patterns: launch.DialogPatterns()},
		},
	}
}

// OpenFileDialog shows the native picker and returns the chosen paths.
// Cancelling yields an empty list and no error.
func (s *Shell) OpenFileDialog() ([]string, error) {
	w := s.current()
	if w == nil {
		return nil, utils.NewDialogError("open file dialog", ErrNoWindow)
	}

	path, err := w.OpenFile(ImageDialogOptions())
	if err != nil {
		return nil, utils.NewDialogError("open file dialog", err)
	}
	if path == "" {
		s.logger.WithOperation("dialog").Debug("dialog cancelled")
		return []string{}, nil
	}
	s.logger.WithOperation("dialog").Info("file selected", "path", path)
	return []string{path}, nil
}
