package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

type RotationOptions struct {
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// OpenLogOutput returns stdout, teed into a rotating file when path is set.
// The closer must be called on shutdown.
func OpenLogOutput(path string, opts RotationOptions) (io.Writer, io.Closer, error) {
	if path == "" {
		return os.Stdout, nopCloser{}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, NewFileSystemError(fmt.Sprintf("failed to create log directory for %s", path), err)
	}

	file := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}
	return io.MultiWriter(os.Stdout, file), file, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
