package logfiles

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrFileNotFound   = errors.New("file not found")
	ErrInvalidPath    = errors.New("invalid file path")
	ErrNotRegularFile = errors.New("not a regular file")
)

// FileOpener opens log files for reading. The returned handle is an *os.File for the default
// implementation, so callers may type-assert io.Seeker to read from the end of the file.
//
//go:generate mockgen -source=log_file.go -destination=./mocks/log_file_mock.go -package=mocks
type FileOpener interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}

type fileOpener struct{}

func NewFileOpener() FileOpener {
	return &fileOpener{}
}

func (o *fileOpener) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cleanPath, err := o.validatePath(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(cleanPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrFileNotFound
		}
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat %q: %w", cleanPath, err)
	}
	if !info.Mode().IsRegular() {
		_ = file.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotRegularFile, cleanPath)
	}

	return file, nil
}

func (o *fileOpener) validatePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", ErrInvalidPath
	}
	return filepath.Clean(trimmed), nil
}
