package sink

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileSink writes the output document to the local filesystem
type FileSink struct {
	path  string
	point string
}

// NewFileSink creates a sink for the document at path using the named
// insertion point
func NewFileSink(path, point string) *FileSink {
	return &FileSink{path: path, point: point}
}

// Path returns the output document path
func (s *FileSink) Path() string {
	return s.path
}

// WriteTemplate implements Sink.WriteTemplate
func (s *FileSink) WriteTemplate(ctx context.Context, content string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %w", ErrWriteFailed, err)
	}
	if err := os.WriteFile(s.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: failed to write template: %w", ErrWriteFailed, err)
	}
	return nil
}

// Append implements Sink.Append
func (s *FileSink) Append(ctx context.Context, text string) error {
	doc, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("%w: failed to read %s: %w", ErrWriteFailed, s.path, err)
	}

	spliced, err := Splice(doc, s.point, []byte(text))
	if err != nil {
		return fmt.Errorf("%s: %w", s.path, err)
	}

	return s.replace(spliced)
}

// replace swaps the document for data through a temp file in the same directory
func (s *FileSink) replace(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(s.path), "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("%w: failed to create temp file: %w", ErrWriteFailed, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to write temp file: %w", ErrWriteFailed, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to close temp file: %w", ErrWriteFailed, err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to set permissions: %w", ErrWriteFailed, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: failed to replace %s: %w", ErrWriteFailed, s.path, err)
	}

	return nil
}
