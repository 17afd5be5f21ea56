package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// LineFile appends lines to a text file, creating it and its directory on first use.
type LineFile struct {
	mu   sync.Mutex
	path string
}

// NewLineFile returns a LineFile for path. Nothing is created until the first AppendLine.
func NewLineFile(path string) *LineFile {
	return &LineFile{path: path}
}

// Path returns the file path.
func (f *LineFile) Path() string {
	return f.path
}

// AppendLine writes line followed by a newline.
func (f *LineFile) AppendLine(line string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory for %s: %w", f.path, err)
		}
	}

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", f.path, err)
	}

	if _, err := fmt.Fprintln(file, line); err != nil {
		_ = file.Close()
		return fmt.Errorf("append to %s: %w", f.path, err)
	}
	return file.Close()
}
