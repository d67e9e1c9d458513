package util

import (
	"os"
	"path/filepath"
)

// CreateFile creates or truncates path, making its parent directories.
func CreateFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.Create(path)
}
