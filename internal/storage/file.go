package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// FileKV stores each key as a JSON file under a base directory.
type FileKV struct {
	base string
}

// NewFileKV creates the base directory if needed and returns a file-backed KV.
func NewFileKV(base string) (*FileKV, error) {
	if err := os.MkdirAll(base, 0o700); err != nil {
		return nil, fmt.Errorf("storage error creating directory %s: %w", base, err)
	}
	return &FileKV{base: base}, nil
}

func (f *FileKV) path(key string) string {
	return filepath.Join(f.base, key+".json")
}

// Get reads the value for key; ok is false when the key was never written.
func (f *FileKV) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("storage error reading %s: %w", key, err)
	}
	return data, true, nil
}

// Put writes the value for key. Atomic write: write to temp file then rename.
func (f *FileKV) Put(key string, value []byte) error {
	path := f.path(key)
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, value, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (f *FileKV) Close() error {
	return nil
}
