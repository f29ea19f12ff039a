package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// FileBackend stores each key as <dir>/<key>.json.
type FileBackend struct {
	dir string
}

// NewFileBackend returns a FileBackend rooted at dir. The directory is created on first write.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (b *FileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

// Get reads the blob for key.
func (b *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	path := b.path(key)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	return data, nil
}

// Put atomically writes the blob for key.
func (b *FileBackend) Put(_ context.Context, key string, data []byte) error {
	path := b.path(key)
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

// Delete removes the blob for key. Deleting a missing key is not an error.
func (b *FileBackend) Delete(_ context.Context, key string) error {
	path := b.path(key)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage error removing %s: %w", path, err)
	}
	return nil
}

// Quarantine moves the blob for key to <path>.corrupt, replacing an older backup.
func (b *FileBackend) Quarantine(_ context.Context, key string) (string, error) {
	path := b.path(key)
	backupPath := path + ".corrupt"
	if err := os.Rename(path, backupPath); err != nil {
		return "", fmt.Errorf("storage error backing up %s: %w", path, err)
	}
	return backupPath, nil
}

func (b *FileBackend) Close() error { return nil }

var (
	_ Backend     = (*FileBackend)(nil)
	_ quarantiner = (*FileBackend)(nil)
)
