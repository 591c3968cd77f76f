package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// writeSyncCloser defines the minimal interface for a writable file handle.
// This abstraction allows testing without depending on concrete *os.File.
type writeSyncCloser interface {
	io.Writer
	Sync() error
	Close() error
	Name() string
}

// OSFileSystem implements filesystem operations using the local OS
// primitives. Internal function fields enable testability via functional
// injection.
type OSFileSystem struct {
	createTemp func(dir, pattern string) (writeSyncCloser, error)
	rename     func(oldpath, newpath string) error
	chmod      func(name string, mode os.FileMode) error
	remove     func(name string) error
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		createTemp: func(dir, pattern string) (writeSyncCloser, error) {
			return os.CreateTemp(dir, pattern)
		},
		rename: os.Rename,
		chmod:  os.Chmod,
		remove: os.Remove,
	}
}

// Stat returns file info for a path (follows symlinks).
func (r *OSFileSystem) Stat(path string) (os.FileInfo, error) {
	return os.Stat(path)
}

// ReadFile reads the entire content of a file.
func (r *OSFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

// WriteFileAtomic writes content to a file atomically using the temp file +
// rename pattern, so a crash mid-write leaves the original file intact. The
// temp file is created in the target's directory to keep the rename atomic.
func (r *OSFileSystem) WriteFileAtomic(path string, content []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmpFile, err := r.createTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpPath := tmpFile.Name()
	needsCleanup := true

	defer func() {
		if tmpFile != nil {
			_ = tmpFile.Close()
		}
		if needsCleanup {
			_ = r.remove(tmpPath)
		}
	}()

	if _, err := tmpFile.Write(content); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	// Close file before rename (required on some systems)
	if err := tmpFile.Close(); err != nil {
		tmpFile = nil
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	tmpFile = nil

	if err := r.rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	needsCleanup = false

	if err := r.chmod(path, perm); err != nil {
		return fmt.Errorf("failed to set file permissions: %w", err)
	}

	return nil
}
