package file

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrPathRequired            = errors.New("path is required")
	ErrContentRequiredForWrite = errors.New("content is required for write operation")
)

// -- Error Types --

// StatError is returned when stat fails for a reason other than nonexistence.
type StatError struct {
	Path  string
	Cause error
}

func (e *StatError) Error() string {
	return fmt.Sprintf("failed to stat %s: %v", e.Path, e.Cause)
}
func (e *StatError) Unwrap() error { return e.Cause }

// ReadError is returned when reading file content fails.
type ReadError struct {
	Path  string
	Cause error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Cause)
}
func (e *ReadError) Unwrap() error { return e.Cause }

// WriteError is returned when writing file content fails.
type WriteError struct {
	Path  string
	Cause error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write %s: %v", e.Path, e.Cause)
}
func (e *WriteError) Unwrap() error { return e.Cause }

// IsDirectoryError is returned when a file operation targets a directory.
type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("path is a directory: %s", e.Path)
}

// TooLargeError is returned when a file exceeds the configured size limit.
type TooLargeError struct {
	Path  string
	Size  int64
	Limit int64
}

func (e *TooLargeError) Error() string {
	return fmt.Sprintf("file too large: %s (size %d, limit %d)", e.Path, e.Size, e.Limit)
}
