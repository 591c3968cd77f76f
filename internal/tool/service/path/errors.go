package path

import (
	"errors"
	"fmt"
)

// -- Error Types --

// WorkspaceRootError is returned when the workspace root is invalid.
type WorkspaceRootError struct {
	Root  string
	Cause error
}

func (e *WorkspaceRootError) Error() string {
	return fmt.Sprintf("invalid workspace root %s: %v", e.Root, e.Cause)
}
func (e *WorkspaceRootError) Unwrap() error { return e.Cause }

// ResolveIOError is returned when canonicalisation fails for a reason other
// than the path not existing (permission denied, transient I/O).
type ResolveIOError struct {
	Path  string
	Cause error
}

func (e *ResolveIOError) Error() string {
	return fmt.Sprintf("failed to resolve path %s: %v", e.Path, e.Cause)
}
func (e *ResolveIOError) Unwrap() error { return e.Cause }

// -- Sentinels --

var (
	ErrOutsideWorkspace    = errors.New("path is outside workspace root")
	ErrNotFound            = errors.New("path not found")
	ErrParentNotFound      = errors.New("parent directory not found")
	ErrWorkspaceRootNotSet = errors.New("workspace root not set")
	ErrNotADirectory       = errors.New("not a directory")
)
