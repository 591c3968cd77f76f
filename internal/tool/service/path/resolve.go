package path

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Resolver provides path resolution within a workspace boundary.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	workspaceRoot string
}

// NewResolver creates a new path resolver for the given workspace.
func NewResolver(workspaceRoot string) *Resolver {
	return &Resolver{
		workspaceRoot: workspaceRoot,
	}
}

// Resolve resolves candidate against root, requiring the target to exist.
func Resolve(root, candidate string) (string, error) {
	return NewResolver(root).Resolve(candidate)
}

// ResolveForWrite resolves candidate against root for a file that may not
// exist yet. Every ancestor directory must exist.
func ResolveForWrite(root, candidate string) (string, error) {
	return NewResolver(root).ResolveForWrite(candidate)
}

// CanonicaliseRoot canonicalises a workspace root path by making it absolute and resolving symlinks.
// Returns an error if the path doesn't exist or isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &WorkspaceRootError{Root: root, Cause: err}
	}

	// Resolve symlinks in the workspace root to get the canonical path.
	// Handles platform aliasing such as /var -> /private/var on macOS.
	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &WorkspaceRootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &WorkspaceRootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &WorkspaceRootError{Root: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}

// Resolve resolves a candidate path to its canonical absolute form and
// validates it is within the workspace boundary. The full path, including
// the final component, must exist; symlinks anywhere in it are resolved
// before the boundary check, so a link inside the workspace pointing outside
// is rejected.
func (r *Resolver) Resolve(candidate string) (string, error) {
	canonicalRoot, joined, err := r.join(candidate)
	if err != nil {
		return "", err
	}

	canonical, err := filepath.EvalSymlinks(joined)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, candidate)
		}
		return "", &ResolveIOError{Path: joined, Cause: err}
	}

	if !isWithin(canonicalRoot, canonical) {
		return "", fmt.Errorf("%w: %s", ErrOutsideWorkspace, candidate)
	}

	return canonical, nil
}

// ResolveForWrite resolves a candidate path whose final component may not
// exist yet. The parent directory must exist and is canonicalised fully; the
// final component is appended verbatim.
func (r *Resolver) ResolveForWrite(candidate string) (string, error) {
	canonicalRoot, joined, err := r.join(candidate)
	if err != nil {
		return "", err
	}

	parent := filepath.Dir(joined)
	canonicalParent, err := filepath.EvalSymlinks(parent)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrParentNotFound, parent)
		}
		return "", &ResolveIOError{Path: parent, Cause: err}
	}

	canonical := filepath.Join(canonicalParent, filepath.Base(joined))
	if !isWithin(canonicalRoot, canonical) {
		return "", fmt.Errorf("%w: %s", ErrOutsideWorkspace, candidate)
	}

	return canonical, nil
}

// Rel returns the workspace-relative form of a resolved path, using forward
// slashes. The workspace root itself maps to "".
func (r *Resolver) Rel(resolved string) (string, error) {
	canonicalRoot, err := CanonicaliseRoot(r.workspaceRoot)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(canonicalRoot, resolved)
	if err != nil {
		// This should theoretically not happen for a resolved path
		return "", fmt.Errorf("%w: %s", ErrOutsideWorkspace, resolved)
	}

	if rel == "." {
		return "", nil
	}

	return filepath.ToSlash(rel), nil
}

// join canonicalises the workspace root and joins the candidate onto it.
// An absolute candidate is used as-is; an empty candidate resolves to the
// root itself.
func (r *Resolver) join(candidate string) (canonicalRoot, joined string, err error) {
	if r.workspaceRoot == "" {
		return "", "", ErrWorkspaceRootNotSet
	}

	canonicalRoot, err = CanonicaliseRoot(r.workspaceRoot)
	if err != nil {
		return "", "", err
	}

	if filepath.IsAbs(candidate) {
		joined = filepath.Clean(candidate)
	} else {
		joined = filepath.Clean(filepath.Join(canonicalRoot, candidate))
	}
	return canonicalRoot, joined, nil
}

// isWithin reports whether path equals root or sits below it. The comparison
// is segment-aware: root /workspace must not admit /workspace-evil.
func isWithin(root, path string) bool {
	if path == root {
		return true
	}
	prefix := root
	if !strings.HasSuffix(prefix, string(filepath.Separator)) {
		prefix += string(filepath.Separator)
	}
	return strings.HasPrefix(path, prefix)
}
