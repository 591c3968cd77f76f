// Package toolscore is the shared library for A3S tools. It provides
// workspace-sandboxed path resolution, configured output limits, and the
// formatting helpers tool implementations apply before returning results.
package toolscore

import (
	"github.com/A3S-Lab/Tools-Core/internal/config"
	"github.com/A3S-Lab/Tools-Core/internal/tool/helper/content"
	"github.com/A3S-Lab/Tools-Core/internal/tool/service/path"
)

// Resolver resolves candidate paths within a workspace boundary.
type Resolver = path.Resolver

// NewResolver creates a resolver bound to the given workspace root.
func NewResolver(workspaceRoot string) *Resolver {
	return path.NewResolver(workspaceRoot)
}

// ResolvePath resolves candidate against root, requiring the target to
// exist. The returned path is canonical, symlink-free, and guaranteed to lie
// within the root at resolution time.
func ResolvePath(root, candidate string) (string, error) {
	return path.Resolve(root, candidate)
}

// ResolvePathForWrite resolves candidate against root for a file that may
// not exist yet. Every ancestor directory must exist.
func ResolvePathForWrite(root, candidate string) (string, error) {
	return path.ResolveForWrite(root, candidate)
}

// Path resolution error kinds. Callers distinguish them with errors.Is.
var (
	ErrOutsideWorkspace = path.ErrOutsideWorkspace
	ErrNotFound         = path.ErrNotFound
	ErrParentNotFound   = path.ErrParentNotFound
)

// Config holds tool limit configuration.
type Config = config.Config

// DefaultConfig returns the default limits.
func DefaultConfig() *Config {
	return config.DefaultConfig()
}

// LoadConfig reads ~/.config/a3s/tools.json over the defaults.
func LoadConfig() (*Config, error) {
	return config.NewLoader().Load()
}

// FormatLineNumbered prefixes each line of s with a 1-based line number
// starting after offset, cutting lines longer than maxLineLength.
func FormatLineNumbered(s string, offset, maxLineLength int) string {
	return content.LineNumbered(s, offset, maxLineLength)
}

// TruncateOutput caps output at maxBytes and appends a truncation notice.
func TruncateOutput(output string, maxBytes int) string {
	return content.Truncate(output, maxBytes)
}
