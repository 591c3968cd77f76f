package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error if any values are invalid.
func (c *Config) Validate() error {
	var errs []string

	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}
	if c.Tools.MaxOutputSize < 1 {
		errs = append(errs, "tools.max_output_size must be >= 1")
	}
	if c.Tools.MaxReadLines < 1 {
		errs = append(errs, "tools.max_read_lines must be >= 1")
	}
	if c.Tools.MaxLineLength < 1 {
		errs = append(errs, "tools.max_line_length must be >= 1")
	}
	if c.Tools.DefaultTimeoutMs < 1 {
		errs = append(errs, "tools.default_timeout_ms must be >= 1")
	}
	if c.Tools.MaxTimeoutMs < 1 {
		errs = append(errs, "tools.max_timeout_ms must be >= 1")
	}

	// Semantic validation: Default <= Max constraints
	if c.Tools.DefaultTimeoutMs > c.Tools.MaxTimeoutMs {
		errs = append(errs, "tools.default_timeout_ms must be <= tools.max_timeout_ms")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}
