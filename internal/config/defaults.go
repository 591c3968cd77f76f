package config

// Config holds all library configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Tools ToolsConfig `json:"tools"`
}

type ToolsConfig struct {
	// File Operations
	MaxFileSize   int64 `json:"max_file_size"`   // Default: 20 * 1024 * 1024 (20MB)
	MaxOutputSize int   `json:"max_output_size"` // Default: 100 * 1024 (100KB)
	MaxReadLines  int   `json:"max_read_lines"`  // Default: 2000
	MaxLineLength int   `json:"max_line_length"` // Default: 2000

	// Command Execution
	DefaultTimeoutMs int64 `json:"default_timeout_ms"` // Default: 120000 (2 minutes)
	MaxTimeoutMs     int64 `json:"max_timeout_ms"`     // Default: 600000 (10 minutes)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Tools: ToolsConfig{
			MaxFileSize:      20 * 1024 * 1024,
			MaxOutputSize:    100 * 1024,
			MaxReadLines:     2000,
			MaxLineLength:    2000,
			DefaultTimeoutMs: 120_000,
			MaxTimeoutMs:     600_000,
		},
	}
}
