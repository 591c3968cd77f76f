package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults_AreValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestValidate_RejectsNonPositiveLimits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "max file size",
			mutate: func(c *Config) { c.Tools.MaxFileSize = 0 },
			want:   "tools.max_file_size",
		},
		{
			name:   "max output size",
			mutate: func(c *Config) { c.Tools.MaxOutputSize = -1 },
			want:   "tools.max_output_size",
		},
		{
			name:   "max read lines",
			mutate: func(c *Config) { c.Tools.MaxReadLines = 0 },
			want:   "tools.max_read_lines",
		},
		{
			name:   "max line length",
			mutate: func(c *Config) { c.Tools.MaxLineLength = 0 },
			want:   "tools.max_line_length",
		},
		{
			name:   "default timeout",
			mutate: func(c *Config) { c.Tools.DefaultTimeoutMs = 0 },
			want:   "tools.default_timeout_ms",
		},
		{
			name:   "max timeout",
			mutate: func(c *Config) { c.Tools.MaxTimeoutMs = 0 },
			want:   "tools.max_timeout_ms",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_DefaultTimeoutAboveMax(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tools.DefaultTimeoutMs = 700_000

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tools.default_timeout_ms must be <= tools.max_timeout_ms")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Tools.MaxReadLines = 0
	cfg.Tools.MaxLineLength = 0

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "tools.max_read_lines")
	assert.Contains(t, err.Error(), "tools.max_line_length")
}
