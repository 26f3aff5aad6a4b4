package config

import "os"

// Default values for configuration.
const (
	DefaultOutputFormat = "json"
)

// Environment variable names.
const (
	EnvOutputFormat   = "INSITULOG_OUTPUT_FORMAT"
	EnvDateTimeLayout = "INSITULOG_DATETIME_LAYOUT"
)

// DefaultConfig returns a configuration with sensible defaults: input
// format detected from the file, JSON output, built-in date layouts,
// and the format-specific default encodings.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides to
// the config.
func (c *Config) applyEnvironmentOverrides() {
	if format := os.Getenv(EnvOutputFormat); format != "" {
		c.Output.Format = format
	}
	if layout := os.Getenv(EnvDateTimeLayout); layout != "" {
		c.DateTime.Layout = layout
	}
}
