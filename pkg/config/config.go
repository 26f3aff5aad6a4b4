package config

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"gopkg.in/yaml.v3"

	"github.com/hydrotools/insitulog/pkg/reader"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors and resolves encoding
// names.
func Validate(cfg *Config) error {
	if cfg.Format != "" {
		if _, err := reader.ParseFormat(cfg.Format); err != nil {
			return fmt.Errorf("format: %w", err)
		}
	}

	switch cfg.Output.Format {
	case "json", "csv":
	case "":
		return fmt.Errorf("output.format is required")
	default:
		return fmt.Errorf("output.format: unknown format %q (use json or csv)", cfg.Output.Format)
	}

	var err error
	if cfg.Encodings.resolvedTXT, err = resolveEncoding(cfg.Encodings.TXT); err != nil {
		return fmt.Errorf("encodings.txt: %w", err)
	}
	if cfg.Encodings.resolvedCSV, err = resolveEncoding(cfg.Encodings.CSV); err != nil {
		return fmt.Errorf("encodings.csv: %w", err)
	}

	return nil
}

// resolveEncoding looks up an IANA charset name. An empty name resolves
// to nil, meaning the reader's default applies.
func resolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("looking up charset %q: %w", name, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("charset %q has no decoder", name)
	}
	return enc, nil
}
