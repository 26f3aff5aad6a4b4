// Package config provides configuration loading and validation for the
// log converter.
package config

import (
	"golang.org/x/text/encoding"

	"github.com/hydrotools/insitulog/pkg/reader"
	"github.com/hydrotools/insitulog/pkg/table"
)

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Format forces the input format (csv, txt, html, zip). Empty means
	// detect from the file.
	Format string `yaml:"format,omitempty"`

	Output    OutputConfig   `yaml:"output"`
	DateTime  DateTimeConfig `yaml:"datetime,omitempty"`
	Encodings EncodingConfig `yaml:"encodings,omitempty"`
}

// OutputConfig selects how results are rendered.
type OutputConfig struct {
	// Format is the output format (json or csv).
	Format string `yaml:"format"`

	// Pretty enables indented JSON output.
	Pretty bool `yaml:"pretty,omitempty"`
}

// DateTimeConfig overrides how timestamp fields are parsed.
type DateTimeConfig struct {
	// Layout is a Go time layout string. Empty selects the built-in
	// layouts. See https://pkg.go.dev/time#pkg-constants for format.
	Layout string `yaml:"layout,omitempty"`
}

// Parser returns the date/time strategy the layout selects, or nil for
// the default strategy.
func (d *DateTimeConfig) Parser() *table.DateTimeParser {
	if d.Layout == "" {
		return nil
	}
	return table.LayoutParser(d.Layout)
}

// EncodingConfig overrides the character encodings used to decode
// inputs, by IANA name.
type EncodingConfig struct {
	// TXT is the encoding of fixed-width dumps (default UTF-16LE).
	TXT string `yaml:"txt,omitempty"`

	// CSV is the encoding of delimited exports (default ISO-8859-3).
	CSV string `yaml:"csv,omitempty"`

	// Resolved encodings (populated during validation).
	resolvedTXT encoding.Encoding
	resolvedCSV encoding.Encoding
}

// TXTEncoding returns the resolved TXT encoding, or nil when unset.
func (e *EncodingConfig) TXTEncoding() encoding.Encoding {
	return e.resolvedTXT
}

// CSVEncoding returns the resolved CSV encoding, or nil when unset.
func (e *EncodingConfig) CSVEncoding() encoding.Encoding {
	return e.resolvedCSV
}

// ReaderOptions converts the resolved encodings into reader options.
func (c *Config) ReaderOptions() []reader.Option {
	var opts []reader.Option
	if enc := c.Encodings.TXTEncoding(); enc != nil {
		opts = append(opts, reader.WithTXTEncoding(enc))
	}
	if enc := c.Encodings.CSVEncoding(); enc != nil {
		opts = append(opts, reader.WithCSVEncoding(enc))
	}
	return opts
}
