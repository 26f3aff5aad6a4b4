// Package output renders converted log data for the CLI: the full
// result as JSON, or the measurement table alone as CSV.
package output

import (
	"context"
	"fmt"
	"io"

	"github.com/hydrotools/insitulog/pkg/reader"
)

// Formatter renders a conversion result in a specific format.
type Formatter interface {
	// Format renders the result to the given writer.
	Format(ctx context.Context, result *reader.LogData, w io.Writer) error

	// Name returns the format name (json, csv).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Pretty enables indented JSON output.
	Pretty bool
}

// New returns the formatter registered under the given name.
func New(name string, opts FormatOptions) (Formatter, error) {
	switch name {
	case "json":
		return NewJSONFormatter(opts), nil
	case "csv":
		return NewCSVFormatter(opts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use json or csv)", name)
	}
}
