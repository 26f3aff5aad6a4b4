package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/hydrotools/insitulog/pkg/reader"
)

// JSONFormatter renders the full result: metadata, log notes when
// present, and the measurement table.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format renders the result as JSON.
func (f *JSONFormatter) Format(ctx context.Context, result *reader.LogData, w io.Writer) error {
	encoder := json.NewEncoder(w)
	if f.opts.Pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(result)
}
