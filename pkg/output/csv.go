package output

import (
	"context"
	"errors"
	"io"

	"github.com/hydrotools/insitulog/pkg/reader"
)

// CSVFormatter renders only the measurement table, as CSV. Metadata and
// log notes have no place in a flat table and are dropped.
type CSVFormatter struct {
	opts FormatOptions
}

// NewCSVFormatter creates a new CSV formatter with the given options.
func NewCSVFormatter(opts FormatOptions) *CSVFormatter {
	return &CSVFormatter{opts: opts}
}

// Name returns the format name.
func (f *CSVFormatter) Name() string {
	return "csv"
}

// Format writes the measurement table as CSV.
func (f *CSVFormatter) Format(ctx context.Context, result *reader.LogData, w io.Writer) error {
	if result.Data == nil {
		return errors.New("result has no measurement table")
	}
	return result.Data.WriteCSV(w)
}
