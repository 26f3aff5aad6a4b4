package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/hydrotools/insitulog/pkg/table"
)

// readCSVTable builds a table from a header row plus data rows. Rows
// whose field count differs from the header are recovered: the error is
// collected and the row skipped, so every well-formed row still lands in
// the table. Re-appearing header rows (a known export artifact) are
// silently dropped. Any other failure is fatal.
func readCSVTable(r io.Reader, parser *table.DateTimeParser) (*table.Table, []error, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("reading header row: %w", ErrUnexpectedEOF)
		}
		return nil, nil, fmt.Errorf("reading header row: %w", err)
	}

	builder := table.NewBuilder().
		FieldNames(header).
		WithDateTimeParser(parser)

	var rowErrors []error
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var pe *csv.ParseError
			if errors.As(err, &pe) && errors.Is(pe.Err, csv.ErrFieldCount) {
				rowErrors = append(rowErrors, err)
				continue
			}
			return nil, nil, err
		}

		if looksLikeHeader(header, record) {
			continue
		}
		if err := builder.TryPushRow(record); err != nil {
			return nil, nil, err
		}
	}

	tbl, err := builder.TryBuild()
	if err != nil {
		return nil, nil, err
	}
	return tbl, rowErrors, nil
}

// looksLikeHeader reports whether a record is a duplicated header row.
// Any field textually equal to its header name marks the row; measurement
// columns are numeric, so well-formed data can never collide.
func looksLikeHeader(header, record []string) bool {
	for i, name := range header {
		if i < len(record) && record[i] == name {
			return true
		}
	}
	return false
}
