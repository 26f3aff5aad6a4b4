package table

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNoColumns indicates TryBuild was called before any columns were
// declared. A table with zero columns is invalid.
var ErrNoColumns = errors.New("table has no columns")

// ParseError reports a single field that failed numeric or date
// conversion while pushing a row. A malformed field indicates a schema
// mismatch, so readers treat it as fatal for the whole read.
type ParseError struct {
	// Index is the zero-based field position within the row.
	Index int

	// Column is the canonical name of the column at that position.
	Column string

	// Value is the raw text that failed to convert.
	Value string

	// Err is the underlying conversion error.
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing field %d (%s): %q: %v", e.Index, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Builder accumulates column definitions and typed rows, producing an
// immutable Table. It is a pure accumulator: no I/O and no knowledge of
// the source format.
type Builder struct {
	columns []string
	types   []ColumnType
	rows    [][]Cell
	parser  *DateTimeParser
}

// NewBuilder returns a builder with no columns declared.
func NewBuilder() *Builder {
	return &Builder{}
}

// FieldNames fixes the columns and infers their types from the declared
// names. It must be called exactly once before any row is pushed.
func (b *Builder) FieldNames(names []string) *Builder {
	b.columns = make([]string, 0, len(names))
	b.types = make([]ColumnType, 0, len(names))
	for _, name := range names {
		canonical, typ := classifyColumn(name)
		b.columns = append(b.columns, canonical)
		b.types = append(b.types, typ)
	}
	return b
}

// WithDateTimeParser overrides the default date strategy for DateTime
// columns.
func (b *Builder) WithDateTimeParser(p *DateTimeParser) *Builder {
	b.parser = p
	return b
}

// TryPushRow consumes one row of raw text fields, one per column,
// converting each per its column's type. Extra fields beyond the declared
// columns are ignored; a push with fewer fields yields a short row, which
// both serializers handle (short CSV record, partial JSON object).
func (b *Builder) TryPushRow(values []string) error {
	n := len(values)
	if len(b.types) < n {
		n = len(b.types)
	}

	row := make([]Cell, 0, n)
	for i := 0; i < n; i++ {
		switch b.types[i] {
		case TypeDateTime:
			t, err := b.parser.Parse(values[i])
			if err != nil {
				return &ParseError{Index: i, Column: b.columns[i], Value: values[i], Err: err}
			}
			row = append(row, DateTimeCell(t))
		case TypeText:
			row = append(row, TextCell(values[i]))
		default:
			f, err := strconv.ParseFloat(values[i], 64)
			if err != nil {
				return &ParseError{Index: i, Column: b.columns[i], Value: values[i], Err: err}
			}
			row = append(row, Float64Cell(f))
		}
	}

	b.rows = append(b.rows, row)
	return nil
}

// TryBuild finalizes the accumulated columns and rows into a Table.
func (b *Builder) TryBuild() (*Table, error) {
	if len(b.columns) == 0 {
		return nil, ErrNoColumns
	}
	return &Table{columns: b.columns, rows: b.rows}, nil
}
