// Package table provides the typed tabular model shared by every log
// format reader: columns classified by name, cells holding exactly one of
// a timestamp, a float, or text, and a builder that converts raw text
// fields into typed rows.
package table

import (
	"strconv"
	"time"
)

// ColumnType classifies a column's value type, inferred from its declared
// name at table-construction time.
type ColumnType int

const (
	// TypeDateTime holds a timezone-naive instant.
	TypeDateTime ColumnType = iota

	// TypeText holds an arbitrary UTF-8 string.
	TypeText

	// TypeFloat64 holds an IEEE-754 double. Every column that is not a
	// date/time or note column is a numeric measurement.
	TypeFloat64
)

// String returns the column type name.
func (t ColumnType) String() string {
	switch t {
	case TypeDateTime:
		return "DateTime"
	case TypeText:
		return "Text"
	case TypeFloat64:
		return "Float64"
	default:
		return "Unknown"
	}
}

// dateTimeNames are the header spellings the instrument exports use for
// the timestamp column. All of them canonicalize to "DateTime".
var dateTimeNames = map[string]bool{
	"Date and Time": true,
	"Date Time":     true,
	"Date/Time":     true,
	"DateTime":      true,
}

// classifyColumn returns the canonical column name and its type for a
// declared header name. Every reader applies this identically so tables
// built from different source formats are schema-compatible.
func classifyColumn(name string) (string, ColumnType) {
	if dateTimeNames[name] {
		return "DateTime", TypeDateTime
	}
	if name == "Note" || name == "Marked" {
		return name, TypeText
	}
	return name, TypeFloat64
}

// Cell is a single table value. The variant stored always matches the
// ColumnType declared for the cell's column.
type Cell struct {
	typ ColumnType
	dt  time.Time
	f   float64
	s   string
}

// DateTimeCell returns a cell holding a timestamp.
func DateTimeCell(t time.Time) Cell {
	return Cell{typ: TypeDateTime, dt: t}
}

// Float64Cell returns a cell holding a measurement value.
func Float64Cell(v float64) Cell {
	return Cell{typ: TypeFloat64, f: v}
}

// TextCell returns a cell holding text.
func TextCell(s string) Cell {
	return Cell{typ: TypeText, s: s}
}

// Type returns the cell's value type.
func (c Cell) Type() ColumnType {
	return c.typ
}

// DateTime returns the timestamp value. Valid only for TypeDateTime cells.
func (c Cell) DateTime() time.Time {
	return c.dt
}

// Float64 returns the numeric value. Valid only for TypeFloat64 cells.
func (c Cell) Float64() float64 {
	return c.f
}

// Text returns the text value. Valid only for TypeText cells.
func (c Cell) Text() string {
	return c.s
}

// String renders the cell the way the CSV serializer writes it:
// timestamps as "2006-01-02 15:04:05", floats in shortest round-trip
// form, text verbatim.
func (c Cell) String() string {
	switch c.typ {
	case TypeDateTime:
		return c.dt.Format("2006-01-02 15:04:05")
	case TypeFloat64:
		return strconv.FormatFloat(c.f, 'g', -1, 64)
	default:
		return c.s
	}
}
