package table

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"math"
	"strconv"
)

// Table is the common normalized output of every format reader: an
// ordered list of column names paired with rows of typed cells aligned
// positionally with the columns.
type Table struct {
	columns []string
	rows    [][]Cell
}

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int {
	return len(t.columns)
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// ColumnName returns the canonical name of the column at index i.
func (t *Table) ColumnName(i int) string {
	return t.columns[i]
}

// Columns returns a copy of the column names in declaration order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Cell returns the cell at row r, column c.
func (t *Table) Cell(r, c int) Cell {
	return t.rows[r][c]
}

// WriteCSV writes the table as CSV: a header record of column names
// followed by one record per row, each cell rendered via Cell.String.
// A row holding fewer cells than there are columns yields a short
// record; cells are never carried over from a previous row.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.columns); err != nil {
		return err
	}

	record := make([]string, 0, len(t.columns))
	for _, row := range t.rows {
		record = record[:0]
		for _, cell := range row {
			record = append(record, cell.String())
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// MarshalJSON renders the table as an array of row objects keyed by
// column name, in column order. DateTime cells become ISO-8601-like text
// and non-finite floats become null.
func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')

	for r, row := range t.rows {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for c, cell := range row {
			if c > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(t.columns[c])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeJSONCell(&buf, cell); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}

	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func writeJSONCell(buf *bytes.Buffer, cell Cell) error {
	switch cell.Type() {
	case TypeDateTime:
		buf.WriteByte('"')
		buf.WriteString(cell.DateTime().Format("2006-01-02T15:04:05"))
		buf.WriteByte('"')
	case TypeFloat64:
		v := cell.Float64()
		if math.IsNaN(v) || math.IsInf(v, 0) {
			buf.WriteString("null")
		} else {
			buf.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
	default:
		text, err := json.Marshal(cell.Text())
		if err != nil {
			return err
		}
		buf.Write(text)
	}
	return nil
}
