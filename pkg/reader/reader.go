// Package reader converts the instrument's three export formats
// (delimited text, fixed-width text dumps, structured HTML reports,
// optionally zip-wrapped) into a single normalized table plus a nested
// metadata map. Parsing is single-threaded and synchronous; each read
// fully buffers the decoded document.
package reader

import (
	"bytes"
	"fmt"
	"io"

	"golang.org/x/text/encoding"

	"github.com/hydrotools/insitulog/pkg/table"
)

// LogData is the result of one read: log metadata, an optional notes
// table (fixed-width exports only), and the measurement table.
type LogData struct {
	// Attr holds the log's metadata tree. Empty (not nil) for formats
	// that carry no metadata.
	Attr *AttrMap

	// Notes is the log-notes table, present only for fixed-width exports.
	Notes *table.Table

	// Data is the measurement table.
	Data *table.Table
}

// MarshalJSON renders the result as {"attr", "log_note", "log_data"}.
func (d *LogData) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"attr":`)

	attr, err := d.Attr.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(attr)

	buf.WriteString(`,"log_note":`)
	if d.Notes == nil {
		buf.WriteString("null")
	} else {
		notes, err := d.Notes.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(notes)
	}

	buf.WriteString(`,"log_data":`)
	data, err := d.Data.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(data)

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Option configures a Reader.
type Option func(*Reader)

// WithTXTEncoding overrides the encoding used to decode fixed-width
// exports (default UTF-16LE).
func WithTXTEncoding(enc encoding.Encoding) Option {
	return func(r *Reader) {
		if enc != nil {
			r.txtEncoding = enc
		}
	}
}

// WithCSVEncoding overrides the encoding used to decode delimited
// exports (default ISO 8859-3).
func WithCSVEncoding(enc encoding.Encoding) Option {
	return func(r *Reader) {
		if enc != nil {
			r.csvEncoding = enc
		}
	}
}

// Reader reads instrument logs. Construct one per read operation; the
// date/time strategy it holds is shared by every table built during that
// read, so all sub-tables of a document use identical date semantics.
type Reader struct {
	parser      *table.DateTimeParser
	txtEncoding encoding.Encoding
	csvEncoding encoding.Encoding
}

// NewReader creates a Reader with the given date/time strategy. A nil
// parser selects the default strategy.
func NewReader(parser *table.DateTimeParser, opts ...Option) *Reader {
	r := &Reader{
		parser:      parser,
		txtEncoding: defaultTXTEncoding,
		csvEncoding: defaultCSVEncoding,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Read dispatches to the format-specific reader for the declared input
// kind.
func (r *Reader) Read(src io.Reader, format Format) (*LogData, error) {
	switch format {
	case FormatCSV:
		return r.ReadCSV(src)
	case FormatTXT:
		return r.ReadTXT(src)
	case FormatHTML:
		return r.ReadHTML(src)
	case FormatZippedHTML:
		return r.ReadZippedHTML(src)
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}

// ReadCSV reads a delimited export. When some rows are malformed it
// returns a *PartialResultError carrying both the best-effort result and
// the per-row errors; callers may recover the result from it.
func (r *Reader) ReadCSV(src io.Reader) (*LogData, error) {
	text, err := decodeAll(src, r.csvEncoding)
	if err != nil {
		return nil, err
	}

	tbl, rowErrors, err := readCSVTable(bytes.NewReader(text), r.parser)
	if err != nil {
		return nil, err
	}

	data := &LogData{Attr: NewAttrMap(), Data: tbl}
	if len(rowErrors) > 0 {
		return nil, &PartialResultError{Data: data, RowErrors: rowErrors}
	}
	return data, nil
}

// ReadTXT reads a fixed-width text dump: the attribute blocks, the log
// notes table, the Log Data summary block, then the measurement table.
func (r *Reader) ReadTXT(src io.Reader) (*LogData, error) {
	text, err := decodeAll(src, r.txtEncoding)
	if err != nil {
		return nil, err
	}
	lines := newLineSource(text)

	attr := NewAttrMap()
	if err := readAttr(lines, attr, true); err != nil {
		return nil, err
	}

	notes, err := readFixedWidthTable(lines, r.parser)
	if err != nil {
		return nil, err
	}

	logDataAttr, err := readLogDataAttr(lines)
	if err != nil {
		return nil, err
	}
	attr.Set("Log Data", logDataAttr)

	data, err := readFixedWidthTable(lines, r.parser)
	if err != nil {
		return nil, err
	}

	return &LogData{Attr: attr, Notes: notes, Data: data}, nil
}

// ReadHTML reads a structured HTML report.
func (r *Reader) ReadHTML(src io.Reader) (*LogData, error) {
	attr, data, err := readHTML(src, r.parser)
	if err != nil {
		return nil, err
	}
	return &LogData{Attr: attr, Data: data}, nil
}

// ReadZippedHTML reads a structured HTML report wrapped in a zip
// archive.
func (r *Reader) ReadZippedHTML(src io.Reader) (*LogData, error) {
	attr, data, err := readZippedHTML(src, r.parser)
	if err != nil {
		return nil, err
	}
	return &LogData{Attr: attr, Data: data}, nil
}
