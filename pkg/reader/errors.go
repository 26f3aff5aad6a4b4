package reader

import (
	"errors"
	"fmt"
	"strings"
)

// Structural errors: the document does not match the expected grammar.
// All of them abort the current read.
var (
	// ErrUnexpectedEOF indicates the input ended before a required
	// structural element (e.g. the fixed-width ruler line) was found.
	ErrUnexpectedEOF = errors.New("unexpected EOF")

	// ErrSectionHeaderNotFound indicates a structured-report section
	// member appeared before any section header.
	ErrSectionHeaderNotFound = errors.New("section header not found")

	// ErrInvalidData indicates the document deviates from the expected
	// shape in a way that cannot be attributed to a single field.
	ErrInvalidData = errors.New("invalid data")
)

// PartialResultError is returned by the delimited reader when some rows
// were malformed but a usable table was still produced. It is the only
// recoverable error in the package: callers may keep Data as a
// best-effort result.
type PartialResultError struct {
	// Data holds the table built from every well-formed row.
	Data *LogData

	// RowErrors lists one error per skipped row.
	RowErrors []error
}

func (e *PartialResultError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d malformed rows skipped:", len(e.RowErrors))
	for _, err := range e.RowErrors {
		b.WriteString("\n  ")
		b.WriteString(err.Error())
	}
	return b.String()
}
