package detector

import (
	"bytes"
	"strings"

	"github.com/hydrotools/insitulog/pkg/reader"
)

// signature is a content-based format rule: a probe over the head of the
// input plus the format it indicates.
type signature struct {
	Name   string // Human-readable name
	Format reader.Format
	Match  func(head []byte) bool
}

// extensionFormats maps file extensions (lowercase, with dot) to formats.
var extensionFormats = map[string]reader.Format{
	".csv":  reader.FormatCSV,
	".txt":  reader.FormatTXT,
	".htm":  reader.FormatHTML,
	".html": reader.FormatHTML,
	".zip":  reader.FormatZippedHTML,
}

// defaultSignatures returns the built-in content signatures, ordered by
// specificity: magic numbers first, delimited text last.
func defaultSignatures() []signature {
	return []signature{
		{
			Name:   "zip archive",
			Format: reader.FormatZippedHTML,
			Match: func(head []byte) bool {
				return bytes.HasPrefix(head, []byte("PK\x03\x04"))
			},
		},
		{
			// Fixed-width dumps are exported as UTF-16LE with a BOM.
			Name:   "UTF-16LE text dump",
			Format: reader.FormatTXT,
			Match: func(head []byte) bool {
				return bytes.HasPrefix(head, []byte{0xFF, 0xFE})
			},
		},
		{
			Name:   "HTML report",
			Format: reader.FormatHTML,
			Match: func(head []byte) bool {
				s := strings.ToLower(string(bytes.TrimLeft(head, " \t\r\n")))
				return strings.HasPrefix(s, "<!doctype html") ||
					strings.HasPrefix(s, "<html") ||
					strings.HasPrefix(s, "<table")
			},
		},
		{
			// Delimited export: the first line is a comma-separated header.
			Name:   "delimited text",
			Format: reader.FormatCSV,
			Match: func(head []byte) bool {
				line, _, _ := bytes.Cut(head, []byte("\n"))
				return bytes.ContainsRune(line, ',')
			},
		},
	}
}
