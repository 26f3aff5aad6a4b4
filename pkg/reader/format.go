package reader

import "fmt"

// Format selects which format-specific reader handles an input.
type Format string

const (
	// FormatCSV is the delimited export.
	FormatCSV Format = "csv"
	// FormatTXT is the fixed-width text dump with attribute blocks.
	FormatTXT Format = "txt"
	// FormatHTML is the structured HTML report.
	FormatHTML Format = "html"
	// FormatZippedHTML is a zip archive wrapping a structured report.
	FormatZippedHTML Format = "zip"
)

// ParseFormat converts a format name into a Format selector.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatCSV, FormatTXT, FormatHTML, FormatZippedHTML:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (use csv, txt, html, or zip)", s)
	}
}
