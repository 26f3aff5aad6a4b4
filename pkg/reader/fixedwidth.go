package reader

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/hydrotools/insitulog/pkg/table"
)

// span is an inclusive [start, end] column range in character offsets,
// derived from one dash run of the ruler line.
type span struct {
	start, end int
}

// isRulerLine reports whether a trimmed line consists solely of dashes
// and whitespace. Such a line marks the column layout of a fixed-width
// table.
func isRulerLine(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '-' && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// dashSpans extracts the column spans from a ruler line: each contiguous
// dash run is one column, gaps are column separators. A trailing run
// through end-of-line is a valid terminal span.
func dashSpans(line string) []span {
	var spans []span
	start := -1

	i := 0
	for _, r := range line {
		if r == '-' {
			if start < 0 {
				start = i
			}
		} else if start >= 0 {
			spans = append(spans, span{start: start, end: i - 1})
			start = -1
		}
		i++
	}
	if start >= 0 {
		spans = append(spans, span{start: start, end: i - 1})
	}

	return spans
}

// detectColumnSpans scans forward to the ruler line, returning how many
// lines precede it and the column spans it encodes.
func detectColumnSpans(src *lineSource) (lineOffset int, spans []span, err error) {
	for {
		line, _, err := src.readLine()
		if err != nil {
			return 0, nil, ErrUnexpectedEOF
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			lineOffset++
			continue
		}
		if isRulerLine(trimmed) {
			return lineOffset, dashSpans(trimmed), nil
		}
		lineOffset++
	}
}

// graphemeClusters splits a string into grapheme clusters. Column slicing
// must operate on clusters, not bytes or code points: entries may contain
// combining characters (localized unit glyphs) whose single grapheme
// spans multiple code points.
func graphemeClusters(s string) []string {
	var out []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// sliceSpans cuts a line into one field per span, clamping each span to
// the line's length and trimming surrounding whitespace.
func sliceSpans(line string, spans []span) []string {
	clusters := graphemeClusters(line)
	n := len(clusters)

	fields := make([]string, 0, len(spans))
	for _, sp := range spans {
		l, r := sp.start, sp.end+1
		if r > n {
			r = n
		}
		if l > r {
			l = r
		}
		fields = append(fields, strings.TrimSpace(strings.Join(clusters[l:r], "")))
	}
	return fields
}

// readFixedWidthTable recovers a table whose column boundaries are given
// by horizontal alignment: it locates the dash ruler, slices the line
// immediately above it into field names, then slices every following data
// line at the same spans until an underscore terminator or end of input.
func readFixedWidthTable(src *lineSource, parser *table.DateTimeParser) (*table.Table, error) {
	start := src.offset()
	lineOffset, spans, err := detectColumnSpans(src)
	if err != nil {
		return nil, err
	}

	// Replay up to the ruler; the last line replayed is the header.
	src.seek(start)
	var header string
	for i := 0; i < lineOffset; i++ {
		header, _, _ = src.readLine()
	}

	fields := sliceSpans(strings.TrimRight(header, " \t"), spans)
	builder := table.NewBuilder().
		FieldNames(fields).
		WithDateTimeParser(parser)

	// Consume the ruler line itself.
	if _, _, err := src.readLine(); err != nil {
		return nil, ErrUnexpectedEOF
	}

	for {
		line, _, err := src.readLine()
		if err != nil {
			break // end of input
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if isSectionBreak(trimmed) {
			break
		}

		if err := builder.TryPushRow(sliceSpans(strings.TrimRight(line, " \t"), spans)); err != nil {
			return nil, err
		}
	}

	return builder.TryBuild()
}
