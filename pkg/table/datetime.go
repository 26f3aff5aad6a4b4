package table

import (
	"fmt"
	"strings"
	"time"
)

// defaultLayouts are the timestamp shapes the instrument software is
// known to export, tried in order: 12-hour with a leading meridiem
// marker, 12-hour with a trailing marker, then 24-hour.
var defaultLayouts = []string{
	"2006/1/2 PM 03:04:05",
	"2006/1/2 03:04:05 PM",
	"2006-1-2 15:04:05",
}

// meridiemReplacer normalizes localized AM/PM glyphs before layout
// matching. Exports from East Asian locales write 上午/下午.
var meridiemReplacer = strings.NewReplacer("上午", "AM", "下午", "PM")

// DateTimeParser converts raw timestamp text into a time.Time. It is
// constructed once per top-level read and shared by every Builder of that
// read so all sub-tables of a document use identical date semantics.
//
// The zero value (and a nil pointer) behave like DefaultParser.
type DateTimeParser struct {
	layout string
	custom func(string) (time.Time, error)
}

// DefaultParser returns the strategy that tries the known export layouts
// in order and returns the first match.
func DefaultParser() *DateTimeParser {
	return &DateTimeParser{}
}

// LayoutParser returns a strategy that parses with a single explicit Go
// time layout.
func LayoutParser(layout string) *DateTimeParser {
	return &DateTimeParser{layout: layout}
}

// CustomParser returns a strategy backed by a caller-supplied function.
func CustomParser(fn func(string) (time.Time, error)) *DateTimeParser {
	return &DateTimeParser{custom: fn}
}

// Parse converts timestamp text per the active strategy.
func (p *DateTimeParser) Parse(s string) (time.Time, error) {
	switch {
	case p == nil:
		return parseDefault(s)
	case p.custom != nil:
		return p.custom(s)
	case p.layout != "":
		return time.Parse(p.layout, s)
	default:
		return parseDefault(s)
	}
}

func parseDefault(s string) (time.Time, error) {
	s = meridiemReplacer.Replace(s)

	var lastErr error
	for _, layout := range defaultLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("no known datetime layout matches %q: %w", s, lastErr)
}
