package reader

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// AttrMap is an insertion-ordered key/value tree holding log metadata.
// Values are strings, ints, nested *AttrMap blocks, or sensor lists.
type AttrMap struct {
	keys   []string
	values map[string]any
}

// NewAttrMap returns an empty attribute map.
func NewAttrMap() *AttrMap {
	return &AttrMap{values: make(map[string]any)}
}

// Set inserts or replaces a value. First insertion fixes key order.
func (m *AttrMap) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key.
func (m *AttrMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Len returns the number of keys.
func (m *AttrMap) Len() int {
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *AttrMap) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MarshalJSON renders the map as a JSON object preserving key order.
func (m *AttrMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TxtSensor is one entry of the TXT export's Log Data sensor roster.
type TxtSensor struct {
	Sensor string `json:"Sensor"`
	Serial string `json:"Serial"`
}

// lineKind classifies a metadata line.
type lineKind int

const (
	lineHeader lineKind = iota
	lineEntry
)

// classifyLine splits a non-blank metadata line. A line is a Header when
// splitting on the first colon yields an empty value and the line has no
// leading indentation, or when it has no colon at all; otherwise it is a
// key/value Entry.
func classifyLine(line string) (kind lineKind, key, value string) {
	trimmed := strings.TrimSpace(line)
	k, v, found := strings.Cut(trimmed, ":")
	if !found {
		return lineHeader, trimmed, ""
	}

	k = strings.TrimSpace(k)
	v = strings.TrimSpace(v)
	if v == "" && !strings.HasPrefix(line, " ") {
		return lineHeader, k, ""
	}
	return lineEntry, k, v
}

// isSectionBreak reports whether a trimmed line is a section terminator
// (underscores only).
func isSectionBreak(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r != '_' {
			return false
		}
	}
	return true
}

// readAttr parses indented, colon-delimited metadata blocks into attr.
// Headers at the root level open a nested block parsed recursively;
// metadata nests exactly one level deep, so a header encountered inside a
// nested block is pushed back and ends that block. A section terminator
// ends the whole parse at the root and is pushed back at nested levels.
func readAttr(src *lineSource, attr *AttrMap, root bool) error {
	for {
		line, size, err := src.readLine()
		if err != nil {
			break // end of input
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if isSectionBreak(trimmed) {
			if !root {
				src.unreadLine(size)
			}
			break
		}

		kind, key, value := classifyLine(line)
		switch kind {
		case lineHeader:
			if !root {
				src.unreadLine(size)
				return nil
			}
			block := NewAttrMap()
			if err := readAttr(src, block, false); err != nil {
				return err
			}
			attr.Set(key, block)
		case lineEntry:
			attr.Set(key, value)
		}
	}

	return nil
}

// readExpectedEntry reads one line and requires it to be an Entry with
// the given key, returning its value.
func readExpectedEntry(src *lineSource, expected string) (string, error) {
	line, _, err := src.readLine()
	if err != nil {
		return "", fmt.Errorf("expected %q entry: %w", expected, ErrUnexpectedEOF)
	}
	kind, key, value := classifyLine(line)
	if kind != lineEntry || key != expected {
		return "", fmt.Errorf("expected %q entry in Log Data, got %q: %w", expected, strings.TrimSpace(line), ErrInvalidData)
	}
	return value, nil
}

// readLogDataAttr parses the fixed "Log Data" summary block: record
// count, a sensor roster of exactly the declared size with 1-based
// "<index> - <serial>" keys, and the time zone.
func readLogDataAttr(src *lineSource) (*AttrMap, error) {
	// Skip forward to the "Log Data:" header.
	for {
		line, _, err := src.readLine()
		if err != nil {
			break
		}
		if strings.TrimSpace(line) == "Log Data:" {
			break
		}
	}

	logData := NewAttrMap()

	recordCountStr, err := readExpectedEntry(src, "Record Count")
	if err != nil {
		return nil, err
	}
	recordCount, err := strconv.Atoi(recordCountStr)
	if err != nil {
		return nil, fmt.Errorf("parsing Record Count %q: %w", recordCountStr, err)
	}
	logData.Set("Record Count", recordCount)

	sensorCountStr, err := readExpectedEntry(src, "Sensors")
	if err != nil {
		return nil, err
	}
	sensorCount, err := strconv.Atoi(sensorCountStr)
	if err != nil {
		return nil, fmt.Errorf("parsing Sensors count %q: %w", sensorCountStr, err)
	}

	sensors := make([]TxtSensor, 0, sensorCount)
	for n := 1; n <= sensorCount; n++ {
		line, _, err := src.readLine()
		if err != nil {
			return nil, fmt.Errorf("sensor %d: %w", n, ErrUnexpectedEOF)
		}
		kind, key, value := classifyLine(line)
		if kind != lineEntry {
			return nil, fmt.Errorf("sensor %d: %w", n, ErrInvalidData)
		}

		// Key shape: "<index> - <serial>".
		fields := strings.Fields(key)
		if len(fields) == 0 {
			return nil, fmt.Errorf("sensor %d: %w", n, ErrInvalidData)
		}
		index, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("sensor %d: %w", n, ErrInvalidData)
		}
		if index != n {
			return nil, fmt.Errorf("sensor index %d out of order (want %d): %w", index, n, ErrInvalidData)
		}
		serial := fields[len(fields)-1]
		sensors = append(sensors, TxtSensor{Sensor: value, Serial: serial})
	}
	logData.Set("Sensors", sensors)

	timeZone, err := readExpectedEntry(src, "Time Zone")
	if err != nil {
		return nil, err
	}
	logData.Set("Time Zone", timeZone)

	return logData, nil
}
