package reader

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/hydrotools/insitulog/pkg/codes"
	"github.com/hydrotools/insitulog/pkg/table"
)

// HTMLSensor is one provenance entry recovered from a structured
// report's data-header cells.
type HTMLSensor struct {
	Sensor string `json:"Sensor"`
	Type   uint32 `json:"Type"`
	Serial uint64 `json:"Serial"`
}

// Row-role marker attributes used by the structured report format.
const (
	attrSectionHeader = "isi-group"
	attrSectionMember = "isi-group-member"
	attrDataTable     = "isi-data-table"
	attrDataRow       = "isi-data-row"

	attrColumnHeader = "isi-data-column-header"
	attrParameter    = "isi-parameter-type"
	attrUnit         = "isi-unit-type"
	attrSensorType   = "isi-sensor-type"
	attrSensorSerial = "isi-sensor-serial-number"
)

// readHTML reconstructs metadata sections and the measurement table from
// a structured report: a tree of <tr> rows under table#isi-report, each
// tagged with a role marker.
func readHTML(r io.Reader, parser *table.DateTimeParser) (*AttrMap, *table.Table, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing report: %w", err)
	}

	report := findReportTable(doc)
	if report == nil {
		return nil, nil, fmt.Errorf("report table not found: %w", ErrInvalidData)
	}

	var (
		sectionNames []string
		sections     []*AttrMap
		sensors      []HTMLSensor
	)
	builder := table.NewBuilder().WithDateTimeParser(parser)

	for _, row := range findAll(report, "tr") {
		cells := findAll(row, "td")

		switch {
		case anyHasAttr(cells, attrSectionHeader):
			sectionNames = append(sectionNames, nodeText(row))
			sections = append(sections, NewAttrMap())

		case anyHasAttr(cells, attrSectionMember):
			if len(sections) == 0 {
				return nil, nil, ErrSectionHeaderNotFound
			}
			key, value, found := strings.Cut(nodeText(row), "=")
			if !found {
				return nil, nil, fmt.Errorf("section member %q has no key/value separator: %w", nodeText(row), ErrInvalidData)
			}
			sections[len(sections)-1].Set(strings.TrimSpace(key), strings.TrimSpace(value))

		case hasAttr(row, attrDataTable):
			fields := make([]string, 0, len(cells))
			for _, cell := range cells {
				name, sensor := nameColumn(cell, fields)
				if sensor != nil {
					sensors = append(sensors, *sensor)
				}
				fields = append(fields, name)
			}
			builder.FieldNames(fields)

		case hasAttr(row, attrDataRow):
			values := make([]string, 0, len(cells))
			for _, cell := range cells {
				values = append(values, nodeText(cell))
			}
			if err := builder.TryPushRow(values); err != nil {
				return nil, nil, err
			}
		}
	}

	data, err := builder.TryBuild()
	if err != nil {
		return nil, nil, err
	}

	if len(sensors) > 0 {
		block := NewAttrMap()
		block.Set("Sensors", sensors)
		sectionNames = append(sectionNames, "Log Data")
		sections = append(sections, block)
	}

	attr := NewAttrMap()
	for i, name := range sectionNames {
		attr.Set(name, sections[i])
	}
	return attr, data, nil
}

// nameColumn derives the field name for one data-header cell and, when
// the cell carries full sensor provenance, the sensor record to collect.
//
// A parameter code that maps to a known name wins; the unit symbol is
// appended when its code also maps. Without a parameter code the
// column-header label decides. Unnamed columns collapse onto "Unknown":
// the counter below is computed but the follow-up label is the literal
// "Unknown_%02d" artifact, so repeated unnamed columns do not get unique
// names. Kept as-is; pinned by TestReadHTML_UnknownColumnNaming.
func nameColumn(cell *html.Node, fields []string) (string, *HTMLSensor) {
	label := attrValue(cell, attrColumnHeader)
	paramCode := parseUint8(attrValue(cell, attrParameter))
	unitCode := parseUint16(attrValue(cell, attrUnit))

	param, ok := codes.ParameterName(paramCode)
	if !ok {
		switch label {
		case "DateTime":
			return "Date Time", nil
		case "Marked":
			return "Marked", nil
		}
		for _, f := range fields {
			if strings.HasPrefix(f, "Unknown") {
				return "Unknown_%02d", nil
			}
		}
		return "Unknown", nil
	}

	unit, ok := codes.UnitSymbol(unitCode)
	if !ok {
		return param, nil
	}

	var sensor *HTMLSensor
	serialStr, hasSerial := lookupAttr(cell, attrSensorSerial)
	typeStr, hasType := lookupAttr(cell, attrSensorType)
	if hasSerial || hasType {
		serial, serialErr := strconv.ParseUint(serialStr, 10, 64)
		typ, typeErr := strconv.ParseUint(typeStr, 10, 32)
		switch {
		case hasSerial && hasType && serialErr == nil && typeErr == nil:
			sensor = &HTMLSensor{Sensor: param, Type: uint32(typ), Serial: serial}
		case !hasSerial || serialErr != nil:
			slog.Warn("sensor serial not found", "parameter", param)
		default:
			slog.Warn("sensor type not found", "parameter", param)
		}
	}

	return param + " (" + unit + ")", sensor
}

func parseUint8(s string) uint8 {
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

func parseUint16(s string) uint16 {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0
	}
	return uint16(v)
}

// findReportTable locates the <table> element with id "isi-report".
func findReportTable(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "table" && attrValue(n, "id") == "isi-report" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findReportTable(c); found != nil {
			return found
		}
	}
	return nil
}

// findAll collects descendant elements with the given tag, in document
// order.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			out = append(out, c)
			continue
		}
		out = append(out, findAll(c, tag)...)
	}
	return out
}

// nodeText concatenates all text descendants of a node.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}

func lookupAttr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func attrValue(n *html.Node, key string) string {
	v, _ := lookupAttr(n, key)
	return v
}

func hasAttr(n *html.Node, key string) bool {
	_, ok := lookupAttr(n, key)
	return ok
}

func anyHasAttr(nodes []*html.Node, key string) bool {
	for _, n := range nodes {
		if hasAttr(n, key) {
			return true
		}
	}
	return false
}
