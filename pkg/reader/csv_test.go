package reader

import (
	"errors"
	"strings"
	"testing"

	"github.com/hydrotools/insitulog/pkg/table"
)

const csvFixture = `Date Time,Temperature (C),pH (pH),Marked
2025-01-25 17:15:06,21.6019,7.736,
2025-01-25 17:15:21,21.5979,7.735,
2025-01-25 17:15:36,21.5938,7.735,
2025-01-25 17:15:51,21.5899,7.734,Marked
2025-01-25 17:16:06,21.5901,7.734,
2025-01-25 17:16:21,21.586,7.733,
2025-01-25 17:16:36,21.5821,7.733,
2025-01-25 17:16:51,21.5823,7.732,
`

func TestReadCSVTable(t *testing.T) {
	tbl, rowErrors, err := readCSVTable(strings.NewReader(csvFixture), nil)
	if err != nil {
		t.Fatalf("readCSVTable() error = %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("got %d row errors, want 0", len(rowErrors))
	}

	want := []string{"DateTime", "Temperature (C)", "pH (pH)", "Marked"}
	got := tbl.Columns()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, got[i], want[i])
		}
	}
	if tbl.NumRows() != 8 {
		t.Fatalf("NumRows() = %d, want 8", tbl.NumRows())
	}

	if got := tbl.Cell(0, 0).DateTime().Format("2006-01-02 15:04:05"); got != "2025-01-25 17:15:06" {
		t.Errorf("cell (0,0) = %q", got)
	}
	if got := tbl.Cell(0, 1).Float64(); got != 21.6019 {
		t.Errorf("cell (0,1) = %v, want 21.6019", got)
	}
	if got := tbl.Cell(3, 3); got.Type() != table.TypeText || got.Text() != "Marked" {
		t.Errorf("cell (3,3) = %v %q, want Text \"Marked\"", got.Type(), got.Text())
	}
	if got := tbl.Cell(0, 3).Text(); got != "" {
		t.Errorf("cell (0,3) = %q, want empty", got)
	}
}

// Concatenated exports repeat the header line mid-file. Such rows are
// dropped without error.
func TestReadCSVTable_DuplicateHeaders(t *testing.T) {
	fixture := strings.Join([]string{
		"Date Time,Temperature (C),pH (pH),Marked",
		"2025-01-25 17:15:06,21.6019,7.736,",
		"2025-01-25 17:15:21,21.5979,7.735,",
		"2025-01-25 17:15:36,21.5938,7.735,",
		"Date Time,Temperature (C),pH (pH),Marked",
		"2025-01-25 17:15:51,21.5899,7.734,",
		"2025-01-25 17:16:06,21.5901,7.734,",
		"2025-01-25 17:16:21,21.586,7.733,",
		"",
	}, "\n")

	tbl, rowErrors, err := readCSVTable(strings.NewReader(fixture), nil)
	if err != nil {
		t.Fatalf("readCSVTable() error = %v", err)
	}
	if len(rowErrors) != 0 {
		t.Fatalf("got %d row errors, want 0", len(rowErrors))
	}
	if tbl.NumRows() != 6 {
		t.Errorf("NumRows() = %d, want 6", tbl.NumRows())
	}
}

func TestLooksLikeHeader(t *testing.T) {
	header := []string{"Date Time", "Temperature (C)", "Marked"}

	if !looksLikeHeader(header, []string{"Date Time", "Temperature (C)", "Marked"}) {
		t.Error("full header repeat not detected")
	}
	// A single colliding field is enough.
	if !looksLikeHeader(header, []string{"2025-01-25", "Temperature (C)", ""}) {
		t.Error("partial header repeat not detected")
	}
	if looksLikeHeader(header, []string{"2025-01-25 17:15:06", "21.6", "Marked!"}) {
		t.Error("data row misdetected as header")
	}
}

func TestReadCSVTable_IncompleteRow(t *testing.T) {
	fixture := strings.Join([]string{
		"Date Time,Temperature (C),pH (pH),Marked",
		"2025-01-25 17:15:06,21.6019,7.736,",
		"2025-01-25 17:15:21,21.5979",
		"2025-01-25 17:15:36,21.5938,7.735,",
		"",
	}, "\n")

	tbl, rowErrors, err := readCSVTable(strings.NewReader(fixture), nil)
	if err != nil {
		t.Fatalf("readCSVTable() error = %v", err)
	}
	if len(rowErrors) != 1 {
		t.Fatalf("got %d row errors, want 1", len(rowErrors))
	}
	if tbl.NumRows() != 2 {
		t.Errorf("NumRows() = %d, want 2", tbl.NumRows())
	}
}

func TestReadCSVTable_MalformedField(t *testing.T) {
	fixture := "Date Time,Temperature (C)\n2025-01-25 17:15:06,not-a-number\n"

	_, _, err := readCSVTable(strings.NewReader(fixture), nil)
	var parseErr *table.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("error = %v, want *table.ParseError", err)
	}
	if parseErr.Index != 1 || parseErr.Column != "Temperature (C)" {
		t.Errorf("ParseError = %+v", parseErr)
	}
}

func TestReadCSVTable_Empty(t *testing.T) {
	_, _, err := readCSVTable(strings.NewReader(""), nil)
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("error = %v, want ErrUnexpectedEOF", err)
	}
}

func TestReadCSV_PartialResult(t *testing.T) {
	fixture := strings.Join([]string{
		"Date Time,Temperature (C)",
		"2025-01-25 17:15:06,21.6019",
		"2025-01-25 17:15:21",
		"2025-01-25 17:15:36,21.5938",
		"",
	}, "\n")

	_, err := NewReader(nil).ReadCSV(strings.NewReader(fixture))

	var partial *PartialResultError
	if !errors.As(err, &partial) {
		t.Fatalf("error = %v, want *PartialResultError", err)
	}
	if len(partial.RowErrors) != 1 {
		t.Errorf("got %d row errors, want 1", len(partial.RowErrors))
	}
	if partial.Data == nil || partial.Data.Data == nil {
		t.Fatal("partial result carries no table")
	}
	if got := partial.Data.Data.NumRows(); got != 2 {
		t.Errorf("recovered NumRows() = %d, want 2", got)
	}
	if partial.Data.Attr == nil || partial.Data.Attr.Len() != 0 {
		t.Errorf("recovered Attr = %v, want empty map", partial.Data.Attr)
	}
}
