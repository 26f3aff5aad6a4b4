package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runDetectCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer

	cmd := NewDetectCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})

	err := cmd.Execute()
	return out.String(), err
}

func TestDetectCommand_Text(t *testing.T) {
	path := filepath.Join(t.TempDir(), "log.csv")
	if err := os.WriteFile(path, []byte("a,b\n1,2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := runDetectCommand(t, path)
	if err != nil {
		t.Fatalf("detect error = %v", err)
	}
	if !strings.Contains(got, "Format: csv") {
		t.Errorf("output missing format:\n%s", got)
	}
	if !strings.Contains(got, "extension") {
		t.Errorf("output missing detection source:\n%s", got)
	}
}

func TestDetectCommand_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.dat")
	if err := os.WriteFile(path, []byte("PK\x03\x04payload"), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := runDetectCommand(t, "-o", "json", path)
	if err != nil {
		t.Fatalf("detect error = %v", err)
	}

	var parsed detectJSON
	if err := json.Unmarshal([]byte(got), &parsed); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, got)
	}
	if parsed.Format != "zip" || parsed.Source != "content" {
		t.Errorf("parsed = %+v", parsed)
	}
}

func TestDetectCommand_MissingFile(t *testing.T) {
	if _, err := runDetectCommand(t, filepath.Join(t.TempDir(), "nope.log")); err == nil {
		t.Error("expected error for missing file")
	}
}
