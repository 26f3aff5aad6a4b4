package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
format: txt
output:
  format: csv
  pretty: true
datetime:
  layout: "02/01/2006 15:04:05"
encodings:
  txt: UTF-16LE
  csv: ISO-8859-3
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Format != "txt" {
		t.Errorf("Format = %q, want txt", cfg.Format)
	}
	if cfg.Output.Format != "csv" || !cfg.Output.Pretty {
		t.Errorf("Output = %+v", cfg.Output)
	}
	if cfg.DateTime.Layout != "02/01/2006 15:04:05" {
		t.Errorf("DateTime.Layout = %q", cfg.DateTime.Layout)
	}
	if cfg.Encodings.TXTEncoding() == nil {
		t.Error("TXT encoding not resolved")
	}
	if cfg.Encodings.CSVEncoding() == nil {
		t.Error("CSV encoding not resolved")
	}
	if got := len(cfg.ReaderOptions()); got != 2 {
		t.Errorf("got %d reader options, want 2", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(context.Background(), writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Format != "" {
		t.Errorf("Format = %q, want empty (auto-detect)", cfg.Format)
	}
	if cfg.DateTime.Parser() != nil {
		t.Error("Parser() should be nil for default layouts")
	}
	if len(cfg.ReaderOptions()) != 0 {
		t.Error("ReaderOptions() should be empty by default")
	}
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvOutputFormat, "csv")
	t.Setenv(EnvDateTimeLayout, "2006-01-02")

	cfg, err := Load(context.Background(), writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, want csv", cfg.Output.Format)
	}
	if cfg.DateTime.Layout != "2006-01-02" {
		t.Errorf("DateTime.Layout = %q", cfg.DateTime.Layout)
	}
	if cfg.DateTime.Parser() == nil {
		t.Error("Parser() = nil, want layout parser")
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "bad input format",
			mutate:  func(c *Config) { c.Format = "xlsx" },
			wantErr: "format",
		},
		{
			name:    "bad output format",
			mutate:  func(c *Config) { c.Output.Format = "xml" },
			wantErr: "output.format",
		},
		{
			name:    "missing output format",
			mutate:  func(c *Config) { c.Output.Format = "" },
			wantErr: "output.format",
		},
		{
			name:    "unknown charset",
			mutate:  func(c *Config) { c.Encodings.TXT = "no-such-charset" },
			wantErr: "encodings.txt",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := Validate(cfg)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestResolveEncoding(t *testing.T) {
	for _, name := range []string{"UTF-16LE", "ISO-8859-3", "UTF-8", "windows-1252"} {
		enc, err := resolveEncoding(name)
		if err != nil || enc == nil {
			t.Errorf("resolveEncoding(%q) = %v, %v", name, enc, err)
		}
	}

	enc, err := resolveEncoding("")
	if err != nil || enc != nil {
		t.Errorf("resolveEncoding(\"\") = %v, %v; want nil, nil", enc, err)
	}
}
