// Package detector identifies which export format an instrument log file
// uses, from its file extension and from content sniffing.
package detector

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hydrotools/insitulog/pkg/reader"
)

// ErrUnknownFormat indicates neither the extension nor the content
// matched a known export format.
var ErrUnknownFormat = errors.New("unable to detect log format")

// Result holds the outcome of analyzing one input.
type Result struct {
	Format reader.Format
	Source string // "extension" or "content"
	Rule   string // the matching rule's name, for diagnostics
}

// Detector analyzes log files to identify their export format.
type Detector struct {
	signatures []signature
	sniffLen   int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSniffLen sets how many leading bytes are sampled for content
// sniffing (default 512).
func WithSniffLen(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sniffLen = n
		}
	}
}

// New creates a Detector with the default signatures.
func New(opts ...Option) *Detector {
	d := &Detector{
		signatures: defaultSignatures(),
		sniffLen:   512,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile analyzes a log file on disk. A recognized extension
// wins; otherwise the file head is sniffed.
func (d *Detector) DetectFromFile(_ context.Context, path string) (*Result, error) {
	if r, ok := d.detectFromName(path); ok {
		return r, nil
	}

	// #nosec G304 - path is provided by user via CLI
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	head := make([]byte, d.sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return d.DetectFromBytes(head[:n])
}

// DetectFromBytes sniffs the head of an input against the content
// signatures.
func (d *Detector) DetectFromBytes(head []byte) (*Result, error) {
	if len(head) > d.sniffLen {
		head = head[:d.sniffLen]
	}
	for _, sig := range d.signatures {
		if sig.Match(head) {
			return &Result{Format: sig.Format, Source: "content", Rule: sig.Name}, nil
		}
	}
	return nil, ErrUnknownFormat
}

// detectFromName resolves the format from the file extension alone.
func (d *Detector) detectFromName(path string) (*Result, bool) {
	ext := strings.ToLower(filepath.Ext(path))
	format, ok := extensionFormats[ext]
	if !ok {
		return nil, false
	}
	return &Result{Format: format, Source: "extension", Rule: ext}, true
}
