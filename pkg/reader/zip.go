package reader

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"

	"github.com/hydrotools/insitulog/pkg/table"
)

// readZippedHTML unwraps a zip archive and reads its first entry as a
// structured HTML report.
func readZippedHTML(r io.Reader, parser *table.DateTimeParser) (*AttrMap, *table.Table, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("reading archive: %w", err)
	}

	archive, err := zip.NewReader(bytes.NewReader(buf), int64(len(buf)))
	if err != nil {
		return nil, nil, fmt.Errorf("opening archive: %w", err)
	}
	if len(archive.File) == 0 {
		return nil, nil, fmt.Errorf("archive has no entries: %w", ErrInvalidData)
	}

	entry, err := archive.File[0].Open()
	if err != nil {
		return nil, nil, fmt.Errorf("opening archive entry %q: %w", archive.File[0].Name, err)
	}
	defer entry.Close()

	return readHTML(entry, parser)
}
