package reader

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Default source encodings for the instrument's export formats. The
// fixed-width/attribute exports are 16-bit little-endian text; delimited
// exports use an 8-bit Latin-family encoding.
var (
	defaultTXTEncoding encoding.Encoding = unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	defaultCSVEncoding encoding.Encoding = charmap.ISO8859_3
)

// decodeAll decodes the whole raw byte stream into UTF-8 text using the
// named encoding. Parsing always operates on the fully buffered result.
func decodeAll(r io.Reader, enc encoding.Encoding) ([]byte, error) {
	text, err := io.ReadAll(transform.NewReader(r, enc.NewDecoder()))
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	return text, nil
}
