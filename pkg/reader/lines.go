package reader

import (
	"bytes"
	"io"
)

// lineSource reads decoded text line by line over a fully buffered
// document. It supports un-reading the most recently read line by its
// exact byte length, which is what the attribute-block grammar needs for
// its one line of lookahead, and absolute seeking, which the fixed-width
// reader needs to replay the header region.
type lineSource struct {
	buf []byte
	pos int
}

func newLineSource(text []byte) *lineSource {
	return &lineSource{buf: text}
}

// readLine returns the next line without its terminator, plus the number
// of bytes consumed including the terminator. At end of input it returns
// io.EOF with size 0.
func (s *lineSource) readLine() (line string, size int, err error) {
	if s.pos >= len(s.buf) {
		return "", 0, io.EOF
	}

	rest := s.buf[s.pos:]
	i := bytes.IndexByte(rest, '\n')
	if i < 0 {
		size = len(rest)
		line = string(rest)
	} else {
		size = i + 1
		line = string(rest[:i])
	}
	s.pos += size

	return trimCR(line), size, nil
}

func trimCR(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\r' {
		return line[:n-1]
	}
	return line
}

// unreadLine rewinds by the byte length of the last line read.
func (s *lineSource) unreadLine(size int) {
	s.pos -= size
	if s.pos < 0 {
		s.pos = 0
	}
}

// offset returns the current byte position.
func (s *lineSource) offset() int {
	return s.pos
}

// seek moves to an absolute byte position.
func (s *lineSource) seek(off int) {
	s.pos = off
}
