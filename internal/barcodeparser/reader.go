// =============================================================================
// Barcode Transaction Processor - Line Reader
// =============================================================================
//
// This module turns an input stream into stripped text lines for the header
// and record parsers. It handles:
//   - LF and CRLF line endings
//   - Leading/trailing whitespace on each line
//   - Non-UTF-8 encodings from older point-of-sale exports
//   - A UTF-8 byte order mark at the start of the file
//
// USAGE:
//   src, err := barcodeparser.NewScanner(file, "UTF-8")
//   if err != nil {
//       return err
//   }
//   for src.Next() {
//       line := src.Text()
//       // ...
//   }
//   if err := src.Err(); err != nil {
//       return err
//   }
//
// =============================================================================

package barcodeparser

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// =============================================================================
// LINE SOURCE
// =============================================================================

// LineSource yields stripped input lines one at a time.
type LineSource interface {
	// Next advances to the next line. It returns false at the end of input
	// or on a read error.
	Next() bool

	// Text returns the current line without its terminator or surrounding
	// whitespace.
	Text() string

	// LineNumber returns the 1-based number of the current line.
	LineNumber() int

	// Err returns the first read error, if any.
	Err() error
}

// =============================================================================
// SCANNER
// =============================================================================

// Scanner is a LineSource over an io.Reader.
type Scanner struct {
	reader     *bufio.Reader
	line       string
	lineNumber int
	err        error
}

// NewScanner creates a Scanner that decodes r from the named encoding.
//
// PARAMETERS:
//   - r: The raw input.
//   - encodingName: "UTF-8", "Shift_JIS", "ISO-8859-1", "Windows-1252" or
//     any WHATWG encoding label. Empty means UTF-8.
//
// RETURNS:
//   - The scanner.
//   - An error if the encoding is unknown.
func NewScanner(r io.Reader, encodingName string) (*Scanner, error) {
	decoded, err := DecodingReader(r, encodingName)
	if err != nil {
		return nil, err
	}

	return &Scanner{reader: bufio.NewReader(decoded)}, nil
}

// Next advances to the next line.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}

	// Lines have no length limit; the header carries a free-form name.
	line, err := s.reader.ReadString('\n')
	if err != nil && err != io.EOF {
		s.err = fmt.Errorf("error reading line %d: %w", s.lineNumber+1, err)
		return false
	}
	if err == io.EOF && line == "" {
		return false
	}

	s.lineNumber++
	s.line = strings.TrimSpace(line)
	return true
}

// Text returns the current stripped line.
func (s *Scanner) Text() string {
	return s.line
}

// LineNumber returns the current 1-based line number.
func (s *Scanner) LineNumber() int {
	return s.lineNumber
}

// Err returns any error that occurred while reading.
func (s *Scanner) Err() error {
	return s.err
}

// =============================================================================
// SLICE SOURCE
// =============================================================================

// sliceSource is a LineSource over lines already in memory.
type sliceSource struct {
	lines []string
	pos   int
}

// FromLines returns a LineSource over lines. Each line is stripped the same
// way the Scanner strips lines read from a file.
func FromLines(lines []string) LineSource {
	return &sliceSource{lines: lines}
}

func (s *sliceSource) Next() bool {
	if s.pos >= len(s.lines) {
		return false
	}
	s.pos++
	return true
}

func (s *sliceSource) Text() string {
	return strings.TrimSpace(s.lines[s.pos-1])
}

func (s *sliceSource) LineNumber() int {
	return s.pos
}

func (s *sliceSource) Err() error {
	return nil
}

// =============================================================================
// FILE HELPERS
// =============================================================================

// FileSource is a Scanner that owns its file.
type FileSource struct {
	*Scanner
	file *os.File
}

// OpenFile opens path and returns a LineSource that must be closed.
func OpenFile(path, encodingName string) (*FileSource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	scanner, err := NewScanner(file, encodingName)
	if err != nil {
		file.Close()
		return nil, err
	}

	return &FileSource{Scanner: scanner, file: file}, nil
}

// Close closes the underlying file.
func (f *FileSource) Close() error {
	return f.file.Close()
}

// =============================================================================
// ENCODINGS
// =============================================================================

// DecodingReader wraps r with a decoder for the named encoding.
// UTF-8 input has a leading byte order mark removed.
func DecodingReader(r io.Reader, encodingName string) (io.Reader, error) {
	enc, err := LookupEncoding(encodingName)
	if err != nil {
		return nil, err
	}
	if enc == nil {
		return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())), nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}

// LookupEncoding resolves an encoding name.
// It returns a nil encoding for UTF-8.
func LookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "", "UTF-8", "UTF8":
		return nil, nil
	case "SHIFT_JIS", "SHIFT-JIS", "SJIS":
		return japanese.ShiftJIS, nil
	case "ISO-8859-1", "LATIN1", "LATIN-1":
		return charmap.ISO8859_1, nil
	case "WINDOWS-1252", "CP1252":
		return charmap.Windows1252, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", name, err)
	}
	return enc, nil
}
