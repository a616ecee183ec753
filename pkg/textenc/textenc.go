// Package textenc sniffs byte-order marks and converts source files between
// their on-disk encoding and Go strings, line by line.
package textenc

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Encoding identifies the on-disk encoding of a text file.
type Encoding int

const (
	// UTF8 is plain UTF-8 without BOM. Files without a BOM are treated as UTF-8.
	UTF8 Encoding = iota
	// UTF8BOM is UTF-8 with a leading byte-order mark.
	UTF8BOM
	// UTF16LE is little-endian UTF-16 with a leading byte-order mark.
	UTF16LE
	// UTF16BE is big-endian UTF-16 with a leading byte-order mark.
	UTF16BE
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// String returns the encoding name.
func (e Encoding) String() string {
	switch e {
	case UTF8BOM:
		return "utf-8-bom"
	case UTF16LE:
		return "utf-16le"
	case UTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

// Detect sniffs the byte-order mark of raw.
func Detect(raw []byte) Encoding {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return UTF8BOM
	case bytes.HasPrefix(raw, bomUTF16LE):
		return UTF16LE
	case bytes.HasPrefix(raw, bomUTF16BE):
		return UTF16BE
	default:
		return UTF8
	}
}

func (e Encoding) codec() encoding.Encoding {
	switch e {
	case UTF8BOM:
		return unicode.UTF8BOM
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM)
	default:
		return nil
	}
}

// Decode detects the encoding of raw and returns its text without BOM.
func Decode(raw []byte) (string, Encoding, error) {
	enc := Detect(raw)
	codec := enc.codec()
	if codec == nil {
		return string(raw), enc, nil
	}

	out, err := codec.NewDecoder().Bytes(raw)
	if err != nil {
		return "", enc, fmt.Errorf("%w: %s: %w", ErrDecode, enc, err)
	}
	return string(out), enc, nil
}

// Encode converts text to the encoding e, writing a BOM where e has one.
func (e Encoding) Encode(text string) ([]byte, error) {
	codec := e.codec()
	if codec == nil {
		return []byte(text), nil
	}

	out, err := codec.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEncode, e, err)
	}
	return out, nil
}

// SplitLines splits text into lines, accepting LF and CRLF terminators.
// A final terminator does not produce a trailing empty line.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Newline returns the line terminator used by text: CRLF if it appears, LF otherwise.
func Newline(text string) string {
	if strings.Contains(text, "\r\n") {
		return "\r\n"
	}
	return "\n"
}

// JoinLines joins lines, terminating every one of them with newline.
func JoinLines(lines []string, newline string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString(newline)
	}
	return b.String()
}
