// Package textenc prepares raw input bytes for rune-level processing.
// The window iterator assumes valid UTF-8; this package is where that
// assumption is established for data read from files or pipes.
package textenc

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var bom = []byte{0xEF, 0xBB, 0xBF}

// Clean converts raw bytes to a valid UTF-8 string. A leading byte order
// mark is dropped and invalid sequences are replaced with U+FFFD.
func Clean(b []byte) string {
	b = bytes.TrimPrefix(b, bom)
	if utf8.Valid(b) {
		return string(b)
	}
	return string(bytes.ToValidUTF8(b, []byte("�")))
}

// Normalize returns s in Unicode NFC. Windowing counts scalar values, so
// composed and decomposed spellings of the same text produce different
// windows; normalizing first makes results stable across sources.
func Normalize(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
