package textenc

import (
	"testing"
	"unicode/utf8"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input []byte
		want  string
	}{
		{"valid ascii", []byte("hello"), "hello"},
		{"valid multibyte", []byte("日本語 😀"), "日本語 😀"},
		{"empty", []byte{}, ""},
		{"strips bom", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, "hi"},
		{"bare bom", []byte{0xEF, 0xBB, 0xBF}, ""},
		{"invalid byte replaced", []byte{'a', 0xFF, 'b'}, "a�b"},
		{"truncated rune replaced", []byte{'a', 0xE6, 0x97}, "a�"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%v) = %q, want %q", tt.input, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Clean(%v) produced invalid UTF-8", tt.input)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	// e + combining acute is two runes; NFC composes them into one.
	decomposed := "é"
	got := Normalize(decomposed)
	if got != "é" {
		t.Errorf("Normalize(%q) = %q, want %q", decomposed, got, "é")
	}
	if utf8.RuneCountInString(got) != 1 {
		t.Errorf("normalized form has %d runes, want 1", utf8.RuneCountInString(got))
	}

	// Already-composed text passes through unchanged.
	if got := Normalize("café 日本語"); got != "café 日本語" {
		t.Errorf("Normalize changed already-normal text to %q", got)
	}
}
