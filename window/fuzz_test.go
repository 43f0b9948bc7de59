package window

import (
	"testing"
	"unicode/utf8"
)

// FuzzCollect compares the sliding iterator against the naive rune-slice
// reference on arbitrary inputs.
func FuzzCollect(f *testing.F) {
	f.Add("", 1)
	f.Add("hello", 2)
	f.Add("hello", 7)
	f.Add("日本語", 2)
	f.Add("emoji 🎉 test", 3)
	f.Add("s 😀😁", 3)
	f.Add("ééé", 2)

	f.Fuzz(func(t *testing.T, s string, size int) {
		// Valid UTF-8 is the iterator's documented precondition.
		if !utf8.ValidString(s) {
			return
		}
		size = size % 16
		if size < 0 {
			size = -size
		}
		size++

		got := Collect(s, size)
		want := naiveWindows(s, size)
		if len(got) != len(want) {
			t.Fatalf("Collect(%q, %d) yielded %d windows, want %d", s, size, len(got), len(want))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Errorf("window %d = %q, want %q", i, got[i], want[i])
			}
		}

		// A fresh iterator's lower hint must not promise more than exists.
		if lo, hi, hiOK := New(s, size).SizeHint(); lo > len(want) || (hiOK && hi < len(want)) {
			t.Errorf("SizeHint() = (%d, %d, %v) for %d actual windows", lo, hi, hiOK, len(want))
		}
	})
}

// FuzzFused checks that exhaustion is terminal no matter the input.
func FuzzFused(f *testing.F) {
	f.Add("hello", 3)
	f.Add("", 1)
	f.Add("日本語", 9)

	f.Fuzz(func(t *testing.T, s string, size int) {
		if !utf8.ValidString(s) {
			return
		}
		size = size % 16
		if size < 0 {
			size = -size
		}
		size++

		it := New(s, size)
		for _, ok := it.Next(); ok; _, ok = it.Next() {
		}
		for i := 0; i < 5; i++ {
			if w, ok := it.Next(); ok {
				t.Fatalf("iterator resurrected with %q on call %d after exhaustion", w, i)
			}
		}
	})
}
