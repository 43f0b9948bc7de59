package window

import (
	"iter"
	"math"
	"unicode/utf8"
)

// Iter is a forward-only iterator over the rune windows of a string.
// The zero value is exhausted; use New.
type Iter struct {
	rest string // Suffix of the input not yet consumed as a window start
	end  int    // Byte offset in rest of the current window's exclusive end
	size int    // Window length in runes; fixed at construction
}

// New creates an iterator over all windows of size runes in s.
// It accepts any size and any valid UTF-8 string, including empty ones:
// a size larger than the rune count of s yields no windows, and size 0
// yields an endless stream of empty windows (see the package comment).
//
// Construction scans the first size runes of s to locate the end of the
// first window; after that each Next call does constant work.
func New(s string, size int) *Iter {
	return &Iter{
		rest: s,
		end:  boundary(s, size),
		size: size,
	}
}

// boundary returns the byte offset just past the first n runes of s,
// or len(s)+1 if s holds fewer than n runes.
func boundary(s string, n int) int {
	off := 0
	for i := 0; i < n; i++ {
		if off >= len(s) {
			return len(s) + 1
		}
		_, w := utf8.DecodeRuneInString(s[off:])
		off += w
	}
	return off
}

// Next returns the next window and true, or "" and false once all
// windows have been produced. After it reports exhaustion it continues
// to do so on every later call; the iterator never resurrects.
func (it *Iter) Next() (string, bool) {
	if it.size == 0 {
		return "", true
	}
	if it.end > len(it.rest) {
		return "", false
	}

	win := it.rest[:it.end]

	// Slide by one rune: the leading rune leaves the window and, if the
	// input has one, the rune just past end enters it. end is tracked
	// relative to rest, so the departing width comes off both.
	_, lead := utf8.DecodeRuneInString(it.rest)
	if it.end < len(it.rest) {
		_, trail := utf8.DecodeRuneInString(it.rest[it.end:])
		it.end += trail - lead
	} else {
		// That was the final window; park end past the shortened rest so
		// every later call reports exhaustion.
		it.end = len(it.rest) + 1 - lead
	}
	it.rest = it.rest[lead:]

	return win, true
}

// SizeHint estimates how many windows remain, without scanning. The
// lower bound never exceeds the true count. hiOK reports whether hi is
// meaningful; it is false only for size 0, whose stream is infinite.
//
// The estimate derives from byte length (a rune is 1-4 bytes), so for
// ASCII input hi is exact and lo is a quarter of it. The hint is
// advisory, suitable for preallocation only.
func (it *Iter) SizeHint() (lo, hi int, hiOK bool) {
	if it.size == 0 {
		return math.MaxInt, 0, false
	}
	minRunes := (len(it.rest) + 3) / 4
	maxRunes := len(it.rest)
	lo = max(minRunes-(it.size-1), 0)
	hi = max(maxRunes-(it.size-1), 0)
	return lo, hi, true
}

// Seq adapts the iterator to Go's range-over-func protocol, yielding
// the remaining windows in order:
//
//	for w := range window.New(s, 3).Seq() {
//		...
//	}
//
// For size 0 the sequence is infinite; the loop must break on its own.
func (it *Iter) Seq() iter.Seq[string] {
	return func(yield func(string) bool) {
		for w, ok := it.Next(); ok; w, ok = it.Next() {
			if !yield(w) {
				return
			}
		}
	}
}

// Count returns the number of windows New(s, size) produces:
// max(runes(s)-size+1, 0). For size 0 the stream is infinite and Count
// returns -1.
func Count(s string, size int) int {
	if size == 0 {
		return -1
	}
	return max(utf8.RuneCountInString(s)-size+1, 0)
}

// Collect returns all windows of size runes in s as a slice. The
// elements share s's storage. For size 0 it returns nil instead of
// looping forever.
func Collect(s string, size int) []string {
	if size == 0 {
		return nil
	}
	it := New(s, size)
	lo, _, _ := it.SizeHint()
	out := make([]string, 0, lo)
	for w, ok := it.Next(); ok; w, ok = it.Next() {
		out = append(out, w)
	}
	return out
}
