// Package window produces all overlapping fixed-length character windows
// of a string, in order, without copying text.
//
// A window is a run of exactly size consecutive Unicode code points
// (runes), returned as a substring of the input. Successive windows
// advance by one rune, so an input of n runes yields n-size+1 windows:
//
//	it := window.New("hello", 3)
//	for w, ok := it.Next(); ok; w, ok = it.Next() {
//		fmt.Println(w) // "hel", "ell", "llo"
//	}
//
// Windows are measured in runes, not bytes, so multi-byte characters
// count as one unit each:
//
//	window.Collect("s 😀😁", 3) // ["s 😀", " 😀😁"]
//
// Every returned window shares the input string's backing storage; no
// text is allocated during iteration. Construction costs one forward
// scan of the first size runes, and each step does work bounded by the
// byte width of two runes regardless of input length.
//
// The input must be valid UTF-8; that is the caller's responsibility.
// Callers feeding untrusted bytes should scrub them first, for example
// with bytes.ToValidUTF8, before constructing an iterator.
//
// # The size 0 case
//
// An iterator with size 0 never exhausts: every call to Next returns the
// empty string. This mirrors the fact that a zero-length window exists
// at every position. Draining such an iterator (range over Seq, or any
// collect-everything loop) will not terminate; Collect guards against it
// by returning nil. Check the size you pass if it comes from input.
//
// An Iter is not safe for concurrent use. Distinct iterators over the
// same string are independent and may run on different goroutines.
package window
