// Package ngram tokenizes text into overlapping character n-grams using
// the window iterator. Tokens carry both rune positions and byte offsets
// so downstream consumers (indexers, highlighters) can map terms back
// into the source text.
package ngram

import (
	"sort"
	"unicode/utf8"

	"github.com/dshills/textwin/window"
)

// Token is one n-gram occurrence in a source text.
type Token struct {
	Term      string `json:"term"`
	Position  int    `json:"position"`   // Rune index of the window start
	StartByte int    `json:"start_byte"` // Byte offset of the window start
	EndByte   int    `json:"end_byte"`   // Byte offset just past the window
}

// Tokenizer produces character n-grams of a fixed size.
type Tokenizer struct {
	n int
}

// New creates a tokenizer emitting n-rune grams.
func New(n int) *Tokenizer {
	return &Tokenizer{n: n}
}

// N returns the gram size.
func (t *Tokenizer) N() int {
	return t.n
}

// Tokenize returns every n-gram of text in order. Terms share text's
// storage. A size of zero or less yields no tokens; the infinite
// empty-window stream is a window package contract, not a tokenizer one.
func (t *Tokenizer) Tokenize(text string) []Token {
	if t.n <= 0 {
		return nil
	}

	it := window.New(text, t.n)
	lo, _, _ := it.SizeHint()
	tokens := make([]Token, 0, lo)

	pos, start := 0, 0
	for term, ok := it.Next(); ok; term, ok = it.Next() {
		tokens = append(tokens, Token{
			Term:      term,
			Position:  pos,
			StartByte: start,
			EndByte:   start + len(term),
		})
		_, w := utf8.DecodeRuneInString(text[start:])
		start += w
		pos++
	}
	return tokens
}

// TermCount aggregates the occurrences of one term.
type TermCount struct {
	Term      string `json:"term"`
	Count     int    `json:"count"`
	Positions []int  `json:"positions"` // Rune positions, ascending
}

// Frequencies aggregates tokens into per-term counts, ordered by
// descending count with ties broken by first appearance in the text.
func Frequencies(tokens []Token) []TermCount {
	index := make(map[string]int, len(tokens))
	counts := make([]TermCount, 0, len(tokens))

	for _, tok := range tokens {
		i, seen := index[tok.Term]
		if !seen {
			i = len(counts)
			index[tok.Term] = i
			counts = append(counts, TermCount{Term: tok.Term})
		}
		counts[i].Count++
		counts[i].Positions = append(counts[i].Positions, tok.Position)
	}

	sort.SliceStable(counts, func(a, b int) bool {
		return counts[a].Count > counts[b].Count
	})
	return counts
}
