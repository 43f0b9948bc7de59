package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/dshills/textwin/ngram"
)

func TestTokens(t *testing.T) {
	tokens := ngram.New(2).Tokenize("abc")

	var buf bytes.Buffer
	if err := Tokens(&buf, tokens); err != nil {
		t.Fatal(err)
	}
	want := "ab\nbc\n"
	if buf.String() != want {
		t.Errorf("Tokens output = %q, want %q", buf.String(), want)
	}
}

func TestTokensTable(t *testing.T) {
	tokens := ngram.New(2).Tokenize("aé😀")

	var buf bytes.Buffer
	TokensTable(&buf, tokens)
	out := buf.String()

	for _, want := range []string{"POS", "WINDOW", "aé", "é😀", "0-3", "1-7"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTokensJSON(t *testing.T) {
	tokens := ngram.New(2).Tokenize("abc")

	var buf bytes.Buffer
	if err := TokensJSON(&buf, tokens); err != nil {
		t.Fatal(err)
	}

	var decoded []ngram.Token
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 2 || decoded[0].Term != "ab" || decoded[1].Term != "bc" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestCountsAlignment(t *testing.T) {
	counts := []ngram.TermCount{
		{Term: "日本", Count: 3, Positions: []int{0}},
		{Term: "ab", Count: 1, Positions: []int{5}},
	}

	var buf bytes.Buffer
	if err := Counts(&buf, counts); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), lines)
	}

	// "日本" is 4 cells wide, "ab" is 2; the narrower term gets two
	// spaces of padding so the count column lines up.
	if lines[0] != "日本  3" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "ab    1" {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestCountsTable(t *testing.T) {
	counts := []ngram.TermCount{
		{Term: "ab", Count: 2, Positions: []int{0, 2}},
	}

	var buf bytes.Buffer
	CountsTable(&buf, counts)
	out := buf.String()
	for _, want := range []string{"TERM", "COUNT", "FIRST AT", "ab", "2", "0"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestCountsJSON(t *testing.T) {
	counts := []ngram.TermCount{{Term: "xy", Count: 4, Positions: []int{1, 2, 3, 4}}}

	var buf bytes.Buffer
	if err := CountsJSON(&buf, counts); err != nil {
		t.Fatal(err)
	}
	var decoded []ngram.TermCount
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(decoded) != 1 || decoded[0].Term != "xy" || decoded[0].Count != 4 {
		t.Errorf("decoded = %+v", decoded)
	}
}
