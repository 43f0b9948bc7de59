// Package report renders windowing results as plain lists, aligned
// tables, or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/rivo/uniseg"

	"github.com/dshills/textwin/ngram"
)

// Tokens writes raw window tokens, one per line.
func Tokens(w io.Writer, tokens []ngram.Token) error {
	for _, tok := range tokens {
		if _, err := fmt.Fprintln(w, tok.Term); err != nil {
			return err
		}
	}
	return nil
}

// TokensTable writes window tokens with their rune and byte positions.
func TokensTable(w io.Writer, tokens []ngram.Token) {
	table := newTable(w)
	table.SetHeader([]string{"POS", "BYTES", "WINDOW"})
	for _, tok := range tokens {
		table.Append([]string{
			strconv.Itoa(tok.Position),
			fmt.Sprintf("%d-%d", tok.StartByte, tok.EndByte),
			tok.Term,
		})
	}
	table.Render()
}

// TokensJSON writes window tokens as a JSON array.
func TokensJSON(w io.Writer, tokens []ngram.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokens)
}

// Counts writes term frequencies one per line, with counts aligned in a
// column. Terms may mix scripts and emoji, so the column is sized by
// display width rather than byte or rune length.
func Counts(w io.Writer, counts []ngram.TermCount) error {
	width := 0
	for _, tc := range counts {
		if tw := uniseg.StringWidth(tc.Term); tw > width {
			width = tw
		}
	}
	for _, tc := range counts {
		pad := strings.Repeat(" ", width-uniseg.StringWidth(tc.Term))
		if _, err := fmt.Fprintf(w, "%s%s  %d\n", tc.Term, pad, tc.Count); err != nil {
			return err
		}
	}
	return nil
}

// CountsTable writes term frequencies as a table with first-occurrence
// positions.
func CountsTable(w io.Writer, counts []ngram.TermCount) {
	table := newTable(w)
	table.SetHeader([]string{"TERM", "COUNT", "FIRST AT"})
	for _, tc := range counts {
		first := ""
		if len(tc.Positions) > 0 {
			first = strconv.Itoa(tc.Positions[0])
		}
		table.Append([]string{tc.Term, strconv.Itoa(tc.Count), first})
	}
	table.Render()
}

// CountsJSON writes term frequencies as a JSON array.
func CountsJSON(w io.Writer, counts []ngram.TermCount) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(counts)
}

func newTable(w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	return table
}
