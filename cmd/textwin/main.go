// Package main is the entry point for the textwin command, which slides
// fixed-length character windows over UTF-8 text and reports the raw
// windows or their n-gram frequencies.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dshills/textwin/internal/config"
	"github.com/dshills/textwin/internal/report"
	"github.com/dshills/textwin/internal/textenc"
	"github.com/dshills/textwin/internal/watcher"
	"github.com/dshills/textwin/ngram"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultConfigFile = "textwin.toml"

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		watch       bool
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.BoolVar(&watch, "watch", false, "Re-run the report when the input file changes")
	flag.BoolVar(&showVersion, "version", false, "Print version information and exit")

	sizeFlag := flag.Int("size", 0, "Window length in runes (at least 1)")
	modeFlag := flag.String("mode", "", "Output mode: windows or ngrams")
	formatFlag := flag.String("format", "", "Output format: list, table, or json")
	normalizeFlag := flag.Bool("normalize", false, "Apply Unicode NFC before windowing")
	minCountFlag := flag.Int("min-count", 0, "Drop n-grams seen fewer times (ngrams mode)")
	topFlag := flag.Int("top", 0, "Keep only the N most frequent n-grams (0 for all)")

	flag.Usage = usage
	flag.Parse()

	if showVersion {
		fmt.Printf("textwin %s (commit %s, built %s)\n", version, commit, date)
		return 0
	}

	path := configPath
	if path == "" {
		path = defaultConfigFile
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Flags set on the command line override the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			cfg.Size = *sizeFlag
		case "mode":
			cfg.Mode = *modeFlag
		case "format":
			cfg.Format = *formatFlag
		case "normalize":
			cfg.Normalize = *normalizeFlag
		case "min-count":
			cfg.MinCount = *minCountFlag
		case "top":
			cfg.Top = *topFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	args := flag.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "Error: at most one input file")
		return 1
	}

	if len(args) == 0 {
		if watch {
			fmt.Fprintln(os.Stderr, "Error: -watch requires an input file")
			return 1
		}
		if term.IsTerminal(int(os.Stdin.Fd())) {
			usage()
			return 1
		}
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: reading stdin: %v\n", err)
			return 1
		}
		if err := process(cfg, raw, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	file := args[0]
	if err := processFile(cfg, file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if !watch {
		return 0
	}

	w, err := watcher.New(file, 0)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: watching %s: %v\n", file, err)
		return 1
	}
	defer w.Close()

	for {
		select {
		case _, ok := <-w.Changes():
			if !ok {
				return 0
			}
			if err := processFile(cfg, file); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
		case err := <-w.Errors():
			fmt.Fprintf(os.Stderr, "Error: watcher: %v\n", err)
		}
	}
}

// processFile runs one report over the file's current contents.
func processFile(cfg config.Config, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return process(cfg, raw, os.Stdout)
}

// process cleans the input, tokenizes it, and renders the configured
// report.
func process(cfg config.Config, raw []byte, out io.Writer) error {
	text := textenc.Clean(raw)
	if cfg.Normalize {
		text = textenc.Normalize(text)
	}

	tokens := ngram.New(cfg.Size).Tokenize(text)

	switch cfg.Mode {
	case config.ModeWindows:
		switch cfg.Format {
		case config.FormatList:
			return report.Tokens(out, tokens)
		case config.FormatTable:
			report.TokensTable(out, tokens)
			return nil
		case config.FormatJSON:
			return report.TokensJSON(out, tokens)
		}
	case config.ModeNgrams:
		counts := trim(ngram.Frequencies(tokens), cfg.MinCount, cfg.Top)
		switch cfg.Format {
		case config.FormatList:
			return report.Counts(out, counts)
		case config.FormatTable:
			report.CountsTable(out, counts)
			return nil
		case config.FormatJSON:
			return report.CountsJSON(out, counts)
		}
	}
	return fmt.Errorf("unknown mode %q", cfg.Mode)
}

// trim applies the min-count and top-K filters to sorted counts.
func trim(counts []ngram.TermCount, minCount, top int) []ngram.TermCount {
	n := len(counts)
	for n > 0 && counts[n-1].Count < minCount {
		n--
	}
	counts = counts[:n]
	if top > 0 && len(counts) > top {
		counts = counts[:top]
	}
	return counts
}

func usage() {
	fmt.Fprintf(os.Stderr, `textwin - sliding character windows over UTF-8 text

Usage:
  textwin [flags] [file]

Reads the file, or stdin when no file is given, and reports either every
window or aggregated n-gram frequencies.

Flags:
`)
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, `
Configuration is read from %s (or -config) and overridden by flags.
`, defaultConfigFile)
}
