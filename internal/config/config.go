// Package config loads textwin's TOML configuration. Command-line flags
// override file values; the file simply sets the defaults for a project.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Modes select what the tool emits.
const (
	ModeWindows = "windows" // Raw windows, one per step
	ModeNgrams  = "ngrams"  // Aggregated n-gram frequencies
)

// Output formats.
const (
	FormatList  = "list"
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config holds all tool settings.
type Config struct {
	// Size is the window length in runes. Must be at least 1; the
	// library's infinite size-0 stream is not reachable from the tool.
	Size int `toml:"size"`

	// Mode is ModeWindows or ModeNgrams.
	Mode string `toml:"mode"`

	// Format is FormatList, FormatTable, or FormatJSON.
	Format string `toml:"format"`

	// Normalize applies Unicode NFC before windowing.
	Normalize bool `toml:"normalize"`

	// MinCount drops n-grams seen fewer times (ngrams mode only).
	MinCount int `toml:"min_count"`

	// Top keeps only the most frequent n-grams; 0 keeps all.
	Top int `toml:"top"`
}

// Default returns the settings used when no file or flag overrides them.
func Default() Config {
	return Config{
		Size:     3,
		Mode:     ModeNgrams,
		Format:   FormatTable,
		MinCount: 1,
	}
}

// ParseError reports a malformed configuration file.
type ParseError struct {
	Path    string
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Load reads the TOML file at path over the defaults. A missing file is
// not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, &ParseError{Path: path, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

// Validate checks field values, reporting the first problem found.
func (c Config) Validate() error {
	if c.Size < 1 {
		return fmt.Errorf("size must be at least 1, got %d", c.Size)
	}
	switch c.Mode {
	case ModeWindows, ModeNgrams:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.Format {
	case FormatList, FormatTable, FormatJSON:
	default:
		return fmt.Errorf("unknown format %q", c.Format)
	}
	if c.MinCount < 0 {
		return fmt.Errorf("min_count must not be negative, got %d", c.MinCount)
	}
	if c.Top < 0 {
		return fmt.Errorf("top must not be negative, got %d", c.Top)
	}
	return nil
}
