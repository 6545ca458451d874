package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"textstat/internal/textio"
)

// Paths contains directory configuration.
type Paths struct {
	DataDir string `toml:"data_dir"`
	LogDir  string `toml:"log_dir"`
}

// Text controls how sources are decoded and tokens compared.
type Text struct {
	Encoding     string `toml:"encoding"`
	MaxLineBytes int    `toml:"max_line_bytes"`
	FoldCase     bool   `toml:"fold_case"`
	NormalizeNFC bool   `toml:"normalize_nfc"`
}

// Stats contains configuration for multi-file statistics.
type Stats struct {
	Jobs int `toml:"jobs"`
}

// Merge contains configuration for file concatenation.
type Merge struct {
	// Policy is "best_effort" (skip unreadable sources) or "strict".
	Policy string `toml:"policy"`
	Output string `toml:"output"`
}

// History contains configuration for the run history database.
type History struct {
	Enabled       bool `toml:"enabled"`
	RetentionDays int  `toml:"retention_days"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for textstat.
type Config struct {
	Paths   Paths   `toml:"paths"`
	Text    Text    `toml:"text"`
	Stats   Stats   `toml:"stats"`
	Merge   Merge   `toml:"merge"`
	History History `toml:"history"`
	Logging Logging `toml:"logging"`
}

// EnsureDirectories creates the data directory and, when configured, the log
// directory.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.DataDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// HistoryPath returns the location of the run history database.
func (c *Config) HistoryPath() string {
	return filepath.Join(c.Paths.DataDir, "history.db")
}

// LogPath returns the log file location, or "" when file logging is off.
func (c *Config) LogPath() string {
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		return ""
	}
	return filepath.Join(c.Paths.LogDir, "textstat.log")
}

// TextOptions returns the reader options derived from the [text] section.
func (c *Config) TextOptions() textio.Options {
	return textio.Options{
		Encoding:     c.Text.Encoding,
		MaxLineBytes: c.Text.MaxLineBytes,
		NormalizeNFC: c.Text.NormalizeNFC,
	}
}
