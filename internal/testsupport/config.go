package testsupport

import (
	"path/filepath"
	"testing"

	"textstat/internal/config"
)

// ConfigOption adjusts a generated test config.
type ConfigOption func(*config.Config)

// NewConfig returns the default config rooted in a fresh temp directory:
// data and logs live under it and merge output defaults to output.txt.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Merge.Output = filepath.Join(base, "output.txt")
	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

func WithoutHistory() ConfigOption {
	return func(cfg *config.Config) { cfg.History.Enabled = false }
}

func WithMergePolicy(policy string) ConfigOption {
	return func(cfg *config.Config) { cfg.Merge.Policy = policy }
}

func WithEncoding(name string) ConfigOption {
	return func(cfg *config.Config) { cfg.Text.Encoding = name }
}

// BaseDir returns the temp directory NewConfig created for cfg.
func BaseDir(cfg *config.Config) string {
	return filepath.Dir(cfg.Paths.DataDir)
}
