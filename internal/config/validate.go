package config

import (
	"errors"
	"fmt"
	"strings"

	"textstat/internal/textio"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateText(); err != nil {
		return err
	}
	if err := c.validateMerge(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	if c.Stats.Jobs <= 0 {
		return errors.New("stats.jobs must be positive")
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.DataDir == "" {
		return errors.New("paths.data_dir must be set")
	}
	return nil
}

func (c *Config) validateText() error {
	if _, err := textio.LookupDecoder(c.Text.Encoding); err != nil {
		return fmt.Errorf("text.encoding: %w", err)
	}
	if c.Text.MaxLineBytes < 0 {
		return errors.New("text.max_line_bytes must not be negative")
	}
	return nil
}

func (c *Config) validateMerge() error {
	switch c.Merge.Policy {
	case MergePolicyBestEffort, MergePolicyStrict:
	default:
		return fmt.Errorf("merge.policy must be %q or %q, got %q", MergePolicyBestEffort, MergePolicyStrict, c.Merge.Policy)
	}
	return nil
}

// Level and format are compared case-insensitively since command-line
// overrides bypass normalize.
func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level must be one of debug, info, warn, error; got %q", c.Logging.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be %q or %q, got %q", "console", "json", c.Logging.Format)
	}
	return nil
}
