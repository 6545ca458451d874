package config

import (
	"fmt"
	"strings"

	"textstat/internal/textio"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeText()
	c.normalizeMerge()
	c.normalizeLogging()
	if c.Stats.Jobs <= 0 {
		c.Stats.Jobs = defaultStatsJobs
	}
	if c.History.RetentionDays < 0 {
		c.History.RetentionDays = 0
	}
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DataDir) == "" {
		c.Paths.DataDir = defaultDataDir()
	}
	if c.Paths.DataDir, err = ExpandPath(c.Paths.DataDir); err != nil {
		return fmt.Errorf("paths.data_dir: %w", err)
	}
	c.Paths.LogDir = strings.TrimSpace(c.Paths.LogDir)
	if c.Paths.LogDir, err = ExpandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeText() {
	c.Text.Encoding = strings.ToLower(strings.TrimSpace(c.Text.Encoding))
	if c.Text.Encoding == "" {
		c.Text.Encoding = textio.DefaultEncoding
	}
}

func (c *Config) normalizeMerge() {
	policy := strings.ToLower(strings.TrimSpace(c.Merge.Policy))
	policy = strings.ReplaceAll(policy, "-", "_")
	if policy == "" {
		policy = MergePolicyBestEffort
	}
	c.Merge.Policy = policy
	c.Merge.Output = strings.TrimSpace(c.Merge.Output)
	if c.Merge.Output == "" {
		c.Merge.Output = defaultMergeOutput
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
