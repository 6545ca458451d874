package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"textstat/internal/config"
	"textstat/internal/history"
	"textstat/internal/logging"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		if level := flagValue(c.logLevelFlag); level != "" {
			cfg.Logging.Level = level
		}
		if format := flagValue(c.logFormatFlag); format != "" {
			cfg.Logging.Format = format
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logger
	})
	return c.logger, c.loggerErr
}

// runScope carries the per-invocation state shared by count, stats, and merge.
type runScope struct {
	ctx     context.Context
	id      string
	cfg     *config.Config
	logger  *slog.Logger
	started time.Time
}

func (c *commandContext) startRun(cmd *cobra.Command, component string) (*runScope, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	id := uuid.NewString()
	ctx := logging.WithRunID(parent, id)
	return &runScope{
		ctx:     ctx,
		id:      id,
		cfg:     cfg,
		logger:  logging.WithContext(ctx, logging.NewComponentLogger(logger, component)),
		started: time.Now(),
	}, nil
}

// record stores run in the history database. Failures are logged and never
// change the command's outcome.
func (s *runScope) record(run history.Run, runErr error) {
	if !s.cfg.History.Enabled {
		return
	}
	run.ID = s.id
	run.Duration = time.Since(s.started)
	if runErr != nil {
		run.Status = history.StatusFailed
		run.Error = runErr.Error()
	} else if run.Status == "" {
		run.Status = history.StatusOK
	}

	store, err := history.Open(s.cfg)
	if err != nil {
		logging.WarnWithContext(s.logger, "run history unavailable", "history_open_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "run was not recorded"),
		)
		return
	}
	defer store.Close()

	// Interrupted runs are still recorded.
	ctx := context.WithoutCancel(s.ctx)
	if _, err := store.Record(ctx, run); err != nil {
		logging.WarnWithContext(s.logger, "run history write failed", "history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "run was not recorded"),
		)
		return
	}
	if days := s.cfg.History.RetentionDays; days > 0 {
		cutoff := time.Now().Add(-time.Duration(days) * 24 * time.Hour)
		if removed, err := store.Prune(ctx, cutoff); err != nil {
			s.logger.Debug("history prune failed", logging.Error(err))
		} else if removed > 0 {
			s.logger.Debug("history pruned", logging.Int("removed", int(removed)))
		}
	}
}

func flagValue(flag *string) string {
	if flag == nil {
		return ""
	}
	return strings.ToLower(strings.TrimSpace(*flag))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
