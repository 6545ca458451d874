package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"textstat/internal/config"
	"textstat/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded count, stats, and merge runs",
	}

	historyCmd.AddCommand(newHistoryListCommand(ctx))
	historyCmd.AddCommand(newHistoryShowCommand(ctx))
	historyCmd.AddCommand(newHistoryPruneCommand(ctx))

	return historyCmd
}

func (c *commandContext) withHistory(fn func(*config.Config, *history.Store) error) error {
	cfg, err := c.ensureConfig()
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return errors.New("run history is disabled (history.enabled = false)")
	}
	store, err := history.Open(cfg)
	if err != nil {
		return fmt.Errorf("open run history: %w", err)
	}
	defer store.Close()
	return fn(cfg, store)
}

func newHistoryListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(_ *config.Config, store *history.Store) error {
				runs, err := store.List(cmd.Context(), limit)
				if err != nil {
					return err
				}
				if jsonOutput {
					if runs == nil {
						runs = []*history.Run{}
					}
					return writeJSON(cmd, runs)
				}
				out := cmd.OutOrStdout()
				if len(runs) == 0 {
					fmt.Fprintln(out, "No runs recorded")
					return nil
				}
				fmt.Fprintln(out, renderHistoryTable(runs, time.Now()))
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", history.DefaultListLimit, "Maximum runs to list")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newHistoryShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one run by ID or unique ID prefix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(_ *config.Config, store *history.Store) error {
				run, err := store.Get(cmd.Context(), strings.TrimSpace(args[0]))
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, run)
				}
				printRun(cmd.OutOrStdout(), run)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newHistoryPruneCommand(ctx *commandContext) *cobra.Command {
	var olderThan time.Duration

	cmd := &cobra.Command{
		Use:   "prune",
		Short: "Delete runs older than a duration (default history.retention_days)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(cfg *config.Config, store *history.Store) error {
				age := olderThan
				if age <= 0 {
					if cfg.History.RetentionDays <= 0 {
						return errors.New("--older-than is required when history.retention_days is 0")
					}
					age = time.Duration(cfg.History.RetentionDays) * 24 * time.Hour
				}
				removed, err := store.Prune(cmd.Context(), time.Now().Add(-age))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Pruned %d runs older than %s\n", removed, age)
				return nil
			})
		},
	}

	cmd.Flags().DurationVar(&olderThan, "older-than", 0, "Age cutoff, e.g. 720h")
	return cmd
}

func renderHistoryTable(runs []*history.Run, now time.Time) string {
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			shortID(run.ID),
			string(run.Kind),
			string(run.Status),
			runSummary(run),
			strings.Join(run.Sources, ", "),
			humanize.RelTime(run.CreatedAt, now, "ago", "from now"),
		})
	}
	return tableSpec{
		headers: []string{"ID", "Kind", "Status", "Result", "Files", "When"},
		aligns:  []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
		rows:    rows,
	}.render()
}

func runSummary(run *history.Run) string {
	if run.Status == history.StatusFailed {
		return "-"
	}
	switch run.Kind {
	case history.KindMatch:
		return fmt.Sprintf("'%s' x%d", run.Target, run.MatchCount)
	case history.KindStats:
		return fmt.Sprintf("%d words, %d chars, %d lines", run.TotalWords, run.TotalChars, run.TotalLines)
	case history.KindMerge:
		return fmt.Sprintf("%d lines, %s", run.TotalLines, humanize.IBytes(uint64(run.Bytes)))
	default:
		return ""
	}
}

func printRun(out io.Writer, run *history.Run) {
	fields := [][2]string{
		{"ID", run.ID},
		{"Kind", string(run.Kind)},
		{"Status", string(run.Status)},
		{"Created", run.CreatedAt.Local().Format(time.RFC3339)},
		{"Duration", run.Duration.String()},
		{"Files", strings.Join(run.Sources, ", ")},
	}
	switch run.Kind {
	case history.KindMatch:
		fields = append(fields,
			[2]string{"Target", run.Target},
			[2]string{"Matches", strconv.Itoa(run.MatchCount)},
			[2]string{"Lines", strconv.Itoa(run.TotalLines)},
		)
	case history.KindStats:
		fields = append(fields,
			[2]string{"Words", strconv.Itoa(run.TotalWords)},
			[2]string{"Characters", strconv.Itoa(run.TotalChars)},
			[2]string{"Lines", strconv.Itoa(run.TotalLines)},
		)
	case history.KindMerge:
		fields = append(fields,
			[2]string{"Destination", run.Destination},
			[2]string{"Lines", strconv.Itoa(run.TotalLines)},
			[2]string{"Size", humanize.IBytes(uint64(run.Bytes))},
			[2]string{"Skipped", strconv.Itoa(run.Skipped)},
		)
	}
	if run.Error != "" {
		fields = append(fields, [2]string{"Error", run.Error})
	}
	for _, field := range fields {
		fmt.Fprintf(out, "%-12s %s\n", field[0]+":", field[1])
	}
}

func shortID(id string) string {
	if i := strings.IndexByte(id, '-'); i > 0 {
		return id[:i]
	}
	return id
}
