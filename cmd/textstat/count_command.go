package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textstat/internal/aggregate"
	"textstat/internal/history"
)

func newCountCommand(ctx *commandContext) *cobra.Command {
	var target string
	var foldCase bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "count <file>",
		Short: "Count whole-word occurrences of a target in a file",
		Long: "Count how many whitespace-separated tokens of <file> equal --target exactly.\n" +
			"Punctuation stays attached to tokens, so \"great.\" does not match \"great\".",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(target) == "" {
				return errors.New("--target is required")
			}
			run, err := ctx.startRun(cmd, "count")
			if err != nil {
				return err
			}

			path := args[0]
			mode := aggregate.MatchCount(target)
			mode.FoldCase = foldCase || run.cfg.Text.FoldCase

			agg := aggregate.New(aggregate.Options{
				Text:   run.cfg.TextOptions(),
				Logger: run.logger,
			})
			result, err := agg.File(run.ctx, path, mode)
			run.record(history.Run{
				Kind:       history.KindMatch,
				Sources:    []string{path},
				Target:     target,
				MatchCount: result.MatchCount,
				TotalLines: result.TotalLines,
			}, err)
			if err != nil {
				return fmt.Errorf("count %s: %w", path, err)
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "'%s' appears %d times in %s\n", target, result.MatchCount, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "target", "t", "", "Word to count")
	cmd.Flags().BoolVar(&foldCase, "fold-case", false, "Match case-insensitively")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
