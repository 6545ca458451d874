package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"textstat/internal/history"
	"textstat/internal/merge"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var output string
	var strict bool
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "merge <fileA> <fileB> [more...]",
		Short: "Concatenate text files line by line into one output file",
		Long: "Copy every line of each input, in order, into the output file, ending each\n" +
			"line with \\n. The output is replaced in a single write.\n\n" +
			"With the default best_effort policy an unreadable input is reported and\n" +
			"skipped; --strict (or merge.policy = \"strict\") aborts instead and leaves\n" +
			"the output untouched.",
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := ctx.startRun(cmd, "merge")
			if err != nil {
				return err
			}

			policy, err := merge.ParsePolicy(run.cfg.Merge.Policy)
			if err != nil {
				return err
			}
			if strict {
				policy = merge.Strict
			}
			dst := strings.TrimSpace(output)
			if dst == "" {
				dst = run.cfg.Merge.Output
			}

			merger := merge.New(merge.Options{
				Text:   run.cfg.TextOptions(),
				Policy: policy,
				Logger: run.logger,
			})
			report, err := merger.Merge(run.ctx, dst, args...)
			entry := history.Run{
				Kind:        history.KindMerge,
				Sources:     args,
				Destination: report.Destination,
				TotalLines:  report.Lines,
				Bytes:       report.Bytes,
				Skipped:     len(report.Skipped),
			}
			if report.Partial() {
				entry.Status = history.StatusPartial
				entry.Error = skippedSummary(report.Skipped)
			}
			run.record(entry, err)
			if err != nil {
				return fmt.Errorf("merge: %w", err)
			}

			if jsonOutput {
				return writeJSON(cmd, mergeJSON(report))
			}
			printMergeReport(cmd.OutOrStdout(), report, shouldColorize(cmd.OutOrStdout()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default merge.output)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Abort when any input cannot be read")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func printMergeReport(out io.Writer, report merge.Report, colorize bool) {
	for _, skip := range report.Skipped {
		fmt.Fprintln(out, paint(fmt.Sprintf("warning: skipped %s: %v", skip.Path, skip.Err), ansiYellow, colorize))
	}
	fmt.Fprintf(out, "merged file output at: %s\n", report.Destination)
	fmt.Fprintf(out, "wrote %s (%d lines from %d of %d files)\n",
		humanize.IBytes(uint64(report.Bytes)),
		report.Lines,
		len(report.Sources)-len(report.Skipped),
		len(report.Sources),
	)
}

func skippedSummary(skipped []merge.Skip) string {
	parts := make([]string, 0, len(skipped))
	for _, skip := range skipped {
		parts = append(parts, skip.Err.Error())
	}
	return strings.Join(parts, "; ")
}

type mergeSkipJSON struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

type mergeOutputJSON struct {
	merge.Report
	Skipped []mergeSkipJSON `json:"skipped,omitempty"`
}

func mergeJSON(report merge.Report) mergeOutputJSON {
	out := mergeOutputJSON{Report: report}
	for _, skip := range report.Skipped {
		out.Skipped = append(out.Skipped, mergeSkipJSON{Path: skip.Path, Error: skip.Err.Error()})
	}
	return out
}
