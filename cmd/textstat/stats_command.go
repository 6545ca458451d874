package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"textstat/internal/aggregate"
	"textstat/internal/history"
)

type statsOutput struct {
	Files []aggregate.Result `json:"files"`
	Total aggregate.Result   `json:"total"`
}

func newStatsCommand(ctx *commandContext) *cobra.Command {
	var tableOutput bool
	var jsonOutput bool
	var jobs int

	cmd := &cobra.Command{
		Use:   "stats <file>...",
		Short: "Report total words, characters, and lines",
		Long: "Split every line of each file on whitespace and . , ! ? and report the\n" +
			"number of words, the characters in those words, and the number of lines.\n" +
			"Any unreadable file aborts the whole command.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			run, err := ctx.startRun(cmd, "stats")
			if err != nil {
				return err
			}

			if jobs <= 0 {
				jobs = run.cfg.Stats.Jobs
			}
			agg := aggregate.New(aggregate.Options{
				Text:   run.cfg.TextOptions(),
				Jobs:   jobs,
				Logger: run.logger,
			})
			results, err := agg.Files(run.ctx, args, aggregate.Statistics())
			total := aggregate.Sum(results)
			run.record(history.Run{
				Kind:       history.KindStats,
				Sources:    args,
				TotalWords: total.TotalWords,
				TotalChars: total.TotalChars,
				TotalLines: total.TotalLines,
			}, err)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}

			out := cmd.OutOrStdout()
			switch {
			case jsonOutput:
				return writeJSON(cmd, statsOutput{Files: results, Total: total})
			case tableOutput:
				fmt.Fprint(out, renderStatsTable(results, total))
				fmt.Fprintln(out)
			default:
				printStats(out, results, total)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&tableOutput, "table", false, "Render results as a table")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "Files processed concurrently (default stats.jobs)")
	return cmd
}

func printStats(out io.Writer, results []aggregate.Result, total aggregate.Result) {
	if len(results) == 1 {
		printCounters(out, "", results[0])
		return
	}
	for _, result := range results {
		fmt.Fprintf(out, "%s:\n", result.Path)
		printCounters(out, "  ", result)
	}
	fmt.Fprintln(out, "Total:")
	printCounters(out, "  ", total)
}

func printCounters(out io.Writer, indent string, result aggregate.Result) {
	fmt.Fprintf(out, "%sTotal Words: %d\n", indent, result.TotalWords)
	fmt.Fprintf(out, "%sTotal Characters: %d\n", indent, result.TotalChars)
	fmt.Fprintf(out, "%sTotal Lines: %d\n", indent, result.TotalLines)
}

func renderStatsTable(results []aggregate.Result, total aggregate.Result) string {
	spec := tableSpec{
		headers: []string{"File", "Words", "Characters", "Lines"},
		aligns:  []columnAlignment{alignLeft, alignRight, alignRight, alignRight},
		rows:    make([][]string, 0, len(results)),
	}
	for _, result := range results {
		spec.rows = append(spec.rows, counterRow(result.Path, result))
	}
	if len(results) > 1 {
		spec.footer = counterRow("Total", total)
	}
	return spec.render()
}

func counterRow(label string, result aggregate.Result) []string {
	return []string{
		label,
		strconv.Itoa(result.TotalWords),
		strconv.Itoa(result.TotalChars),
		strconv.Itoa(result.TotalLines),
	}
}
