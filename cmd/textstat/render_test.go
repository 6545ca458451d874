package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"textstat/internal/aggregate"
	"textstat/internal/history"
	"textstat/internal/merge"
)

func TestPrintMergeReportColorizesWarnings(t *testing.T) {
	report := merge.Report{
		Destination: "/tmp/out.txt",
		Sources:     []merge.SourceReport{{Path: "a.txt"}, {Path: "b.txt", Lines: 2}},
		Skipped:     []merge.Skip{{Path: "a.txt", Err: errors.New("open a.txt: no such file or directory")}},
		Lines:       2,
		Bytes:       2048,
	}

	var buf bytes.Buffer
	printMergeReport(&buf, report, true)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", buf.String())
	}
	if !strings.HasPrefix(lines[0], ansiYellow) || !strings.HasSuffix(lines[0], ansiReset) {
		t.Fatalf("expected colored warning, got %q", lines[0])
	}
	if lines[1] != "merged file output at: /tmp/out.txt" {
		t.Fatalf("unexpected destination line %q", lines[1])
	}
	if lines[2] != "wrote 2.0 KiB (2 lines from 1 of 2 files)" {
		t.Fatalf("unexpected size line %q", lines[2])
	}
}

func TestRenderStatsTableTotalsOnlyForSeveralFiles(t *testing.T) {
	single := []aggregate.Result{{Path: "a.txt", TotalWords: 1, TotalChars: 3, TotalLines: 1}}
	if out := renderStatsTable(single, aggregate.Sum(single)); strings.Contains(out, "Total") {
		t.Fatalf("expected no total row for one file, got\n%s", out)
	}

	several := append(single, aggregate.Result{Path: "b.txt", TotalWords: 2, TotalChars: 5, TotalLines: 3})
	out := renderStatsTable(several, aggregate.Sum(several))
	for _, want := range []string{"a.txt", "b.txt", "Total", "8", "4"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table\n%s", want, out)
		}
	}
}

func TestRunSummary(t *testing.T) {
	cases := []struct {
		run  history.Run
		want string
	}{
		{history.Run{Kind: history.KindMatch, Target: "Java", MatchCount: 2, Status: history.StatusOK}, "'Java' x2"},
		{history.Run{Kind: history.KindStats, TotalWords: 5, TotalChars: 20, TotalLines: 1, Status: history.StatusOK}, "5 words, 20 chars, 1 lines"},
		{history.Run{Kind: history.KindMerge, TotalLines: 4, Bytes: 20, Status: history.StatusPartial}, "4 lines, 20 B"},
		{history.Run{Kind: history.KindStats, Status: history.StatusFailed}, "-"},
	}
	for _, tc := range cases {
		if got := runSummary(&tc.run); got != tc.want {
			t.Fatalf("runSummary(%+v) = %q, want %q", tc.run, got, tc.want)
		}
	}
}

func TestRenderHistoryTableUsesRelativeTime(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	runs := []*history.Run{{
		ID:        "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		Kind:      history.KindMatch,
		Status:    history.StatusOK,
		Sources:   []string{"a.txt"},
		Target:    "x",
		CreatedAt: now.Add(-3 * time.Hour),
	}}
	out := renderHistoryTable(runs, now)
	for _, want := range []string{"1b4e28ba", "match", "3 hours ago", "a.txt"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in table\n%s", want, out)
		}
	}
	if strings.Contains(out, "2fa1") {
		t.Fatalf("expected shortened id, got\n%s", out)
	}
}
