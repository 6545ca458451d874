package main

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"textstat/internal/aggregate"
	"textstat/internal/history"
	"textstat/internal/testsupport"
	"textstat/internal/textio"
)

func TestCountCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeSource(t, "java.txt", "Java is great. Java rocks!\n")

	out, _, err := env.run(t, "count", path, "--target", "Java")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if want := "'Java' appears 2 times in " + path + "\n"; out != want {
		t.Fatalf("count output = %q, want %q", out, want)
	}

	out, _, err = env.run(t, "count", path, "--target", "java", "--fold-case", "--json")
	if err != nil {
		t.Fatalf("count --json: %v", err)
	}
	var result aggregate.Result
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("decode count json: %v", err)
	}
	if result.MatchCount != 2 || result.Mode != aggregate.KindMatch || result.TotalLines != 1 {
		t.Fatalf("unexpected json result %+v", result)
	}
}

func TestCountDecodesConfiguredEncoding(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithEncoding("latin1"))
	path := env.writeSource(t, "cafe.txt", "caf\xe9 au lait or caf\xe9 noir\n")

	out, _, err := env.run(t, "count", path, "--target", "café")
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	requireContains(t, out, "'café' appears 2 times")
}

func TestCountRequiresTarget(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeSource(t, "a.txt", "a\n")

	if _, _, err := env.run(t, "count", path); err == nil {
		t.Fatal("expected error without --target")
	}
}

func TestCountMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.baseDir, "missing.txt")

	out, _, err := env.run(t, "count", missing, "--target", "x")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if out != "" {
		t.Fatalf("expected no result on stdout, got %q", out)
	}
	failure, ok := textio.AsIOFailure(err)
	if !ok || failure.Path != missing {
		t.Fatalf("expected IOFailure for %s, got %v", missing, err)
	}
	requireContains(t, err.Error(), missing)
}

func TestStatsCommandSingleFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeSource(t, "java.txt", "Java is great. Java rocks!\n")

	out, _, err := env.run(t, "stats", path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	want := "Total Words: 5\nTotal Characters: 20\nTotal Lines: 1\n"
	if out != want {
		t.Fatalf("stats output = %q, want %q", out, want)
	}
}

func TestStatsCommandMultipleFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.writeSource(t, "a.txt", "one two\n")
	b := env.writeSource(t, "b.txt", "three\n\nfour!\n")

	out, _, err := env.run(t, "stats", a, b)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	requireContains(t, out, a+":\n  Total Words: 2\n")
	requireContains(t, out, b+":\n  Total Words: 2\n")
	requireContains(t, out, "Total:\n  Total Words: 4\n  Total Characters: 15\n  Total Lines: 4\n")

	out, _, err = env.run(t, "stats", "--table", a, b)
	if err != nil {
		t.Fatalf("stats --table: %v", err)
	}
	for _, want := range []string{"File", "Words", "Characters", "Lines", "Total", filepath.Base(a)} {
		requireContains(t, out, want)
	}

	out, _, err = env.run(t, "stats", "--json", "--jobs", "1", a, b)
	if err != nil {
		t.Fatalf("stats --json: %v", err)
	}
	var decoded statsOutput
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("decode stats json: %v", err)
	}
	if len(decoded.Files) != 2 || decoded.Files[0].Path != a || decoded.Total.TotalWords != 4 {
		t.Fatalf("unexpected stats json %+v", decoded)
	}
}

func TestStatsCommandAbortsOnMissingFile(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.writeSource(t, "a.txt", "one two\n")
	missing := filepath.Join(env.baseDir, "missing.txt")

	out, _, err := env.run(t, "stats", a, missing)
	if err == nil {
		t.Fatal("expected error")
	}
	if out != "" {
		t.Fatalf("expected no partial output, got %q", out)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	store := testsupport.MustOpenStore(t, env.cfg)
	runs, err := store.List(t.Context(), 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(runs) != 1 || runs[0].Kind != history.KindStats || runs[0].Status != history.StatusFailed {
		t.Fatalf("expected failed stats run, got %+v", runs)
	}
}

func TestMergeCommand(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.writeSource(t, "a.txt", "hello\nworld")
	b := env.writeSource(t, "b.txt", "foo\nbar")
	dst := filepath.Join(env.baseDir, "merged.txt")

	out, _, err := env.run(t, "merge", a, b, "-o", dst)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, "merged file output at: "+dst+"\n")
	requireContains(t, out, "wrote 20 B (4 lines from 2 of 2 files)")
	if got := testsupport.ReadText(t, dst); got != "hello\nworld\nfoo\nbar\n" {
		t.Fatalf("merged content = %q", got)
	}
}

func TestMergeCommandDefaultOutput(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.writeSource(t, "a.txt", "x\n")
	b := env.writeSource(t, "b.txt", "y\n")

	if _, _, err := env.run(t, "merge", a, b); err != nil {
		t.Fatalf("merge: %v", err)
	}
	if got := testsupport.ReadText(t, env.cfg.Merge.Output); got != "x\ny\n" {
		t.Fatalf("merged content = %q", got)
	}
}

func TestMergeCommandBestEffort(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.baseDir, "missing.txt")
	valid := env.writeSource(t, "valid.txt", "foo\nbar")
	dst := filepath.Join(env.baseDir, "merged.txt")

	out, _, err := env.run(t, "merge", missing, valid, "-o", dst)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	requireContains(t, out, "warning: skipped "+missing)
	requireContains(t, out, "from 1 of 2 files")
	if strings.Contains(out, ansiYellow) {
		t.Fatalf("expected no color codes for buffered output, got %q", out)
	}
	if got := testsupport.ReadText(t, dst); got != "foo\nbar\n" {
		t.Fatalf("merged content = %q", got)
	}

	store := testsupport.MustOpenStore(t, env.cfg)
	runs, err := store.List(t.Context(), 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(runs) != 1 || runs[0].Status != history.StatusPartial || runs[0].Skipped != 1 || runs[0].Destination != dst {
		t.Fatalf("expected partial merge run, got %+v", runs)
	}
}

func TestMergeCommandStrict(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.baseDir, "missing.txt")
	valid := env.writeSource(t, "valid.txt", "foo\n")
	dst := filepath.Join(env.baseDir, "merged.txt")

	if _, _, err := env.run(t, "merge", valid, missing, "-o", dst, "--strict"); err == nil {
		t.Fatal("expected strict merge to fail")
	}
	if _, err := os.Stat(dst); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected no output file, stat err = %v", err)
	}
}

func TestMergeCommandStrictFromConfig(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithMergePolicy("strict"))
	missing := filepath.Join(env.baseDir, "missing.txt")
	valid := env.writeSource(t, "valid.txt", "foo\n")

	if _, _, err := env.run(t, "merge", valid, missing); err == nil {
		t.Fatal("expected strict merge to fail")
	}
}

func TestMergeCommandRequiresTwoInputs(t *testing.T) {
	env := setupCLITestEnv(t)
	a := env.writeSource(t, "a.txt", "x\n")

	if _, _, err := env.run(t, "merge", a); err == nil {
		t.Fatal("expected argument error")
	}
}

func TestHistoryCommands(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeSource(t, "java.txt", "Java is great. Java rocks!\n")
	if _, _, err := env.run(t, "count", path, "--target", "Java"); err != nil {
		t.Fatalf("count: %v", err)
	}

	out, _, err := env.run(t, "history", "list")
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	requireContains(t, out, "match")
	requireContains(t, out, "'Java' x2")

	out, _, err = env.run(t, "history", "list", "--json")
	if err != nil {
		t.Fatalf("history list --json: %v", err)
	}
	var runs []history.Run
	if err := json.Unmarshal([]byte(out), &runs); err != nil {
		t.Fatalf("decode history json: %v", err)
	}
	if len(runs) != 1 || runs[0].Kind != history.KindMatch {
		t.Fatalf("expected one match run, got %+v", runs)
	}

	out, _, err = env.run(t, "history", "show", shortID(runs[0].ID))
	if err != nil {
		t.Fatalf("history show: %v", err)
	}
	requireContains(t, out, "ID:          "+runs[0].ID)
	requireContains(t, out, "Matches:     2")

	out, _, err = env.run(t, "history", "prune", "--older-than", "1h")
	if err != nil {
		t.Fatalf("history prune: %v", err)
	}
	requireContains(t, out, "Pruned 0 runs")
}

func TestHistoryDisabled(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())
	path := env.writeSource(t, "a.txt", "a\n")
	if _, _, err := env.run(t, "count", path, "--target", "a"); err != nil {
		t.Fatalf("count: %v", err)
	}

	if _, _, err := env.run(t, "history", "list"); err == nil {
		t.Fatal("expected error when history is disabled")
	}
	if _, err := os.Stat(env.cfg.HistoryPath()); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected no history database, stat err = %v", err)
	}
}

func TestInvalidLogLevelFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeSource(t, "a.txt", "a\n")

	if _, _, err := env.run(t, "--log-level", "chatty", "stats", path); err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if _, _, err := env.run(t, "--log-format", "xml", "stats", path); err == nil {
		t.Fatal("expected error for invalid log format")
	}
}

func TestLogLevelFlagAcceptsWarning(t *testing.T) {
	env := setupCLITestEnv(t)
	path := env.writeSource(t, "a.txt", "a b\n")

	out, _, err := env.run(t, "--log-level", "WARNING", "stats", path)
	if err != nil {
		t.Fatalf("stats --log-level WARNING: %v", err)
	}
	requireContains(t, out, "Total Words: 2\n")
}
