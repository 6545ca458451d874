package testsupport

import (
	"context"
	"testing"

	"textstat/internal/config"
	"textstat/internal/history"
)

// MustOpenStore opens the history database for cfg and closes it when the test ends.
func MustOpenStore(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()
	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("open history: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

// RecordRun records run and fails the test on error.
func RecordRun(t testing.TB, store *history.Store, run history.Run) *history.Run {
	t.Helper()
	stored, err := store.Record(context.Background(), run)
	if err != nil {
		t.Fatalf("record run %s: %v", run.Kind, err)
	}
	return stored
}
