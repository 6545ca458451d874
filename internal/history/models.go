package history

import (
	"fmt"
	"time"
)

// Kind identifies the operation a run performed.
type Kind string

const (
	KindMatch Kind = "match"
	KindStats Kind = "stats"
	KindMerge Kind = "merge"
)

// Status is the outcome of a run.
type Status string

const (
	StatusOK Status = "ok"
	// StatusPartial marks a best-effort merge that skipped sources.
	StatusPartial Status = "partial"
	StatusFailed  Status = "failed"
)

// Run is one recorded invocation.
type Run struct {
	ID          string        `json:"id"`
	Kind        Kind          `json:"kind"`
	Sources     []string      `json:"sources"`
	Target      string        `json:"target,omitempty"`
	Destination string        `json:"destination,omitempty"`
	MatchCount  int           `json:"match_count"`
	TotalWords  int           `json:"total_words"`
	TotalChars  int           `json:"total_chars"`
	TotalLines  int           `json:"total_lines"`
	Bytes       int           `json:"bytes"`
	Skipped     int           `json:"skipped"`
	Status      Status        `json:"status"`
	Error       string        `json:"error,omitempty"`
	Duration    time.Duration `json:"duration"`
	CreatedAt   time.Time     `json:"created_at"`
}

func (k Kind) valid() bool {
	switch k {
	case KindMatch, KindStats, KindMerge:
		return true
	}
	return false
}

func (s Status) valid() bool {
	switch s {
	case StatusOK, StatusPartial, StatusFailed:
		return true
	}
	return false
}

func (r *Run) validate() error {
	if !r.Kind.valid() {
		return fmt.Errorf("invalid run kind %q", r.Kind)
	}
	if !r.Status.valid() {
		return fmt.Errorf("invalid run status %q", r.Status)
	}
	return nil
}
