package aggregate

import (
	"fmt"

	"textstat/internal/textutil"
)

// ModeKind names an aggregation mode.
type ModeKind string

const (
	KindMatch ModeKind = "match"
	KindStats ModeKind = "stats"
)

// Mode selects which counters a pass computes and how lines are tokenized.
type Mode struct {
	Kind   ModeKind
	Target string
	// FoldCase compares tokens to Target after Unicode case folding.
	FoldCase bool
}

// MatchCount counts exact, case-sensitive occurrences of target.
func MatchCount(target string) Mode {
	return Mode{Kind: KindMatch, Target: target}
}

// Statistics counts words, characters, and lines.
func Statistics() Mode {
	return Mode{Kind: KindStats}
}

// Delimiters returns the delimiter set the mode tokenizes with.
func (m Mode) Delimiters() textutil.DelimiterSet {
	if m.Kind == KindMatch {
		return textutil.Whitespace
	}
	return textutil.Punctuation
}

// Validate rejects unknown kinds.
func (m Mode) Validate() error {
	switch m.Kind {
	case KindMatch, KindStats:
		return nil
	default:
		return fmt.Errorf("unknown aggregation mode %q", m.Kind)
	}
}

func (m Mode) String() string {
	if m.Kind == KindMatch {
		return fmt.Sprintf("%s(%q)", m.Kind, m.Target)
	}
	return string(m.Kind)
}
