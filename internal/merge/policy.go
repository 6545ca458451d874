package merge

import (
	"fmt"
	"strings"
)

// Policy decides what happens when a source cannot be opened or read.
type Policy string

const (
	// BestEffort skips failing sources and writes whatever was gathered.
	BestEffort Policy = "best_effort"
	// Strict aborts the merge on the first source failure.
	Strict Policy = "strict"
)

// ParsePolicy maps a config or flag value onto a Policy. The empty string
// selects BestEffort.
func ParsePolicy(value string) (Policy, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_")
	switch Policy(normalized) {
	case "", BestEffort:
		return BestEffort, nil
	case Strict:
		return Strict, nil
	default:
		return "", fmt.Errorf("unknown merge policy %q", value)
	}
}

func (p Policy) String() string {
	if p == "" {
		return string(BestEffort)
	}
	return string(p)
}
