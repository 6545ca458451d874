package aggregate

import (
	"iter"

	"textstat/internal/textutil"
)

// Aggregate visits every line once and folds the counters selected by mode.
func Aggregate(lines iter.Seq[string], mode Mode) Result {
	result := Result{Mode: mode.Kind}
	if mode.Kind == KindMatch {
		result.Target = mode.Target
	}

	delims := mode.Delimiters()
	target := mode.Target
	if mode.FoldCase {
		target = textutil.Fold(target)
	}

	for line := range lines {
		result.TotalLines++
		switch mode.Kind {
		case KindMatch:
			if target == "" {
				continue
			}
			for token := range textutil.Tokens(line, delims) {
				if mode.FoldCase {
					token = textutil.Fold(token)
				}
				if token == target {
					result.MatchCount++
				}
			}
		case KindStats:
			for token := range textutil.Tokens(line, delims) {
				result.TotalWords++
				result.TotalChars += textutil.CountRunes(token)
			}
		}
	}
	return result
}
