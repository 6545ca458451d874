package textutil

import (
	"iter"
	"unicode/utf8"
)

// DelimiterSet is the set of runes treated as token separators. The zero value
// contains no delimiters, so a whole line becomes a single token.
type DelimiterSet struct {
	ascii [utf8.RuneSelf]bool
	other map[rune]struct{}
}

// NewDelimiterSet builds a set from the runes of chars.
func NewDelimiterSet(chars string) DelimiterSet {
	var set DelimiterSet
	for _, r := range chars {
		if r < utf8.RuneSelf {
			set.ascii[r] = true
			continue
		}
		if set.other == nil {
			set.other = make(map[rune]struct{})
		}
		set.other[r] = struct{}{}
	}
	return set
}

const (
	whitespaceChars  = " \t\n\v\f\r"
	punctuationChars = ".,!?"
)

var (
	// Whitespace separates tokens for exact word-occurrence matching.
	Whitespace = NewDelimiterSet(whitespaceChars)
	// Punctuation separates tokens for word and character statistics.
	Punctuation = NewDelimiterSet(whitespaceChars + punctuationChars)
)

// Contains reports whether r is a delimiter.
func (s DelimiterSet) Contains(r rune) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return s.ascii[r]
	}
	_, ok := s.other[r]
	return ok
}

// Tokens yields the non-empty tokens of line, splitting on maximal runs of
// delimiters from set.
func Tokens(line string, set DelimiterSet) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range line {
			if set.Contains(r) {
				if start >= 0 {
					if !yield(line[start:i]) {
						return
					}
					start = -1
				}
				continue
			}
			if start < 0 {
				start = i
			}
		}
		if start >= 0 {
			yield(line[start:])
		}
	}
}

// Split collects Tokens into a slice. It returns nil for a line with no tokens.
func Split(line string, set DelimiterSet) []string {
	var out []string
	for token := range Tokens(line, set) {
		out = append(out, token)
	}
	return out
}

// CountRunes returns the number of characters in token, counted as Unicode
// code points: "a😀b" has three.
func CountRunes(token string) int {
	return utf8.RuneCountInString(token)
}
