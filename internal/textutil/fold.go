package textutil

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Fold returns the Unicode case-folded form of s. Two tokens match
// case-insensitively when their folded forms are equal.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Normalize returns s in Unicode normalization form C.
func Normalize(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
