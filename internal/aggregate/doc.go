// Package aggregate folds text sources into word, character, and line tallies.
//
// Two modes exist. MatchCount counts tokens equal to a target under
// whitespace splitting. Statistics counts words and characters under
// whitespace-plus-punctuation splitting. Both count lines. Aggregate is the
// pure fold over a line sequence; Aggregator adds file access, cancellation,
// and an optional bounded fan-out across several files. A failed pass never
// yields a partial Result.
package aggregate
