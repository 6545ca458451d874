// Package logging assembles structured slog loggers and formatting helpers used
// across textstat.
//
// It owns the configurable console/JSON handlers, centralizes level and output
// plumbing, and exposes context helpers so every line emitted during one
// command carries the same run ID. The package also provides a no-op logger
// for tests and wiring code that cannot fail.
//
// Logs default to stderr; stdout is reserved for command results.
package logging
