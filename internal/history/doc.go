// Package history persists finished count, stats, and merge runs in SQLite so
// operators can review earlier tallies.
//
// The database lives at config.Config.HistoryPath and is opened in WAL mode
// with a busy timeout. Schema changes ship as embedded, ordered SQL
// migrations tracked in schema_migrations. Writes retry briefly when SQLite
// reports the database as busy.
package history
