package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// timestampLayout is fixed width so created_at sorts lexically.
const timestampLayout = "2006-01-02T15:04:05.000000000Z"

const runColumns = "id, kind, sources_json, target, destination, match_count, total_words, total_chars, total_lines, bytes_written, skipped, status, error_message, duration_ms, created_at"

// DefaultListLimit caps List when limit is not positive.
const DefaultListLimit = 20

// Record stores run, assigning an ID and creation time when they are unset,
// and returns the stored copy.
func (s *Store) Record(ctx context.Context, run Run) (*Run, error) {
	if err := run.validate(); err != nil {
		return nil, err
	}
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	run.CreatedAt = run.CreatedAt.UTC()
	if run.Sources == nil {
		run.Sources = []string{}
	}

	sourcesJSON, err := json.Marshal(run.Sources)
	if err != nil {
		return nil, fmt.Errorf("marshal sources: %w", err)
	}

	_, err = s.exec(
		ctx,
		`INSERT INTO runs (`+runColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Kind,
		string(sourcesJSON),
		nullableString(run.Target),
		nullableString(run.Destination),
		run.MatchCount,
		run.TotalWords,
		run.TotalChars,
		run.TotalLines,
		run.Bytes,
		run.Skipped,
		run.Status,
		nullableString(run.Error),
		run.Duration.Milliseconds(),
		run.CreatedAt.Format(timestampLayout),
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return &run, nil
}

// List returns up to limit runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs ORDER BY created_at DESC, rowid DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Get returns the run with id. A unique ID prefix, such as the short form
// shown in log lines, is accepted as well.
func (s *Store) Get(ctx context.Context, id string) (*Run, error) {
	if id == "" {
		return nil, ErrNotFound
	}

	run, err := scanRun(s.db.QueryRowContext(ctx, `SELECT `+runColumns+` FROM runs WHERE id = ?`, id))
	if err == nil {
		return run, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get run: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+runColumns+` FROM runs WHERE substr(id, 1, ?) = ? LIMIT 2`, len(id), id)
	if err != nil {
		return nil, fmt.Errorf("get run by prefix: %w", err)
	}
	defer rows.Close()

	var matches []*Run
	for rows.Next() {
		match, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, match)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("run id prefix %q is ambiguous", id)
	}
}

// Prune deletes runs created before cutoff and returns how many were removed.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.exec(ctx,
		`DELETE FROM runs WHERE created_at < ?`, cutoff.UTC().Format(timestampLayout))
	if err != nil {
		return 0, fmt.Errorf("prune runs: %w", err)
	}
	return res.RowsAffected()
}

func scanRun(scanner interface{ Scan(dest ...any) error }) (*Run, error) {
	var (
		run         Run
		kind        string
		status      string
		sourcesJSON string
		target      sql.NullString
		destination sql.NullString
		errorMsg    sql.NullString
		durationMS  int64
		createdRaw  string
	)
	if err := scanner.Scan(
		&run.ID,
		&kind,
		&sourcesJSON,
		&target,
		&destination,
		&run.MatchCount,
		&run.TotalWords,
		&run.TotalChars,
		&run.TotalLines,
		&run.Bytes,
		&run.Skipped,
		&status,
		&errorMsg,
		&durationMS,
		&createdRaw,
	); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(sourcesJSON), &run.Sources); err != nil {
		return nil, fmt.Errorf("decode sources for run %s: %w", run.ID, err)
	}
	createdAt, err := time.Parse(timestampLayout, createdRaw)
	if err != nil {
		return nil, fmt.Errorf("parse created_at for run %s: %w", run.ID, err)
	}

	run.Kind = Kind(kind)
	run.Status = Status(status)
	run.Target = target.String
	run.Destination = destination.String
	run.Error = errorMsg.String
	run.Duration = time.Duration(durationMS) * time.Millisecond
	run.CreatedAt = createdAt
	return &run, nil
}

func nullableString(value string) any {
	if value == "" {
		return nil
	}
	return value
}
