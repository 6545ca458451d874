package merge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"textstat/internal/logging"
	"textstat/internal/textio"
)

// ErrNoSources is returned when Merge is called without any source.
var ErrNoSources = errors.New("merge requires at least one source")

// Options configures a Merger.
type Options struct {
	Text   textio.Options
	Policy Policy
	Logger *slog.Logger
}

// Merger concatenates sources into a destination file.
type Merger struct {
	text   textio.Options
	policy Policy
	logger *slog.Logger
}

// New constructs a Merger. An empty policy means BestEffort.
func New(opts Options) *Merger {
	policy := opts.Policy
	if policy == "" {
		policy = BestEffort
	}
	return &Merger{
		text:   opts.Text,
		policy: policy,
		logger: logging.NewComponentLogger(opts.Logger, "merge"),
	}
}

// Merge copies the lines of sources, in order, into dst. The returned report
// carries the absolute destination path. Destination failures are always
// returned as *textio.IOFailure; source failures follow the merger's policy.
func (m *Merger) Merge(ctx context.Context, dst string, sources ...string) (Report, error) {
	if len(sources) == 0 {
		return Report{}, ErrNoSources
	}
	destination, err := filepath.Abs(dst)
	if err != nil {
		return Report{}, fmt.Errorf("resolve destination %q: %w", dst, err)
	}

	report := Report{
		Destination: destination,
		Policy:      m.policy,
		Sources:     make([]SourceReport, 0, len(sources)),
	}

	var buf bytes.Buffer
	for _, source := range sources {
		lines, err := m.copySource(ctx, &buf, source)
		report.Sources = append(report.Sources, SourceReport{Path: source, Lines: lines})
		report.Lines += lines
		if err == nil {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Report{}, ctxErr
		}
		if m.policy == Strict {
			return Report{}, err
		}
		report.Skipped = append(report.Skipped, Skip{Path: source, Err: err})
		logging.WarnWithContext(m.logger, "merge source skipped",
			"merge_source_failed",
			logging.String("path", source),
			logging.Int("lines_kept", lines),
			logging.Error(err),
			logging.String(logging.FieldImpact, "destination will not contain the full source"),
		)
	}

	if err := ctx.Err(); err != nil {
		return Report{}, err
	}
	if err := textio.Write(destination, buf.Bytes()); err != nil {
		return Report{}, err
	}
	report.Bytes = buf.Len()

	m.logger.Debug("merge complete",
		logging.String("destination", destination),
		logging.Int("sources", len(sources)),
		logging.Int("skipped", len(report.Skipped)),
		logging.Int("bytes", report.Bytes),
	)
	return report, nil
}

// copySource appends every line of path to buf and returns how many lines it
// copied, including those gathered before a read failure.
func (m *Merger) copySource(ctx context.Context, buf *bytes.Buffer, path string) (int, error) {
	reader, err := textio.Open(path, m.text)
	if err != nil {
		return 0, err
	}
	defer reader.Close()

	copied := 0
	for line := range reader.Lines() {
		if err := ctx.Err(); err != nil {
			return copied, err
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
		copied++
	}
	return copied, reader.Err()
}
