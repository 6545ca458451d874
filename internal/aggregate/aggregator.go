package aggregate

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"textstat/internal/logging"
	"textstat/internal/textio"
)

// DefaultJobs bounds Files when Options.Jobs is unset.
const DefaultJobs = 4

// Options configures an Aggregator.
type Options struct {
	Text   textio.Options
	Jobs   int
	Logger *slog.Logger
}

// Aggregator runs passes over files.
type Aggregator struct {
	text   textio.Options
	jobs   int
	logger *slog.Logger
}

// New constructs an Aggregator.
func New(opts Options) *Aggregator {
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = DefaultJobs
	}
	return &Aggregator{
		text:   opts.Text,
		jobs:   jobs,
		logger: logging.NewComponentLogger(opts.Logger, "aggregate"),
	}
}

// File runs one pass over path. Open and read failures are returned as
// *textio.IOFailure with a zero Result.
func (a *Aggregator) File(ctx context.Context, path string, mode Mode) (Result, error) {
	if err := mode.Validate(); err != nil {
		return Result{}, err
	}

	reader, err := textio.Open(path, a.text)
	if err != nil {
		return Result{}, err
	}
	defer reader.Close()

	var ctxErr error
	lines := func(yield func(string) bool) {
		for line := range reader.Lines() {
			if err := ctx.Err(); err != nil {
				ctxErr = err
				return
			}
			if !yield(line) {
				return
			}
		}
	}

	result := Aggregate(lines, mode)
	if ctxErr != nil {
		return Result{}, ctxErr
	}
	if err := reader.Err(); err != nil {
		return Result{}, err
	}
	result.Path = path

	a.logger.Debug("aggregation complete",
		logging.String("path", path),
		logging.String("mode", mode.String()),
		logging.Int("lines", result.TotalLines),
	)
	return result, nil
}

// Files runs independent passes over paths concurrently, at most Jobs at a
// time. Results are ordered like paths. The first failure cancels the rest
// and no results are returned.
func (a *Aggregator) Files(ctx context.Context, paths []string, mode Mode) ([]Result, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(paths))
	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(a.jobs)
	for i, path := range paths {
		group.Go(func() error {
			result, err := a.File(gctx, path, mode)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
