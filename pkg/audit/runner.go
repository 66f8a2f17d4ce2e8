package audit

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trizel-ai/trizel/pkg/logger"
)

// Observer is called once per checked page, in completion order. Calls are
// serialized.
type Observer func(Result)

// Runner checks a list of URLs with an Engine.
type Runner struct {
	engine   Engine
	category string
	workers  int
	observer Observer
	logger   *slog.Logger
	now      func() time.Time
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithWorkers sets how many pages are checked at once. Default: 1.
func WithWorkers(n int) RunnerOption {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithCategory sets the rule id filter. Default: DefaultCategory.
func WithCategory(category string) RunnerOption {
	return func(r *Runner) {
		if category != "" {
			r.category = category
		}
	}
}

// WithObserver registers a per-page callback.
func WithObserver(fn Observer) RunnerOption {
	return func(r *Runner) {
		r.observer = fn
	}
}

// WithLogger sets the logger for per-page diagnostics.
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithClock overrides the time source for report timestamps.
func WithClock(now func() time.Time) RunnerOption {
	return func(r *Runner) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRunner creates a Runner. It panics if engine is nil.
func NewRunner(engine Engine, opts ...RunnerOption) *Runner {
	if engine == nil {
		panic("audit: nil engine")
	}
	r := &Runner{
		engine:   engine,
		category: DefaultCategory,
		workers:  1,
		logger:   logger.NewNope(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run checks every URL once. A page failure is recorded in its Result and
// never stops the run. Results are sorted by URL.
func (r *Runner) Run(ctx context.Context, urls []string) Report {
	report := Report{StartedAt: r.now()}
	results := make([]Result, len(urls))

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	g.SetLimit(r.workers)
	for i, url := range urls {
		g.Go(func() error {
			res := r.Check(ctx, url)
			results[i] = res
			if r.observer != nil {
				mu.Lock()
				r.observer(res)
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	slices.SortStableFunc(results, func(a, b Result) int {
		return cmp.Compare(a.URL, b.URL)
	})

	report.Results = results
	report.Summary = Summarize(results)
	report.FinishedAt = r.now()

	r.logger.InfoContext(ctx, "audit finished",
		slog.Int("total", report.Summary.Total),
		slog.Int("passed", report.Summary.Passed),
		slog.Int("failed", report.Summary.Failed),
		slog.Int("errored", report.Summary.Errored),
		slog.Duration("duration", report.Duration()),
	)
	return report
}

// Check analyzes a single URL and classifies it.
func (r *Runner) Check(ctx context.Context, url string) Result {
	all, err := r.engine.Analyze(ctx, url)
	if err != nil {
		r.logger.WarnContext(ctx, "page check failed",
			slog.String("url", url),
			slog.Any("error", err),
		)
		return Result{URL: url, Error: err.Error()}
	}

	matched := Filter(all, r.category)
	if all == nil {
		all = []Violation{}
	}
	r.logger.DebugContext(ctx, "page checked",
		slog.String("url", url),
		slog.Int("violations", len(matched)),
		slog.Int("all_violations", len(all)),
	)
	return Result{
		URL:           url,
		Passed:        len(matched) == 0,
		Violations:    matched,
		AllViolations: all,
	}
}
