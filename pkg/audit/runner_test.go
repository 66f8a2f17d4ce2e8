package audit_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trizel-ai/trizel/pkg/audit"
)

func TestNewRunnerPanicsWithNilEngine(t *testing.T) {
	t.Parallel()
	require.Panics(t, func() { audit.NewRunner(nil) })
}

func TestRunnerCheck(t *testing.T) {
	t.Parallel()

	engine := newFakeEngine()
	engine.pages["http://site/clean/"] = []audit.Violation{{ID: "region"}}
	engine.pages["http://site/dark/"] = []audit.Violation{
		contrastViolation("color-contrast", 3),
		{ID: "region"},
		contrastViolation("color-contrast-enhanced", 1),
	}
	engine.failures["http://site/down/"] = errNavigation

	runner := audit.NewRunner(engine)
	ctx := context.Background()

	t.Run("no filtered violation passes", func(t *testing.T) {
		t.Parallel()
		res := runner.Check(ctx, "http://site/clean/")
		require.True(t, res.Passed)
		require.Empty(t, res.Violations)
		require.NotNil(t, res.Violations)
		require.Len(t, res.AllViolations, 1)
		require.Equal(t, audit.OutcomePass, res.Outcome())
	})

	t.Run("filtered violations fail with exact count", func(t *testing.T) {
		t.Parallel()
		res := runner.Check(ctx, "http://site/dark/")
		require.False(t, res.Passed)
		require.Len(t, res.Violations, 2)
		require.Len(t, res.AllViolations, 3)
		require.Empty(t, res.Error)
		require.Equal(t, audit.OutcomeFail, res.Outcome())
	})

	t.Run("load error is recorded", func(t *testing.T) {
		t.Parallel()
		res := runner.Check(ctx, "http://site/down/")
		require.False(t, res.Passed)
		require.Contains(t, res.Error, "ERR_CONNECTION_REFUSED")
		require.Nil(t, res.Violations)
		require.Equal(t, audit.OutcomeLoadError, res.Outcome())
		require.Equal(t, "LOAD_ERROR", res.Outcome().String())
	})

	t.Run("engine without violations", func(t *testing.T) {
		t.Parallel()
		res := runner.Check(ctx, "http://site/unknown/")
		require.True(t, res.Passed)
		require.NotNil(t, res.AllViolations)
	})
}

func TestRunnerRun(t *testing.T) {
	t.Parallel()

	engine := newFakeEngine()
	engine.pages["http://site/b"] = []audit.Violation{contrastViolation("color-contrast", 1)}
	engine.failures["http://site/c"] = errNavigation

	var (
		mu       sync.Mutex
		observed []string
	)
	start := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tick := start
	runner := audit.NewRunner(engine,
		audit.WithObserver(func(r audit.Result) {
			mu.Lock()
			defer mu.Unlock()
			observed = append(observed, r.URL)
		}),
		audit.WithClock(func() time.Time {
			now := tick
			tick = tick.Add(time.Minute)
			return now
		}),
	)

	report := runner.Run(context.Background(), []string{"http://site/d", "http://site/c", "http://site/b", "http://site/a"})

	require.Equal(t, audit.Summary{Total: 4, Passed: 2, Failed: 1, Errored: 1}, report.Summary)
	require.Equal(t, 1, report.Summary.ExitCode())
	require.Equal(t, start, report.StartedAt)
	require.Equal(t, time.Minute, report.Duration())

	urls := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		urls = append(urls, r.URL)
	}
	require.Equal(t, []string{"http://site/a", "http://site/b", "http://site/c", "http://site/d"}, urls)
	require.ElementsMatch(t, urls, observed)
	require.Len(t, engine.Calls(), 4, "each page is checked exactly once")
}

func TestRunnerErrorsOnlyExitZero(t *testing.T) {
	t.Parallel()

	engine := newFakeEngine()
	engine.failures["http://site/a"] = errNavigation
	engine.failures["http://site/b"] = errNavigation

	report := audit.NewRunner(engine).Run(context.Background(), []string{"http://site/a", "http://site/b"})
	require.Equal(t, audit.Summary{Total: 2, Errored: 2}, report.Summary)
	require.Equal(t, 0, report.Summary.ExitCode())
}

func TestRunnerWorkers(t *testing.T) {
	t.Parallel()

	urls := audit.DefaultMatrix("http://localhost:8000").URLs()

	t.Run("sequential by default", func(t *testing.T) {
		t.Parallel()
		engine := newFakeEngine()
		engine.delay = time.Millisecond
		audit.NewRunner(engine).Run(context.Background(), urls)
		require.Equal(t, 1, engine.Peak())
		require.Equal(t, urls, engine.Calls(), "sequential runs follow matrix order")
	})

	t.Run("bounded pool keeps stable order", func(t *testing.T) {
		t.Parallel()
		engine := newFakeEngine()
		engine.delay = 5 * time.Millisecond
		engine.pages[urls[7]] = []audit.Violation{contrastViolation("color-contrast", 1)}

		parallel := audit.NewRunner(engine, audit.WithWorkers(4)).Run(context.Background(), urls)
		sequential := audit.NewRunner(newFakeEngine()).Run(context.Background(), urls)

		assert.LessOrEqual(t, engine.Peak(), 4)
		require.Len(t, parallel.Results, len(urls))
		require.True(t, slices.IsSortedFunc(parallel.Results, func(a, b audit.Result) int {
			return strings.Compare(a.URL, b.URL)
		}))
		for i := range parallel.Results {
			require.Equal(t, sequential.Results[i].URL, parallel.Results[i].URL)
		}
		require.Equal(t, 1, parallel.Summary.Failed)
	})
}

func TestRunnerCancelledContext(t *testing.T) {
	t.Parallel()

	engine := newFakeEngine()
	engine.delay = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report := audit.NewRunner(engine, audit.WithWorkers(2)).Run(ctx, []string{"http://site/a", "http://site/b"})
	require.Equal(t, 2, report.Summary.Errored)
	require.Equal(t, 0, report.Summary.ExitCode())
}

// All pages passing yields exit code 0 and a report with exactly N passing entries.
func TestEndToEndAllPass(t *testing.T) {
	t.Parallel()

	urls := audit.DefaultMatrix("http://localhost:8000").URLs()
	engine := newFakeEngine()
	for _, u := range urls {
		engine.pages[u] = []audit.Violation{{ID: "region", Help: "All page content should be contained by landmarks"}}
	}

	report := audit.NewRunner(engine, audit.WithWorkers(3)).Run(context.Background(), urls)
	require.Equal(t, 0, report.Summary.ExitCode())

	path := filepath.Join(t.TempDir(), audit.DefaultReportPath)
	require.NoError(t, audit.WriteReport(path, report.Results))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	require.NoError(t, json.Unmarshal(data, &entries))
	require.Len(t, entries, len(urls))
	for _, e := range entries {
		require.Equal(t, true, e["passed"], e["url"])
		require.NotContains(t, e, "error")
	}
}
