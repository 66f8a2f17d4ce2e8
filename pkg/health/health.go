package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/trizel-ai/trizel/pkg/logger"
)

// Check statuses.
const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
)

const defaultTimeout = 5 * time.Second

// CheckFunc returns nil when the dependency it probes is usable.
type CheckFunc func(ctx context.Context) error

// Checks maps a check name to its probe.
type Checks map[string]CheckFunc

// Response is the JSON body of a readiness probe.
type Response struct {
	Checks map[string]Check `json:"checks,omitempty"`
	Status string           `json:"status"`
}

// Check is the outcome of one named probe.
type Check struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type prober struct {
	log     *slog.Logger
	timeout time.Duration
}

// Option tunes a probe run.
type Option func(*prober)

// WithTimeout bounds a whole probe run; all checks share the deadline.
func WithTimeout(d time.Duration) Option {
	return func(p *prober) {
		if d > 0 {
			p.timeout = d
		}
	}
}

// WithLogger receives a WARN record per failed check.
func WithLogger(l *slog.Logger) Option {
	return func(p *prober) {
		if l != nil {
			p.log = l
		}
	}
}

func newProber(opts []Option) *prober {
	p := &prober{log: logger.NewNope(), timeout: defaultTimeout}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run probes every check concurrently. The response is unhealthy when any
// check fails or finishes after the deadline.
func Run(ctx context.Context, checks Checks, opts ...Option) *Response {
	return newProber(opts).run(ctx, checks)
}

func (p *prober) run(ctx context.Context, checks Checks) *Response {
	resp := &Response{Status: StatusHealthy}
	if len(checks) == 0 {
		return resp
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	resp.Checks = make(map[string]Check, len(checks))
	for name, fn := range checks {
		g.Go(func() error {
			err := p.probe(ctx, name, fn)
			c := Check{Status: StatusHealthy}
			if err != nil {
				c = Check{Status: StatusUnhealthy, Error: err.Error()}
			}
			mu.Lock()
			resp.Checks[name] = c
			mu.Unlock()
			return err
		})
	}
	if g.Wait() != nil {
		resp.Status = StatusUnhealthy
	}
	return resp
}

func (p *prober) probe(ctx context.Context, name string, fn CheckFunc) error {
	err := fn(ctx)
	if err == nil && ctx.Err() != nil {
		err = ErrCheckTimeout
	}
	if err != nil {
		p.log.WarnContext(ctx, "readiness check failed",
			slog.String("check", name),
			slog.Any("error", err),
		)
	}
	return err
}
