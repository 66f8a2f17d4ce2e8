package internal

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/trizel-ai/trizel/pkg/health"
)

type healthConfig struct {
	livenessPath  string
	readinessPath string
	checks        health.Checks
}

// HealthOption tunes the probe endpoints enabled by WithHealthChecks.
type HealthOption func(*healthConfig)

// WithLivenessPath moves the liveness probe off /health/live.
func WithLivenessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.livenessPath = path
		}
	}
}

// WithReadinessPath moves the readiness probe off /health/ready.
func WithReadinessPath(path string) HealthOption {
	return func(c *healthConfig) {
		if path != "" {
			c.readinessPath = path
		}
	}
}

// WithReadinessCheck adds a named check to the readiness probe.
//
//	trizel.WithReadinessCheck("site_content", health.FileCheck(siteFS, "content"))
func WithReadinessCheck(name string, fn health.CheckFunc) HealthOption {
	return func(c *healthConfig) { c.checks[name] = fn }
}

func newHealthConfig(opts []HealthOption) *healthConfig {
	c := &healthConfig{
		livenessPath:  "/health/live",
		readinessPath: "/health/ready",
		checks:        health.Checks{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// register mounts both probes; a nil config mounts nothing.
func (c *healthConfig) register(r chi.Router, log *slog.Logger) {
	if c == nil {
		return
	}
	r.Get(c.livenessPath, health.LivenessHandler())
	r.Get(c.readinessPath, health.ReadinessHandler(c.checks, health.WithLogger(log)))
}
