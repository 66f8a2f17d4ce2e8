package logger

import (
	"context"
	"log/slog"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

// SentryConfig enables forwarding of warnings and errors to Sentry.
// Records at ERROR also open an issue.
type SentryConfig struct {
	DSN         string     `env:"SENTRY_DSN"`
	Environment string     `env:"SENTRY_ENVIRONMENT" envDefault:"production"`
	MinLevel    slog.Level `env:"SENTRY_MIN_LEVEL" envDefault:"WARN"`
}

// NewWithSentry is New with JSON output and the given Sentry settings. An
// empty DSN leaves only stdout.
func NewWithSentry(cfg SentryConfig, extractors ...ContextExtractor) *slog.Logger {
	return New(Config{Format: FormatJSON, Sentry: cfg}, extractors...)
}

// forwardedLevels lists the levels sent to Sentry as log entries.
func (c SentryConfig) forwardedLevels() []slog.Level {
	if c.MinLevel >= slog.LevelError {
		return []slog.Level{slog.LevelError}
	}
	return []slog.Level{slog.LevelWarn, slog.LevelError}
}

// withSentry fans records out to base and Sentry. If the client cannot be
// initialised the failure is logged on base and base is returned alone.
func withSentry(base slog.Handler, cfg SentryConfig) slog.Handler {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		EnableLogs:  true,
	})
	if err != nil {
		slog.New(base).Error("sentry disabled", slog.Any("error", err))
		return base
	}

	opt := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   cfg.forwardedLevels(),
	}
	return newMultiHandler(base, opt.NewSentryHandler(context.Background()))
}
