// Package logger builds log/slog loggers with context extraction and optional
// Sentry reporting.
//
// A ContextExtractor pulls a request-scoped value out of a context (request id,
// resolved locale) and LogHandlerDecorator appends it to every record logged
// with that context:
//
//	log := logger.New(logger.Config{Level: "debug", Format: logger.FormatText},
//		middlewares.RequestIDExtractor(),
//		middlewares.LocaleExtractor(),
//	)
//	log.WarnContext(ctx, "missing translation key", slog.String("key", key))
//
// The server logs JSON to stdout; the audit command uses the text format.
//
// # Sentry
//
// When Config.Sentry.DSN is set, records are fanned out to Sentry as well:
// errors become issues and warnings are stored as logs. An empty DSN or a failed
// Sentry initialization leaves stdout as the only destination, so the same code
// path works locally and in production.
//
// NewNope returns a logger that discards everything and is the default for
// components constructed without one.
package logger
