package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/spf13/cobra"

	"github.com/trizel-ai/trizel"
	"github.com/trizel-ai/trizel/handlers"
	"github.com/trizel-ai/trizel/middlewares"
	"github.com/trizel-ai/trizel/pkg/cache"
	"github.com/trizel-ai/trizel/pkg/content"
	"github.com/trizel-ai/trizel/pkg/health"
	"github.com/trizel-ai/trizel/pkg/i18n"
	"github.com/trizel-ai/trizel/pkg/logger"
	"github.com/trizel-ai/trizel/pkg/markdown"
	"github.com/trizel-ai/trizel/pkg/status"
	"github.com/trizel-ai/trizel/web"
)

const (
	maxCachedPages   = 512
	statusFetchLimit = 10 * time.Second
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the multilingual site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadServerConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}
}

func serve(ctx context.Context, cfg ServerConfig) error {
	log := logger.New(cfg.Log, middlewares.RequestIDExtractor(), middlewares.LocaleExtractor()).
		With("component", "site")

	locales, err := i18n.NewLocales(cfg.DefaultLocale, i18n.DefaultLocales().All()...)
	if err != nil {
		return fmt.Errorf("locales: %w", err)
	}
	canonical := locales.Canonical().Code

	catalog, err := i18n.New(
		i18n.WithDefaultLanguage(canonical),
		i18n.WithLanguages(locales.Codes()...),
		i18n.WithYAMLDir(web.Translations()),
		i18n.WithMissingKeyHandler(func(lang, namespace, key string) {
			log.Warn("missing translation key",
				slog.String("lang", lang),
				slog.String("namespace", namespace),
				slog.String("key", key),
			)
		}),
	)
	if err != nil {
		return fmt.Errorf("translations: %w", err)
	}

	siteFS := openSite(cfg.SiteRoot, log)
	contentFS, err := fs.Sub(siteFS, "content")
	if err != nil {
		return fmt.Errorf("site content: %w", err)
	}

	renderer := markdown.New()
	pageCache := cache.NewMemory[*content.Page](
		cache.WithDefaultTTL(cfg.ContentCacheTTL),
		cache.WithMaxEntries(maxCachedPages),
	)
	docCache := cache.NewMemory[*content.Page](
		cache.WithDefaultTTL(cfg.ContentCacheTTL),
		cache.WithMaxEntries(maxCachedPages),
	)
	pages := content.New(contentFS, canonical,
		content.WithRenderer(renderer),
		content.WithCache(pageCache, cfg.ContentCacheTTL),
		content.WithLogger(log),
	)
	docs := content.New(siteFS, canonical,
		content.WithRenderer(renderer),
		content.WithCache(docCache, cfg.ContentCacheTTL),
		content.WithLogger(log),
	)

	var source status.Source = status.NewFSSource(siteFS, cfg.StatusPath)
	if cfg.StatusURL != "" {
		source = status.NewHTTPSource(cfg.StatusURL, &http.Client{Timeout: statusFetchLimit})
	}
	loader := status.NewLoader(source, status.WithLogger(log))

	site := handlers.NewSite(locales, cfg.StatusPath)
	errs := handlers.NewErrors(site, catalog)

	app := trizel.New(
		trizel.WithCustomLogger(log),
		trizel.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.Timeout(cfg.RequestTimeout),
			middlewares.I18n(catalog, locales),
		),
		trizel.WithStaticFiles("/static/", web.Static(), "."),
		trizel.WithStaticFiles("/data/", siteFS, "data", trizel.StaticCacheControl("no-store")),
		trizel.WithStaticFiles("/artifacts/", siteFS, "artifacts"),
		trizel.WithHandlers(
			handlers.NewPages(site, catalog, pages, docs),
			handlers.NewLanguage(locales),
			handlers.NewStatus(site, catalog, loader),
		),
		trizel.WithErrorHandler(errs.Handle),
		trizel.WithNotFoundHandler(errs.NotFound),
		trizel.WithHealthChecks(
			trizel.WithReadinessCheck("site_content", health.FileCheck(siteFS, "content")),
			trizel.WithReadinessCheck("translations", health.Condition(func() bool {
				return len(catalog.Keys(canonical, "site")) > 0
			}, "no site translations for "+canonical)),
		),
	)

	return app.Run(cfg.Address,
		trizel.WithContext(ctx),
		trizel.ShutdownTimeout(cfg.ShutdownTimeout),
		trizel.ShutdownHook(func(context.Context) error {
			return pageCache.Close()
		}),
		trizel.ShutdownHook(func(context.Context) error {
			return docCache.Close()
		}),
		trizel.ShutdownHook(func(context.Context) error {
			if cfg.Log.Sentry.DSN != "" {
				sentry.Flush(2 * time.Second)
			}
			return nil
		}),
	)
}

// openSite returns the site root on disk, or the embedded copy when the
// directory does not exist.
func openSite(root string, log *slog.Logger) fs.FS {
	if info, err := os.Stat(root); err == nil && info.IsDir() {
		return os.DirFS(root)
	}
	log.Warn("site root not found, serving embedded site", slog.String("root", root))
	return web.Site()
}
