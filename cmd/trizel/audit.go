package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/trizel-ai/trizel/pkg/audit"
	"github.com/trizel-ai/trizel/pkg/storage"
)

// errAuditFailed signals contrast violations; the summary has already been printed.
var errAuditFailed = errors.New("contrast check failed")

func newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check every page for WCAG colour-contrast violations",
		Long: `Loads every (locale × page) URL plus the root pages in headless Chromium,
runs axe-core and writes a JSON report. Exits 1 when any page has a
color-contrast violation. Pages that fail to load are reported but do not
fail the run. Set AUDIT_SCHEDULE to keep running on a cron schedule.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadAuditConfig()
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runAudit(ctx, cfg, cmd.OutOrStdout())
		},
	}
}

func runAudit(ctx context.Context, cfg AuditConfig, out io.Writer) error {
	log := cfg.Logger()

	src, err := audit.LoadAxeSource(ctx, cfg.AxeScript, cfg.AxeScriptURL)
	if err != nil {
		return err
	}

	var publisher audit.Publisher
	if cfg.Storage.Enabled() {
		store, err := storage.New(cfg.Storage)
		if err != nil {
			return fmt.Errorf("report storage: %w", err)
		}
		publisher = audit.NewStoragePublisher(store, cfg.StoragePrefix)
	}

	engine, err := audit.NewBrowserEngine(ctx, audit.BrowserConfig{
		ControlURL:        cfg.BrowserURL,
		Bin:               cfg.ChromeBin,
		AxeSource:         src,
		Tags:              cfg.Tags,
		NavigationTimeout: cfg.NavigationTimeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := engine.Close(); err != nil {
			log.Warn("close browser", slog.Any("error", err))
		}
	}()

	a := &auditor{
		cfg:       cfg,
		matrix:    cfg.Matrix(),
		publisher: publisher,
		out:       out,
		log:       log,
		runner: audit.NewRunner(engine,
			audit.WithWorkers(cfg.Workers),
			audit.WithCategory(cfg.Category),
			audit.WithObserver(audit.PrintResult(out)),
			audit.WithLogger(log),
		),
	}

	if cfg.Schedule == "" {
		code, err := a.once(ctx)
		if err != nil {
			return err
		}
		if code != 0 {
			return errAuditFailed
		}
		return nil
	}

	log.Info("audit watch mode", slog.String("schedule", cfg.Schedule))
	return audit.Watch(ctx, cfg.Schedule, func(ctx context.Context) {
		if _, err := a.once(ctx); err != nil {
			log.Error("audit run failed", slog.Any("error", err))
		}
	})
}

type auditor struct {
	cfg       AuditConfig
	matrix    audit.Matrix
	runner    *audit.Runner
	publisher audit.Publisher
	out       io.Writer
	log       *slog.Logger
}

// once runs the matrix, prints the summary, writes the report and returns
// the exit code. Publishing failures are logged, not returned.
func (a *auditor) once(ctx context.Context) (int, error) {
	audit.PrintHeader(a.out, a.matrix)
	report := a.runner.Run(ctx, a.matrix.URLs())
	audit.PrintSummary(a.out, report)

	if err := audit.WriteReport(a.cfg.ReportPath, report.Results); err != nil {
		return 1, err
	}
	fmt.Fprintf(a.out, "\nDetailed report saved to: %s\n", a.cfg.ReportPath)

	if a.publisher != nil {
		url, err := a.publisher.Publish(ctx, report)
		if err != nil {
			a.log.Error("publish report", slog.Any("error", err))
		} else {
			fmt.Fprintf(a.out, "Report published to: %s\n", url)
		}
	}
	return report.Summary.ExitCode(), nil
}
