package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/trizel-ai/trizel/pkg/logger"
)

const defaultAddress = ":8000"

// serve listens on cfg.address and blocks until SIGINT, SIGTERM or the base
// context ends, then drains requests and runs the shutdown hooks.
func (cfg *runConfig) serve(handler http.Handler) error {
	addr := cfg.address
	if addr == "" {
		addr = defaultAddress
	}
	log := cfg.logger
	if log == nil {
		log = logger.NewNope()
	}

	ctx, stop := signal.NotifyContext(cfg.baseCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	if cfg.onListen != nil {
		cfg.onListen(ln.Addr())
	}

	srv := &http.Server{
		Handler:           handler,
		ReadTimeout:       defaultReadTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		MaxHeaderBytes:    defaultMaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("site listening", slog.String("address", ln.Addr().String()))
		serveErr <- srv.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	return cfg.shutdown(srv, log)
}

func (cfg *runConfig) shutdown(srv *http.Server, log *slog.Logger) error {
	log.Info("shutting down", slog.Duration("timeout", cfg.shutdownTimeout))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.shutdownTimeout)
	defer cancel()

	var errs []error
	if err := srv.Shutdown(ctx); err != nil {
		errs = append(errs, fmt.Errorf("drain: %w", err))
	}
	for _, hook := range cfg.shutdownHooks {
		if err := hook(ctx); err != nil {
			log.Error("shutdown hook failed", slog.Any("error", err))
			errs = append(errs, err)
		}
	}

	if err := errors.Join(errs...); err != nil {
		return err
	}
	log.Info("shutdown complete")
	return nil
}
