package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goliatone/go-passfield/components/strengthcheck"
	"github.com/goliatone/go-passfield/internal/metrics"
	"github.com/goliatone/go-passfield/pkg/config"
	"github.com/goliatone/go-passfield/pkg/logging"
)

func runServe(ctx context.Context, args []string, env environment, stderr io.Writer) error {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(stderr)
	addr := fs.String("addr", env.Addr, "listen address")
	base := fs.String("base", env.BasePath, "base path for the strength route")
	configPath := fs.String("config", env.ConfigPath, "JSON or YAML config file")
	themeDir := fs.String("theme-dir", env.ThemeDir, "directory of go-theme manifests for the configured theme")
	logLevel := fs.String("log-level", env.LogLevel, "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	level, err := logging.ParseLevel(*logLevel)
	if err != nil {
		return err
	}
	logger := logging.NewJSON(stderr, level)

	cfg, err := loadConfig(*configPath, *themeDir)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	router, pattern, err := newRouter(cfg, *base, logger, metrics.New(reg), reg)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              *addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "starting passfield", "addr", *addr, "route", pattern, "config", cfg.Source, "theme", cfg.Theme.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	logger.Info(shutdownCtx, "shutting down passfield")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func newRouter(cfg config.Config, base string, logger logging.Logger, m *metrics.Metrics, gatherer prometheus.Gatherer) (http.Handler, string, error) {
	classifier, err := cfg.Classifier()
	if err != nil {
		return nil, "", err
	}

	component := strengthcheck.New(
		strengthcheck.WithClassifier(classifier),
		strengthcheck.WithIndicator(cfg.Indicator()),
		strengthcheck.WithLogger(logger),
		strengthcheck.WithRecorder(m),
	)

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	pattern, err := component.RegisterRoutes(r, base)
	if err != nil {
		return nil, "", err
	}

	doc := component.OpenAPI(base)
	r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(doc)
	})
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return r, pattern, nil
}
