package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrymomot/garagekit/pkg/clientip"
	"github.com/dmitrymomot/garagekit/pkg/environment"
	"github.com/dmitrymomot/garagekit/pkg/httpserver"
	"github.com/dmitrymomot/garagekit/pkg/logger"
	"github.com/dmitrymomot/garagekit/pkg/messages"
	"github.com/dmitrymomot/garagekit/pkg/metrics"
	"github.com/dmitrymomot/garagekit/pkg/requestid"
	"github.com/dmitrymomot/garagekit/svc/validation"
)

// Config is read from the environment and an optional .env file.
type Config struct {
	Env             environment.Environment `env:"APP_ENV" envDefault:"development"`
	AppName         string                  `env:"APP_NAME" envDefault:"garagekit"`
	LogLevel        string                  `env:"LOG_LEVEL"`
	DefaultLocale   string                  `env:"DEFAULT_LOCALE" envDefault:"en"`
	TranslationsDir string                  `env:"TRANSLATIONS_DIR"`
	MaxBodySize     int64                   `env:"HTTP_MAX_BODY" envDefault:"1048576"`
	HTTP            httpserver.Config
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, cfg.AppName),
		logger.WithOutput(w),
		logger.WithContextExtractors(requestid.LoggerExtractor(), clientip.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevelName(cfg.LogLevel))
	}
	return logger.New(opts...)
}

// newHandler wires catalog, metrics and routes. reg receives the service
// and runtime collectors and backs /metrics.
func newHandler(ctx context.Context, cfg Config, log *slog.Logger, reg *prometheus.Registry) (http.Handler, error) {
	catalogOpts := []messages.Option{
		messages.WithDefaultLanguage(cfg.DefaultLocale),
		messages.WithLogger(log),
	}
	if cfg.TranslationsDir != "" {
		catalogOpts = append(catalogOpts, messages.WithDirectory(cfg.TranslationsDir))
	}
	catalog, err := messages.New(ctx, catalogOpts...)
	if err != nil {
		return nil, fmt.Errorf("load message catalog: %w", err)
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc, err := validation.New(catalog,
		validation.WithLogger(log),
		validation.WithMetrics(metrics.New(reg)),
		validation.WithMaxBodySize(cfg.MaxBodySize),
	)
	if err != nil {
		return nil, err
	}

	ready := httpserver.Check{
		Name: "catalog",
		Func: func(context.Context) error {
			if len(catalog.Languages()) == 0 {
				return messages.ErrCatalogUnavailable
			}
			return nil
		},
	}

	router := validation.NewRouter(svc, reg, ready)
	return environment.Middleware(cfg.Env)(router), nil
}

func run(ctx context.Context, cfg Config, log *slog.Logger) error {
	h, err := newHandler(ctx, cfg, log, prometheus.NewRegistry())
	if err != nil {
		return err
	}
	log.InfoContext(ctx, "starting",
		logger.Locale(cfg.DefaultLocale),
		slog.String("addr", cfg.HTTP.Addr),
	)
	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, h)
}
