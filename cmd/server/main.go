// Command server runs the garage validation HTTP service.
package main

import (
	"context"
	"os"

	"github.com/dmitrymomot/garagekit/pkg/config"
	"github.com/dmitrymomot/garagekit/pkg/environment"
	"github.com/dmitrymomot/garagekit/pkg/logger"
)

func main() {
	var cfg Config
	config.MustLoad(&cfg)

	ctx := environment.WithContext(context.Background(), cfg.Env)
	log := newLogger(cfg, os.Stdout)
	if err := run(ctx, cfg, log); err != nil {
		log.ErrorContext(ctx, "server exited", logger.Error(err))
		os.Exit(1)
	}
}
