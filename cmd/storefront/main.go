package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lexv0lk/storefront/internal/pkg/env"
	"github.com/Lexv0lk/storefront/internal/pkg/logging"
	"github.com/Lexv0lk/storefront/internal/pkg/tracing"
	"github.com/Lexv0lk/storefront/internal/storefront/bootstrap"
)

const (
	serviceName     = "storefront"
	shutdownTimeout = 5 * time.Second
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg bootstrap.StorefrontConfig
	if err := env.Parse(&cfg); err != nil {
		logging.StdoutLogger.Error("failed to load config", "error", err.Error())
		return
	}

	logger := logging.NewStdoutLogger(cfg.LogLevel)

	shutdownTracing, err := tracing.Setup(mainCtx, serviceName, cfg.OtelEndpoint)
	if err != nil {
		logger.Error("failed to set up tracing", "error", err.Error())
		return
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := shutdownTracing(ctx); err != nil {
			logger.Error("tracer shutdown failed", "error", err.Error())
		}
	}()

	app := bootstrap.NewStorefrontApp(cfg, logger)
	defer app.Shutdown()

	if err := app.Run(mainCtx); err != nil {
		logger.Error("storefront stopped", "error", err.Error())
	}
}
