package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"skill-gap/internal/app"
	"skill-gap/internal/config"
	"skill-gap/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Error().Err(err).Msg("failed to load config")
		os.Exit(1)
	}
	logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("server error")
		stop()
		os.Exit(1)
	}
}
