package app

import (
	"context"
	"time"

	"skill-gap/internal/config"
	"skill-gap/internal/logging"

	"github.com/gofiber/fiber/v3"
)

const shutdownTimeout = 10 * time.Second

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, cfg config.Config) error {
	addr, err := ListenAddr(cfg.App.HTTPPort)
	if err != nil {
		return err
	}

	a, cleanup, err := Bootstrap(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := cleanup(); err != nil {
			logging.Error().Err(err).Msg("cleanup error")
		}
	}()

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", addr).Str("env", cfg.App.Environment).Msg("http server listening")
		errCh <- a.Fiber.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logging.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Fiber.ShutdownWithContext(sctx)
	}
}
