package main

import (
	"os/signal"
	"syscall"

	"skill-gap/internal/app"
	"skill-gap/internal/config"
	"skill-gap/internal/logging"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("users") {
			cfg.Data.UsersPath = usersPath
		}
		if cmd.Flags().Changed("jobs") {
			cfg.Data.JobsPath = jobsPath
		}
		logging.Init(logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return app.Run(ctx, cfg)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
