package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/factbot/pkg/log"
	"github.com/sandevgo/factbot/pkg/srv"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:          "serve",
	Short:        "Start the HTTP API",
	Long:         `Opens the database, applies migrations, connects the LLM provider and serves the fun fact API until interrupted.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		// logger setup
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		logger := log.FromCtx(ctx)
		logger.Info().Msg("starting factbot")

		services, err := NewServices(ctx)
		if err != nil {
			logger.Error().Err(err).Msg("failed to initialize services")
			return err
		}

		errs := srv.StartServices(ctx, services)

		// Wait for shutdown signal or a failed start
		if err := srv.ShutdownServices(ctx, services, errs); err != nil {
			return err
		}
		logger.Info().Msg("factbot has been shut down gracefully")

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
