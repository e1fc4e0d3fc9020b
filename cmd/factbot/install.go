package main

import (
	"github.com/joho/godotenv"
	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/service/installer"
	"github.com/sandevgo/factbot/pkg/log"
	"github.com/spf13/cobra"
)

var installCmd = &cobra.Command{
	Use:          "install",
	Short:        "Interactively create the FactBot .env configuration",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		logger := log.FromCtx(ctx)
		runtimePath := config.GetRuntimePath()

		if _, err := installer.RunWizard(runtimePath); err != nil {
			return err
		}

		envPath := config.AppConfig{RuntimePath: runtimePath}.GetEnvPath()
		if err := godotenv.Load(envPath); err != nil {
			logger.Warn().Err(err).Str("path", envPath).Msg("failed to load .env file")
		}

		if _, err := config.NewAppConfig(); err != nil {
			return err
		}

		logger.Info().Str("path", envPath).Msg("configuration written")
		logger.Info().Msg("run 'factbot migrate' and then 'factbot serve'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
