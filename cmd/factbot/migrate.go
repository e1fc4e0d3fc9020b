package main

import (
	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/storage/sqlite"
	"github.com/sandevgo/factbot/pkg/log"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:          "migrate",
	Short:        "Apply database migrations",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg, err := config.NewAppConfig()
		if err != nil {
			return err
		}

		db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
		if err != nil {
			return err
		}
		defer db.Close()

		log.FromCtx(ctx).Info().Str("path", appCfg.GetDatabasePath()).Msg("database is up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
