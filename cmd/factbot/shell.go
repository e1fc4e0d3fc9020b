package main

import (
	"errors"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/transport/cli"
	"github.com/sandevgo/factbot/pkg/log"
	"github.com/spf13/cobra"
)

var shellUserID string

var shellCmd = &cobra.Command{
	Use:          "shell",
	Short:        "Ask for fun facts interactively as a user",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if shellUserID == "" {
			return errors.New("--user is required")
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		ctx, flushLog := setupLogger(ctx)
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg, err := config.NewAppConfig()
		if err != nil {
			return err
		}

		engine, db, err := newEngine(ctx, appCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		sh, err := cli.NewShell(engine, shellUserID, appCfg.GetRuntimePath())
		if err != nil {
			return err
		}

		log.FromCtx(ctx).Debug().Str("user", shellUserID).Msg("shell started")
		return sh.Run(log.WithComponent(ctx, "shell"), filepath.Join(appCfg.GetRuntimePath(), "shell_history"))
	},
}

func init() {
	shellCmd.Flags().StringVarP(&shellUserID, "user", "u", "", "user id to ask as")
	rootCmd.AddCommand(shellCmd)
}
