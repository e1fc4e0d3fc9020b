package main

import (
	"errors"
	"fmt"

	"github.com/sandevgo/factbot/internal/auth"
	"github.com/sandevgo/factbot/internal/config"
	"github.com/spf13/cobra"
)

var tokenUserID string

var tokenCmd = &cobra.Command{
	Use:          "token",
	Short:        "Print a session token for a user",
	Long:         `Signs a session token for the given user id. Send it as the "session" cookie or as a Bearer token.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tokenUserID == "" {
			return errors.New("--user is required")
		}

		ctx, flushLog := setupLogger(cmd.Context())
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}

		appCfg, err := config.NewAppConfig()
		if err != nil {
			return err
		}

		sessions, err := auth.NewSessions(appCfg.Server)
		if err != nil {
			return err
		}

		token, err := sessions.Issue(tokenUserID)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
		return err
	},
}

func init() {
	tokenCmd.Flags().StringVarP(&tokenUserID, "user", "u", "", "user id to sign the token for")
	rootCmd.AddCommand(tokenCmd)
}
