package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/storage/sqlite"
	"github.com/sandevgo/factbot/pkg/log"
	"github.com/spf13/cobra"
)

var (
	movieTitle string
	movieYear  int

	userName     string
	userEmail    string
	userFavorite string
)

var movieCmd = &cobra.Command{
	Use:   "movie",
	Short: "Manage the movie catalog",
}

var movieAddCmd = &cobra.Command{
	Use:          "add",
	Short:        "Add a movie and print its id",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if movieTitle == "" {
			return errors.New("--title is required")
		}

		return withDB(cmd, func(ctx context.Context, db *sql.DB) error {
			m, err := sqlite.NewMoviesRepo(db).CreateMovie(ctx, movieTitle, movieYear)
			if err != nil {
				return err
			}
			log.FromCtx(ctx).Debug().Str("movie_id", m.ID).Str("title", m.DisplayTitle()).Msg("movie saved")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.ID)
			return err
		})
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage users",
}

var userAddCmd = &cobra.Command{
	Use:          "add",
	Short:        "Create or update a user by email and print its id",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if userEmail == "" {
			return errors.New("--email is required")
		}

		return withDB(cmd, func(ctx context.Context, db *sql.DB) error {
			if userFavorite != "" {
				if _, err := sqlite.NewMoviesRepo(db).GetMovie(ctx, userFavorite); err != nil {
					return fmt.Errorf("favorite %q: %w", userFavorite, err)
				}
			}

			u, err := sqlite.NewUsersRepo(db).SaveUser(ctx, userName, userEmail, userFavorite)
			if err != nil {
				return err
			}
			log.FromCtx(ctx).Debug().Str("user_id", u.ID).Str("favorite", u.FavoriteMovieID).Msg("user saved")

			_, err = fmt.Fprintln(cmd.OutOrStdout(), u.ID)
			return err
		})
	},
}

// withDB loads config, opens the migrated database and runs fn against it.
func withDB(cmd *cobra.Command, fn func(ctx context.Context, db *sql.DB) error) error {
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

	return fn(ctx, db)
}

func init() {
	movieAddCmd.Flags().StringVarP(&movieTitle, "title", "t", "", "movie title")
	movieAddCmd.Flags().IntVarP(&movieYear, "year", "y", 0, "release year, 0 when unknown")
	movieCmd.AddCommand(movieAddCmd)

	userAddCmd.Flags().StringVarP(&userName, "name", "n", "", "display name")
	userAddCmd.Flags().StringVarP(&userEmail, "email", "e", "", "email, the user's unique handle")
	userAddCmd.Flags().StringVarP(&userFavorite, "favorite", "f", "", "favorite movie id")
	userCmd.AddCommand(userAddCmd)

	rootCmd.AddCommand(movieCmd, userCmd)
}
