package main

import (
	"context"
	"os"

	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/service/ui"
	"github.com/sandevgo/factbot/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "factbot",
	Short: "FactBot: movie fun facts without repeats",
	Long:  `FactBot serves fun facts about a user's favorite movie, reusing stored facts and generating new ones with an LLM.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
	customizeHelp(rootCmd)
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}

func customizeHelp(cmd *cobra.Command) {
	cobra.AddTemplateFuncs(ui.TemplateFuncs())
	cmd.SetHelpTemplate(ui.HelpTemplate)
}
