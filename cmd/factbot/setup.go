package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/factbot/internal/auth"
	"github.com/sandevgo/factbot/internal/config"
	"github.com/sandevgo/factbot/internal/providers/generator"
	"github.com/sandevgo/factbot/internal/providers/llm"
	"github.com/sandevgo/factbot/internal/service/facts"
	"github.com/sandevgo/factbot/internal/storage/sqlite"
	"github.com/sandevgo/factbot/internal/transport/web"
	"github.com/sandevgo/factbot/pkg/log"
	"github.com/sandevgo/factbot/pkg/srv"
)

func NewServices(ctx context.Context) ([]srv.Service, error) {
	services := make([]srv.Service, 0)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		return nil, fmt.Errorf("init env: %w", err)
	}

	// 1. Configuration
	appCfg, err := config.NewAppConfig()
	if err != nil {
		return nil, err
	}

	sessions, err := auth.NewSessions(appCfg.Server)
	if err != nil {
		return nil, err
	}

	// 2. Storage, AI provider and selection engine
	engine, db, err := newEngine(ctx, appCfg)
	if err != nil {
		return nil, err
	}
	services = append(services, srv.NewCleanup(db.Close))

	// 3. Transport
	services = append(services, web.NewServer(log.WithComponent(ctx, "http"), appCfg.Server, engine, sessions))

	return services, nil
}

func newEngine(ctx context.Context, appCfg *config.AppConfig) (*facts.Engine, *sql.DB, error) {
	db, err := sqlite.NewDB(ctx, appCfg.GetDatabasePath())
	if err != nil {
		return nil, nil, fmt.Errorf("initialize storage: %w", err)
	}

	aiProvider, err := llm.NewProvider(log.WithComponent(ctx, "llm"), appCfg.Provider, llm.DefaultOptions())
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("initialize llm provider: %w", err)
	}
	gen := generator.New(log.WithComponent(ctx, "generator"), aiProvider, generator.DefaultConfig())

	engine := facts.NewEngine(
		sqlite.NewUsersRepo(db),
		sqlite.NewMoviesRepo(db),
		sqlite.NewFactsRepo(db),
		gen,
		appCfg.Select,
	)
	return engine, db, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
