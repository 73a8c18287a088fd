package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/quoterecon/internal/config"
	"github.com/fr0stylo/quoterecon/internal/db"
	"github.com/fr0stylo/quoterecon/internal/observability"
)

type rootOptions struct {
	dbPath  string
	verbose bool
}

// toolEnv is the configuration and database shared by subcommands.
type toolEnv struct {
	cfg      config.Config
	log      *slog.Logger
	database *db.Database
}

func openToolEnv(opts *rootOptions, logOut io.Writer) (*toolEnv, error) {
	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	log := slog.New(observability.WrapSlogHandler(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))

	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.LoadForTool()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	if opts.dbPath != "" {
		cfg.Database.Path = opts.dbPath
	}

	database, err := db.New(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &toolEnv{cfg: cfg, log: log, database: database}, nil
}

func (e *toolEnv) Close() error {
	return e.database.Close()
}
