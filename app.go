package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/store"
)

// app holds what every command needs: configuration, logging and the
// migrated project store.
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	db    *sql.DB
	store *projects.SQLiteStore
}

func newApp(ctx context.Context, flags *rootFlags) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if flags.logLevel != "" {
		cfg.App.LogLevel = flags.logLevel
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.App.LogLevel,
		HumanReadable: cfg.App.LogPretty,
		Writer:        os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	if !cfg.App.EnvFileLoaded {
		log.Debug("no .env file found, using environment variables")
	}

	db, err := store.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, err
	}

	st := projects.NewSQLiteStore(db)
	if err := st.Migrate(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return &app{cfg: cfg, log: log, db: db, store: st}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// catalogSource is the configured YAML file, or the catalog built into the
// binary when none is set.
func catalogSource(path string) projects.Source {
	if path != "" {
		return projects.YAMLSource{Path: path}
	}
	return projects.YAMLSource{Data: content.DefaultCatalog}
}

// seed imports the YAML catalog into SQLite. Unless force is set, a store that
// already has projects is left alone. It returns the number imported.
func (a *app) seed(ctx context.Context, path string, force bool) (int, error) {
	if !force {
		n, err := a.store.Count(ctx)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return 0, nil
		}
	}

	list, err := catalogSource(path).Load(ctx)
	if err != nil {
		return 0, err
	}
	if err := a.store.Replace(ctx, list); err != nil {
		return 0, err
	}

	a.log.WithFields(map[string]any{"projects": len(list), "file": path}).Info("catalog imported")
	return len(list), nil
}
