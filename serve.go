package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/jobs"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/server"
	"github.com/Zachkp/portfolio/internal/ui"
)

const watchDebounce = 500 * time.Millisecond

func newServeCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the portfolio web server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, flags)
		},
	}
}

func runServe(ctx context.Context, flags *rootFlags) error {
	a, err := newApp(ctx, flags)
	if err != nil {
		return err
	}
	defer a.Close()

	cfg, log := a.cfg, a.log
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	// A configured file is the source of truth and is re-imported on every
	// start; the embedded catalog only seeds an empty database.
	if _, err := a.seed(ctx, cfg.Projects.File, cfg.Projects.File != ""); err != nil {
		return err
	}

	var (
		source projects.Source = a.store
		cache  *projects.CachedSource
	)
	if cfg.Cache.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		defer rdb.Close()
		cache = projects.NewCachedSource(rdb, a.store, cfg.Cache.TTL, log)
		source = cache
	}

	provider := projects.NewProvider(source, log)

	tracker := analytics.NewTracker(a.db, "")
	if err := tracker.Migrate(ctx); err != nil {
		return err
	}
	log.Info("privacy: visitor tracking enabled with hashed IP addresses")

	reload := func(ctx context.Context) error {
		if cache != nil {
			if err := cache.Invalidate(ctx); err != nil {
				log.Error(err, "cache invalidation failed")
			}
		}
		return provider.Load(ctx)
	}
	reimport := func(ctx context.Context) error {
		if _, err := a.seed(ctx, cfg.Projects.File, true); err != nil {
			return err
		}
		return reload(ctx)
	}
	retention := time.Duration(cfg.Analytics.RetentionDays) * 24 * time.Hour
	cleanup := func(ctx context.Context) error {
		removed, err := tracker.Cleanup(ctx, retention)
		if err != nil {
			return err
		}
		if removed > 0 {
			log.WithFields(map[string]any{"removed": removed}).Info("privacy cleanup removed old visitor records")
		}
		return nil
	}

	actions := newAdminActions(cfg.Projects.File, log, reload, reimport, cleanup)

	srv, err := server.New(server.Options{
		Config:   cfg,
		Logger:   log,
		Provider: provider,
		Tracker:  tracker,
		Actions:  actions,
		DB:       a.db,
	})
	if err != nil {
		return err
	}

	sched := jobs.NewScheduler(log)
	g, gctx := errgroup.WithContext(ctx)

	if err := sched.Add(gctx,
		jobs.Job{Name: "catalog-refresh", Schedule: cfg.Projects.RefreshSchedule, Run: reload},
		jobs.Job{Name: "visitor-cleanup", Schedule: "@daily", Run: cleanup},
	); err != nil {
		return err
	}

	provider.Start(gctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return sched.Run(gctx) })
	g.Go(func() error {
		if err := cleanup(gctx); err != nil {
			log.Error(err, "initial visitor cleanup failed")
		}
		return nil
	})

	if cfg.Projects.Watch && cfg.Projects.File != "" {
		g.Go(func() error {
			err := projects.Watch(gctx, cfg.Projects.File, watchDebounce, log, func() {
				if err := reimport(gctx); err != nil {
					log.Error(err, "catalog re-import failed")
				}
			})
			if err != nil {
				log.Error(err, "catalog watcher stopped")
			}
			return nil
		})
	}

	log.WithFields(map[string]any{"port": cfg.Server.Port, "env": cfg.App.Environment}).Info("portfolio starting")
	return g.Wait()
}

// newAdminActions builds the dashboard buttons. Re-importing only exists for a
// configured catalog file, so a catalog seeded by hand is never overwritten
// with the built-in one.
func newAdminActions(file string, sink ui.DiagnosticSink, reload, reimport, cleanup ui.ClickHandler) *ui.Actions {
	actions := ui.NewActions()
	actions.Register("reload", server.AdminAction("reload", "Reload catalog", ui.ButtonVariantPrimary, sink, reload))
	if file != "" {
		actions.Register("reimport", server.AdminAction("reimport", "Re-import catalog", ui.ButtonVariantSecondary, sink, reimport))
	}
	actions.Register("cleanup", server.AdminAction("cleanup", "Purge old visits", ui.ButtonVariantDanger, sink, cleanup))
	return actions
}
