// Package server is the HTTP front end: the Gin engine, its middleware, every
// page and fragment handler, the JSON API and the admin area.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/analytics"
	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/contact"
	"github.com/Zachkp/portfolio/internal/logger"
	"github.com/Zachkp/portfolio/internal/projects"
	"github.com/Zachkp/portfolio/internal/ui"
)

const shutdownTimeout = 10 * time.Second

// Options are the collaborators a Server renders from. Config and Provider are
// required; a nil Tracker disables visitor analytics.
type Options struct {
	Config   *config.Config
	Logger   *logger.Logger
	Provider *projects.Provider
	Tracker  *analytics.Tracker
	Actions  *ui.Actions
	Mailer   contact.Mailer
	DB       *sql.DB
}

type Server struct {
	cfg      *config.Config
	log      *logger.Logger
	provider *projects.Provider
	tracker  *analytics.Tracker
	actions  *ui.Actions
	mailer   contact.Mailer
	db       *sql.DB

	adminToken string
	limiter    *ipLimiter
	engine     *gin.Engine
}

func New(opts Options) (*Server, error) {
	if opts.Config == nil {
		return nil, errors.New("server: config is required")
	}
	if opts.Provider == nil {
		return nil, errors.New("server: project provider is required")
	}

	s := &Server{
		cfg:        opts.Config,
		log:        opts.Logger,
		provider:   opts.Provider,
		tracker:    opts.Tracker,
		actions:    opts.Actions,
		mailer:     opts.Mailer,
		db:         opts.DB,
		adminToken: analytics.RandomToken(),
		limiter:    newIPLimiter(opts.Config.Contact.RatePerMinute),
	}
	if s.actions == nil {
		s.actions = ui.NewActions()
	}
	if s.mailer == nil {
		s.mailer = contact.NewSMTPMailer(opts.Config.Contact, opts.Logger)
	}

	engine, err := s.buildEngine()
	if err != nil {
		return nil, err
	}
	s.engine = engine
	return s, nil
}

func (s *Server) buildEngine() (*gin.Engine, error) {
	tmpl, err := parseTemplates(s.placeholder())
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.log), s.visitorTracking())
	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(static))
	if dir := s.cfg.Server.ImagesDir; dir != "" {
		r.Static("/images", dir)
	}

	s.registerPages(r)
	s.registerAPI(r)
	s.registerContact(r)
	s.registerAdmin(r)
	NewHealthHandler(s.cfg.App.Version, s.db, s.provider).RegisterRoutes(r)

	r.NoRoute(s.notFound)
	return r, nil
}

// Handler exposes the engine for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// AdminToken is the session token issued on a successful admin login.
func (s *Server) AdminToken() string {
	return s.adminToken
}

// Run serves on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + s.cfg.Server.Port,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.WithFields(map[string]any{"addr": srv.Addr}).Info("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

func (s *Server) placeholder() string {
	return s.cfg.Server.PlaceholderImage
}
