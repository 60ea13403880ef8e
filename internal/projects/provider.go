package projects

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/Zachkp/portfolio/internal/logger"
)

// Source loads the ordered project catalog.
type Source interface {
	Load(ctx context.Context) ([]Project, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(ctx context.Context) ([]Project, error)

func (f SourceFunc) Load(ctx context.Context) ([]Project, error) { return f(ctx) }

// Snapshot is a consistent read of the catalog. Projects must be treated as
// read-only; the provider never mutates a slice it has handed out.
type Snapshot struct {
	Projects  []Project `json:"projects"`
	IsLoading bool      `json:"is_loading"`
}

// Provider is the single source of truth for the catalog. It is injected into
// every handler that renders projects.
type Provider struct {
	source Source
	log    *logger.Logger

	// loadMu serializes whole loads so an older fetch never replaces a newer one.
	loadMu sync.Mutex

	mu       sync.RWMutex
	projects []Project
	loading  bool
	loadedAt time.Time
}

// NewProvider returns a provider in the loading state. Nothing is visible until
// the first Load completes.
func NewProvider(source Source, log *logger.Logger) *Provider {
	return &Provider{
		source:  source,
		log:     log,
		loading: true,
	}
}

// NewStaticProvider returns an already-loaded provider over list.
func NewStaticProvider(list []Project) *Provider {
	return &Provider{
		source:   SourceFunc(func(context.Context) ([]Project, error) { return list, nil }),
		projects: list,
		loadedAt: time.Now(),
	}
}

// Snapshot returns the current catalog and loading flag.
func (p *Provider) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return Snapshot{Projects: p.projects, IsLoading: p.loading}
}

// LoadedAt reports when the catalog was last replaced.
func (p *Provider) LoadedAt() time.Time {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loadedAt
}

// Load fetches the catalog from the source and swaps it in. A failed load keeps
// the previous catalog but still ends the loading phase, so pages stop waiting.
func (p *Provider) Load(ctx context.Context) error {
	p.loadMu.Lock()
	defer p.loadMu.Unlock()

	list, err := p.source.Load(ctx)
	if err == nil {
		err = ValidateCatalog(list)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = false

	if err != nil {
		p.log.Error(err, "project catalog load failed")
		return fmt.Errorf("load catalog: %w", err)
	}

	p.projects = list
	p.loadedAt = time.Now()
	p.log.WithFields(map[string]any{"projects": len(list)}).Info("project catalog loaded")
	return nil
}

// Start performs the initial load in the background and returns immediately.
// The returned channel is closed once that load has finished.
func (p *Provider) Start(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = p.Load(ctx)
	}()
	return done
}
