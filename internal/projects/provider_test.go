package projects

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestProviderStartsLoading(t *testing.T) {
	p := NewProvider(SourceFunc(func(context.Context) ([]Project, error) {
		return []Project{validProject("a")}, nil
	}), nil)

	snap := p.Snapshot()
	assert.True(t, snap.IsLoading)
	assert.Empty(t, snap.Projects)
	assert.True(t, p.LoadedAt().IsZero())
}

func TestProviderStartLoadsInBackground(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	release := make(chan struct{})
	p := NewProvider(SourceFunc(func(context.Context) ([]Project, error) {
		<-release
		return []Project{validProject("a"), validProject("b")}, nil
	}), nil)

	done := p.Start(context.Background())
	assert.True(t, p.Snapshot().IsLoading)

	close(release)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("initial load did not finish")
	}

	snap := p.Snapshot()
	assert.False(t, snap.IsLoading)
	require.Len(t, snap.Projects, 2)
	assert.Equal(t, "a", snap.Projects[0].Slug)
	assert.False(t, p.LoadedAt().IsZero())
}

func TestProviderFailedLoadKeepsPreviousCatalog(t *testing.T) {
	fail := false
	p := NewProvider(SourceFunc(func(context.Context) ([]Project, error) {
		if fail {
			return nil, errors.New("disk on fire")
		}
		return []Project{validProject("a")}, nil
	}), nil)

	require.NoError(t, p.Load(context.Background()))

	fail = true
	err := p.Load(context.Background())
	require.Error(t, err)

	snap := p.Snapshot()
	assert.False(t, snap.IsLoading)
	require.Len(t, snap.Projects, 1)
}

func TestProviderFirstLoadFailureEndsLoading(t *testing.T) {
	p := NewProvider(SourceFunc(func(context.Context) ([]Project, error) {
		return nil, errors.New("unreachable")
	}), nil)

	require.Error(t, p.Load(context.Background()))
	snap := p.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.Empty(t, snap.Projects)
}

func TestProviderRejectsInvalidCatalog(t *testing.T) {
	p := NewProvider(SourceFunc(func(context.Context) ([]Project, error) {
		return []Project{validProject("a"), validProject("a")}, nil
	}), nil)

	err := p.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidCatalog)
	assert.Empty(t, p.Snapshot().Projects)
}

func TestProviderSerializesConcurrentLoads(t *testing.T) {
	var calls atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})
	p := NewProvider(SourceFunc(func(context.Context) ([]Project, error) {
		if calls.Add(1) == 1 {
			close(entered)
			<-release
			return []Project{validProject("old")}, nil
		}
		return []Project{validProject("new")}, nil
	}), nil)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assert.NoError(t, p.Load(context.Background()))
	}()
	<-entered
	go func() {
		defer wg.Done()
		assert.NoError(t, p.Load(context.Background()))
	}()

	// The second load must wait for the first to finish before fetching.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	close(release)
	wg.Wait()

	snap := p.Snapshot()
	require.Len(t, snap.Projects, 1)
	assert.Equal(t, "new", snap.Projects[0].Slug)
}

func TestStaticProvider(t *testing.T) {
	p := NewStaticProvider([]Project{validProject("a")})
	snap := p.Snapshot()
	assert.False(t, snap.IsLoading)
	assert.Len(t, snap.Projects, 1)
	require.NoError(t, p.Load(context.Background()))
}
