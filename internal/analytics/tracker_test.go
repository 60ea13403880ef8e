package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zachkp/portfolio/internal/store"
)

func setupTracker(t *testing.T, now time.Time) *Tracker {
	t.Helper()
	ctx := context.Background()

	db, err := store.Open(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	tr := NewTracker(db, "fixed-salt")
	tr.now = func() time.Time { return now }
	require.NoError(t, tr.Migrate(ctx))
	return tr
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	tr := NewTracker(nil, "salt")
	h1 := tr.HashIP("203.0.113.7")
	h2 := tr.HashIP("203.0.113.7")

	assert.Equal(t, h1, h2)
	assert.Len(t, h1, 16)
	assert.NotContains(t, h1, "203")
	assert.NotEqual(t, h1, tr.HashIP("203.0.113.8"))
	assert.NotEqual(t, h1, NewTracker(nil, "other").HashIP("203.0.113.7"))
}

func TestNewTrackerRandomSalt(t *testing.T) {
	a := NewTracker(nil, "")
	b := NewTracker(nil, "")
	assert.NotEqual(t, a.HashIP("1.1.1.1"), b.HashIP("1.1.1.1"))
}

func TestRecordAndStats(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	tr := setupTracker(t, now)
	ctx := context.Background()

	record := func(at time.Time, ip, path string) {
		tr.now = func() time.Time { return at }
		require.NoError(t, tr.Record(ctx, ip, "test-agent", path))
	}

	record(now.AddDate(0, 0, -30), "10.0.0.1", "/")
	record(now.AddDate(0, 0, -3), "10.0.0.2", "/projects/tui-music")
	record(now.Add(-2*time.Hour), "10.0.0.1", "/projects/tui-music")
	record(now.Add(-1*time.Hour), "10.0.0.3", "/projects/terminal-mail")
	tr.now = func() time.Time { return now }

	stats, err := tr.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)

	require.Len(t, stats.TopProjects, 2)
	assert.Equal(t, PageStat{Path: "/projects/tui-music", Views: 2}, stats.TopProjects[0])
	assert.Len(t, stats.TopPages, 3)

	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, "/projects/terminal-mail", stats.RecentVisitors[0].Path)
	assert.Equal(t, now.Add(-1*time.Hour), stats.RecentVisitors[0].Timestamp)
	assert.Equal(t, tr.HashIP("10.0.0.3"), stats.RecentVisitors[0].HashedIP)
}

func TestCleanupRemovesOldVisits(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	tr := setupTracker(t, now)
	ctx := context.Background()

	tr.now = func() time.Time { return now.AddDate(-2, 0, 0) }
	require.NoError(t, tr.Record(ctx, "1.1.1.1", "", "/old"))
	tr.now = func() time.Time { return now }
	require.NoError(t, tr.Record(ctx, "1.1.1.1", "", "/new"))

	removed, err := tr.Cleanup(ctx, 365*24*time.Hour)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	recent, err := tr.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "/new", recent[0].Path)
}

func TestShouldTrack(t *testing.T) {
	assert.True(t, ShouldTrack("/", ""))
	assert.True(t, ShouldTrack("/projects/tui-music", "0"))
	assert.False(t, ShouldTrack("/projects/tui-music", "1"))

	for _, p := range []string{"/static/app.css", "/images/a.png", "/admin/dashboard", "/api/projects", "/favicon.ico", "/privacy", "/healthz"} {
		assert.False(t, ShouldTrack(p, ""), p)
	}
}

func TestLikePrefixEscapesWildcards(t *testing.T) {
	assert.Equal(t, `/projects/%`, likePrefix("/projects/"))
	assert.Equal(t, `a\_b\%%`, likePrefix("a_b%"))
	assert.Equal(t, `%`, likePrefix(""))
}
