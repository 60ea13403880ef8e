package server

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIPLimiterPerAddress(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newIPLimiter(3)
	l.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, l.Allow("10.0.0.1"), "burst request %d", i)
	}
	assert.False(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.2"), "other addresses have their own bucket")

	now = now.Add(20 * time.Second)
	assert.True(t, l.Allow("10.0.0.1"), "one token refills every 20s")
	assert.False(t, l.Allow("10.0.0.1"))
}

func TestIPLimiterDisabled(t *testing.T) {
	l := newIPLimiter(0)
	for i := 0; i < 100; i++ {
		assert.True(t, l.Allow("10.0.0.1"))
	}
}

func TestIPLimiterPrunesIdleVisitors(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newIPLimiter(1)
	l.now = func() time.Time { return now }

	l.Allow("stale")
	now = now.Add(limiterIdleTTL + time.Minute)
	l.prune(now)

	_, ok := l.visitors["stale"]
	assert.False(t, ok)
}
