package jobs

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestAddRejectsInvalidSchedule(t *testing.T) {
	s := NewScheduler(nil)
	err := s.Add(context.Background(), Job{Name: "bad", Schedule: "every tuesday-ish", Run: func(context.Context) error { return nil }})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad")
	assert.Zero(t, s.Len())
}

func TestAddRegistersJobs(t *testing.T) {
	s := NewScheduler(nil)
	noop := func(context.Context) error { return nil }
	require.NoError(t, s.Add(context.Background(),
		Job{Name: "refresh", Schedule: "@every 15m", Run: noop},
		Job{Name: "cleanup", Schedule: "@daily", Run: noop},
	))
	assert.Equal(t, 2, s.Len())
}

func TestRunJobSwallowsFailures(t *testing.T) {
	s := NewScheduler(nil)
	assert.NotPanics(t, func() {
		s.runJob(context.Background(), Job{Name: "err", Run: func(context.Context) error { return errors.New("x") }})
		s.runJob(context.Background(), Job{Name: "panic", Run: func(context.Context) error { panic("y") }})
	})
}

func TestRunStopsWithContext(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var runs atomic.Int32
	s := NewScheduler(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, s.Add(ctx, Job{Name: "tick", Schedule: "@every 1s", Run: func(context.Context) error {
		runs.Add(1)
		return nil
	}}))

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return runs.Load() > 0 }, 3*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not stop")
	}
}
