package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRefresher struct {
	calls atomic.Int32
	err   error
}

func (m *mockRefresher) RefreshAll(ctx context.Context) error {
	m.calls.Add(1)
	return m.err
}

func TestAddJob(t *testing.T) {
	s := New()
	defer s.Stop()

	require.NoError(t, s.AddJob(NewRefreshJob(&mockRefresher{}, "@every 5m")))

	err := s.AddJob(NewRefreshJob(&mockRefresher{}, "@every 1m"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestAddJob_InvalidSchedule(t *testing.T) {
	s := New()
	defer s.Stop()

	err := s.AddJob(NewRefreshJob(&mockRefresher{}, "every five minutes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to schedule job refresh-standings")
}

func TestRunJob(t *testing.T) {
	s := New()
	defer s.Stop()

	refresher := &mockRefresher{}
	require.NoError(t, s.AddJob(NewRefreshJob(refresher, "@every 1h")))

	require.NoError(t, s.RunJob("refresh-standings"))
	assert.Equal(t, int32(1), refresher.calls.Load())

	refresher.err = errors.New("league l2: connection reset")
	assert.ErrorIs(t, s.RunJob("refresh-standings"), refresher.err)

	assert.Error(t, s.RunJob("missing"))
}

func TestScheduledRun(t *testing.T) {
	s := New()
	refresher := &mockRefresher{}
	require.NoError(t, s.AddJob(NewRefreshJob(refresher, "@every 1s")))

	s.Start()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return refresher.calls.Load() >= 1
	}, 3*time.Second, 50*time.Millisecond)
}
