package queue_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"labelscan/constants"
	"labelscan/internal/queue"
)

func TestMonitorReclaimsStaleJob(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 1)
	claimed := h.claim(t, "w-1")

	// A vanishingly small stuck timeout makes the fresh claim look stale.
	m := queue.NewMonitor(h.repo, nil, time.Minute, time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	m.ScanOnce(ctx)

	cur, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusQueued, cur.Status)
	require.Nil(t, cur.LockedBy)
	require.Zero(t, cur.ProcessedFiles)
	require.Equal(t, claimed.RetryCount, cur.RetryCount)
}

func TestMonitorIgnoresHealthyJobs(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 1)
	claimed := h.claim(t, "w-1")

	m := queue.NewMonitor(h.repo, nil, time.Minute, time.Hour)
	m.ScanOnce(ctx)

	cur, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusRunning, cur.Status)
	require.Equal(t, "w-1", *cur.LockedBy)
	require.Equal(t, claimed.Version, cur.Version)
}

func TestMonitorScanIsIdempotent(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 1)
	claimed := h.claim(t, "w-1")

	m := queue.NewMonitor(h.repo, nil, time.Minute, time.Nanosecond)
	time.Sleep(5 * time.Millisecond)
	m.ScanOnce(ctx)
	m.ScanOnce(ctx) // queued jobs are not stale; nothing to do

	cur, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusQueued, cur.Status)
}
