package queue

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"labelscan/internal/common"
	"labelscan/internal/repository"
)

// Monitor returns jobs whose worker stopped heartbeating to the queue. A
// reclaim is a plain guarded transition, so a worker that was merely slow and
// races the monitor loses at most one update and then abandons the job.
type Monitor struct {
	repo   repository.JobRepository
	logger *slog.Logger

	interval     time.Duration
	stuckTimeout time.Duration
}

func NewMonitor(repo repository.JobRepository, logger *slog.Logger, interval, stuckTimeout time.Duration) *Monitor {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 30 * time.Second
	}
	if stuckTimeout <= 0 {
		stuckTimeout = 2 * time.Minute
	}
	return &Monitor{repo: repo, logger: logger, interval: interval, stuckTimeout: stuckTimeout}
}

// Run blocks until ctx is cancelled.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info("queue.monitor.start", "interval", m.interval, "stuck_timeout", m.stuckTimeout)
	for {
		select {
		case <-ctx.Done():
			m.logger.Info("queue.monitor.stop")
			return
		case <-ticker.C:
			m.ScanOnce(ctx)
		}
	}
}

// ScanOnce requeues every active job whose last heartbeat predates the stuck
// timeout. Safe to run concurrently with workers and with itself.
func (m *Monitor) ScanOnce(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-m.stuckTimeout)
	stale, err := m.repo.ListStale(ctx, cutoff)
	if err != nil {
		m.logger.Error("stale job scan failed", "error", err)
		return
	}
	for _, j := range stale {
		reclaimed, err := m.repo.Reclaim(ctx, j.ID, j.Version)
		switch {
		case err == nil:
			m.logger.Warn("queue.job.reclaimed",
				"job_id", j.ID, "locked_by", j.LockedBy, "status", reclaimed.Status)
		case errors.Is(err, common.ErrVersionConflict):
			// The worker came back or another monitor got there first.
			m.logger.Debug("reclaim skipped, job moved on", "job_id", j.ID)
		default:
			m.logger.Error("reclaim failed", "job_id", j.ID, "error", err)
		}
	}
}
