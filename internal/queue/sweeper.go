package queue

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"labelscan/constants"
	"labelscan/internal/common"
	"labelscan/internal/jobs"
	"labelscan/internal/repository"
)

// Sweeper enforces the retention policy in two stages: first it purges the
// bulky artifacts of expired terminal jobs (keeping the row and its events
// queryable), then after the delete grace it drops the rows outright along
// with their directories.
type Sweeper struct {
	repo   repository.JobRepository
	svc    *jobs.Service
	logger *slog.Logger
	cfg    common.RetentionConfig
}

func NewSweeper(repo repository.JobRepository, svc *jobs.Service, logger *slog.Logger, cfg common.RetentionConfig) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{repo: repo, svc: svc, logger: logger, cfg: cfg}
}

// Run blocks until ctx is cancelled. One sweep runs immediately on start so a
// long sweep interval never delays overdue cleanup across restarts.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	s.logger.Info("queue.sweeper.start",
		"completed_after", s.cfg.CompletedAfter,
		"failed_after", s.cfg.FailedAfter,
		"sweep_interval", s.cfg.SweepInterval)
	s.SweepOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("queue.sweeper.stop")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs both retention stages once. Idempotent; every step tolerates
// partial progress from a crashed previous sweep.
func (s *Sweeper) SweepOnce(ctx context.Context) {
	now := time.Now().UTC()
	s.purgeExpired(ctx, now)
	s.deleteExpired(ctx, now)
}

func (s *Sweeper) purgeExpired(ctx context.Context, now time.Time) {
	completedBefore := now.Add(-s.cfg.CompletedAfter)
	failedBefore := now.Add(-s.cfg.FailedAfter)

	expired, err := s.repo.ListPurgeable(ctx, completedBefore, failedBefore)
	if err != nil {
		s.logger.Error("purge scan failed", "error", err)
		return
	}
	for _, j := range expired {
		if err := s.svc.PurgeArtifacts(j.ID); err != nil {
			s.logger.Error("artifact purge failed", "job_id", j.ID, "error", err)
			continue
		}
		if err := s.repo.MarkPurged(ctx, j.ID); err != nil {
			s.logger.Error("purge bookkeeping failed", "job_id", j.ID, "error", err)
			continue
		}
		if _, err := s.repo.AppendEvent(ctx, j.ID, constants.EventLevelInfo, "Input artifacts purged by retention policy", nil); err != nil {
			s.logger.Warn("purge event append failed", "job_id", j.ID, "error", err)
		}
		s.logger.Info("queue.job.purged", "job_id", j.ID, "status", j.Status)
	}
}

func (s *Sweeper) deleteExpired(ctx context.Context, now time.Time) {
	purgedBefore := now.Add(-s.cfg.DeleteGrace)

	expired, err := s.repo.ListDeletable(ctx, purgedBefore)
	if err != nil {
		s.logger.Error("delete scan failed", "error", err)
		return
	}
	ids := make([]uuid.UUID, 0, len(expired))
	for _, j := range expired {
		ids = append(ids, j.ID)
	}
	if len(ids) == 0 {
		return
	}
	if err := s.repo.Delete(ctx, ids); err != nil {
		s.logger.Error("job delete failed", "count", len(ids), "error", err)
		return
	}
	for _, id := range ids {
		if err := s.svc.RemoveJobDir(id); err != nil {
			s.logger.Warn("job directory removal failed", "job_id", id, "error", err)
		}
		s.logger.Info("queue.job.deleted", "job_id", id)
	}
}
