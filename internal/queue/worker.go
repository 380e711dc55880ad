package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"labelscan/internal/analysis"
	"labelscan/internal/common"
	"labelscan/internal/entity"
	"labelscan/internal/jobs"
	"labelscan/internal/report"
	"labelscan/internal/repository"
)

// Worker drives one claimed job through the analysis pipeline. It owns no
// cross-job state; the job's version column is the only ownership token. On a
// version conflict the worker re-reads the row: if it still holds the lock it
// adopts the new version (a cancel request bumps the version without changing
// ownership), otherwise the job belongs to someone else and the worker stops
// touching it.
type Worker struct {
	repo     repository.JobRepository
	svc      *jobs.Service
	analyzer analysis.FileAnalyzer
	reports  report.Generator
	logger   *slog.Logger

	heartbeatInterval time.Duration
	maxRetries        int
}

type WorkerOption func(*Worker)

func WithHeartbeatInterval(d time.Duration) WorkerOption {
	return func(w *Worker) {
		if d > 0 {
			w.heartbeatInterval = d
		}
	}
}

func WithMaxRetries(n int) WorkerOption {
	return func(w *Worker) {
		if n >= 0 {
			w.maxRetries = n
		}
	}
}

func NewWorker(repo repository.JobRepository, svc *jobs.Service, analyzer analysis.FileAnalyzer, reports report.Generator, logger *slog.Logger, opts ...WorkerOption) *Worker {
	if logger == nil {
		logger = slog.Default()
	}
	w := &Worker{
		repo:              repo,
		svc:               svc,
		analyzer:          analyzer,
		reports:           reports,
		logger:            logger,
		heartbeatInterval: 10 * time.Second,
		maxRetries:        3,
	}
	for _, o := range opts {
		o(w)
	}
	return w
}

// lease tracks the version this execution currently owns. The background
// keepalive and the main loop both mutate it, hence the mutex.
type lease struct {
	mu  sync.Mutex
	ver int64
}

// Run executes a job that was already claimed for workerID. It always leaves
// the job in a terminal state, back in the queue (via the monitor), or owned
// by a newer claimer.
func (w *Worker) Run(ctx context.Context, job entity.Job, workerID string) {
	log := w.logger.With("job_id", job.ID, "worker_id", workerID)
	l := &lease{ver: job.Version}

	inputDir := w.svc.InputDir(job.ID)
	total := len(job.InputManifest)
	rows := make([]report.Row, 0, total)

	if _, ok := w.apply(ctx, job.ID, workerID, l, func(ver int64) (entity.Job, error) {
		return w.repo.Heartbeat(ctx, job.ID, ver, repository.Progress{
			Processed: 0,
			Total:     total,
			Message:   fmt.Sprintf("Queued %d file(s) for processing", total),
		})
	}); !ok {
		return
	}

	for index, file := range job.InputManifest {
		// Cancellation checkpoint, once per file.
		snap, err := w.repo.Get(ctx, job.ID)
		if err != nil {
			log.Error("checkpoint read failed, abandoning", "error", err)
			return
		}
		if !snap.LockedByWorker(workerID) || !snap.Status.Active() {
			log.Warn("lost job ownership, abandoning", "status", snap.Status)
			return
		}
		l.ver = snap.Version
		if snap.CancelRequested {
			w.settleCancelled(ctx, job.ID, workerID, l, log)
			return
		}

		fields, ok := w.analyzeWithRetries(ctx, job.ID, workerID, l, inputDir, file, index, total, log)
		if !ok {
			return
		}
		rows = append(rows, report.Row{ID: index + 1, Filename: file.Filename, Fields: fields})

		updated, ok := w.apply(ctx, job.ID, workerID, l, func(ver int64) (entity.Job, error) {
			return w.repo.Heartbeat(ctx, job.ID, ver, repository.Progress{
				Processed:   index + 1,
				Total:       total,
				CurrentFile: file.Filename,
				Message:     fmt.Sprintf("Completed %s", file.Filename),
			})
		})
		if !ok {
			return
		}
		if err := w.svc.RefreshStatusSnapshot(updated); err != nil {
			log.Warn("status snapshot write failed", "error", err)
		}
	}

	artifact, err := w.reports.Generate(ctx, job.ID, w.svc.OutputDir(job.ID), rows)
	if err != nil {
		w.fail(ctx, job.ID, workerID, l, fmt.Sprintf("report generation failed: %v", err), log)
		return
	}
	manifest, err := report.Manifest(rows)
	if err != nil {
		w.fail(ctx, job.ID, workerID, l, fmt.Sprintf("output manifest failed: %v", err), log)
		return
	}

	completed, ok := w.apply(ctx, job.ID, workerID, l, func(ver int64) (entity.Job, error) {
		return w.repo.Complete(ctx, job.ID, ver, entity.JobCompletion{
			OutputManifest: manifest,
			ArtifactPath:   artifact,
		})
	})
	if !ok {
		return
	}
	if err := w.svc.RefreshStatusSnapshot(completed); err != nil {
		log.Warn("status snapshot write failed", "error", err)
	}
	log.Info("queue.job.done", "files", total, "artifact", artifact)
}

// analyzeWithRetries runs one file through the pipeline, retrying recoverable
// failures up to the retry budget. A keepalive heartbeat ticks while the
// pipeline call is in flight so long files never look stuck.
func (w *Worker) analyzeWithRetries(ctx context.Context, jobID uuid.UUID, workerID string, l *lease, inputDir string, file entity.FileDescriptor, index, total int, log *slog.Logger) (analysis.Fields, bool) {
	path := filepath.Join(inputDir, file.Filename)
	meta := analysis.FileMetadata{Filename: file.Filename, JobID: jobID.String()}

	for {
		if _, ok := w.apply(ctx, jobID, workerID, l, func(ver int64) (entity.Job, error) {
			return w.repo.Heartbeat(ctx, jobID, ver, repository.Progress{
				Processed:   index,
				Total:       total,
				CurrentFile: file.Filename,
				Message:     fmt.Sprintf("Processing %s", file.Filename),
			})
		}); !ok {
			return analysis.Fields{}, false
		}

		stop := w.startKeepalive(ctx, jobID, workerID, l, index, total, file.Filename)
		fields, err := w.analyzer.AnalyzeFile(ctx, path, meta)
		stop()

		if err == nil {
			return fields, true
		}

		if !analysis.Recoverable(err) {
			w.fail(ctx, jobID, workerID, l, err.Error(), log)
			return analysis.Fields{}, false
		}

		snap, gerr := w.repo.Get(ctx, jobID)
		if gerr != nil {
			log.Error("retry bookkeeping read failed, abandoning", "error", gerr)
			return analysis.Fields{}, false
		}
		if snap.RetryCount+1 > w.maxRetries {
			w.fail(ctx, jobID, workerID, l,
				fmt.Sprintf("retries exhausted for %s: %v", file.Filename, err), log)
			return analysis.Fields{}, false
		}

		if _, ok := w.apply(ctx, jobID, workerID, l, func(ver int64) (entity.Job, error) {
			return w.repo.MarkRetrying(ctx, jobID, ver, err.Error())
		}); !ok {
			return analysis.Fields{}, false
		}
		if _, ok := w.apply(ctx, jobID, workerID, l, func(ver int64) (entity.Job, error) {
			return w.repo.ResumeRunning(ctx, jobID, ver)
		}); !ok {
			return analysis.Fields{}, false
		}
		log.Warn("retrying file after recoverable error", "filename", file.Filename, "error", err)
	}
}

func (w *Worker) startKeepalive(ctx context.Context, jobID uuid.UUID, workerID string, l *lease, processed, total int, current string) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		t := time.NewTicker(w.heartbeatInterval)
		defer t.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ctx.Done():
				return
			case <-t.C:
				w.apply(ctx, jobID, workerID, l, func(ver int64) (entity.Job, error) {
					return w.repo.Heartbeat(ctx, jobID, ver, repository.Progress{
						Processed:   processed,
						Total:       total,
						CurrentFile: current,
					})
				})
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

func (w *Worker) settleCancelled(ctx context.Context, jobID uuid.UUID, workerID string, l *lease, log *slog.Logger) {
	cancelled, ok := w.apply(ctx, jobID, workerID, l, func(ver int64) (entity.Job, error) {
		return w.repo.FinishCancel(ctx, jobID, ver, "cancelled by user")
	})
	if !ok {
		return
	}
	if err := w.svc.RefreshStatusSnapshot(cancelled); err != nil {
		log.Warn("status snapshot write failed", "error", err)
	}
	log.Info("queue.job.cancelled")
}

func (w *Worker) fail(ctx context.Context, jobID uuid.UUID, workerID string, l *lease, message string, log *slog.Logger) {
	failed, ok := w.apply(ctx, jobID, workerID, l, func(ver int64) (entity.Job, error) {
		return w.repo.Fail(ctx, jobID, ver, message)
	})
	if !ok {
		return
	}
	if err := w.svc.RefreshStatusSnapshot(failed); err != nil {
		log.Warn("status snapshot write failed", "error", err)
	}
	log.Warn("queue.job.failed", "error", message)
}

// apply runs one guarded repository operation under the lease. On a version
// conflict it re-reads the row and retries once if this worker still owns the
// job; any other outcome means the job moved on without us.
func (w *Worker) apply(ctx context.Context, jobID uuid.UUID, workerID string, l *lease, op func(ver int64) (entity.Job, error)) (entity.Job, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for attempt := 0; attempt < 2; attempt++ {
		updated, err := op(l.ver)
		if err == nil {
			l.ver = updated.Version
			return updated, true
		}
		if !errors.Is(err, common.ErrVersionConflict) {
			w.logger.Error("job update failed", "job_id", jobID, "worker_id", workerID, "error", err)
			return entity.Job{}, false
		}
		snap, gerr := w.repo.Get(ctx, jobID)
		if gerr != nil || !snap.LockedByWorker(workerID) || !snap.Status.Active() {
			w.logger.Warn("lost job ownership on version conflict", "job_id", jobID, "worker_id", workerID)
			return entity.Job{}, false
		}
		l.ver = snap.Version
	}
	w.logger.Warn("giving up after repeated version conflicts", "job_id", jobID, "worker_id", workerID)
	return entity.Job{}, false
}
