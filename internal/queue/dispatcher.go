package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"labelscan/internal/common"
	"labelscan/internal/entity"
	"labelscan/internal/repository"
)

// A runner executes a claimed job to a terminal state. Satisfied by *Worker.
type runner interface {
	Run(ctx context.Context, job entity.Job, workerID string)
}

// Dispatcher polls the store for queued jobs and hands each claim to a worker
// goroutine, capped at maxWorkers concurrent executions. Wake short-circuits
// the poll interval when a producer knows new work just landed.
type Dispatcher struct {
	repo   repository.JobRepository
	worker runner
	logger *slog.Logger

	name         string
	maxWorkers   int
	pollInterval time.Duration

	wake chan struct{}
	wg   sync.WaitGroup
}

type DispatcherOption func(*Dispatcher)

func WithMaxWorkers(n int) DispatcherOption {
	return func(d *Dispatcher) {
		if n > 0 {
			d.maxWorkers = n
		}
	}
}

func WithPollInterval(interval time.Duration) DispatcherOption {
	return func(d *Dispatcher) {
		if interval > 0 {
			d.pollInterval = interval
		}
	}
}

func NewDispatcher(repo repository.JobRepository, worker runner, logger *slog.Logger, opts ...DispatcherOption) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		repo:         repo,
		worker:       worker,
		logger:       logger,
		name:         fmt.Sprintf("worker-%s", uuid.New().String()[:8]),
		maxWorkers:   2,
		pollInterval: 2 * time.Second,
		wake:         make(chan struct{}, 1),
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Wake nudges the dispatcher to poll immediately. Safe to call from any
// goroutine; a pending nudge coalesces with new ones.
func (d *Dispatcher) Wake() {
	select {
	case d.wake <- struct{}{}:
	default:
	}
}

// Run blocks until ctx is cancelled, then waits for in-flight jobs to settle.
// Running jobs keep their per-job context alive only as long as ctx; anything
// interrupted mid-file is reclaimed by the monitor after the stuck timeout.
func (d *Dispatcher) Run(ctx context.Context) {
	slots := make(chan int, d.maxWorkers)
	for i := 0; i < d.maxWorkers; i++ {
		slots <- i
	}

	ticker := time.NewTicker(d.pollInterval)
	defer ticker.Stop()

	d.logger.Info("queue.dispatcher.start", "name", d.name, "max_workers", d.maxWorkers)
	for {
		var slot int
		select {
		case <-ctx.Done():
			d.wg.Wait()
			d.logger.Info("queue.dispatcher.stop", "name", d.name)
			return
		case slot = <-slots:
		}

		job, err := d.claim(ctx, slot, slots)
		if job == nil {
			if err != nil {
				d.logger.Error("claim failed, backing off", "error", err)
			}
			// Slot was returned; wait for the next tick or a nudge.
			select {
			case <-ctx.Done():
			case <-ticker.C:
			case <-d.wake:
			}
			continue
		}
	}
}

// claim tries to take the oldest queued job for the given slot. On no work or
// on error the slot goes straight back to the pool.
func (d *Dispatcher) claim(ctx context.Context, slot int, slots chan int) (*entity.Job, error) {
	workerID := fmt.Sprintf("%s-%d", d.name, slot)
	job, err := d.repo.ClaimNext(ctx, workerID)
	if err != nil || job == nil {
		slots <- slot
		return nil, err
	}

	d.logger.Info("queue.job.claimed", "job_id", job.ID, "worker_id", workerID, "files", job.TotalFiles)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() { slots <- slot }()
		d.worker.Run(common.WithWorkerID(ctx, workerID), *job, workerID)
	}()
	return job, nil
}
