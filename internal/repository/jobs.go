package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"labelscan/constants"
	"labelscan/gen/ent"
	"labelscan/gen/ent/job"
	"labelscan/gen/ent/jobevent"
	"labelscan/internal/common"
	"labelscan/internal/entity"
)

// EventSink receives every committed job event. The event publisher registers
// itself here to mirror appends into live subscriber channels.
type EventSink interface {
	Publish(event entity.JobEvent)
}

// NewJob carries everything needed to enqueue a submission.
type NewJob struct {
	OwnerID     string
	SourcePath  string
	DisplayName string
	Files       []entity.FileDescriptor
	Parameters  map[string]any
}

// Progress is the payload of a worker heartbeat. Message, when non-empty, is
// appended to the job's event log alongside the liveness update.
type Progress struct {
	Processed   int
	Total       int
	CurrentFile string
	Message     string
}

// Filter narrows List results.
type Filter struct {
	OwnerID  string
	Statuses []constants.JobStatus
	Limit    int
	Offset   int
}

// JobRepository is the only code path allowed to mutate persisted job state.
// Every transition is an atomic read-modify-write guarded by the row version:
// the write succeeds only if the stored version still equals the version the
// caller presented, otherwise ErrVersionConflict is returned and the caller
// must re-read or abandon.
type JobRepository interface {
	Create(ctx context.Context, req NewJob) (entity.Job, error)
	Get(ctx context.Context, id uuid.UUID) (entity.Job, error)
	List(ctx context.Context, f Filter) ([]entity.Job, error)

	// ClaimNext atomically claims the oldest queued job for workerID,
	// returning nil when nothing is claimable.
	ClaimNext(ctx context.Context, workerID string) (*entity.Job, error)

	Heartbeat(ctx context.Context, id uuid.UUID, expected int64, p Progress) (entity.Job, error)
	MarkRetrying(ctx context.Context, id uuid.UUID, expected int64, reason string) (entity.Job, error)
	ResumeRunning(ctx context.Context, id uuid.UUID, expected int64) (entity.Job, error)
	Complete(ctx context.Context, id uuid.UUID, expected int64, done entity.JobCompletion) (entity.Job, error)
	Fail(ctx context.Context, id uuid.UUID, expected int64, message string) (entity.Job, error)

	// RequestCancel cancels a queued job outright and flags a running or
	// retrying one for cooperative cancellation at the worker's next
	// checkpoint.
	RequestCancel(ctx context.Context, id uuid.UUID, reason, requestedBy string) (entity.Job, error)
	FinishCancel(ctx context.Context, id uuid.UUID, expected int64, reason string) (entity.Job, error)

	// Reclaim returns a job with a stale heartbeat to the queue. Infra-level
	// recovery: retry_count is untouched.
	Reclaim(ctx context.Context, id uuid.UUID, expected int64) (entity.Job, error)

	ListStale(ctx context.Context, cutoff time.Time) ([]entity.Job, error)
	ListPurgeable(ctx context.Context, completedBefore, failedBefore time.Time) ([]entity.Job, error)
	ListDeletable(ctx context.Context, purgedBefore time.Time) ([]entity.Job, error)
	MarkPurged(ctx context.Context, id uuid.UUID) error
	Delete(ctx context.Context, ids []uuid.UUID) error

	AppendEvent(ctx context.Context, jobID uuid.UUID, level constants.EventLevel, message string, metadata map[string]any) (entity.JobEvent, error)
	ListEvents(ctx context.Context, jobID uuid.UUID, sinceEventID int) ([]entity.JobEvent, error)
}

type jobRepo struct {
	ent  *ent.Client
	log  *slog.Logger
	sink EventSink
}

type Option func(*jobRepo)

// WithEventSink mirrors committed events into sink.
func WithEventSink(sink EventSink) Option {
	return func(r *jobRepo) { r.sink = sink }
}

func NewJobRepository(entc *ent.Client, log *slog.Logger, opts ...Option) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	r := &jobRepo{ent: entc, log: log}
	for _, o := range opts {
		o(r)
	}
	return r
}

func (r *jobRepo) Create(ctx context.Context, req NewJob) (entity.Job, error) {
	now := time.Now().UTC()
	displayName := req.DisplayName
	if displayName == "" {
		displayName = now.Local().Format("01/02 15:04")
	}
	manifest, err := json.Marshal(req.Files)
	if err != nil {
		return entity.Job{}, fmt.Errorf("marshal input manifest: %w", err)
	}
	params, err := json.Marshal(req.Parameters)
	if err != nil {
		return entity.Job{}, fmt.Errorf("marshal parameters: %w", err)
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return entity.Job{}, storageErr("begin create", err)
	}
	row, err := tx.Job.Create().
		SetOwnerID(req.OwnerID).
		SetStatus(string(constants.JobStatusQueued)).
		SetSourcePath(req.SourcePath).
		SetDisplayName(displayName).
		SetInputManifest(manifest).
		SetParameters(params).
		SetTotalFiles(len(req.Files)).
		SetCreatedAt(now).
		SetUpdatedAt(now).
		Save(ctx)
	if err != nil {
		return entity.Job{}, rollback(tx, storageErr("create job", err))
	}
	ev, err := appendEvent(ctx, tx, row.ID, constants.EventLevelInfo, "Job queued", map[string]any{
		"total_files":  len(req.Files),
		"display_name": displayName,
	})
	if err != nil {
		return entity.Job{}, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return entity.Job{}, storageErr("commit create", err)
	}

	r.log.Info("job queued", "job_id", row.ID, "owner_id", req.OwnerID, "total_files", len(req.Files))
	r.publish(ev)
	return toJob(row), nil
}

func (r *jobRepo) Get(ctx context.Context, id uuid.UUID) (entity.Job, error) {
	row, err := r.ent.Job.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return entity.Job{}, fmt.Errorf("job %s: %w", id, common.ErrNotFound)
		}
		return entity.Job{}, storageErr("get job", err)
	}
	return toJob(row), nil
}

func (r *jobRepo) List(ctx context.Context, f Filter) ([]entity.Job, error) {
	q := r.ent.Job.Query()
	if f.OwnerID != "" {
		q = q.Where(job.OwnerIDEQ(f.OwnerID))
	}
	if len(f.Statuses) > 0 {
		values := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			values[i] = string(s)
		}
		q = q.Where(job.StatusIn(values...))
	}
	limit := f.Limit
	if limit <= 0 {
		limit = 50
	}
	rows, err := q.
		Order(ent.Desc(job.FieldCreatedAt), ent.Desc(job.FieldID)).
		Limit(limit).
		Offset(f.Offset).
		All(ctx)
	if err != nil {
		return nil, storageErr("list jobs", err)
	}
	out := make([]entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJob(row))
	}
	return out, nil
}

func (r *jobRepo) ClaimNext(ctx context.Context, workerID string) (*entity.Job, error) {
	for {
		cand, err := r.ent.Job.Query().
			Where(job.StatusEQ(string(constants.JobStatusQueued))).
			Order(ent.Asc(job.FieldCreatedAt), ent.Asc(job.FieldID)).
			First(ctx)
		if err != nil {
			if ent.IsNotFound(err) {
				return nil, nil
			}
			return nil, storageErr("select claimable", err)
		}

		now := time.Now().UTC()
		claimed, err := r.transition(ctx, cand.ID, cand.Version, constants.JobStatusRunning,
			func(u *ent.JobUpdate) {
				u.SetLockedBy(workerID).
					SetLockedAt(now).
					SetHeartbeatAt(now)
				if cand.StartedAt == nil {
					u.SetStartedAt(now)
				}
			},
			&eventSpec{
				level:   constants.EventLevelInfo,
				message: fmt.Sprintf("Job claimed by %s", workerID),
				meta:    map[string]any{"worker_id": workerID},
			})
		if errors.Is(err, common.ErrVersionConflict) {
			// Lost the race; another claimer got there first. Re-select.
			continue
		}
		if err != nil {
			return nil, err
		}
		r.log.Info("queue.claim.ok", "job_id", claimed.ID, "worker_id", workerID)
		return &claimed, nil
	}
}

func (r *jobRepo) Heartbeat(ctx context.Context, id uuid.UUID, expected int64, p Progress) (entity.Job, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return entity.Job{}, err
	}
	if cur.Status != constants.JobStatusRunning {
		return entity.Job{}, fmt.Errorf("heartbeat on %s job: %w", cur.Status, common.ErrInvalidTransition)
	}

	total := cur.TotalFiles
	if p.Total > 0 {
		total = p.Total
	}
	// Progress never regresses while running.
	processed := p.Processed
	if processed < cur.ProcessedFiles {
		processed = cur.ProcessedFiles
	}
	progress := 0.0
	if total > 0 {
		progress = float64(processed) / float64(total)
	}
	if progress < cur.Progress {
		progress = cur.Progress
	}

	now := time.Now().UTC()
	var ev *eventSpec
	if p.Message != "" {
		ev = &eventSpec{
			level:   constants.EventLevelInfo,
			message: p.Message,
			meta: map[string]any{
				"processed":    processed,
				"total":        total,
				"current_file": p.CurrentFile,
			},
		}
	}
	return r.transition(ctx, id, expected, constants.JobStatusRunning,
		func(u *ent.JobUpdate) {
			u.SetProcessedFiles(processed).
				SetTotalFiles(total).
				SetProgress(progress).
				SetHeartbeatAt(now)
			if p.CurrentFile != "" {
				u.SetCurrentFile(p.CurrentFile)
			}
		}, ev)
}

func (r *jobRepo) MarkRetrying(ctx context.Context, id uuid.UUID, expected int64, reason string) (entity.Job, error) {
	now := time.Now().UTC()
	return r.transition(ctx, id, expected, constants.JobStatusRetrying,
		func(u *ent.JobUpdate) {
			u.AddRetryCount(1).SetHeartbeatAt(now)
		},
		&eventSpec{
			level:   constants.EventLevelWarning,
			message: fmt.Sprintf("Recoverable error, retrying: %s", reason),
			meta:    map[string]any{"reason": reason},
		})
}

func (r *jobRepo) ResumeRunning(ctx context.Context, id uuid.UUID, expected int64) (entity.Job, error) {
	now := time.Now().UTC()
	return r.transition(ctx, id, expected, constants.JobStatusRunning,
		func(u *ent.JobUpdate) {
			u.SetHeartbeatAt(now)
		}, nil)
}

func (r *jobRepo) Complete(ctx context.Context, id uuid.UUID, expected int64, done entity.JobCompletion) (entity.Job, error) {
	if done.ArtifactPath == "" {
		return entity.Job{}, fmt.Errorf("completion requires an artifact path: %w", common.ErrInvalidInput)
	}
	now := time.Now().UTC()
	updated, err := r.transition(ctx, id, expected, constants.JobStatusCompleted,
		func(u *ent.JobUpdate) {
			u.SetProgress(1).
				SetArtifactPath(done.ArtifactPath).
				ClearErrorMessage().
				ClearHeartbeatAt().
				ClearLockedBy().
				ClearLockedAt().
				ClearCurrentFile().
				SetCompletedAt(now)
			if done.OutputManifest != nil {
				u.SetOutputManifest(done.OutputManifest)
			}
		},
		&eventSpec{
			level:   constants.EventLevelInfo,
			message: "Job completed",
			meta:    map[string]any{"artifact_path": done.ArtifactPath},
		},
		func(u *ent.JobUpdate, cur entity.Job) {
			u.SetProcessedFiles(cur.TotalFiles)
		})
	if err != nil {
		return entity.Job{}, err
	}
	r.log.Info("job completed", "job_id", id, "artifact_path", done.ArtifactPath)
	return updated, nil
}

func (r *jobRepo) Fail(ctx context.Context, id uuid.UUID, expected int64, message string) (entity.Job, error) {
	if message == "" {
		return entity.Job{}, fmt.Errorf("failure requires an error message: %w", common.ErrInvalidInput)
	}
	now := time.Now().UTC()
	updated, err := r.transition(ctx, id, expected, constants.JobStatusFailed,
		func(u *ent.JobUpdate) {
			u.SetErrorMessage(message).
				ClearHeartbeatAt().
				ClearLockedBy().
				ClearLockedAt().
				SetFailedAt(now)
		},
		&eventSpec{
			level:   constants.EventLevelError,
			message: message,
		})
	if err != nil {
		return entity.Job{}, err
	}
	r.log.Warn("job failed", "job_id", id, "error", message)
	return updated, nil
}

func (r *jobRepo) RequestCancel(ctx context.Context, id uuid.UUID, reason, requestedBy string) (entity.Job, error) {
	if requestedBy == "" {
		requestedBy = "system"
	}
	// The caller does not hold a version; read-and-guard with a short retry
	// so a racing heartbeat cannot starve the cancel request.
	var lastErr error
	for attempt := 0; attempt < 5; attempt++ {
		cur, err := r.Get(ctx, id)
		if err != nil {
			return entity.Job{}, err
		}
		if cur.Status.Terminal() {
			return entity.Job{}, fmt.Errorf("cancel %s job: %w", cur.Status, common.ErrInvalidTransition)
		}

		var updated entity.Job
		if cur.Status == constants.JobStatusQueued {
			now := time.Now().UTC()
			updated, err = r.transition(ctx, id, cur.Version, constants.JobStatusCancelled,
				func(u *ent.JobUpdate) {
					u.SetErrorMessage(reason).
						SetCancelledAt(now).
						ClearHeartbeatAt().
						ClearLockedBy().
						ClearLockedAt()
				},
				&eventSpec{
					level:   constants.EventLevelWarning,
					message: fmt.Sprintf("Job cancelled by %s: %s", requestedBy, reason),
					meta:    map[string]any{"cancelled_by": requestedBy},
				})
		} else {
			updated, err = r.transition(ctx, id, cur.Version, cur.Status,
				func(u *ent.JobUpdate) {
					u.SetCancelRequested(true)
				},
				&eventSpec{
					level:   constants.EventLevelWarning,
					message: fmt.Sprintf("Cancellation requested by %s: %s", requestedBy, reason),
					meta:    map[string]any{"cancelled_by": requestedBy, "reason": reason},
				})
		}
		if errors.Is(err, common.ErrVersionConflict) {
			lastErr = err
			continue
		}
		if err != nil {
			return entity.Job{}, err
		}
		return updated, nil
	}
	return entity.Job{}, lastErr
}

func (r *jobRepo) FinishCancel(ctx context.Context, id uuid.UUID, expected int64, reason string) (entity.Job, error) {
	now := time.Now().UTC()
	updated, err := r.transition(ctx, id, expected, constants.JobStatusCancelled,
		func(u *ent.JobUpdate) {
			u.SetCancelRequested(false).
				SetCancelledAt(now).
				ClearHeartbeatAt().
				ClearLockedBy().
				ClearLockedAt().
				ClearCurrentFile()
			if reason != "" {
				u.SetErrorMessage(reason)
			}
		},
		&eventSpec{
			level:   constants.EventLevelWarning,
			message: "Job cancelled",
			meta:    map[string]any{"reason": reason},
		})
	if err != nil {
		return entity.Job{}, err
	}
	r.log.Info("job cancelled", "job_id", id)
	return updated, nil
}

func (r *jobRepo) Reclaim(ctx context.Context, id uuid.UUID, expected int64) (entity.Job, error) {
	updated, err := r.transition(ctx, id, expected, constants.JobStatusQueued,
		func(u *ent.JobUpdate) {
			u.ClearHeartbeatAt().
				ClearLockedBy().
				ClearLockedAt().
				ClearCurrentFile().
				SetProcessedFiles(0).
				SetProgress(0)
		},
		&eventSpec{
			level:   constants.EventLevelWarning,
			message: "Job reclaimed after stale heartbeat",
		})
	if err != nil {
		return entity.Job{}, err
	}
	r.log.Warn("queue.reclaim.ok", "job_id", id)
	return updated, nil
}

func (r *jobRepo) ListStale(ctx context.Context, cutoff time.Time) ([]entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(
			job.StatusIn(string(constants.JobStatusRunning), string(constants.JobStatusRetrying)),
			job.HeartbeatAtLT(cutoff),
		).
		Order(ent.Asc(job.FieldHeartbeatAt)).
		All(ctx)
	if err != nil {
		return nil, storageErr("list stale jobs", err)
	}
	out := make([]entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJob(row))
	}
	return out, nil
}

func (r *jobRepo) ListPurgeable(ctx context.Context, completedBefore, failedBefore time.Time) ([]entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(
			job.ArtifactsPurged(false),
			job.Or(
				job.And(
					job.StatusIn(string(constants.JobStatusCompleted), string(constants.JobStatusCancelled)),
					job.UpdatedAtLT(completedBefore),
				),
				job.And(
					job.StatusEQ(string(constants.JobStatusFailed)),
					job.UpdatedAtLT(failedBefore),
				),
			),
		).
		All(ctx)
	if err != nil {
		return nil, storageErr("list purgeable jobs", err)
	}
	out := make([]entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJob(row))
	}
	return out, nil
}

func (r *jobRepo) ListDeletable(ctx context.Context, purgedBefore time.Time) ([]entity.Job, error) {
	rows, err := r.ent.Job.Query().
		Where(
			job.ArtifactsPurged(true),
			job.PurgedAtLT(purgedBefore),
		).
		All(ctx)
	if err != nil {
		return nil, storageErr("list deletable jobs", err)
	}
	out := make([]entity.Job, 0, len(rows))
	for _, row := range rows {
		out = append(out, toJob(row))
	}
	return out, nil
}

// MarkPurged records that heavy artifacts were deleted. Bookkeeping only: it
// deliberately bypasses the version guard so that purging never perturbs the
// job's transition history.
func (r *jobRepo) MarkPurged(ctx context.Context, id uuid.UUID) error {
	n, err := r.ent.Job.Update().
		Where(job.IDEQ(id)).
		SetArtifactsPurged(true).
		SetPurgedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return storageErr("mark purged", err)
	}
	if n == 0 {
		return fmt.Errorf("job %s: %w", id, common.ErrNotFound)
	}
	return nil
}

func (r *jobRepo) Delete(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := r.ent.Job.Delete().
		Where(job.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return storageErr("delete jobs", err)
	}
	return nil
}

func (r *jobRepo) AppendEvent(ctx context.Context, jobID uuid.UUID, level constants.EventLevel, message string, metadata map[string]any) (entity.JobEvent, error) {
	exists, err := r.ent.Job.Query().Where(job.IDEQ(jobID)).Exist(ctx)
	if err != nil {
		return entity.JobEvent{}, storageErr("check job exists", err)
	}
	if !exists {
		return entity.JobEvent{}, fmt.Errorf("job %s: %w", jobID, common.ErrNotFound)
	}
	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return entity.JobEvent{}, storageErr("begin append event", err)
	}
	ev, err := appendEvent(ctx, tx, jobID, level, message, metadata)
	if err != nil {
		return entity.JobEvent{}, rollback(tx, err)
	}
	if err := tx.Commit(); err != nil {
		return entity.JobEvent{}, storageErr("commit append event", err)
	}
	r.publish(ev)
	return ev, nil
}

func (r *jobRepo) ListEvents(ctx context.Context, jobID uuid.UUID, sinceEventID int) ([]entity.JobEvent, error) {
	rows, err := r.ent.JobEvent.Query().
		Where(
			jobevent.JobIDEQ(jobID),
			jobevent.IDGT(sinceEventID),
		).
		Order(ent.Asc(jobevent.FieldID)).
		All(ctx)
	if err != nil {
		return nil, storageErr("list events", err)
	}
	out := make([]entity.JobEvent, 0, len(rows))
	for _, row := range rows {
		out = append(out, toEvent(row))
	}
	return out, nil
}

type eventSpec struct {
	level   constants.EventLevel
	message string
	meta    map[string]any
}

// transition performs one version-guarded state change plus its event append
// in a single transaction. extra mutators run after apply with the pre-read
// snapshot in hand.
func (r *jobRepo) transition(
	ctx context.Context,
	id uuid.UUID,
	expected int64,
	to constants.JobStatus,
	apply func(*ent.JobUpdate),
	ev *eventSpec,
	extra ...func(*ent.JobUpdate, entity.Job),
) (entity.Job, error) {
	cur, err := r.Get(ctx, id)
	if err != nil {
		return entity.Job{}, err
	}
	if cur.Version != expected {
		return entity.Job{}, fmt.Errorf("job %s at version %d, expected %d: %w",
			id, cur.Version, expected, common.ErrVersionConflict)
	}
	if !constants.CanTransition(cur.Status, to) {
		return entity.Job{}, fmt.Errorf("job %s: %s -> %s: %w",
			id, cur.Status, to, common.ErrInvalidTransition)
	}

	tx, err := r.ent.Tx(ctx)
	if err != nil {
		return entity.Job{}, storageErr("begin transition", err)
	}
	u := tx.Job.Update().
		Where(job.IDEQ(id), job.VersionEQ(expected)).
		SetStatus(string(to)).
		AddVersion(1).
		SetUpdatedAt(time.Now().UTC())
	if apply != nil {
		apply(u)
	}
	for _, fn := range extra {
		fn(u, cur)
	}
	n, err := u.Save(ctx)
	if err != nil {
		return entity.Job{}, rollback(tx, storageErr("apply transition", err))
	}
	if n == 0 {
		// Someone else won the row between our read and our write.
		return entity.Job{}, rollback(tx, fmt.Errorf("job %s: %w", id, common.ErrVersionConflict))
	}

	var published entity.JobEvent
	if ev != nil {
		published, err = appendEvent(ctx, tx, id, ev.level, ev.message, ev.meta)
		if err != nil {
			return entity.Job{}, rollback(tx, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return entity.Job{}, storageErr("commit transition", err)
	}
	if ev != nil {
		r.publish(published)
	}
	return r.Get(ctx, id)
}

func appendEvent(ctx context.Context, tx *ent.Tx, jobID uuid.UUID, level constants.EventLevel, message string, metadata map[string]any) (entity.JobEvent, error) {
	if metadata == nil {
		metadata = map[string]any{}
	}
	meta, err := json.Marshal(metadata)
	if err != nil {
		return entity.JobEvent{}, fmt.Errorf("marshal event metadata: %w", err)
	}
	row, err := tx.JobEvent.Create().
		SetJobID(jobID).
		SetLevel(string(level)).
		SetMessage(message).
		SetMetadata(meta).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return entity.JobEvent{}, storageErr("append event", err)
	}
	return toEvent(row), nil
}

func (r *jobRepo) publish(ev entity.JobEvent) {
	if r.sink != nil {
		r.sink.Publish(ev)
	}
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		return fmt.Errorf("%w: rollback: %v", err, rerr)
	}
	return err
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%s: %w: %v", op, common.ErrStorageUnavailable, err)
}

func toJob(m *ent.Job) entity.Job {
	var files []entity.FileDescriptor
	if len(m.InputManifest) > 0 {
		_ = json.Unmarshal(m.InputManifest, &files)
	}
	return entity.Job{
		ID:              m.ID,
		OwnerID:         m.OwnerID,
		Status:          constants.JobStatus(m.Status),
		SourcePath:      m.SourcePath,
		DisplayName:     m.DisplayName,
		InputManifest:   files,
		OutputManifest:  m.OutputManifest,
		Parameters:      m.Parameters,
		TotalFiles:      m.TotalFiles,
		ProcessedFiles:  m.ProcessedFiles,
		Progress:        m.Progress,
		CurrentFile:     m.CurrentFile,
		ArtifactPath:    m.ArtifactPath,
		ErrorMessage:    m.ErrorMessage,
		CancelRequested: m.CancelRequested,
		ArtifactsPurged: m.ArtifactsPurged,
		PurgedAt:        m.PurgedAt,
		LockedBy:        m.LockedBy,
		LockedAt:        m.LockedAt,
		HeartbeatAt:     m.HeartbeatAt,
		Version:         m.Version,
		RetryCount:      m.RetryCount,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		StartedAt:       m.StartedAt,
		CompletedAt:     m.CompletedAt,
		CancelledAt:     m.CancelledAt,
		FailedAt:        m.FailedAt,
	}
}

func toEvent(m *ent.JobEvent) entity.JobEvent {
	var meta map[string]any
	if len(m.Metadata) > 0 {
		_ = json.Unmarshal(m.Metadata, &meta)
	}
	return entity.JobEvent{
		ID:        m.ID,
		JobID:     m.JobID,
		CreatedAt: m.CreatedAt,
		Level:     constants.EventLevel(m.Level),
		Message:   m.Message,
		Metadata:  meta,
	}
}
