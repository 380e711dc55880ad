package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"labelscan/constants"
	"labelscan/gen/ent/enttest"
	"labelscan/internal/common"
	"labelscan/internal/entity"
	"labelscan/internal/repository"
)

func newRepo(t *testing.T) repository.JobRepository {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)", uuid.NewString()))
	t.Cleanup(func() { _ = client.Close() })
	return repository.NewJobRepository(client, nil)
}

func enqueue(t *testing.T, repo repository.JobRepository, files int) entity.Job {
	t.Helper()
	descs := make([]entity.FileDescriptor, 0, files)
	for i := 0; i < files; i++ {
		descs = append(descs, entity.FileDescriptor{
			Filename:   fmt.Sprintf("label-%02d.pdf", i+1),
			SourcePath: "/tmp/in",
			Size:       1024,
		})
	}
	job, err := repo.Create(context.Background(), repository.NewJob{
		OwnerID:    "tester",
		SourcePath: "/tmp/in",
		Files:      descs,
	})
	require.NoError(t, err)
	return job
}

func claim(t *testing.T, repo repository.JobRepository, workerID string) entity.Job {
	t.Helper()
	job, err := repo.ClaimNext(context.Background(), workerID)
	require.NoError(t, err)
	require.NotNil(t, job)
	return *job
}

func TestCreateQueuesJob(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := enqueue(t, repo, 3)
	require.Equal(t, constants.JobStatusQueued, job.Status)
	require.Equal(t, int64(0), job.Version)
	require.Equal(t, 3, job.TotalFiles)
	require.Equal(t, 0, job.ProcessedFiles)
	require.Len(t, job.InputManifest, 3)
	require.NotEmpty(t, job.DisplayName)

	events, err := repo.ListEvents(ctx, job.ID, 0)
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "Job queued", events[0].Message)
	require.Equal(t, constants.EventLevelInfo, events[0].Level)
}

func TestGetUnknownJob(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.Get(context.Background(), uuid.New())
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestClaimNextIsFIFO(t *testing.T) {
	repo := newRepo(t)

	first := enqueue(t, repo, 1)
	time.Sleep(5 * time.Millisecond)
	second := enqueue(t, repo, 1)

	claimed := claim(t, repo, "worker-a")
	require.Equal(t, first.ID, claimed.ID)
	require.Equal(t, constants.JobStatusRunning, claimed.Status)
	require.Equal(t, int64(1), claimed.Version)
	require.NotNil(t, claimed.LockedBy)
	require.Equal(t, "worker-a", *claimed.LockedBy)
	require.NotNil(t, claimed.HeartbeatAt)
	require.NotNil(t, claimed.StartedAt)

	next := claim(t, repo, "worker-b")
	require.Equal(t, second.ID, next.ID)
}

func TestClaimNextEmptyQueue(t *testing.T) {
	repo := newRepo(t)

	job, err := repo.ClaimNext(context.Background(), "worker-a")
	require.NoError(t, err)
	require.Nil(t, job)
}

func TestClaimNextSkipsNonQueued(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	running := enqueue(t, repo, 1)
	_ = claim(t, repo, "worker-a")

	job, err := repo.ClaimNext(ctx, "worker-b")
	require.NoError(t, err)
	require.Nil(t, job, "job %s is already running and must not be claimable", running.ID)
}

func TestStaleVersionIsRejected(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 2)
	claimed := claim(t, repo, "worker-a")

	// First heartbeat succeeds and bumps the version.
	updated, err := repo.Heartbeat(ctx, claimed.ID, claimed.Version, repository.Progress{Processed: 1, Total: 2})
	require.NoError(t, err)
	require.Equal(t, claimed.Version+1, updated.Version)

	// Replaying the old version must fail without touching the row.
	_, err = repo.Heartbeat(ctx, claimed.ID, claimed.Version, repository.Progress{Processed: 2, Total: 2})
	require.ErrorIs(t, err, common.ErrVersionConflict)

	cur, err := repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, updated.Version, cur.Version)
	require.Equal(t, 1, cur.ProcessedFiles)
}

func TestVersionIncrementsOnEveryMutation(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 1)
	job := claim(t, repo, "worker-a")
	seen := job.Version

	job, err := repo.Heartbeat(ctx, job.ID, job.Version, repository.Progress{Processed: 0, Total: 1})
	require.NoError(t, err)
	require.Greater(t, job.Version, seen)
	seen = job.Version

	job, err = repo.MarkRetrying(ctx, job.ID, job.Version, "transient")
	require.NoError(t, err)
	require.Greater(t, job.Version, seen)
	seen = job.Version

	job, err = repo.ResumeRunning(ctx, job.ID, job.Version)
	require.NoError(t, err)
	require.Greater(t, job.Version, seen)
}

func TestHeartbeatProgressNeverRegresses(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 4)
	job := claim(t, repo, "worker-a")

	job, err := repo.Heartbeat(ctx, job.ID, job.Version, repository.Progress{Processed: 2, Total: 4})
	require.NoError(t, err)
	require.Equal(t, 2, job.ProcessedFiles)
	require.InDelta(t, 0.5, job.Progress, 1e-9)

	// A late heartbeat reporting less progress keeps the high-water mark.
	job, err = repo.Heartbeat(ctx, job.ID, job.Version, repository.Progress{Processed: 1, Total: 4})
	require.NoError(t, err)
	require.Equal(t, 2, job.ProcessedFiles)
	require.InDelta(t, 0.5, job.Progress, 1e-9)
}

func TestHeartbeatRequiresRunning(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := enqueue(t, repo, 1)
	_, err := repo.Heartbeat(ctx, job.ID, job.Version, repository.Progress{})
	require.ErrorIs(t, err, common.ErrInvalidTransition)
}

func TestCompleteRequiresArtifact(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 1)
	job := claim(t, repo, "worker-a")

	_, err := repo.Complete(ctx, job.ID, job.Version, entity.JobCompletion{})
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCompleteFinalizesJob(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 2)
	job := claim(t, repo, "worker-a")

	done, err := repo.Complete(ctx, job.ID, job.Version, entity.JobCompletion{
		OutputManifest: []byte(`[{"filename":"label-01.pdf"}]`),
		ArtifactPath:   "/data/jobs/x/output/analysis_result.xlsx",
	})
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusCompleted, done.Status)
	require.Equal(t, 2, done.ProcessedFiles)
	require.InDelta(t, 1.0, done.Progress, 1e-9)
	require.Nil(t, done.LockedBy)
	require.Nil(t, done.HeartbeatAt)
	require.NotNil(t, done.CompletedAt)
	require.NotNil(t, done.ArtifactPath)

	// Terminal rows accept no further transitions.
	_, err = repo.Fail(ctx, done.ID, done.Version, "too late")
	require.ErrorIs(t, err, common.ErrInvalidTransition)
}

func TestFailRequiresMessage(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 1)
	job := claim(t, repo, "worker-a")

	_, err := repo.Fail(ctx, job.ID, job.Version, "")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	failed, err := repo.Fail(ctx, job.ID, job.Version, "engine rejected input")
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusFailed, failed.Status)
	require.NotNil(t, failed.ErrorMessage)
	require.Equal(t, "engine rejected input", *failed.ErrorMessage)
	require.NotNil(t, failed.FailedAt)
	require.Nil(t, failed.LockedBy)
}

func TestRetryFlow(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 1)
	job := claim(t, repo, "worker-a")

	retrying, err := repo.MarkRetrying(ctx, job.ID, job.Version, "engine timeout")
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusRetrying, retrying.Status)
	require.Equal(t, 1, retrying.RetryCount)

	resumed, err := repo.ResumeRunning(ctx, retrying.ID, retrying.Version)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusRunning, resumed.Status)
	require.Equal(t, 1, resumed.RetryCount)
}

func TestRequestCancelQueuedJob(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := enqueue(t, repo, 1)
	cancelled, err := repo.RequestCancel(ctx, job.ID, "not needed", "alice")
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusCancelled, cancelled.Status)
	require.NotNil(t, cancelled.CancelledAt)
}

func TestRequestCancelRunningJobIsCooperative(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 1)
	job := claim(t, repo, "worker-a")

	flagged, err := repo.RequestCancel(ctx, job.ID, "operator abort", "alice")
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusRunning, flagged.Status)
	require.True(t, flagged.CancelRequested)
	require.Greater(t, flagged.Version, job.Version)

	done, err := repo.FinishCancel(ctx, flagged.ID, flagged.Version, "operator abort")
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusCancelled, done.Status)
	require.False(t, done.CancelRequested)
	require.Nil(t, done.LockedBy)
}

func TestRequestCancelTerminalJob(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 1)
	job := claim(t, repo, "worker-a")
	failed, err := repo.Fail(ctx, job.ID, job.Version, "boom")
	require.NoError(t, err)

	_, err = repo.RequestCancel(ctx, failed.ID, "too late", "alice")
	require.ErrorIs(t, err, common.ErrInvalidTransition)
}

func TestReclaimResetsProgressButNotRetries(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 2)
	job := claim(t, repo, "worker-a")
	job, err := repo.Heartbeat(ctx, job.ID, job.Version, repository.Progress{Processed: 1, Total: 2})
	require.NoError(t, err)
	job, err = repo.MarkRetrying(ctx, job.ID, job.Version, "transient")
	require.NoError(t, err)
	job, err = repo.ResumeRunning(ctx, job.ID, job.Version)
	require.NoError(t, err)

	reclaimed, err := repo.Reclaim(ctx, job.ID, job.Version)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusQueued, reclaimed.Status)
	require.Equal(t, 0, reclaimed.ProcessedFiles)
	require.Zero(t, reclaimed.Progress)
	require.Nil(t, reclaimed.LockedBy)
	require.Nil(t, reclaimed.HeartbeatAt)
	require.Equal(t, 1, reclaimed.RetryCount, "reclaim is infra-level recovery, not a retry")

	// The job is claimable again.
	again := claim(t, repo, "worker-b")
	require.Equal(t, job.ID, again.ID)
}

func TestListStale(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 1)
	job := claim(t, repo, "worker-a")

	fresh, err := repo.ListStale(ctx, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, err)
	require.Empty(t, fresh)

	stale, err := repo.ListStale(ctx, time.Now().UTC().Add(time.Minute))
	require.NoError(t, err)
	require.Len(t, stale, 1)
	require.Equal(t, job.ID, stale[0].ID)
}

func TestRetentionQueries(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	enqueue(t, repo, 1)
	job := claim(t, repo, "worker-a")
	done, err := repo.Complete(ctx, job.ID, job.Version, entity.JobCompletion{ArtifactPath: "/tmp/a.xlsx"})
	require.NoError(t, err)

	future := time.Now().UTC().Add(time.Minute)
	past := time.Now().UTC().Add(-time.Minute)

	purgeable, err := repo.ListPurgeable(ctx, future, future)
	require.NoError(t, err)
	require.Len(t, purgeable, 1)

	notYet, err := repo.ListPurgeable(ctx, past, past)
	require.NoError(t, err)
	require.Empty(t, notYet)

	require.NoError(t, repo.MarkPurged(ctx, done.ID))
	cur, err := repo.Get(ctx, done.ID)
	require.NoError(t, err)
	require.True(t, cur.ArtifactsPurged)
	require.NotNil(t, cur.PurgedAt)

	// Already-purged rows never show up as purgeable again.
	purgeable, err = repo.ListPurgeable(ctx, future, future)
	require.NoError(t, err)
	require.Empty(t, purgeable)

	deletable, err := repo.ListDeletable(ctx, future)
	require.NoError(t, err)
	require.Len(t, deletable, 1)

	require.NoError(t, repo.Delete(ctx, []uuid.UUID{done.ID}))
	_, err = repo.Get(ctx, done.ID)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestEventLogIsOrderedAndFilterable(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	job := enqueue(t, repo, 1)
	for i := 0; i < 3; i++ {
		_, err := repo.AppendEvent(ctx, job.ID, constants.EventLevelInfo, fmt.Sprintf("step %d", i), nil)
		require.NoError(t, err)
	}

	all, err := repo.ListEvents(ctx, job.ID, 0)
	require.NoError(t, err)
	require.Len(t, all, 4) // creation event plus three appends
	for i := 1; i < len(all); i++ {
		require.Greater(t, all[i].ID, all[i-1].ID)
	}

	tail, err := repo.ListEvents(ctx, job.ID, all[1].ID)
	require.NoError(t, err)
	require.Len(t, tail, 2)
	require.Equal(t, all[2].ID, tail[0].ID)
}

func TestAppendEventUnknownJob(t *testing.T) {
	repo := newRepo(t)

	_, err := repo.AppendEvent(context.Background(), uuid.New(), constants.EventLevelInfo, "orphan", nil)
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestConcurrentClaimsNeverShareAJob(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	const jobs = 4
	for i := 0; i < jobs; i++ {
		enqueue(t, repo, 1)
		time.Sleep(2 * time.Millisecond)
	}

	type result struct {
		id  uuid.UUID
		ok  bool
		err error
	}
	results := make(chan result, jobs*2)
	for i := 0; i < jobs*2; i++ {
		go func(n int) {
			job, err := repo.ClaimNext(ctx, fmt.Sprintf("worker-%d", n))
			if err != nil || job == nil {
				results <- result{err: err}
				return
			}
			results <- result{id: job.ID, ok: true}
		}(i)
	}

	claimed := map[uuid.UUID]bool{}
	for i := 0; i < jobs*2; i++ {
		r := <-results
		require.NoError(t, r.err)
		if r.ok {
			require.False(t, claimed[r.id], "job %s claimed twice", r.id)
			claimed[r.id] = true
		}
	}
	require.Len(t, claimed, jobs)
}
