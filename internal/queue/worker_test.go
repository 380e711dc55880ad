package queue_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"labelscan/constants"
	"labelscan/gen/ent/enttest"
	"labelscan/internal/analysis"
	"labelscan/internal/entity"
	"labelscan/internal/jobs"
	"labelscan/internal/queue"
	"labelscan/internal/report"
	"labelscan/internal/repository"
)

// scriptedAnalyzer replays a fixed sequence of outcomes, one per call.
type scriptedAnalyzer struct {
	mu      sync.Mutex
	outcome []error
	calls   int
	paths   []string
}

func (a *scriptedAnalyzer) AnalyzeFile(_ context.Context, path string, _ analysis.FileMetadata) (analysis.Fields, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	var err error
	if a.calls < len(a.outcome) {
		err = a.outcome[a.calls]
	}
	a.calls++
	a.paths = append(a.paths, path)
	if err != nil {
		return analysis.Fields{}, err
	}
	return analysis.Fields{ModelName: "C31N1815", Voltage: "11.4V"}, nil
}

// stubGenerator records its input and fabricates an artifact file.
type stubGenerator struct {
	rows []report.Row
	err  error
}

func (g *stubGenerator) Generate(_ context.Context, _ uuid.UUID, outputDir string, rows []report.Row) (string, error) {
	if g.err != nil {
		return "", g.err
	}
	g.rows = rows
	path := filepath.Join(outputDir, "analysis_result.xlsx")
	if err := os.WriteFile(path, []byte("xlsx"), 0o644); err != nil {
		return "", err
	}
	return path, nil
}

type harness struct {
	repo repository.JobRepository
	svc  *jobs.Service
}

func newHarness(t *testing.T) harness {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(10000)", uuid.NewString()))
	t.Cleanup(func() { _ = client.Close() })
	repo := repository.NewJobRepository(client, nil)
	svc, err := jobs.NewService(repo, t.TempDir(), nil)
	require.NoError(t, err)
	return harness{repo: repo, svc: svc}
}

func (h harness) submit(t *testing.T, files int) entity.Job {
	t.Helper()
	src := t.TempDir()
	names := make([]string, 0, files)
	for i := 0; i < files; i++ {
		name := fmt.Sprintf("label-%02d.pdf", i+1)
		require.NoError(t, os.WriteFile(filepath.Join(src, name), []byte("%PDF-1.7"), 0o644))
		names = append(names, name)
	}
	job, err := h.svc.CreateJob(context.Background(), "tester", src, names, nil)
	require.NoError(t, err)
	return job
}

func (h harness) claim(t *testing.T, workerID string) entity.Job {
	t.Helper()
	job, err := h.repo.ClaimNext(context.Background(), workerID)
	require.NoError(t, err)
	require.NotNil(t, job)
	return *job
}

func newWorker(h harness, a analysis.FileAnalyzer, g report.Generator, maxRetries int) *queue.Worker {
	return queue.NewWorker(h.repo, h.svc, a, g, nil,
		queue.WithHeartbeatInterval(time.Hour),
		queue.WithMaxRetries(maxRetries),
	)
}

func TestWorkerCompletesBatch(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 2)
	claimed := h.claim(t, "w-1")

	analyzer := &scriptedAnalyzer{}
	gen := &stubGenerator{}
	newWorker(h, analyzer, gen, 3).Run(ctx, claimed, "w-1")

	done, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusCompleted, done.Status)
	require.Equal(t, 2, done.ProcessedFiles)
	require.InDelta(t, 1.0, done.Progress, 1e-9)
	require.Zero(t, done.RetryCount)
	require.Nil(t, done.LockedBy)
	require.NotNil(t, done.ArtifactPath)
	require.FileExists(t, *done.ArtifactPath)
	require.NotEmpty(t, done.OutputManifest)

	require.Len(t, gen.rows, 2)
	require.Equal(t, "label-01.pdf", gen.rows[0].Filename)
	require.Equal(t, "C31N1815", gen.rows[0].Fields.ModelName)

	// Analyzer was pointed at the staged copies, not the source directory.
	require.Equal(t, 2, analyzer.calls)
	require.Equal(t, filepath.Join(h.svc.InputDir(claimed.ID), "label-01.pdf"), analyzer.paths[0])
}

func TestWorkerRetriesRecoverableThenSucceeds(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 1)
	claimed := h.claim(t, "w-1")

	analyzer := &scriptedAnalyzer{outcome: []error{
		&analysis.RecoverableError{Reason: "engine timeout"},
		&analysis.RecoverableError{Reason: "engine timeout"},
		nil,
	}}
	newWorker(h, analyzer, &stubGenerator{}, 3).Run(ctx, claimed, "w-1")

	done, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusCompleted, done.Status)
	require.Equal(t, 2, done.RetryCount)
	require.Equal(t, 3, analyzer.calls)
}

func TestWorkerFailsWhenRetriesExhausted(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 1)
	claimed := h.claim(t, "w-1")

	analyzer := &scriptedAnalyzer{outcome: []error{
		&analysis.RecoverableError{Reason: "engine timeout"},
		&analysis.RecoverableError{Reason: "engine timeout"},
		&analysis.RecoverableError{Reason: "engine timeout"},
	}}
	newWorker(h, analyzer, &stubGenerator{}, 2).Run(ctx, claimed, "w-1")

	done, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusFailed, done.Status)
	require.Equal(t, 2, done.RetryCount)
	require.NotNil(t, done.ErrorMessage)
	require.Contains(t, *done.ErrorMessage, "retries exhausted")
	require.NotNil(t, done.FailedAt)
}

func TestWorkerFailsFastOnFatalError(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 3)
	claimed := h.claim(t, "w-1")

	analyzer := &scriptedAnalyzer{outcome: []error{
		nil,
		&analysis.FatalError{Reason: "document rejected by engine"},
	}}
	newWorker(h, analyzer, &stubGenerator{}, 3).Run(ctx, claimed, "w-1")

	done, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusFailed, done.Status)
	require.Zero(t, done.RetryCount)
	require.Equal(t, 2, analyzer.calls, "no further files after a fatal error")
	require.Contains(t, *done.ErrorMessage, "document rejected")
}

func TestWorkerHonorsCancelAtFileBoundary(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 2)
	claimed := h.claim(t, "w-1")

	// The cancel request lands after the claim, bumping the version the
	// worker holds. The worker must adopt the new version, notice the flag
	// at its first checkpoint and finish the cancellation itself.
	_, err := h.repo.RequestCancel(ctx, claimed.ID, "operator abort", "alice")
	require.NoError(t, err)

	analyzer := &scriptedAnalyzer{}
	newWorker(h, analyzer, &stubGenerator{}, 3).Run(ctx, claimed, "w-1")

	done, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusCancelled, done.Status)
	require.False(t, done.CancelRequested)
	require.Zero(t, analyzer.calls, "no file may start once cancellation is pending")
}

func TestWorkerAbandonsReclaimedJob(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 1)
	claimed := h.claim(t, "w-1")

	// Monitor reclaims the job and another worker takes it over.
	reclaimed, err := h.repo.Reclaim(ctx, claimed.ID, claimed.Version)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusQueued, reclaimed.Status)
	takeover := h.claim(t, "w-2")

	analyzer := &scriptedAnalyzer{}
	newWorker(h, analyzer, &stubGenerator{}, 3).Run(ctx, claimed, "w-1")

	// The first worker must not have touched the takeover.
	cur, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusRunning, cur.Status)
	require.Equal(t, "w-2", *cur.LockedBy)
	require.Equal(t, takeover.Version, cur.Version)
	require.Zero(t, analyzer.calls)
}

func TestWorkerFailsWhenReportGenerationBreaks(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.submit(t, 1)
	claimed := h.claim(t, "w-1")

	gen := &stubGenerator{err: fmt.Errorf("disk full")}
	newWorker(h, &scriptedAnalyzer{}, gen, 3).Run(ctx, claimed, "w-1")

	done, err := h.repo.Get(ctx, claimed.ID)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusFailed, done.Status)
	require.Contains(t, *done.ErrorMessage, "report generation failed")
}
