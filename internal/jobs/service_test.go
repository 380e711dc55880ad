package jobs_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"labelscan/constants"
	"labelscan/gen/ent/enttest"
	"labelscan/internal/common"
	"labelscan/internal/jobs"
	"labelscan/internal/repository"
)

func newService(t *testing.T) (*jobs.Service, repository.JobRepository, string) {
	t.Helper()
	client := enttest.Open(t, "sqlite3",
		fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString()))
	t.Cleanup(func() { _ = client.Close() })
	repo := repository.NewJobRepository(client, nil)

	root := t.TempDir()
	svc, err := jobs.NewService(repo, root, nil)
	require.NoError(t, err)
	return svc, repo, root
}

func stageSource(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("%PDF-1.7 test"), 0o644))
	}
	return dir
}

func TestCreateJobStagesInputs(t *testing.T) {
	svc, repo, root := newService(t)
	src := stageSource(t, "label-01.pdf", "label-02.pdf")

	job, err := svc.CreateJob(context.Background(), "tester", src, []string{"label-01.pdf", "label-02.pdf"}, nil)
	require.NoError(t, err)
	require.Equal(t, constants.JobStatusQueued, job.Status)
	require.Equal(t, 2, job.TotalFiles)
	require.Len(t, job.InputManifest, 2)
	require.Equal(t, "label-01.pdf", job.InputManifest[0].Filename)
	require.Positive(t, job.InputManifest[0].Size)

	jobDir := filepath.Join(root, job.ID.String())
	for _, sub := range []string{"input", "working", "output", "logs"} {
		info, err := os.Stat(filepath.Join(jobDir, sub))
		require.NoError(t, err)
		require.True(t, info.IsDir())
	}
	// Inputs are copies; deleting the source must not affect the job.
	require.FileExists(t, filepath.Join(jobDir, "input", "label-01.pdf"))
	require.NoError(t, os.RemoveAll(src))
	require.FileExists(t, filepath.Join(jobDir, "input", "label-01.pdf"))

	// The snapshot mirrors the queue state.
	data, err := os.ReadFile(filepath.Join(jobDir, "status.json"))
	require.NoError(t, err)
	var snap map[string]any
	require.NoError(t, json.Unmarshal(data, &snap))
	require.Equal(t, job.ID.String(), snap["job_id"])
	require.Equal(t, "queued", snap["status"])

	stored, err := repo.Get(context.Background(), job.ID)
	require.NoError(t, err)
	require.Equal(t, job.ID, stored.ID)
}

func TestCreateJobValidation(t *testing.T) {
	svc, _, _ := newService(t)
	src := stageSource(t, "label-01.pdf")
	ctx := context.Background()

	_, err := svc.CreateJob(ctx, "", src, []string{"label-01.pdf"}, nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.CreateJob(ctx, "tester", src, nil, nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = svc.CreateJob(ctx, "tester", src, []string{"missing.pdf"}, nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestCreateJobCancelsRowWhenStagingFails(t *testing.T) {
	svc, repo, _ := newService(t)
	// A directory passes the existence check but cannot be copied.
	src := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(src, "trap.pdf"), 0o755))

	_, err := svc.CreateJob(context.Background(), "tester", src, []string{"trap.pdf"}, nil)
	require.Error(t, err)

	// The queued row must not be left claimable.
	list, err := repo.List(context.Background(), repository.Filter{OwnerID: "tester"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, constants.JobStatusCancelled, list[0].Status)

	claimed, err := repo.ClaimNext(context.Background(), "worker-test-0")
	require.NoError(t, err)
	require.Nil(t, claimed)
}

func TestPurgeArtifactsKeepsOutput(t *testing.T) {
	svc, _, root := newService(t)
	src := stageSource(t, "label-01.pdf")

	job, err := svc.CreateJob(context.Background(), "tester", src, []string{"label-01.pdf"}, nil)
	require.NoError(t, err)

	report := filepath.Join(svc.OutputDir(job.ID), "analysis_result.xlsx")
	require.NoError(t, os.WriteFile(report, []byte("xlsx"), 0o644))

	require.NoError(t, svc.PurgeArtifacts(job.ID))

	jobDir := filepath.Join(root, job.ID.String())
	require.NoDirExists(t, filepath.Join(jobDir, "input"))
	require.NoDirExists(t, filepath.Join(jobDir, "working"))
	require.FileExists(t, report)

	require.NoError(t, svc.RemoveJobDir(job.ID))
	require.NoDirExists(t, jobDir)
}

func TestListPDFs(t *testing.T) {
	svc, _, _ := newService(t)
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.PDF", "notes.txt", "c.pdf"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.pdf"), 0o755))

	names, err := svc.ListPDFs(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"a.PDF", "b.pdf", "c.pdf"}, names)
}
