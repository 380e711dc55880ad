package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"labelscan/constants"
	"labelscan/internal/common"
	"labelscan/internal/entity"
	"labelscan/internal/repository"
)

// Service orchestrates job creation and per-job filesystem management. Each
// job owns <root>/<job_id>/{input,working,output,logs}; inputs are copied in
// at submission so the source directory can disappear mid-run.
type Service struct {
	repo   repository.JobRepository
	root   string
	logger *slog.Logger
}

func NewService(repo repository.JobRepository, storageRoot string, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(storageRoot, 0o755); err != nil {
		return nil, fmt.Errorf("create storage root: %w", err)
	}
	return &Service{repo: repo, root: storageRoot, logger: logger}, nil
}

// CreateJob validates the submission, enqueues the job and stages its inputs.
func (s *Service) CreateJob(ctx context.Context, ownerID, sourcePath string, filenames []string, parameters map[string]any) (entity.Job, error) {
	if ownerID == "" {
		return entity.Job{}, fmt.Errorf("owner_id is required: %w", common.ErrInvalidInput)
	}
	if len(filenames) == 0 {
		return entity.Job{}, fmt.Errorf("at least one file is required: %w", common.ErrInvalidInput)
	}

	manifest := make([]entity.FileDescriptor, 0, len(filenames))
	for _, name := range filenames {
		if name == "" {
			return entity.Job{}, fmt.Errorf("file entry with empty filename: %w", common.ErrInvalidInput)
		}
		src := filepath.Join(sourcePath, name)
		info, err := os.Stat(src)
		if err != nil {
			return entity.Job{}, fmt.Errorf("file not found: %s: %w", src, common.ErrInvalidInput)
		}
		manifest = append(manifest, entity.FileDescriptor{
			Filename:   name,
			SourcePath: src,
			Size:       info.Size(),
		})
	}

	created, err := s.repo.Create(ctx, repository.NewJob{
		OwnerID:    ownerID,
		SourcePath: sourcePath,
		Files:      manifest,
		Parameters: parameters,
	})
	if err != nil {
		return entity.Job{}, err
	}

	jobDir, err := s.JobDirectory(created.ID)
	if err == nil {
		err = s.copyInputs(sourcePath, filepath.Join(jobDir, "input"), manifest)
	}
	if err != nil {
		s.logger.Error("staging inputs failed", "job_id", created.ID, "error", err)
		// The row is already queued; cancel it so a worker never claims a
		// job whose inputs were never staged.
		if _, cerr := s.repo.RequestCancel(ctx, created.ID, fmt.Sprintf("input staging failed: %v", err), "system"); cerr != nil {
			s.logger.Error("cancel of unstaged job failed", "job_id", created.ID, "error", cerr)
		}
		return entity.Job{}, err
	}
	if err := s.RefreshStatusSnapshot(created); err != nil {
		s.logger.Warn("status snapshot write failed", "job_id", created.ID, "error", err)
	}
	return created, nil
}

// JobDirectory resolves (and creates) the per-job directory layout.
func (s *Service) JobDirectory(jobID uuid.UUID) (string, error) {
	jobDir := filepath.Join(s.root, jobID.String())
	for _, sub := range []string{"input", "working", "output", "logs"} {
		if err := os.MkdirAll(filepath.Join(jobDir, sub), 0o755); err != nil {
			return "", fmt.Errorf("create job directory: %w", err)
		}
	}
	return jobDir, nil
}

// InputDir returns the staged-input directory for a job.
func (s *Service) InputDir(jobID uuid.UUID) string {
	return filepath.Join(s.root, jobID.String(), "input")
}

// OutputDir returns the report output directory for a job.
func (s *Service) OutputDir(jobID uuid.UUID) string {
	return filepath.Join(s.root, jobID.String(), "output")
}

// PurgeArtifacts removes the heavy inputs and intermediates while preserving
// the output report and logs.
func (s *Service) PurgeArtifacts(jobID uuid.UUID) error {
	jobDir := filepath.Join(s.root, jobID.String())
	for _, sub := range []string{"input", "working"} {
		if err := os.RemoveAll(filepath.Join(jobDir, sub)); err != nil {
			return fmt.Errorf("purge %s: %w", sub, err)
		}
	}
	return nil
}

// RemoveJobDir deletes everything the job ever wrote.
func (s *Service) RemoveJobDir(jobID uuid.UUID) error {
	return os.RemoveAll(filepath.Join(s.root, jobID.String()))
}

// RefreshStatusSnapshot mirrors a compact status.json into the job directory
// so that operators can see queue state without a database client.
func (s *Service) RefreshStatusSnapshot(job entity.Job) error {
	jobDir, err := s.JobDirectory(job.ID)
	if err != nil {
		return err
	}
	snapshot := map[string]any{
		"job_id":          job.ID.String(),
		"status":          string(job.Status),
		"owner_id":        job.OwnerID,
		"total_files":     job.TotalFiles,
		"processed_files": job.ProcessedFiles,
		"progress":        job.Progress,
		"created_at":      job.CreatedAt.Format(time.RFC3339Nano),
	}
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal status snapshot: %w", err)
	}
	return os.WriteFile(filepath.Join(jobDir, "status.json"), data, 0o644)
}

// ListPDFs enumerates the PDF files of a directory in lexical order.
func (s *Service) ListPDFs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := constants.NormalizeExt(filepath.Ext(e.Name()))
		if _, ok := constants.AllowedExtensions[ext]; ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *Service) copyInputs(sourceDir, targetDir string, manifest []entity.FileDescriptor) error {
	for _, item := range manifest {
		if err := copyFile(filepath.Join(sourceDir, item.Filename), filepath.Join(targetDir, item.Filename)); err != nil {
			return fmt.Errorf("copy %s: %w", item.Filename, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
