package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"labelscan/constants"
	labelscanv1 "labelscan/gen/proto/labelscan/v1"
	"labelscan/internal/common"
	"labelscan/internal/events"
	"labelscan/internal/jobs"
	"labelscan/internal/repository"
)

// waker lets the service nudge the dispatcher after a submission instead of
// waiting out a poll interval. Satisfied by *queue.Dispatcher.
type waker interface {
	Wake()
}

type JobsService struct {
	labelscanv1.UnimplementedJobsServiceServer
	repo   repository.JobRepository
	svc    *jobs.Service
	pub    *events.Publisher
	queue  waker
	logger *slog.Logger
}

func NewJobsService(repo repository.JobRepository, svc *jobs.Service, pub *events.Publisher, queue waker, logger *slog.Logger) *JobsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &JobsService{repo: repo, svc: svc, pub: pub, queue: queue, logger: logger}
}

func (s *JobsService) CreateJob(ctx context.Context, req *labelscanv1.CreateJobRequest) (*labelscanv1.CreateJobResponse, error) {
	if req.GetOwnerId() == "" {
		return nil, status.Error(codes.InvalidArgument, "owner_id is required")
	}
	if req.GetSourcePath() == "" {
		return nil, status.Error(codes.InvalidArgument, "source_path is required")
	}

	var params map[string]any
	if raw := req.GetParametersJson(); raw != "" {
		if err := json.Unmarshal([]byte(raw), &params); err != nil {
			return nil, status.Error(codes.InvalidArgument, "parameters_json is not valid JSON")
		}
	}

	job, err := s.svc.CreateJob(ctx, req.GetOwnerId(), req.GetSourcePath(), req.GetFilenames(), params)
	if err != nil {
		s.logger.Warn("create job failed", "owner_id", req.GetOwnerId(), "error", err)
		return nil, common.GRPCStatus(err)
	}
	s.queue.Wake()

	s.logger.Info("server.job.created", "job_id", job.ID, "owner_id", job.OwnerID, "files", job.TotalFiles)
	return &labelscanv1.CreateJobResponse{Job: toProtoJob(job)}, nil
}

func (s *JobsService) ListJobs(ctx context.Context, req *labelscanv1.ListJobsRequest) (*labelscanv1.ListJobsResponse, error) {
	f := repository.Filter{
		OwnerID: req.GetOwnerId(),
		Limit:   int(req.GetLimit()),
		Offset:  int(req.GetOffset()),
	}
	for _, raw := range req.GetStatuses() {
		st := constants.JobStatus(raw)
		if !st.Valid() {
			return nil, status.Errorf(codes.InvalidArgument, "unknown status %q", raw)
		}
		f.Statuses = append(f.Statuses, st)
	}

	list, err := s.repo.List(ctx, f)
	if err != nil {
		s.logger.Warn("list jobs failed", "error", err)
		return nil, common.GRPCStatus(err)
	}
	out := make([]*labelscanv1.Job, 0, len(list))
	for _, j := range list {
		out = append(out, toProtoJob(j))
	}
	return &labelscanv1.ListJobsResponse{Jobs: out}, nil
}

func (s *JobsService) GetJob(ctx context.Context, req *labelscanv1.GetJobRequest) (*labelscanv1.GetJobResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	events, err := s.repo.ListEvents(ctx, id, 0)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	out := &labelscanv1.GetJobResponse{Job: toProtoJob(job)}
	for _, ev := range events {
		out.Events = append(out.Events, toProtoEvent(ev))
	}
	return out, nil
}

func (s *JobsService) CancelJob(ctx context.Context, req *labelscanv1.CancelJobRequest) (*labelscanv1.CancelJobResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.repo.RequestCancel(ctx, id, req.GetReason(), req.GetRequestedBy())
	if err != nil {
		s.logger.Warn("cancel job failed", "job_id", id, "error", err)
		return nil, common.GRPCStatus(err)
	}
	if job.Status == constants.JobStatusCancelled {
		if err := s.svc.RefreshStatusSnapshot(job); err != nil {
			s.logger.Warn("status snapshot write failed", "job_id", id, "error", err)
		}
	}
	s.logger.Info("server.job.cancel_requested", "job_id", id, "status", job.Status)
	return &labelscanv1.CancelJobResponse{Job: toProtoJob(job)}, nil
}

func (s *JobsService) GetArtifact(ctx context.Context, req *labelscanv1.GetArtifactRequest) (*labelscanv1.GetArtifactResponse, error) {
	id, err := parseJobID(req.GetJobId())
	if err != nil {
		return nil, err
	}
	job, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, common.GRPCStatus(err)
	}
	if job.Status != constants.JobStatusCompleted || job.ArtifactPath == nil {
		return nil, status.Error(codes.FailedPrecondition, "job has no artifact")
	}
	if job.ArtifactsPurged {
		return nil, status.Error(codes.NotFound, "artifact purged by retention policy")
	}

	info, err := os.Stat(*job.ArtifactPath)
	if err != nil {
		s.logger.Warn("artifact missing on disk", "job_id", id, "path", *job.ArtifactPath)
		return nil, status.Error(codes.NotFound, "artifact not found")
	}
	return &labelscanv1.GetArtifactResponse{
		ArtifactPath: *job.ArtifactPath,
		Filename:     filepath.Base(*job.ArtifactPath),
		Size:         info.Size(),
		ContentType:  "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}, nil
}

func parseJobID(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, status.Error(codes.InvalidArgument, "job_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Errorf(codes.InvalidArgument, "invalid job_id %q", raw)
	}
	return id, nil
}
