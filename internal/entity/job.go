package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"labelscan/constants"
)

// Job is a value snapshot of a job row for transfer between layers. Snapshots
// are copies; mutating one has no effect on stored state.
type Job struct {
	ID              uuid.UUID           `json:"id"`
	OwnerID         string              `json:"owner_id"`
	Status          constants.JobStatus `json:"status"`
	SourcePath      string              `json:"source_path"`
	DisplayName     string              `json:"display_name"`
	InputManifest   []FileDescriptor    `json:"input_manifest"`
	OutputManifest  json.RawMessage     `json:"output_manifest,omitempty"`
	Parameters      json.RawMessage     `json:"parameters,omitempty"`
	TotalFiles      int                 `json:"total_files"`
	ProcessedFiles  int                 `json:"processed_files"`
	Progress        float64             `json:"progress"`
	CurrentFile     *string             `json:"current_file,omitempty"`
	ArtifactPath    *string             `json:"artifact_path,omitempty"`
	ErrorMessage    *string             `json:"error_message,omitempty"`
	CancelRequested bool                `json:"cancel_requested"`
	ArtifactsPurged bool                `json:"artifacts_purged"`
	PurgedAt        *time.Time          `json:"purged_at,omitempty"`
	LockedBy        *string             `json:"locked_by,omitempty"`
	LockedAt        *time.Time          `json:"locked_at,omitempty"`
	HeartbeatAt     *time.Time          `json:"heartbeat_at,omitempty"`
	Version         int64               `json:"version"`
	RetryCount      int                 `json:"retry_count"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	StartedAt       *time.Time          `json:"started_at,omitempty"`
	CompletedAt     *time.Time          `json:"completed_at,omitempty"`
	CancelledAt     *time.Time          `json:"cancelled_at,omitempty"`
	FailedAt        *time.Time          `json:"failed_at,omitempty"`
}

// LockedByWorker reports whether the snapshot is currently owned by workerID.
func (j Job) LockedByWorker(workerID string) bool {
	return j.LockedBy != nil && *j.LockedBy == workerID
}

// FileDescriptor is one entry of a job's input manifest, in submission order.
type FileDescriptor struct {
	Filename   string `json:"filename"`
	SourcePath string `json:"source_path"`
	Size       int64  `json:"size"`
}

// JobEvent is a value snapshot of one append-only log entry.
type JobEvent struct {
	ID        int                  `json:"event_id"`
	JobID     uuid.UUID            `json:"job_id"`
	CreatedAt time.Time            `json:"created_at"`
	Level     constants.EventLevel `json:"level"`
	Message   string               `json:"message"`
	Metadata  map[string]any       `json:"metadata,omitempty"`
}

// JobCompletion carries the worker's final output back to the repository.
type JobCompletion struct {
	OutputManifest json.RawMessage
	ArtifactPath   string
}
