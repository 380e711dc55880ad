package server

import (
	"encoding/json"
	"time"

	labelscanv1 "labelscan/gen/proto/labelscan/v1"
	"labelscan/internal/entity"
)

func toProtoJob(j entity.Job) *labelscanv1.Job {
	out := &labelscanv1.Job{
		Id:              j.ID.String(),
		OwnerId:         j.OwnerID,
		Status:          string(j.Status),
		SourcePath:      j.SourcePath,
		DisplayName:     j.DisplayName,
		TotalFiles:      int32(j.TotalFiles),
		ProcessedFiles:  int32(j.ProcessedFiles),
		Progress:        j.Progress,
		CancelRequested: j.CancelRequested,
		ArtifactsPurged: j.ArtifactsPurged,
		Version:         j.Version,
		RetryCount:      int32(j.RetryCount),
		CreatedAt:       j.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt:       j.UpdatedAt.Format(time.RFC3339Nano),
	}
	for _, f := range j.InputManifest {
		out.InputManifest = append(out.InputManifest, &labelscanv1.FileDescriptor{
			Filename:   f.Filename,
			SourcePath: f.SourcePath,
			Size:       f.Size,
		})
	}
	if len(j.Parameters) > 0 {
		out.ParametersJson = string(j.Parameters)
	}
	if len(j.OutputManifest) > 0 {
		out.OutputManifestJson = string(j.OutputManifest)
	}
	if j.CurrentFile != nil {
		out.CurrentFile = *j.CurrentFile
	}
	if j.ArtifactPath != nil {
		out.ArtifactPath = *j.ArtifactPath
	}
	if j.ErrorMessage != nil {
		out.ErrorMessage = *j.ErrorMessage
	}
	out.StartedAt = formatTime(j.StartedAt)
	out.CompletedAt = formatTime(j.CompletedAt)
	out.CancelledAt = formatTime(j.CancelledAt)
	out.FailedAt = formatTime(j.FailedAt)
	return out
}

func toProtoEvent(ev entity.JobEvent) *labelscanv1.JobEvent {
	out := &labelscanv1.JobEvent{
		EventId:   int64(ev.ID),
		JobId:     ev.JobID.String(),
		CreatedAt: ev.CreatedAt.Format(time.RFC3339Nano),
		Level:     string(ev.Level),
		Message:   ev.Message,
	}
	if len(ev.Metadata) > 0 {
		if raw, err := json.Marshal(ev.Metadata); err == nil {
			out.MetadataJson = string(raw)
		}
	}
	return out
}

func formatTime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339Nano)
}
