// Code generated by ent, DO NOT EDIT.

package ent

import (
	"labelscan/db/ent/schema"
	"labelscan/gen/ent/job"
	"labelscan/gen/ent/jobevent"
	"time"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescOwnerID is the schema descriptor for owner_id field.
	jobDescOwnerID := jobFields[1].Descriptor()
	// job.OwnerIDValidator is a validator for the "owner_id" field. It is called by the builders before save.
	job.OwnerIDValidator = jobDescOwnerID.Validators[0].(func(string) error)
	// jobDescStatus is the schema descriptor for status field.
	jobDescStatus := jobFields[2].Descriptor()
	// job.DefaultStatus holds the default value on creation for the status field.
	job.DefaultStatus = jobDescStatus.Default.(string)
	// job.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	job.StatusValidator = jobDescStatus.Validators[0].(func(string) error)
	// jobDescSourcePath is the schema descriptor for source_path field.
	jobDescSourcePath := jobFields[3].Descriptor()
	// job.SourcePathValidator is a validator for the "source_path" field. It is called by the builders before save.
	job.SourcePathValidator = jobDescSourcePath.Validators[0].(func(string) error)
	// jobDescTotalFiles is the schema descriptor for total_files field.
	jobDescTotalFiles := jobFields[8].Descriptor()
	// job.TotalFilesValidator is a validator for the "total_files" field. It is called by the builders before save.
	job.TotalFilesValidator = jobDescTotalFiles.Validators[0].(func(int) error)
	// jobDescProcessedFiles is the schema descriptor for processed_files field.
	jobDescProcessedFiles := jobFields[9].Descriptor()
	// job.DefaultProcessedFiles holds the default value on creation for the processed_files field.
	job.DefaultProcessedFiles = jobDescProcessedFiles.Default.(int)
	// job.ProcessedFilesValidator is a validator for the "processed_files" field. It is called by the builders before save.
	job.ProcessedFilesValidator = jobDescProcessedFiles.Validators[0].(func(int) error)
	// jobDescProgress is the schema descriptor for progress field.
	jobDescProgress := jobFields[10].Descriptor()
	// job.DefaultProgress holds the default value on creation for the progress field.
	job.DefaultProgress = jobDescProgress.Default.(float64)
	// jobDescCancelRequested is the schema descriptor for cancel_requested field.
	jobDescCancelRequested := jobFields[14].Descriptor()
	// job.DefaultCancelRequested holds the default value on creation for the cancel_requested field.
	job.DefaultCancelRequested = jobDescCancelRequested.Default.(bool)
	// jobDescArtifactsPurged is the schema descriptor for artifacts_purged field.
	jobDescArtifactsPurged := jobFields[15].Descriptor()
	// job.DefaultArtifactsPurged holds the default value on creation for the artifacts_purged field.
	job.DefaultArtifactsPurged = jobDescArtifactsPurged.Default.(bool)
	// jobDescVersion is the schema descriptor for version field.
	jobDescVersion := jobFields[20].Descriptor()
	// job.DefaultVersion holds the default value on creation for the version field.
	job.DefaultVersion = jobDescVersion.Default.(int64)
	// job.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	job.VersionValidator = jobDescVersion.Validators[0].(func(int64) error)
	// jobDescRetryCount is the schema descriptor for retry_count field.
	jobDescRetryCount := jobFields[21].Descriptor()
	// job.DefaultRetryCount holds the default value on creation for the retry_count field.
	job.DefaultRetryCount = jobDescRetryCount.Default.(int)
	// job.RetryCountValidator is a validator for the "retry_count" field. It is called by the builders before save.
	job.RetryCountValidator = jobDescRetryCount.Validators[0].(func(int) error)
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[22].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	// jobDescUpdatedAt is the schema descriptor for updated_at field.
	jobDescUpdatedAt := jobFields[23].Descriptor()
	// job.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	job.DefaultUpdatedAt = jobDescUpdatedAt.Default.(func() time.Time)
	// jobDescID is the schema descriptor for id field.
	jobDescID := jobFields[0].Descriptor()
	// job.DefaultID holds the default value on creation for the id field.
	job.DefaultID = jobDescID.Default.(func() uuid.UUID)
	jobeventFields := schema.JobEvent{}.Fields()
	_ = jobeventFields
	// jobeventDescCreatedAt is the schema descriptor for created_at field.
	jobeventDescCreatedAt := jobeventFields[1].Descriptor()
	// jobevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	jobevent.DefaultCreatedAt = jobeventDescCreatedAt.Default.(func() time.Time)
	// jobeventDescLevel is the schema descriptor for level field.
	jobeventDescLevel := jobeventFields[2].Descriptor()
	// jobevent.LevelValidator is a validator for the "level" field. It is called by the builders before save.
	jobevent.LevelValidator = jobeventDescLevel.Validators[0].(func(string) error)
	// jobeventDescMessage is the schema descriptor for message field.
	jobeventDescMessage := jobeventFields[3].Descriptor()
	// jobevent.MessageValidator is a validator for the "message" field. It is called by the builders before save.
	jobevent.MessageValidator = jobeventDescMessage.Validators[0].(func(string) error)
}
