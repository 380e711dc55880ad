// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"labelscan/gen/ent/job"
	"labelscan/gen/ent/jobevent"
	"labelscan/gen/ent/predicate"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
)

// JobUpdate is the builder for updating Job entities.
type JobUpdate struct {
	config
	hooks    []Hook
	mutation *JobMutation
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdate) Where(ps ...predicate.Job) *JobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetOwnerID sets the "owner_id" field.
func (_u *JobUpdate) SetOwnerID(v string) *JobUpdate {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableOwnerID(v *string) *JobUpdate {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdate) SetStatus(v string) *JobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStatus(v *string) *JobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *JobUpdate) SetSourcePath(v string) *JobUpdate {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSourcePath(v *string) *JobUpdate {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *JobUpdate) SetDisplayName(v string) *JobUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *JobUpdate) SetNillableDisplayName(v *string) *JobUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetInputManifest sets the "input_manifest" field.
func (_u *JobUpdate) SetInputManifest(v json.RawMessage) *JobUpdate {
	_u.mutation.SetInputManifest(v)
	return _u
}

// AppendInputManifest appends value to the "input_manifest" field.
func (_u *JobUpdate) AppendInputManifest(v json.RawMessage) *JobUpdate {
	_u.mutation.AppendInputManifest(v)
	return _u
}

// SetOutputManifest sets the "output_manifest" field.
func (_u *JobUpdate) SetOutputManifest(v json.RawMessage) *JobUpdate {
	_u.mutation.SetOutputManifest(v)
	return _u
}

// AppendOutputManifest appends value to the "output_manifest" field.
func (_u *JobUpdate) AppendOutputManifest(v json.RawMessage) *JobUpdate {
	_u.mutation.AppendOutputManifest(v)
	return _u
}

// ClearOutputManifest clears the value of the "output_manifest" field.
func (_u *JobUpdate) ClearOutputManifest() *JobUpdate {
	_u.mutation.ClearOutputManifest()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *JobUpdate) SetParameters(v json.RawMessage) *JobUpdate {
	_u.mutation.SetParameters(v)
	return _u
}

// AppendParameters appends value to the "parameters" field.
func (_u *JobUpdate) AppendParameters(v json.RawMessage) *JobUpdate {
	_u.mutation.AppendParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *JobUpdate) ClearParameters() *JobUpdate {
	_u.mutation.ClearParameters()
	return _u
}

// SetTotalFiles sets the "total_files" field.
func (_u *JobUpdate) SetTotalFiles(v int) *JobUpdate {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *JobUpdate) SetNillableTotalFiles(v *int) *JobUpdate {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *JobUpdate) AddTotalFiles(v int) *JobUpdate {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetProcessedFiles sets the "processed_files" field.
func (_u *JobUpdate) SetProcessedFiles(v int) *JobUpdate {
	_u.mutation.ResetProcessedFiles()
	_u.mutation.SetProcessedFiles(v)
	return _u
}

// SetNillableProcessedFiles sets the "processed_files" field if the given value is not nil.
func (_u *JobUpdate) SetNillableProcessedFiles(v *int) *JobUpdate {
	if v != nil {
		_u.SetProcessedFiles(*v)
	}
	return _u
}

// AddProcessedFiles adds value to the "processed_files" field.
func (_u *JobUpdate) AddProcessedFiles(v int) *JobUpdate {
	_u.mutation.AddProcessedFiles(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *JobUpdate) SetProgress(v float64) *JobUpdate {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *JobUpdate) SetNillableProgress(v *float64) *JobUpdate {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *JobUpdate) AddProgress(v float64) *JobUpdate {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentFile sets the "current_file" field.
func (_u *JobUpdate) SetCurrentFile(v string) *JobUpdate {
	_u.mutation.SetCurrentFile(v)
	return _u
}

// SetNillableCurrentFile sets the "current_file" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCurrentFile(v *string) *JobUpdate {
	if v != nil {
		_u.SetCurrentFile(*v)
	}
	return _u
}

// ClearCurrentFile clears the value of the "current_file" field.
func (_u *JobUpdate) ClearCurrentFile() *JobUpdate {
	_u.mutation.ClearCurrentFile()
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *JobUpdate) SetArtifactPath(v string) *JobUpdate {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *JobUpdate) SetNillableArtifactPath(v *string) *JobUpdate {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (_u *JobUpdate) ClearArtifactPath() *JobUpdate {
	_u.mutation.ClearArtifactPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdate) SetErrorMessage(v string) *JobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdate) SetNillableErrorMessage(v *string) *JobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdate) ClearErrorMessage() *JobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *JobUpdate) SetCancelRequested(v bool) *JobUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCancelRequested(v *bool) *JobUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetArtifactsPurged sets the "artifacts_purged" field.
func (_u *JobUpdate) SetArtifactsPurged(v bool) *JobUpdate {
	_u.mutation.SetArtifactsPurged(v)
	return _u
}

// SetNillableArtifactsPurged sets the "artifacts_purged" field if the given value is not nil.
func (_u *JobUpdate) SetNillableArtifactsPurged(v *bool) *JobUpdate {
	if v != nil {
		_u.SetArtifactsPurged(*v)
	}
	return _u
}

// SetPurgedAt sets the "purged_at" field.
func (_u *JobUpdate) SetPurgedAt(v time.Time) *JobUpdate {
	_u.mutation.SetPurgedAt(v)
	return _u
}

// SetNillablePurgedAt sets the "purged_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePurgedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetPurgedAt(*v)
	}
	return _u
}

// ClearPurgedAt clears the value of the "purged_at" field.
func (_u *JobUpdate) ClearPurgedAt() *JobUpdate {
	_u.mutation.ClearPurgedAt()
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *JobUpdate) SetLockedBy(v string) *JobUpdate {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLockedBy(v *string) *JobUpdate {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *JobUpdate) ClearLockedBy() *JobUpdate {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *JobUpdate) SetLockedAt(v time.Time) *JobUpdate {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLockedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *JobUpdate) ClearLockedAt() *JobUpdate {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *JobUpdate) SetHeartbeatAt(v time.Time) *JobUpdate {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableHeartbeatAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *JobUpdate) ClearHeartbeatAt() *JobUpdate {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *JobUpdate) SetVersion(v int64) *JobUpdate {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *JobUpdate) SetNillableVersion(v *int64) *JobUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *JobUpdate) AddVersion(v int64) *JobUpdate {
	_u.mutation.AddVersion(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobUpdate) SetRetryCount(v int) *JobUpdate {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRetryCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobUpdate) AddRetryCount(v int) *JobUpdate {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdate) SetUpdatedAt(v time.Time) *JobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableUpdatedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdate) SetStartedAt(v time.Time) *JobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableStartedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdate) ClearStartedAt() *JobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdate) SetCompletedAt(v time.Time) *JobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCompletedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdate) ClearCompletedAt() *JobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *JobUpdate) SetCancelledAt(v time.Time) *JobUpdate {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableCancelledAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *JobUpdate) ClearCancelledAt() *JobUpdate {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *JobUpdate) SetFailedAt(v time.Time) *JobUpdate {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFailedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *JobUpdate) ClearFailedAt() *JobUpdate {
	_u.mutation.ClearFailedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the JobEvent entity by IDs.
func (_u *JobUpdate) AddEventIDs(ids ...int) *JobUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the JobEvent entity.
func (_u *JobUpdate) AddEvents(v ...*JobEvent) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the JobEvent entity.
func (_u *JobUpdate) ClearEvents() *JobUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to JobEvent entities by IDs.
func (_u *JobUpdate) RemoveEventIDs(ids ...int) *JobUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to JobEvent entities.
func (_u *JobUpdate) RemoveEvents(v ...*JobEvent) *JobUpdate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *JobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *JobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdate) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := job.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Job.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := job.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Job.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalFiles(); ok {
		if err := job.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "Job.total_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedFiles(); ok {
		if err := job.ProcessedFilesValidator(v); err != nil {
			return &ValidationError{Name: "processed_files", err: fmt.Errorf(`ent: validator failed for field "Job.processed_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := job.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Job.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := job.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Job.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(job.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(job.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(job.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputManifest(); ok {
		_spec.SetField(job.FieldInputManifest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputManifest(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldInputManifest, value)
		})
	}
	if value, ok := _u.mutation.OutputManifest(); ok {
		_spec.SetField(job.FieldOutputManifest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutputManifest(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldOutputManifest, value)
		})
	}
	if _u.mutation.OutputManifestCleared() {
		_spec.ClearField(job.FieldOutputManifest, field.TypeJSON)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(job.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldParameters, value)
		})
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(job.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(job.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(job.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedFiles(); ok {
		_spec.SetField(job.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedFiles(); ok {
		_spec.AddField(job.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(job.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(job.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentFile(); ok {
		_spec.SetField(job.FieldCurrentFile, field.TypeString, value)
	}
	if _u.mutation.CurrentFileCleared() {
		_spec.ClearField(job.FieldCurrentFile, field.TypeString)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(job.FieldArtifactPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactPathCleared() {
		_spec.ClearField(job.FieldArtifactPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArtifactsPurged(); ok {
		_spec.SetField(job.FieldArtifactsPurged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PurgedAt(); ok {
		_spec.SetField(job.FieldPurgedAt, field.TypeTime, value)
	}
	if _u.mutation.PurgedAtCleared() {
		_spec.ClearField(job.FieldPurgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(job.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(job.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(job.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(job.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(job.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(job.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(job.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(job.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(job.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(job.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(job.FieldFailedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// JobUpdateOne is the builder for updating a single Job entity.
type JobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *JobMutation
}

// SetOwnerID sets the "owner_id" field.
func (_u *JobUpdateOne) SetOwnerID(v string) *JobUpdateOne {
	_u.mutation.SetOwnerID(v)
	return _u
}

// SetNillableOwnerID sets the "owner_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableOwnerID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetOwnerID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *JobUpdateOne) SetStatus(v string) *JobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStatus(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSourcePath sets the "source_path" field.
func (_u *JobUpdateOne) SetSourcePath(v string) *JobUpdateOne {
	_u.mutation.SetSourcePath(v)
	return _u
}

// SetNillableSourcePath sets the "source_path" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSourcePath(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetSourcePath(*v)
	}
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *JobUpdateOne) SetDisplayName(v string) *JobUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableDisplayName(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// SetInputManifest sets the "input_manifest" field.
func (_u *JobUpdateOne) SetInputManifest(v json.RawMessage) *JobUpdateOne {
	_u.mutation.SetInputManifest(v)
	return _u
}

// AppendInputManifest appends value to the "input_manifest" field.
func (_u *JobUpdateOne) AppendInputManifest(v json.RawMessage) *JobUpdateOne {
	_u.mutation.AppendInputManifest(v)
	return _u
}

// SetOutputManifest sets the "output_manifest" field.
func (_u *JobUpdateOne) SetOutputManifest(v json.RawMessage) *JobUpdateOne {
	_u.mutation.SetOutputManifest(v)
	return _u
}

// AppendOutputManifest appends value to the "output_manifest" field.
func (_u *JobUpdateOne) AppendOutputManifest(v json.RawMessage) *JobUpdateOne {
	_u.mutation.AppendOutputManifest(v)
	return _u
}

// ClearOutputManifest clears the value of the "output_manifest" field.
func (_u *JobUpdateOne) ClearOutputManifest() *JobUpdateOne {
	_u.mutation.ClearOutputManifest()
	return _u
}

// SetParameters sets the "parameters" field.
func (_u *JobUpdateOne) SetParameters(v json.RawMessage) *JobUpdateOne {
	_u.mutation.SetParameters(v)
	return _u
}

// AppendParameters appends value to the "parameters" field.
func (_u *JobUpdateOne) AppendParameters(v json.RawMessage) *JobUpdateOne {
	_u.mutation.AppendParameters(v)
	return _u
}

// ClearParameters clears the value of the "parameters" field.
func (_u *JobUpdateOne) ClearParameters() *JobUpdateOne {
	_u.mutation.ClearParameters()
	return _u
}

// SetTotalFiles sets the "total_files" field.
func (_u *JobUpdateOne) SetTotalFiles(v int) *JobUpdateOne {
	_u.mutation.ResetTotalFiles()
	_u.mutation.SetTotalFiles(v)
	return _u
}

// SetNillableTotalFiles sets the "total_files" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableTotalFiles(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetTotalFiles(*v)
	}
	return _u
}

// AddTotalFiles adds value to the "total_files" field.
func (_u *JobUpdateOne) AddTotalFiles(v int) *JobUpdateOne {
	_u.mutation.AddTotalFiles(v)
	return _u
}

// SetProcessedFiles sets the "processed_files" field.
func (_u *JobUpdateOne) SetProcessedFiles(v int) *JobUpdateOne {
	_u.mutation.ResetProcessedFiles()
	_u.mutation.SetProcessedFiles(v)
	return _u
}

// SetNillableProcessedFiles sets the "processed_files" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableProcessedFiles(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetProcessedFiles(*v)
	}
	return _u
}

// AddProcessedFiles adds value to the "processed_files" field.
func (_u *JobUpdateOne) AddProcessedFiles(v int) *JobUpdateOne {
	_u.mutation.AddProcessedFiles(v)
	return _u
}

// SetProgress sets the "progress" field.
func (_u *JobUpdateOne) SetProgress(v float64) *JobUpdateOne {
	_u.mutation.ResetProgress()
	_u.mutation.SetProgress(v)
	return _u
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableProgress(v *float64) *JobUpdateOne {
	if v != nil {
		_u.SetProgress(*v)
	}
	return _u
}

// AddProgress adds value to the "progress" field.
func (_u *JobUpdateOne) AddProgress(v float64) *JobUpdateOne {
	_u.mutation.AddProgress(v)
	return _u
}

// SetCurrentFile sets the "current_file" field.
func (_u *JobUpdateOne) SetCurrentFile(v string) *JobUpdateOne {
	_u.mutation.SetCurrentFile(v)
	return _u
}

// SetNillableCurrentFile sets the "current_file" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCurrentFile(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetCurrentFile(*v)
	}
	return _u
}

// ClearCurrentFile clears the value of the "current_file" field.
func (_u *JobUpdateOne) ClearCurrentFile() *JobUpdateOne {
	_u.mutation.ClearCurrentFile()
	return _u
}

// SetArtifactPath sets the "artifact_path" field.
func (_u *JobUpdateOne) SetArtifactPath(v string) *JobUpdateOne {
	_u.mutation.SetArtifactPath(v)
	return _u
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableArtifactPath(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetArtifactPath(*v)
	}
	return _u
}

// ClearArtifactPath clears the value of the "artifact_path" field.
func (_u *JobUpdateOne) ClearArtifactPath() *JobUpdateOne {
	_u.mutation.ClearArtifactPath()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *JobUpdateOne) SetErrorMessage(v string) *JobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableErrorMessage(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *JobUpdateOne) ClearErrorMessage() *JobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *JobUpdateOne) SetCancelRequested(v bool) *JobUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCancelRequested(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetArtifactsPurged sets the "artifacts_purged" field.
func (_u *JobUpdateOne) SetArtifactsPurged(v bool) *JobUpdateOne {
	_u.mutation.SetArtifactsPurged(v)
	return _u
}

// SetNillableArtifactsPurged sets the "artifacts_purged" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableArtifactsPurged(v *bool) *JobUpdateOne {
	if v != nil {
		_u.SetArtifactsPurged(*v)
	}
	return _u
}

// SetPurgedAt sets the "purged_at" field.
func (_u *JobUpdateOne) SetPurgedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetPurgedAt(v)
	return _u
}

// SetNillablePurgedAt sets the "purged_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePurgedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetPurgedAt(*v)
	}
	return _u
}

// ClearPurgedAt clears the value of the "purged_at" field.
func (_u *JobUpdateOne) ClearPurgedAt() *JobUpdateOne {
	_u.mutation.ClearPurgedAt()
	return _u
}

// SetLockedBy sets the "locked_by" field.
func (_u *JobUpdateOne) SetLockedBy(v string) *JobUpdateOne {
	_u.mutation.SetLockedBy(v)
	return _u
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLockedBy(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLockedBy(*v)
	}
	return _u
}

// ClearLockedBy clears the value of the "locked_by" field.
func (_u *JobUpdateOne) ClearLockedBy() *JobUpdateOne {
	_u.mutation.ClearLockedBy()
	return _u
}

// SetLockedAt sets the "locked_at" field.
func (_u *JobUpdateOne) SetLockedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLockedAt(v)
	return _u
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLockedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLockedAt(*v)
	}
	return _u
}

// ClearLockedAt clears the value of the "locked_at" field.
func (_u *JobUpdateOne) ClearLockedAt() *JobUpdateOne {
	_u.mutation.ClearLockedAt()
	return _u
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_u *JobUpdateOne) SetHeartbeatAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetHeartbeatAt(v)
	return _u
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableHeartbeatAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetHeartbeatAt(*v)
	}
	return _u
}

// ClearHeartbeatAt clears the value of the "heartbeat_at" field.
func (_u *JobUpdateOne) ClearHeartbeatAt() *JobUpdateOne {
	_u.mutation.ClearHeartbeatAt()
	return _u
}

// SetVersion sets the "version" field.
func (_u *JobUpdateOne) SetVersion(v int64) *JobUpdateOne {
	_u.mutation.ResetVersion()
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableVersion(v *int64) *JobUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// AddVersion adds value to the "version" field.
func (_u *JobUpdateOne) AddVersion(v int64) *JobUpdateOne {
	_u.mutation.AddVersion(v)
	return _u
}

// SetRetryCount sets the "retry_count" field.
func (_u *JobUpdateOne) SetRetryCount(v int) *JobUpdateOne {
	_u.mutation.ResetRetryCount()
	_u.mutation.SetRetryCount(v)
	return _u
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRetryCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetRetryCount(*v)
	}
	return _u
}

// AddRetryCount adds value to the "retry_count" field.
func (_u *JobUpdateOne) AddRetryCount(v int) *JobUpdateOne {
	_u.mutation.AddRetryCount(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *JobUpdateOne) SetUpdatedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableUpdatedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetUpdatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *JobUpdateOne) SetStartedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableStartedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *JobUpdateOne) ClearStartedAt() *JobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *JobUpdateOne) SetCompletedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCompletedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *JobUpdateOne) ClearCompletedAt() *JobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCancelledAt sets the "cancelled_at" field.
func (_u *JobUpdateOne) SetCancelledAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetCancelledAt(v)
	return _u
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableCancelledAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetCancelledAt(*v)
	}
	return _u
}

// ClearCancelledAt clears the value of the "cancelled_at" field.
func (_u *JobUpdateOne) ClearCancelledAt() *JobUpdateOne {
	_u.mutation.ClearCancelledAt()
	return _u
}

// SetFailedAt sets the "failed_at" field.
func (_u *JobUpdateOne) SetFailedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetFailedAt(v)
	return _u
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFailedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetFailedAt(*v)
	}
	return _u
}

// ClearFailedAt clears the value of the "failed_at" field.
func (_u *JobUpdateOne) ClearFailedAt() *JobUpdateOne {
	_u.mutation.ClearFailedAt()
	return _u
}

// AddEventIDs adds the "events" edge to the JobEvent entity by IDs.
func (_u *JobUpdateOne) AddEventIDs(ids ...int) *JobUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the JobEvent entity.
func (_u *JobUpdateOne) AddEvents(v ...*JobEvent) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearEvents clears all "events" edges to the JobEvent entity.
func (_u *JobUpdateOne) ClearEvents() *JobUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to JobEvent entities by IDs.
func (_u *JobUpdateOne) RemoveEventIDs(ids ...int) *JobUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to JobEvent entities.
func (_u *JobUpdateOne) RemoveEvents(v ...*JobEvent) *JobUpdateOne {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the JobUpdate builder.
func (_u *JobUpdateOne) Where(ps ...predicate.Job) *JobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *JobUpdateOne) Select(field string, fields ...string) *JobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Job entity.
func (_u *JobUpdateOne) Save(ctx context.Context) (*Job, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *JobUpdateOne) SaveX(ctx context.Context) *Job {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *JobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *JobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *JobUpdateOne) check() error {
	if v, ok := _u.mutation.OwnerID(); ok {
		if err := job.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Job.owner_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourcePath(); ok {
		if err := job.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Job.source_path": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalFiles(); ok {
		if err := job.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "Job.total_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedFiles(); ok {
		if err := job.ProcessedFilesValidator(v); err != nil {
			return &ValidationError{Name: "processed_files", err: fmt.Errorf(`ent: validator failed for field "Job.processed_files": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Version(); ok {
		if err := job.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Job.version": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RetryCount(); ok {
		if err := job.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Job.retry_count": %w`, err)}
		}
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Job.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, job.FieldID)
		for _, f := range fields {
			if !job.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != job.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.OwnerID(); ok {
		_spec.SetField(job.FieldOwnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourcePath(); ok {
		_spec.SetField(job.FieldSourcePath, field.TypeString, value)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(job.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputManifest(); ok {
		_spec.SetField(job.FieldInputManifest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedInputManifest(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldInputManifest, value)
		})
	}
	if value, ok := _u.mutation.OutputManifest(); ok {
		_spec.SetField(job.FieldOutputManifest, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOutputManifest(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldOutputManifest, value)
		})
	}
	if _u.mutation.OutputManifestCleared() {
		_spec.ClearField(job.FieldOutputManifest, field.TypeJSON)
	}
	if value, ok := _u.mutation.Parameters(); ok {
		_spec.SetField(job.FieldParameters, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedParameters(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, job.FieldParameters, value)
		})
	}
	if _u.mutation.ParametersCleared() {
		_spec.ClearField(job.FieldParameters, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalFiles(); ok {
		_spec.SetField(job.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalFiles(); ok {
		_spec.AddField(job.FieldTotalFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedFiles(); ok {
		_spec.SetField(job.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedFiles(); ok {
		_spec.AddField(job.FieldProcessedFiles, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Progress(); ok {
		_spec.SetField(job.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedProgress(); ok {
		_spec.AddField(job.FieldProgress, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.CurrentFile(); ok {
		_spec.SetField(job.FieldCurrentFile, field.TypeString, value)
	}
	if _u.mutation.CurrentFileCleared() {
		_spec.ClearField(job.FieldCurrentFile, field.TypeString)
	}
	if value, ok := _u.mutation.ArtifactPath(); ok {
		_spec.SetField(job.FieldArtifactPath, field.TypeString, value)
	}
	if _u.mutation.ArtifactPathCleared() {
		_spec.ClearField(job.FieldArtifactPath, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(job.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ArtifactsPurged(); ok {
		_spec.SetField(job.FieldArtifactsPurged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.PurgedAt(); ok {
		_spec.SetField(job.FieldPurgedAt, field.TypeTime, value)
	}
	if _u.mutation.PurgedAtCleared() {
		_spec.ClearField(job.FieldPurgedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LockedBy(); ok {
		_spec.SetField(job.FieldLockedBy, field.TypeString, value)
	}
	if _u.mutation.LockedByCleared() {
		_spec.ClearField(job.FieldLockedBy, field.TypeString)
	}
	if value, ok := _u.mutation.LockedAt(); ok {
		_spec.SetField(job.FieldLockedAt, field.TypeTime, value)
	}
	if _u.mutation.LockedAtCleared() {
		_spec.ClearField(job.FieldLockedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.HeartbeatAtCleared() {
		_spec.ClearField(job.FieldHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(job.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedVersion(); ok {
		_spec.AddField(job.FieldVersion, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRetryCount(); ok {
		_spec.AddField(job.FieldRetryCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(job.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(job.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CancelledAt(); ok {
		_spec.SetField(job.FieldCancelledAt, field.TypeTime, value)
	}
	if _u.mutation.CancelledAtCleared() {
		_spec.ClearField(job.FieldCancelledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.FailedAt(); ok {
		_spec.SetField(job.FieldFailedAt, field.TypeTime, value)
	}
	if _u.mutation.FailedAtCleared() {
		_spec.ClearField(job.FieldFailedAt, field.TypeTime)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   job.EventsTable,
			Columns: []string{job.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(jobevent.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Job{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{job.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
