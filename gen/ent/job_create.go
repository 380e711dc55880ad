// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"labelscan/gen/ent/job"
	"labelscan/gen/ent/jobevent"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
)

// JobCreate is the builder for creating a Job entity.
type JobCreate struct {
	config
	mutation *JobMutation
	hooks    []Hook
}

// SetOwnerID sets the "owner_id" field.
func (_c *JobCreate) SetOwnerID(v string) *JobCreate {
	_c.mutation.SetOwnerID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *JobCreate) SetStatus(v string) *JobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *JobCreate) SetNillableStatus(v *string) *JobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSourcePath sets the "source_path" field.
func (_c *JobCreate) SetSourcePath(v string) *JobCreate {
	_c.mutation.SetSourcePath(v)
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *JobCreate) SetDisplayName(v string) *JobCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetInputManifest sets the "input_manifest" field.
func (_c *JobCreate) SetInputManifest(v json.RawMessage) *JobCreate {
	_c.mutation.SetInputManifest(v)
	return _c
}

// SetOutputManifest sets the "output_manifest" field.
func (_c *JobCreate) SetOutputManifest(v json.RawMessage) *JobCreate {
	_c.mutation.SetOutputManifest(v)
	return _c
}

// SetParameters sets the "parameters" field.
func (_c *JobCreate) SetParameters(v json.RawMessage) *JobCreate {
	_c.mutation.SetParameters(v)
	return _c
}

// SetTotalFiles sets the "total_files" field.
func (_c *JobCreate) SetTotalFiles(v int) *JobCreate {
	_c.mutation.SetTotalFiles(v)
	return _c
}

// SetProcessedFiles sets the "processed_files" field.
func (_c *JobCreate) SetProcessedFiles(v int) *JobCreate {
	_c.mutation.SetProcessedFiles(v)
	return _c
}

// SetNillableProcessedFiles sets the "processed_files" field if the given value is not nil.
func (_c *JobCreate) SetNillableProcessedFiles(v *int) *JobCreate {
	if v != nil {
		_c.SetProcessedFiles(*v)
	}
	return _c
}

// SetProgress sets the "progress" field.
func (_c *JobCreate) SetProgress(v float64) *JobCreate {
	_c.mutation.SetProgress(v)
	return _c
}

// SetNillableProgress sets the "progress" field if the given value is not nil.
func (_c *JobCreate) SetNillableProgress(v *float64) *JobCreate {
	if v != nil {
		_c.SetProgress(*v)
	}
	return _c
}

// SetCurrentFile sets the "current_file" field.
func (_c *JobCreate) SetCurrentFile(v string) *JobCreate {
	_c.mutation.SetCurrentFile(v)
	return _c
}

// SetNillableCurrentFile sets the "current_file" field if the given value is not nil.
func (_c *JobCreate) SetNillableCurrentFile(v *string) *JobCreate {
	if v != nil {
		_c.SetCurrentFile(*v)
	}
	return _c
}

// SetArtifactPath sets the "artifact_path" field.
func (_c *JobCreate) SetArtifactPath(v string) *JobCreate {
	_c.mutation.SetArtifactPath(v)
	return _c
}

// SetNillableArtifactPath sets the "artifact_path" field if the given value is not nil.
func (_c *JobCreate) SetNillableArtifactPath(v *string) *JobCreate {
	if v != nil {
		_c.SetArtifactPath(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *JobCreate) SetErrorMessage(v string) *JobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *JobCreate) SetNillableErrorMessage(v *string) *JobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *JobCreate) SetCancelRequested(v bool) *JobCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *JobCreate) SetNillableCancelRequested(v *bool) *JobCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetArtifactsPurged sets the "artifacts_purged" field.
func (_c *JobCreate) SetArtifactsPurged(v bool) *JobCreate {
	_c.mutation.SetArtifactsPurged(v)
	return _c
}

// SetNillableArtifactsPurged sets the "artifacts_purged" field if the given value is not nil.
func (_c *JobCreate) SetNillableArtifactsPurged(v *bool) *JobCreate {
	if v != nil {
		_c.SetArtifactsPurged(*v)
	}
	return _c
}

// SetPurgedAt sets the "purged_at" field.
func (_c *JobCreate) SetPurgedAt(v time.Time) *JobCreate {
	_c.mutation.SetPurgedAt(v)
	return _c
}

// SetNillablePurgedAt sets the "purged_at" field if the given value is not nil.
func (_c *JobCreate) SetNillablePurgedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetPurgedAt(*v)
	}
	return _c
}

// SetLockedBy sets the "locked_by" field.
func (_c *JobCreate) SetLockedBy(v string) *JobCreate {
	_c.mutation.SetLockedBy(v)
	return _c
}

// SetNillableLockedBy sets the "locked_by" field if the given value is not nil.
func (_c *JobCreate) SetNillableLockedBy(v *string) *JobCreate {
	if v != nil {
		_c.SetLockedBy(*v)
	}
	return _c
}

// SetLockedAt sets the "locked_at" field.
func (_c *JobCreate) SetLockedAt(v time.Time) *JobCreate {
	_c.mutation.SetLockedAt(v)
	return _c
}

// SetNillableLockedAt sets the "locked_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableLockedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetLockedAt(*v)
	}
	return _c
}

// SetHeartbeatAt sets the "heartbeat_at" field.
func (_c *JobCreate) SetHeartbeatAt(v time.Time) *JobCreate {
	_c.mutation.SetHeartbeatAt(v)
	return _c
}

// SetNillableHeartbeatAt sets the "heartbeat_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableHeartbeatAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetHeartbeatAt(*v)
	}
	return _c
}

// SetVersion sets the "version" field.
func (_c *JobCreate) SetVersion(v int64) *JobCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *JobCreate) SetNillableVersion(v *int64) *JobCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetRetryCount sets the "retry_count" field.
func (_c *JobCreate) SetRetryCount(v int) *JobCreate {
	_c.mutation.SetRetryCount(v)
	return _c
}

// SetNillableRetryCount sets the "retry_count" field if the given value is not nil.
func (_c *JobCreate) SetNillableRetryCount(v *int) *JobCreate {
	if v != nil {
		_c.SetRetryCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *JobCreate) SetCreatedAt(v time.Time) *JobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCreatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *JobCreate) SetUpdatedAt(v time.Time) *JobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableUpdatedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *JobCreate) SetStartedAt(v time.Time) *JobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableStartedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *JobCreate) SetCompletedAt(v time.Time) *JobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCompletedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCancelledAt sets the "cancelled_at" field.
func (_c *JobCreate) SetCancelledAt(v time.Time) *JobCreate {
	_c.mutation.SetCancelledAt(v)
	return _c
}

// SetNillableCancelledAt sets the "cancelled_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableCancelledAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetCancelledAt(*v)
	}
	return _c
}

// SetFailedAt sets the "failed_at" field.
func (_c *JobCreate) SetFailedAt(v time.Time) *JobCreate {
	_c.mutation.SetFailedAt(v)
	return _c
}

// SetNillableFailedAt sets the "failed_at" field if the given value is not nil.
func (_c *JobCreate) SetNillableFailedAt(v *time.Time) *JobCreate {
	if v != nil {
		_c.SetFailedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *JobCreate) SetID(v uuid.UUID) *JobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *JobCreate) SetNillableID(v *uuid.UUID) *JobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddEventIDs adds the "events" edge to the JobEvent entity by IDs.
func (_c *JobCreate) AddEventIDs(ids ...int) *JobCreate {
	_c.mutation.AddEventIDs(ids...)
	return _c
}

// AddEvents adds the "events" edges to the JobEvent entity.
func (_c *JobCreate) AddEvents(v ...*JobEvent) *JobCreate {
	ids := make([]int, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEventIDs(ids...)
}

// Mutation returns the JobMutation object of the builder.
func (_c *JobCreate) Mutation() *JobMutation {
	return _c.mutation
}

// Save creates the Job in the database.
func (_c *JobCreate) Save(ctx context.Context) (*Job, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *JobCreate) SaveX(ctx context.Context) *Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *JobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := job.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ProcessedFiles(); !ok {
		v := job.DefaultProcessedFiles
		_c.mutation.SetProcessedFiles(v)
	}
	if _, ok := _c.mutation.Progress(); !ok {
		v := job.DefaultProgress
		_c.mutation.SetProgress(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := job.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.ArtifactsPurged(); !ok {
		v := job.DefaultArtifactsPurged
		_c.mutation.SetArtifactsPurged(v)
	}
	if _, ok := _c.mutation.Version(); !ok {
		v := job.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		v := job.DefaultRetryCount
		_c.mutation.SetRetryCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := job.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := job.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := job.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *JobCreate) check() error {
	if _, ok := _c.mutation.OwnerID(); !ok {
		return &ValidationError{Name: "owner_id", err: errors.New(`ent: missing required field "Job.owner_id"`)}
	}
	if v, ok := _c.mutation.OwnerID(); ok {
		if err := job.OwnerIDValidator(v); err != nil {
			return &ValidationError{Name: "owner_id", err: fmt.Errorf(`ent: validator failed for field "Job.owner_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Job.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := job.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Job.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourcePath(); !ok {
		return &ValidationError{Name: "source_path", err: errors.New(`ent: missing required field "Job.source_path"`)}
	}
	if v, ok := _c.mutation.SourcePath(); ok {
		if err := job.SourcePathValidator(v); err != nil {
			return &ValidationError{Name: "source_path", err: fmt.Errorf(`ent: validator failed for field "Job.source_path": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Job.display_name"`)}
	}
	if _, ok := _c.mutation.InputManifest(); !ok {
		return &ValidationError{Name: "input_manifest", err: errors.New(`ent: missing required field "Job.input_manifest"`)}
	}
	if _, ok := _c.mutation.TotalFiles(); !ok {
		return &ValidationError{Name: "total_files", err: errors.New(`ent: missing required field "Job.total_files"`)}
	}
	if v, ok := _c.mutation.TotalFiles(); ok {
		if err := job.TotalFilesValidator(v); err != nil {
			return &ValidationError{Name: "total_files", err: fmt.Errorf(`ent: validator failed for field "Job.total_files": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedFiles(); !ok {
		return &ValidationError{Name: "processed_files", err: errors.New(`ent: missing required field "Job.processed_files"`)}
	}
	if v, ok := _c.mutation.ProcessedFiles(); ok {
		if err := job.ProcessedFilesValidator(v); err != nil {
			return &ValidationError{Name: "processed_files", err: fmt.Errorf(`ent: validator failed for field "Job.processed_files": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Progress(); !ok {
		return &ValidationError{Name: "progress", err: errors.New(`ent: missing required field "Job.progress"`)}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Job.cancel_requested"`)}
	}
	if _, ok := _c.mutation.ArtifactsPurged(); !ok {
		return &ValidationError{Name: "artifacts_purged", err: errors.New(`ent: missing required field "Job.artifacts_purged"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "Job.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := job.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "Job.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RetryCount(); !ok {
		return &ValidationError{Name: "retry_count", err: errors.New(`ent: missing required field "Job.retry_count"`)}
	}
	if v, ok := _c.mutation.RetryCount(); ok {
		if err := job.RetryCountValidator(v); err != nil {
			return &ValidationError{Name: "retry_count", err: fmt.Errorf(`ent: validator failed for field "Job.retry_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Job.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Job.updated_at"`)}
	}
	return nil
}

func (_c *JobCreate) sqlSave(ctx context.Context) (*Job, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *JobCreate) createSpec() (*Job, *sqlgraph.CreateSpec) {
	var (
		_node = &Job{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(job.Table, sqlgraph.NewFieldSpec(job.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.OwnerID(); ok {
		_spec.SetField(job.FieldOwnerID, field.TypeString, value)
		_node.OwnerID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(job.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.SourcePath(); ok {
		_spec.SetField(job.FieldSourcePath, field.TypeString, value)
		_node.SourcePath = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(job.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.InputManifest(); ok {
		_spec.SetField(job.FieldInputManifest, field.TypeJSON, value)
		_node.InputManifest = value
	}
	if value, ok := _c.mutation.OutputManifest(); ok {
		_spec.SetField(job.FieldOutputManifest, field.TypeJSON, value)
		_node.OutputManifest = value
	}
	if value, ok := _c.mutation.Parameters(); ok {
		_spec.SetField(job.FieldParameters, field.TypeJSON, value)
		_node.Parameters = value
	}
	if value, ok := _c.mutation.TotalFiles(); ok {
		_spec.SetField(job.FieldTotalFiles, field.TypeInt, value)
		_node.TotalFiles = value
	}
	if value, ok := _c.mutation.ProcessedFiles(); ok {
		_spec.SetField(job.FieldProcessedFiles, field.TypeInt, value)
		_node.ProcessedFiles = value
	}
	if value, ok := _c.mutation.Progress(); ok {
		_spec.SetField(job.FieldProgress, field.TypeFloat64, value)
		_node.Progress = value
	}
	if value, ok := _c.mutation.CurrentFile(); ok {
		_spec.SetField(job.FieldCurrentFile, field.TypeString, value)
		_node.CurrentFile = &value
	}
	if value, ok := _c.mutation.ArtifactPath(); ok {
		_spec.SetField(job.FieldArtifactPath, field.TypeString, value)
		_node.ArtifactPath = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(job.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(job.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.ArtifactsPurged(); ok {
		_spec.SetField(job.FieldArtifactsPurged, field.TypeBool, value)
		_node.ArtifactsPurged = value
	}
	if value, ok := _c.mutation.PurgedAt(); ok {
		_spec.SetField(job.FieldPurgedAt, field.TypeTime, value)
		_node.PurgedAt = &value
	}
	if value, ok := _c.mutation.LockedBy(); ok {
		_spec.SetField(job.FieldLockedBy, field.TypeString, value)
		_node.LockedBy = &value
	}
	if value, ok := _c.mutation.LockedAt(); ok {
		_spec.SetField(job.FieldLockedAt, field.TypeTime, value)
		_node.LockedAt = &value
	}
	if value, ok := _c.mutation.HeartbeatAt(); ok {
		_spec.SetField(job.FieldHeartbeatAt, field.TypeTime, value)
		_node.HeartbeatAt = &value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(job.FieldVersion, field.TypeInt64, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.RetryCount(); ok {
		_spec.SetField(job.FieldRetryCount, field.TypeInt, value)
		_node.RetryCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(job.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(job.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(job.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(job.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.CancelledAt(); ok {
		_spec.SetField(job.FieldCancelledAt, field.TypeTime, value)
		_node.CancelledAt = &value
	}
	if value, ok := _c.mutation.FailedAt(); ok {
		_spec.SetField(job.FieldFailedAt, field.TypeTime, value)
		_node.FailedAt = &value
	}
	if nodes := _c.mutation.EventsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// JobCreateBulk is the builder for creating many Job entities in bulk.
type JobCreateBulk struct {
	config
	err      error
	builders []*JobCreate
}

// Save creates the Job entities in the database.
func (_c *JobCreateBulk) Save(ctx context.Context) ([]*Job, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Job, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*JobMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *JobCreateBulk) SaveX(ctx context.Context) []*Job {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *JobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *JobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
