// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// JobsColumns holds the columns for the "jobs" table.
	JobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "owner_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "queued"},
		{Name: "source_path", Type: field.TypeString},
		{Name: "display_name", Type: field.TypeString},
		{Name: "input_manifest", Type: field.TypeJSON},
		{Name: "output_manifest", Type: field.TypeJSON, Nullable: true},
		{Name: "parameters", Type: field.TypeJSON, Nullable: true},
		{Name: "total_files", Type: field.TypeInt},
		{Name: "processed_files", Type: field.TypeInt, Default: 0},
		{Name: "progress", Type: field.TypeFloat64, Default: 0},
		{Name: "current_file", Type: field.TypeString, Nullable: true},
		{Name: "artifact_path", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "artifacts_purged", Type: field.TypeBool, Default: false},
		{Name: "purged_at", Type: field.TypeTime, Nullable: true},
		{Name: "locked_by", Type: field.TypeString, Nullable: true},
		{Name: "locked_at", Type: field.TypeTime, Nullable: true},
		{Name: "heartbeat_at", Type: field.TypeTime, Nullable: true},
		{Name: "version", Type: field.TypeInt64, Default: 0},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "cancelled_at", Type: field.TypeTime, Nullable: true},
		{Name: "failed_at", Type: field.TypeTime, Nullable: true},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "job_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[22]},
			},
			{
				Name:    "job_owner_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[1], JobsColumns[22]},
			},
			{
				Name:    "job_status_heartbeat_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[19]},
			},
		},
	}
	// JobEventsColumns holds the columns for the "job_events" table.
	JobEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "level", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "job_id", Type: field.TypeUUID},
	}
	// JobEventsTable holds the schema information for the "job_events" table.
	JobEventsTable = &schema.Table{
		Name:       "job_events",
		Columns:    JobEventsColumns,
		PrimaryKey: []*schema.Column{JobEventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "job_events_jobs_events",
				Columns:    []*schema.Column{JobEventsColumns[5]},
				RefColumns: []*schema.Column{JobsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "jobevent_job_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobEventsColumns[5], JobEventsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		JobEventsTable,
	}
)

func init() {
	JobsTable.Annotation = &entsql.Annotation{
		Table: "jobs",
	}
	JobEventsTable.ForeignKeys[0].RefTable = JobsTable
	JobEventsTable.Annotation = &entsql.Annotation{
		Table: "job_events",
	}
}
