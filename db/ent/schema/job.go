package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"labelscan/constants"
	"labelscan/db/ent/schema/utils"

	"github.com/google/uuid"
)

// Job is the durable record for one batch submission. Every mutation goes
// through the repository's version-guarded updates; the version column is the
// sole cross-worker coordination mechanism.
type Job struct{ ent.Schema }

func (Job) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "jobs"},
	}
}

func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("owner_id").NotEmpty(),
		field.String("status").
			Default(string(constants.JobStatusQueued)).
			Validate(utils.EnumValidator(constants.JobStatuses...)),
		field.String("source_path").NotEmpty(),
		field.String("display_name"),
		field.JSON("input_manifest", json.RawMessage{}),
		field.JSON("output_manifest", json.RawMessage{}).Optional(),
		field.JSON("parameters", json.RawMessage{}).Optional(),
		field.Int("total_files").NonNegative(),
		field.Int("processed_files").Default(0).NonNegative(),
		field.Float("progress").Default(0),
		field.String("current_file").Optional().Nillable(),
		field.String("artifact_path").Optional().Nillable(),
		field.String("error_message").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Bool("cancel_requested").Default(false),
		field.Bool("artifacts_purged").Default(false),
		field.Time("purged_at").Optional().Nillable(),
		field.String("locked_by").Optional().Nillable(),
		field.Time("locked_at").Optional().Nillable(),
		field.Time("heartbeat_at").Optional().Nillable(),
		field.Int64("version").Default(0).NonNegative(),
		field.Int("retry_count").Default(0).NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("completed_at").Optional().Nillable(),
		field.Time("cancelled_at").Optional().Nillable(),
		field.Time("failed_at").Optional().Nillable(),
	}
}

func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("events", JobEvent.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

func (Job) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "created_at"),
		index.Fields("owner_id", "created_at"),
		index.Fields("status", "heartbeat_at"),
	}
}
