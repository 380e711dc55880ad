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

// JobEvent is an append-only log entry for a job. The default integer id is
// monotonically increasing across the table, so event ids within a single job
// are strictly increasing as well — subscribers use them as replay cursors.
type JobEvent struct{ ent.Schema }

func (JobEvent) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "job_events"},
	}
}

func (JobEvent) Fields() []ent.Field {
	return []ent.Field{
		// explicit FK
		field.UUID("job_id", uuid.UUID{}),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.String("level").
			Validate(utils.EnumValidator(constants.EventLevels...)),
		field.String("message").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("metadata", json.RawMessage{}).Optional(),
	}
}

func (JobEvent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("job", Job.Type).
			Ref("events").
			Field("job_id").
			Unique().
			Required(),
	}
}

func (JobEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("job_id", "created_at"),
	}
}
