package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Pipeline holds the schema definition for the Pipeline entity — the
// causal thread of one user request.
type Pipeline struct {
	ent.Schema
}

// Fields of the Pipeline.
func (Pipeline) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("pipeline_id").
			Unique().
			Immutable(),
		field.Text("root_request"),
		field.String("session_id").
			Optional(),
		field.Enum("state").
			Values("running", "blocked", "escalated", "cancelled", "done").
			Default("running"),
		field.JSON("rework_rounds", map[string]int{}).
			Optional().
			Comment("Returned-to-predecessor cycles per role"),
		field.Bool("cancel_requested").
			Default(false).
			Comment("Checked by the supervisor between stages"),
		field.String("escalation_reason").
			Optional().
			Nillable(),
		field.Time("deadline").
			Optional().
			Nillable().
			Comment("Wall-clock bound; expiry escalates the pipeline"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Pipeline.
func (Pipeline) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", Job.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Pipeline.
func (Pipeline) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state"),
		index.Fields("session_id"),
		index.Fields("state", "deadline"),
	}
}
