package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Job holds the schema definition for the Job entity — the unit of
// scheduled work leased to exactly one worker at a time.
type Job struct {
	ent.Schema
}

// Fields of the Job.
func (Job) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("pipeline_id"),
		field.String("parent_job_id").
			Optional().
			Nillable().
			Comment("Job whose push scheduled this one"),
		field.Enum("role").
			Values("pm", "excavator", "strategist", "coder", "qa", "reviewer",
				"researcher", "analyst", "stamp", "council"),
		field.Enum("mode").
			Values("worker", "reviewer").
			Default("worker"),
		field.Enum("state").
			Values("pending", "leased", "succeeded", "failed", "cancelled").
			Default("pending"),
		field.Text("payload"),
		field.Text("context").
			Optional(),
		field.Enum("priority").
			Values("high", "medium", "low").
			Default("medium"),
		field.Int("sequence").
			Comment("Per-pipeline successor ordinal; part of the dedup key"),
		field.Text("result").
			Optional().
			Nillable(),
		field.String("error").
			Optional().
			Nillable(),
		field.Int("attempt_count").
			Default(0),
		field.String("lease_owner").
			Optional().
			Nillable().
			Comment("Pod holding the current lease, for startup recovery"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("leased_at").
			Optional().
			Nillable(),
		field.Time("lease_deadline").
			Optional().
			Nillable(),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the Job.
func (Job) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("pipeline", Pipeline.Type).
			Ref("jobs").
			Field("pipeline_id").
			Unique().
			Required(),
	}
}

// Indexes of the Job.
func (Job) Indexes() []ent.Index {
	return []ent.Index{
		// Pull path: pending jobs of a (role, mode) queue.
		index.Fields("role", "mode", "state", "created_at"),
		// Reaper path: leased jobs past their deadline.
		index.Fields("state", "lease_deadline"),
		index.Fields("pipeline_id"),
		// Successor dedup key.
		index.Fields("pipeline_id", "role", "mode", "sequence").
			Unique(),
		// Startup recovery: leases owned by a pod.
		index.Fields("lease_owner").
			Annotations(entsql.IndexWhere("lease_owner IS NOT NULL")),
	}
}
