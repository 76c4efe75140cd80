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
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "parent_job_id", Type: field.TypeString, Nullable: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"pm", "excavator", "strategist", "coder", "qa", "reviewer", "researcher", "analyst", "stamp", "council"}},
		{Name: "mode", Type: field.TypeEnum, Enums: []string{"worker", "reviewer"}, Default: "worker"},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"pending", "leased", "succeeded", "failed", "cancelled"}, Default: "pending"},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "context", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "priority", Type: field.TypeEnum, Enums: []string{"high", "medium", "low"}, Default: "medium"},
		{Name: "sequence", Type: field.TypeInt},
		{Name: "result", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "attempt_count", Type: field.TypeInt, Default: 0},
		{Name: "lease_owner", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "leased_at", Type: field.TypeTime, Nullable: true},
		{Name: "lease_deadline", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "pipeline_id", Type: field.TypeString},
	}
	// JobsTable holds the schema information for the "jobs" table.
	JobsTable = &schema.Table{
		Name:       "jobs",
		Columns:    JobsColumns,
		PrimaryKey: []*schema.Column{JobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "jobs_pipelines_jobs",
				Columns:    []*schema.Column{JobsColumns[17]},
				RefColumns: []*schema.Column{PipelinesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "job_role_mode_state_created_at",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[2], JobsColumns[3], JobsColumns[4], JobsColumns[13]},
			},
			{
				Name:    "job_state_lease_deadline",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[4], JobsColumns[15]},
			},
			{
				Name:    "job_pipeline_id",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[17]},
			},
			{
				Name:    "job_pipeline_id_role_mode_sequence",
				Unique:  true,
				Columns: []*schema.Column{JobsColumns[17], JobsColumns[2], JobsColumns[3], JobsColumns[8]},
			},
			{
				Name:    "job_lease_owner",
				Unique:  false,
				Columns: []*schema.Column{JobsColumns[12]},
				Annotation: &entsql.IndexAnnotation{
					Where: "lease_owner IS NOT NULL",
				},
			},
		},
	}
	// PipelinesColumns holds the columns for the "pipelines" table.
	PipelinesColumns = []*schema.Column{
		{Name: "pipeline_id", Type: field.TypeString, Unique: true},
		{Name: "root_request", Type: field.TypeString, Size: 2147483647},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "state", Type: field.TypeEnum, Enums: []string{"running", "blocked", "escalated", "cancelled", "done"}, Default: "running"},
		{Name: "rework_rounds", Type: field.TypeJSON, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "escalation_reason", Type: field.TypeString, Nullable: true},
		{Name: "deadline", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// PipelinesTable holds the schema information for the "pipelines" table.
	PipelinesTable = &schema.Table{
		Name:       "pipelines",
		Columns:    PipelinesColumns,
		PrimaryKey: []*schema.Column{PipelinesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "pipeline_state",
				Unique:  false,
				Columns: []*schema.Column{PipelinesColumns[3]},
			},
			{
				Name:    "pipeline_session_id",
				Unique:  false,
				Columns: []*schema.Column{PipelinesColumns[2]},
			},
			{
				Name:    "pipeline_state_deadline",
				Unique:  false,
				Columns: []*schema.Column{PipelinesColumns[3], PipelinesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		JobsTable,
		PipelinesTable,
	}
)

func init() {
	JobsTable.ForeignKeys[0].RefTable = PipelinesTable
}
