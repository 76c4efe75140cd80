// Code generated by ent, DO NOT EDIT.

package job

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the job type in the database.
	Label = "job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldPipelineID holds the string denoting the pipeline_id field in the database.
	FieldPipelineID = "pipeline_id"
	// FieldParentJobID holds the string denoting the parent_job_id field in the database.
	FieldParentJobID = "parent_job_id"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldContext holds the string denoting the context field in the database.
	FieldContext = "context"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldAttemptCount holds the string denoting the attempt_count field in the database.
	FieldAttemptCount = "attempt_count"
	// FieldLeaseOwner holds the string denoting the lease_owner field in the database.
	FieldLeaseOwner = "lease_owner"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldLeasedAt holds the string denoting the leased_at field in the database.
	FieldLeasedAt = "leased_at"
	// FieldLeaseDeadline holds the string denoting the lease_deadline field in the database.
	FieldLeaseDeadline = "lease_deadline"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgePipeline holds the string denoting the pipeline edge name in mutations.
	EdgePipeline = "pipeline"
	// PipelineFieldID holds the string denoting the ID field of the Pipeline.
	PipelineFieldID = "pipeline_id"
	// Table holds the table name of the job in the database.
	Table = "jobs"
	// PipelineTable is the table that holds the pipeline relation/edge.
	PipelineTable = "jobs"
	// PipelineInverseTable is the table name for the Pipeline entity.
	// It exists in this package in order to avoid circular dependency with the "pipeline" package.
	PipelineInverseTable = "pipelines"
	// PipelineColumn is the table column denoting the pipeline relation/edge.
	PipelineColumn = "pipeline_id"
)

// Columns holds all SQL columns for job fields.
var Columns = []string{
	FieldID,
	FieldPipelineID,
	FieldParentJobID,
	FieldRole,
	FieldMode,
	FieldState,
	FieldPayload,
	FieldContext,
	FieldPriority,
	FieldSequence,
	FieldResult,
	FieldError,
	FieldAttemptCount,
	FieldLeaseOwner,
	FieldCreatedAt,
	FieldLeasedAt,
	FieldLeaseDeadline,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultAttemptCount holds the default value on creation for the "attempt_count" field.
	DefaultAttemptCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Role defines the type for the "role" enum field.
type Role string

// Role values.
const (
	RolePm         Role = "pm"
	RoleExcavator  Role = "excavator"
	RoleStrategist Role = "strategist"
	RoleCoder      Role = "coder"
	RoleQa         Role = "qa"
	RoleReviewer   Role = "reviewer"
	RoleResearcher Role = "researcher"
	RoleAnalyst    Role = "analyst"
	RoleStamp      Role = "stamp"
	RoleCouncil    Role = "council"
)

func (r Role) String() string {
	return string(r)
}

// RoleValidator is a validator for the "role" field enum values. It is called by the builders before save.
func RoleValidator(r Role) error {
	switch r {
	case RolePm, RoleExcavator, RoleStrategist, RoleCoder, RoleQa, RoleReviewer, RoleResearcher, RoleAnalyst, RoleStamp, RoleCouncil:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for role field: %q", r)
	}
}

// Mode defines the type for the "mode" enum field.
type Mode string

// ModeWorker is the default value of the Mode enum.
const DefaultMode = ModeWorker

// Mode values.
const (
	ModeWorker   Mode = "worker"
	ModeReviewer Mode = "reviewer"
)

func (m Mode) String() string {
	return string(m)
}

// ModeValidator is a validator for the "mode" field enum values. It is called by the builders before save.
func ModeValidator(m Mode) error {
	switch m {
	case ModeWorker, ModeReviewer:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for mode field: %q", m)
	}
}

// State defines the type for the "state" enum field.
type State string

// StatePending is the default value of the State enum.
const DefaultState = StatePending

// State values.
const (
	StatePending   State = "pending"
	StateLeased    State = "leased"
	StateSucceeded State = "succeeded"
	StateFailed    State = "failed"
	StateCancelled State = "cancelled"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePending, StateLeased, StateSucceeded, StateFailed, StateCancelled:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for state field: %q", s)
	}
}

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityMedium is the default value of the Priority enum.
const DefaultPriority = PriorityMedium

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return nil
	default:
		return fmt.Errorf("job: invalid enum value for priority field: %q", pr)
	}
}

// OrderOption defines the ordering options for the Job queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPipelineID orders the results by the pipeline_id field.
func ByPipelineID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineID, opts...).ToFunc()
}

// ByParentJobID orders the results by the parent_job_id field.
func ByParentJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentJobID, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByPayload orders the results by the payload field.
func ByPayload(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayload, opts...).ToFunc()
}

// ByContext orders the results by the context field.
func ByContext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContext, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByResult orders the results by the result field.
func ByResult(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResult, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByAttemptCount orders the results by the attempt_count field.
func ByAttemptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttemptCount, opts...).ToFunc()
}

// ByLeaseOwner orders the results by the lease_owner field.
func ByLeaseOwner(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseOwner, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByLeasedAt orders the results by the leased_at field.
func ByLeasedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeasedAt, opts...).ToFunc()
}

// ByLeaseDeadline orders the results by the lease_deadline field.
func ByLeaseDeadline(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeaseDeadline, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByPipelineField orders the results by pipeline field.
func ByPipelineField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPipelineStep(), sql.OrderByField(field, opts...))
	}
}
func newPipelineStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PipelineInverseTable, PipelineFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PipelineTable, PipelineColumn),
	)
}
