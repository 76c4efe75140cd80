// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/ent/pipeline"
	"github.com/maestroworks/maestro/ent/predicate"
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

// SetPipelineID sets the "pipeline_id" field.
func (_u *JobUpdate) SetPipelineID(v string) *JobUpdate {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePipelineID(v *string) *JobUpdate {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// SetParentJobID sets the "parent_job_id" field.
func (_u *JobUpdate) SetParentJobID(v string) *JobUpdate {
	_u.mutation.SetParentJobID(v)
	return _u
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_u *JobUpdate) SetNillableParentJobID(v *string) *JobUpdate {
	if v != nil {
		_u.SetParentJobID(*v)
	}
	return _u
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (_u *JobUpdate) ClearParentJobID() *JobUpdate {
	_u.mutation.ClearParentJobID()
	return _u
}

// SetRole sets the "role" field.
func (_u *JobUpdate) SetRole(v job.Role) *JobUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *JobUpdate) SetNillableRole(v *job.Role) *JobUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *JobUpdate) SetMode(v job.Mode) *JobUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *JobUpdate) SetNillableMode(v *job.Mode) *JobUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdate) SetState(v job.State) *JobUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdate) SetNillableState(v *job.State) *JobUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdate) SetPayload(v string) *JobUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePayload(v *string) *JobUpdate {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *JobUpdate) SetContext(v string) *JobUpdate {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *JobUpdate) SetNillableContext(v *string) *JobUpdate {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *JobUpdate) ClearContext() *JobUpdate {
	_u.mutation.ClearContext()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdate) SetPriority(v job.Priority) *JobUpdate {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdate) SetNillablePriority(v *job.Priority) *JobUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *JobUpdate) SetSequence(v int) *JobUpdate {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *JobUpdate) SetNillableSequence(v *int) *JobUpdate {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *JobUpdate) AddSequence(v int) *JobUpdate {
	_u.mutation.AddSequence(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdate) SetResult(v string) *JobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *JobUpdate) SetNillableResult(v *string) *JobUpdate {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdate) ClearResult() *JobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *JobUpdate) SetError(v string) *JobUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *JobUpdate) SetNillableError(v *string) *JobUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobUpdate) ClearError() *JobUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *JobUpdate) SetAttemptCount(v int) *JobUpdate {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *JobUpdate) SetNillableAttemptCount(v *int) *JobUpdate {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *JobUpdate) AddAttemptCount(v int) *JobUpdate {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *JobUpdate) SetLeaseOwner(v string) *JobUpdate {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeaseOwner(v *string) *JobUpdate {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *JobUpdate) ClearLeaseOwner() *JobUpdate {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeasedAt sets the "leased_at" field.
func (_u *JobUpdate) SetLeasedAt(v time.Time) *JobUpdate {
	_u.mutation.SetLeasedAt(v)
	return _u
}

// SetNillableLeasedAt sets the "leased_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeasedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLeasedAt(*v)
	}
	return _u
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (_u *JobUpdate) ClearLeasedAt() *JobUpdate {
	_u.mutation.ClearLeasedAt()
	return _u
}

// SetLeaseDeadline sets the "lease_deadline" field.
func (_u *JobUpdate) SetLeaseDeadline(v time.Time) *JobUpdate {
	_u.mutation.SetLeaseDeadline(v)
	return _u
}

// SetNillableLeaseDeadline sets the "lease_deadline" field if the given value is not nil.
func (_u *JobUpdate) SetNillableLeaseDeadline(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetLeaseDeadline(*v)
	}
	return _u
}

// ClearLeaseDeadline clears the value of the "lease_deadline" field.
func (_u *JobUpdate) ClearLeaseDeadline() *JobUpdate {
	_u.mutation.ClearLeaseDeadline()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobUpdate) SetFinishedAt(v time.Time) *JobUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobUpdate) SetNillableFinishedAt(v *time.Time) *JobUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobUpdate) ClearFinishedAt() *JobUpdate {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_u *JobUpdate) SetPipeline(v *Pipeline) *JobUpdate {
	return _u.SetPipelineID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdate) Mutation() *JobMutation {
	return _u.mutation
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (_u *JobUpdate) ClearPipeline() *JobUpdate {
	_u.mutation.ClearPipeline()
	return _u
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
	if v, ok := _u.mutation.Role(); ok {
		if err := job.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Job.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := job.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Job.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := job.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Job.priority": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.pipeline"`)
	}
	return nil
}

func (_u *JobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ParentJobID(); ok {
		_spec.SetField(job.FieldParentJobID, field.TypeString, value)
	}
	if _u.mutation.ParentJobIDCleared() {
		_spec.ClearField(job.FieldParentJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(job.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(job.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(job.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(job.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(job.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(job.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(job.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(job.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(job.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(job.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(job.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeasedAt(); ok {
		_spec.SetField(job.FieldLeasedAt, field.TypeTime, value)
	}
	if _u.mutation.LeasedAtCleared() {
		_spec.ClearField(job.FieldLeasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseDeadline(); ok {
		_spec.SetField(job.FieldLeaseDeadline, field.TypeTime, value)
	}
	if _u.mutation.LeaseDeadlineCleared() {
		_spec.ClearField(job.FieldLeaseDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(job.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.PipelineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.PipelineTable,
			Columns: []string{job.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.PipelineTable,
			Columns: []string{job.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString),
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

// SetPipelineID sets the "pipeline_id" field.
func (_u *JobUpdateOne) SetPipelineID(v string) *JobUpdateOne {
	_u.mutation.SetPipelineID(v)
	return _u
}

// SetNillablePipelineID sets the "pipeline_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePipelineID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPipelineID(*v)
	}
	return _u
}

// SetParentJobID sets the "parent_job_id" field.
func (_u *JobUpdateOne) SetParentJobID(v string) *JobUpdateOne {
	_u.mutation.SetParentJobID(v)
	return _u
}

// SetNillableParentJobID sets the "parent_job_id" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableParentJobID(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetParentJobID(*v)
	}
	return _u
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (_u *JobUpdateOne) ClearParentJobID() *JobUpdateOne {
	_u.mutation.ClearParentJobID()
	return _u
}

// SetRole sets the "role" field.
func (_u *JobUpdateOne) SetRole(v job.Role) *JobUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableRole(v *job.Role) *JobUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *JobUpdateOne) SetMode(v job.Mode) *JobUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableMode(v *job.Mode) *JobUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *JobUpdateOne) SetState(v job.State) *JobUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableState(v *job.State) *JobUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *JobUpdateOne) SetPayload(v string) *JobUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetNillablePayload sets the "payload" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePayload(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetPayload(*v)
	}
	return _u
}

// SetContext sets the "context" field.
func (_u *JobUpdateOne) SetContext(v string) *JobUpdateOne {
	_u.mutation.SetContext(v)
	return _u
}

// SetNillableContext sets the "context" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableContext(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetContext(*v)
	}
	return _u
}

// ClearContext clears the value of the "context" field.
func (_u *JobUpdateOne) ClearContext() *JobUpdateOne {
	_u.mutation.ClearContext()
	return _u
}

// SetPriority sets the "priority" field.
func (_u *JobUpdateOne) SetPriority(v job.Priority) *JobUpdateOne {
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillablePriority(v *job.Priority) *JobUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// SetSequence sets the "sequence" field.
func (_u *JobUpdateOne) SetSequence(v int) *JobUpdateOne {
	_u.mutation.ResetSequence()
	_u.mutation.SetSequence(v)
	return _u
}

// SetNillableSequence sets the "sequence" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableSequence(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetSequence(*v)
	}
	return _u
}

// AddSequence adds value to the "sequence" field.
func (_u *JobUpdateOne) AddSequence(v int) *JobUpdateOne {
	_u.mutation.AddSequence(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *JobUpdateOne) SetResult(v string) *JobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// SetNillableResult sets the "result" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableResult(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetResult(*v)
	}
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *JobUpdateOne) ClearResult() *JobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetError sets the "error" field.
func (_u *JobUpdateOne) SetError(v string) *JobUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableError(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *JobUpdateOne) ClearError() *JobUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetAttemptCount sets the "attempt_count" field.
func (_u *JobUpdateOne) SetAttemptCount(v int) *JobUpdateOne {
	_u.mutation.ResetAttemptCount()
	_u.mutation.SetAttemptCount(v)
	return _u
}

// SetNillableAttemptCount sets the "attempt_count" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableAttemptCount(v *int) *JobUpdateOne {
	if v != nil {
		_u.SetAttemptCount(*v)
	}
	return _u
}

// AddAttemptCount adds value to the "attempt_count" field.
func (_u *JobUpdateOne) AddAttemptCount(v int) *JobUpdateOne {
	_u.mutation.AddAttemptCount(v)
	return _u
}

// SetLeaseOwner sets the "lease_owner" field.
func (_u *JobUpdateOne) SetLeaseOwner(v string) *JobUpdateOne {
	_u.mutation.SetLeaseOwner(v)
	return _u
}

// SetNillableLeaseOwner sets the "lease_owner" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeaseOwner(v *string) *JobUpdateOne {
	if v != nil {
		_u.SetLeaseOwner(*v)
	}
	return _u
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (_u *JobUpdateOne) ClearLeaseOwner() *JobUpdateOne {
	_u.mutation.ClearLeaseOwner()
	return _u
}

// SetLeasedAt sets the "leased_at" field.
func (_u *JobUpdateOne) SetLeasedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetLeasedAt(v)
	return _u
}

// SetNillableLeasedAt sets the "leased_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeasedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLeasedAt(*v)
	}
	return _u
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (_u *JobUpdateOne) ClearLeasedAt() *JobUpdateOne {
	_u.mutation.ClearLeasedAt()
	return _u
}

// SetLeaseDeadline sets the "lease_deadline" field.
func (_u *JobUpdateOne) SetLeaseDeadline(v time.Time) *JobUpdateOne {
	_u.mutation.SetLeaseDeadline(v)
	return _u
}

// SetNillableLeaseDeadline sets the "lease_deadline" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableLeaseDeadline(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetLeaseDeadline(*v)
	}
	return _u
}

// ClearLeaseDeadline clears the value of the "lease_deadline" field.
func (_u *JobUpdateOne) ClearLeaseDeadline() *JobUpdateOne {
	_u.mutation.ClearLeaseDeadline()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *JobUpdateOne) SetFinishedAt(v time.Time) *JobUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *JobUpdateOne) SetNillableFinishedAt(v *time.Time) *JobUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (_u *JobUpdateOne) ClearFinishedAt() *JobUpdateOne {
	_u.mutation.ClearFinishedAt()
	return _u
}

// SetPipeline sets the "pipeline" edge to the Pipeline entity.
func (_u *JobUpdateOne) SetPipeline(v *Pipeline) *JobUpdateOne {
	return _u.SetPipelineID(v.ID)
}

// Mutation returns the JobMutation object of the builder.
func (_u *JobUpdateOne) Mutation() *JobMutation {
	return _u.mutation
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (_u *JobUpdateOne) ClearPipeline() *JobUpdateOne {
	_u.mutation.ClearPipeline()
	return _u
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
	if v, ok := _u.mutation.Role(); ok {
		if err := job.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "Job.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := job.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Job.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := job.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Job.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := job.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Job.priority": %w`, err)}
		}
	}
	if _u.mutation.PipelineCleared() && len(_u.mutation.PipelineIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Job.pipeline"`)
	}
	return nil
}

func (_u *JobUpdateOne) sqlSave(ctx context.Context) (_node *Job, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(job.Table, job.Columns, sqlgraph.NewFieldSpec(job.FieldID, field.TypeString))
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
	if value, ok := _u.mutation.ParentJobID(); ok {
		_spec.SetField(job.FieldParentJobID, field.TypeString, value)
	}
	if _u.mutation.ParentJobIDCleared() {
		_spec.ClearField(job.FieldParentJobID, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(job.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(job.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(job.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(job.FieldPayload, field.TypeString, value)
	}
	if value, ok := _u.mutation.Context(); ok {
		_spec.SetField(job.FieldContext, field.TypeString, value)
	}
	if _u.mutation.ContextCleared() {
		_spec.ClearField(job.FieldContext, field.TypeString)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(job.FieldPriority, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Sequence(); ok {
		_spec.SetField(job.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSequence(); ok {
		_spec.AddField(job.FieldSequence, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(job.FieldResult, field.TypeString, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(job.FieldResult, field.TypeString)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(job.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(job.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.AttemptCount(); ok {
		_spec.SetField(job.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttemptCount(); ok {
		_spec.AddField(job.FieldAttemptCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LeaseOwner(); ok {
		_spec.SetField(job.FieldLeaseOwner, field.TypeString, value)
	}
	if _u.mutation.LeaseOwnerCleared() {
		_spec.ClearField(job.FieldLeaseOwner, field.TypeString)
	}
	if value, ok := _u.mutation.LeasedAt(); ok {
		_spec.SetField(job.FieldLeasedAt, field.TypeTime, value)
	}
	if _u.mutation.LeasedAtCleared() {
		_spec.ClearField(job.FieldLeasedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.LeaseDeadline(); ok {
		_spec.SetField(job.FieldLeaseDeadline, field.TypeTime, value)
	}
	if _u.mutation.LeaseDeadlineCleared() {
		_spec.ClearField(job.FieldLeaseDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(job.FieldFinishedAt, field.TypeTime, value)
	}
	if _u.mutation.FinishedAtCleared() {
		_spec.ClearField(job.FieldFinishedAt, field.TypeTime)
	}
	if _u.mutation.PipelineCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.PipelineTable,
			Columns: []string{job.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PipelineIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   job.PipelineTable,
			Columns: []string{job.PipelineColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString),
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
