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

// PipelineUpdate is the builder for updating Pipeline entities.
type PipelineUpdate struct {
	config
	hooks    []Hook
	mutation *PipelineMutation
}

// Where appends a list predicates to the PipelineUpdate builder.
func (_u *PipelineUpdate) Where(ps ...predicate.Pipeline) *PipelineUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRootRequest sets the "root_request" field.
func (_u *PipelineUpdate) SetRootRequest(v string) *PipelineUpdate {
	_u.mutation.SetRootRequest(v)
	return _u
}

// SetNillableRootRequest sets the "root_request" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableRootRequest(v *string) *PipelineUpdate {
	if v != nil {
		_u.SetRootRequest(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PipelineUpdate) SetSessionID(v string) *PipelineUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableSessionID(v *string) *PipelineUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PipelineUpdate) ClearSessionID() *PipelineUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetState sets the "state" field.
func (_u *PipelineUpdate) SetState(v pipeline.State) *PipelineUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableState(v *pipeline.State) *PipelineUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetReworkRounds sets the "rework_rounds" field.
func (_u *PipelineUpdate) SetReworkRounds(v map[string]int) *PipelineUpdate {
	_u.mutation.SetReworkRounds(v)
	return _u
}

// ClearReworkRounds clears the value of the "rework_rounds" field.
func (_u *PipelineUpdate) ClearReworkRounds() *PipelineUpdate {
	_u.mutation.ClearReworkRounds()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *PipelineUpdate) SetCancelRequested(v bool) *PipelineUpdate {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableCancelRequested(v *bool) *PipelineUpdate {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetEscalationReason sets the "escalation_reason" field.
func (_u *PipelineUpdate) SetEscalationReason(v string) *PipelineUpdate {
	_u.mutation.SetEscalationReason(v)
	return _u
}

// SetNillableEscalationReason sets the "escalation_reason" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableEscalationReason(v *string) *PipelineUpdate {
	if v != nil {
		_u.SetEscalationReason(*v)
	}
	return _u
}

// ClearEscalationReason clears the value of the "escalation_reason" field.
func (_u *PipelineUpdate) ClearEscalationReason() *PipelineUpdate {
	_u.mutation.ClearEscalationReason()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *PipelineUpdate) SetDeadline(v time.Time) *PipelineUpdate {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *PipelineUpdate) SetNillableDeadline(v *time.Time) *PipelineUpdate {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *PipelineUpdate) ClearDeadline() *PipelineUpdate {
	_u.mutation.ClearDeadline()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineUpdate) SetUpdatedAt(v time.Time) *PipelineUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *PipelineUpdate) AddJobIDs(ids ...string) *PipelineUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *PipelineUpdate) AddJobs(v ...*Job) *PipelineUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PipelineMutation object of the builder.
func (_u *PipelineUpdate) Mutation() *PipelineMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *PipelineUpdate) ClearJobs() *PipelineUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *PipelineUpdate) RemoveJobIDs(ids ...string) *PipelineUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *PipelineUpdate) RemoveJobs(v ...*Job) *PipelineUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PipelineUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PipelineUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipeline.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineUpdate) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := pipeline.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Pipeline.state": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipeline.Table, pipeline.Columns, sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RootRequest(); ok {
		_spec.SetField(pipeline.FieldRootRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(pipeline.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(pipeline.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(pipeline.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReworkRounds(); ok {
		_spec.SetField(pipeline.FieldReworkRounds, field.TypeJSON, value)
	}
	if _u.mutation.ReworkRoundsCleared() {
		_spec.ClearField(pipeline.FieldReworkRounds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(pipeline.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EscalationReason(); ok {
		_spec.SetField(pipeline.FieldEscalationReason, field.TypeString, value)
	}
	if _u.mutation.EscalationReasonCleared() {
		_spec.ClearField(pipeline.FieldEscalationReason, field.TypeString)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(pipeline.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(pipeline.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipeline.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.JobsTable,
			Columns: []string{pipeline.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.JobsTable,
			Columns: []string{pipeline.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.JobsTable,
			Columns: []string{pipeline.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipeline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PipelineUpdateOne is the builder for updating a single Pipeline entity.
type PipelineUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PipelineMutation
}

// SetRootRequest sets the "root_request" field.
func (_u *PipelineUpdateOne) SetRootRequest(v string) *PipelineUpdateOne {
	_u.mutation.SetRootRequest(v)
	return _u
}

// SetNillableRootRequest sets the "root_request" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableRootRequest(v *string) *PipelineUpdateOne {
	if v != nil {
		_u.SetRootRequest(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *PipelineUpdateOne) SetSessionID(v string) *PipelineUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableSessionID(v *string) *PipelineUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *PipelineUpdateOne) ClearSessionID() *PipelineUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetState sets the "state" field.
func (_u *PipelineUpdateOne) SetState(v pipeline.State) *PipelineUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableState(v *pipeline.State) *PipelineUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetReworkRounds sets the "rework_rounds" field.
func (_u *PipelineUpdateOne) SetReworkRounds(v map[string]int) *PipelineUpdateOne {
	_u.mutation.SetReworkRounds(v)
	return _u
}

// ClearReworkRounds clears the value of the "rework_rounds" field.
func (_u *PipelineUpdateOne) ClearReworkRounds() *PipelineUpdateOne {
	_u.mutation.ClearReworkRounds()
	return _u
}

// SetCancelRequested sets the "cancel_requested" field.
func (_u *PipelineUpdateOne) SetCancelRequested(v bool) *PipelineUpdateOne {
	_u.mutation.SetCancelRequested(v)
	return _u
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableCancelRequested(v *bool) *PipelineUpdateOne {
	if v != nil {
		_u.SetCancelRequested(*v)
	}
	return _u
}

// SetEscalationReason sets the "escalation_reason" field.
func (_u *PipelineUpdateOne) SetEscalationReason(v string) *PipelineUpdateOne {
	_u.mutation.SetEscalationReason(v)
	return _u
}

// SetNillableEscalationReason sets the "escalation_reason" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableEscalationReason(v *string) *PipelineUpdateOne {
	if v != nil {
		_u.SetEscalationReason(*v)
	}
	return _u
}

// ClearEscalationReason clears the value of the "escalation_reason" field.
func (_u *PipelineUpdateOne) ClearEscalationReason() *PipelineUpdateOne {
	_u.mutation.ClearEscalationReason()
	return _u
}

// SetDeadline sets the "deadline" field.
func (_u *PipelineUpdateOne) SetDeadline(v time.Time) *PipelineUpdateOne {
	_u.mutation.SetDeadline(v)
	return _u
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_u *PipelineUpdateOne) SetNillableDeadline(v *time.Time) *PipelineUpdateOne {
	if v != nil {
		_u.SetDeadline(*v)
	}
	return _u
}

// ClearDeadline clears the value of the "deadline" field.
func (_u *PipelineUpdateOne) ClearDeadline() *PipelineUpdateOne {
	_u.mutation.ClearDeadline()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PipelineUpdateOne) SetUpdatedAt(v time.Time) *PipelineUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_u *PipelineUpdateOne) AddJobIDs(ids ...string) *PipelineUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_u *PipelineUpdateOne) AddJobs(v ...*Job) *PipelineUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PipelineMutation object of the builder.
func (_u *PipelineUpdateOne) Mutation() *PipelineMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the Job entity.
func (_u *PipelineUpdateOne) ClearJobs() *PipelineUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to Job entities by IDs.
func (_u *PipelineUpdateOne) RemoveJobIDs(ids ...string) *PipelineUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to Job entities.
func (_u *PipelineUpdateOne) RemoveJobs(v ...*Job) *PipelineUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the PipelineUpdate builder.
func (_u *PipelineUpdateOne) Where(ps ...predicate.Pipeline) *PipelineUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PipelineUpdateOne) Select(field string, fields ...string) *PipelineUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Pipeline entity.
func (_u *PipelineUpdateOne) Save(ctx context.Context) (*Pipeline, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PipelineUpdateOne) SaveX(ctx context.Context) *Pipeline {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PipelineUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PipelineUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PipelineUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := pipeline.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PipelineUpdateOne) check() error {
	if v, ok := _u.mutation.State(); ok {
		if err := pipeline.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Pipeline.state": %w`, err)}
		}
	}
	return nil
}

func (_u *PipelineUpdateOne) sqlSave(ctx context.Context) (_node *Pipeline, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(pipeline.Table, pipeline.Columns, sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Pipeline.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pipeline.FieldID)
		for _, f := range fields {
			if !pipeline.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pipeline.FieldID {
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
	if value, ok := _u.mutation.RootRequest(); ok {
		_spec.SetField(pipeline.FieldRootRequest, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(pipeline.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(pipeline.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(pipeline.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ReworkRounds(); ok {
		_spec.SetField(pipeline.FieldReworkRounds, field.TypeJSON, value)
	}
	if _u.mutation.ReworkRoundsCleared() {
		_spec.ClearField(pipeline.FieldReworkRounds, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelRequested(); ok {
		_spec.SetField(pipeline.FieldCancelRequested, field.TypeBool, value)
	}
	if value, ok := _u.mutation.EscalationReason(); ok {
		_spec.SetField(pipeline.FieldEscalationReason, field.TypeString, value)
	}
	if _u.mutation.EscalationReasonCleared() {
		_spec.ClearField(pipeline.FieldEscalationReason, field.TypeString)
	}
	if value, ok := _u.mutation.Deadline(); ok {
		_spec.SetField(pipeline.FieldDeadline, field.TypeTime, value)
	}
	if _u.mutation.DeadlineCleared() {
		_spec.ClearField(pipeline.FieldDeadline, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(pipeline.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.JobsTable,
			Columns: []string{pipeline.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.JobsTable,
			Columns: []string{pipeline.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   pipeline.JobsTable,
			Columns: []string{pipeline.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(job.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Pipeline{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pipeline.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
