// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/ent/pipeline"
)

// PipelineCreate is the builder for creating a Pipeline entity.
type PipelineCreate struct {
	config
	mutation *PipelineMutation
	hooks    []Hook
}

// SetRootRequest sets the "root_request" field.
func (_c *PipelineCreate) SetRootRequest(v string) *PipelineCreate {
	_c.mutation.SetRootRequest(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *PipelineCreate) SetSessionID(v string) *PipelineCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *PipelineCreate) SetNillableSessionID(v *string) *PipelineCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetState sets the "state" field.
func (_c *PipelineCreate) SetState(v pipeline.State) *PipelineCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *PipelineCreate) SetNillableState(v *pipeline.State) *PipelineCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetReworkRounds sets the "rework_rounds" field.
func (_c *PipelineCreate) SetReworkRounds(v map[string]int) *PipelineCreate {
	_c.mutation.SetReworkRounds(v)
	return _c
}

// SetCancelRequested sets the "cancel_requested" field.
func (_c *PipelineCreate) SetCancelRequested(v bool) *PipelineCreate {
	_c.mutation.SetCancelRequested(v)
	return _c
}

// SetNillableCancelRequested sets the "cancel_requested" field if the given value is not nil.
func (_c *PipelineCreate) SetNillableCancelRequested(v *bool) *PipelineCreate {
	if v != nil {
		_c.SetCancelRequested(*v)
	}
	return _c
}

// SetEscalationReason sets the "escalation_reason" field.
func (_c *PipelineCreate) SetEscalationReason(v string) *PipelineCreate {
	_c.mutation.SetEscalationReason(v)
	return _c
}

// SetNillableEscalationReason sets the "escalation_reason" field if the given value is not nil.
func (_c *PipelineCreate) SetNillableEscalationReason(v *string) *PipelineCreate {
	if v != nil {
		_c.SetEscalationReason(*v)
	}
	return _c
}

// SetDeadline sets the "deadline" field.
func (_c *PipelineCreate) SetDeadline(v time.Time) *PipelineCreate {
	_c.mutation.SetDeadline(v)
	return _c
}

// SetNillableDeadline sets the "deadline" field if the given value is not nil.
func (_c *PipelineCreate) SetNillableDeadline(v *time.Time) *PipelineCreate {
	if v != nil {
		_c.SetDeadline(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PipelineCreate) SetCreatedAt(v time.Time) *PipelineCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PipelineCreate) SetNillableCreatedAt(v *time.Time) *PipelineCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PipelineCreate) SetUpdatedAt(v time.Time) *PipelineCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PipelineCreate) SetNillableUpdatedAt(v *time.Time) *PipelineCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PipelineCreate) SetID(v string) *PipelineCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddJobIDs adds the "jobs" edge to the Job entity by IDs.
func (_c *PipelineCreate) AddJobIDs(ids ...string) *PipelineCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the Job entity.
func (_c *PipelineCreate) AddJobs(v ...*Job) *PipelineCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the PipelineMutation object of the builder.
func (_c *PipelineCreate) Mutation() *PipelineMutation {
	return _c.mutation
}

// Save creates the Pipeline in the database.
func (_c *PipelineCreate) Save(ctx context.Context) (*Pipeline, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PipelineCreate) SaveX(ctx context.Context) *Pipeline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PipelineCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := pipeline.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		v := pipeline.DefaultCancelRequested
		_c.mutation.SetCancelRequested(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := pipeline.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := pipeline.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PipelineCreate) check() error {
	if _, ok := _c.mutation.RootRequest(); !ok {
		return &ValidationError{Name: "root_request", err: errors.New(`ent: missing required field "Pipeline.root_request"`)}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Pipeline.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := pipeline.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Pipeline.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CancelRequested(); !ok {
		return &ValidationError{Name: "cancel_requested", err: errors.New(`ent: missing required field "Pipeline.cancel_requested"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Pipeline.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Pipeline.updated_at"`)}
	}
	return nil
}

func (_c *PipelineCreate) sqlSave(ctx context.Context) (*Pipeline, error) {
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
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Pipeline.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PipelineCreate) createSpec() (*Pipeline, *sqlgraph.CreateSpec) {
	var (
		_node = &Pipeline{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(pipeline.Table, sqlgraph.NewFieldSpec(pipeline.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RootRequest(); ok {
		_spec.SetField(pipeline.FieldRootRequest, field.TypeString, value)
		_node.RootRequest = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(pipeline.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(pipeline.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.ReworkRounds(); ok {
		_spec.SetField(pipeline.FieldReworkRounds, field.TypeJSON, value)
		_node.ReworkRounds = value
	}
	if value, ok := _c.mutation.CancelRequested(); ok {
		_spec.SetField(pipeline.FieldCancelRequested, field.TypeBool, value)
		_node.CancelRequested = value
	}
	if value, ok := _c.mutation.EscalationReason(); ok {
		_spec.SetField(pipeline.FieldEscalationReason, field.TypeString, value)
		_node.EscalationReason = &value
	}
	if value, ok := _c.mutation.Deadline(); ok {
		_spec.SetField(pipeline.FieldDeadline, field.TypeTime, value)
		_node.Deadline = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(pipeline.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(pipeline.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PipelineCreateBulk is the builder for creating many Pipeline entities in bulk.
type PipelineCreateBulk struct {
	config
	err      error
	builders []*PipelineCreate
}

// Save creates the Pipeline entities in the database.
func (_c *PipelineCreateBulk) Save(ctx context.Context) ([]*Pipeline, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Pipeline, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PipelineMutation)
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
func (_c *PipelineCreateBulk) SaveX(ctx context.Context) []*Pipeline {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PipelineCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PipelineCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
