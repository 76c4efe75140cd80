// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestroworks/maestro/ent/job"
	"github.com/maestroworks/maestro/ent/pipeline"
	"github.com/maestroworks/maestro/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeJob      = "Job"
	TypePipeline = "Pipeline"
)

// JobMutation represents an operation that mutates the Job nodes in the graph.
type JobMutation struct {
	config
	op               Op
	typ              string
	id               *string
	parent_job_id    *string
	role             *job.Role
	mode             *job.Mode
	state            *job.State
	payload          *string
	context          *string
	priority         *job.Priority
	sequence         *int
	addsequence      *int
	result           *string
	error            *string
	attempt_count    *int
	addattempt_count *int
	lease_owner      *string
	created_at       *time.Time
	leased_at        *time.Time
	lease_deadline   *time.Time
	finished_at      *time.Time
	clearedFields    map[string]struct{}
	pipeline         *string
	clearedpipeline  bool
	done             bool
	oldValue         func(context.Context) (*Job, error)
	predicates       []predicate.Job
}

var _ ent.Mutation = (*JobMutation)(nil)

// jobOption allows management of the mutation configuration using functional options.
type jobOption func(*JobMutation)

// newJobMutation creates new mutation for the Job entity.
func newJobMutation(c config, op Op, opts ...jobOption) *JobMutation {
	m := &JobMutation{
		config:        c,
		op:            op,
		typ:           TypeJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withJobID sets the ID field of the mutation.
func withJobID(id string) jobOption {
	return func(m *JobMutation) {
		var (
			err   error
			once  sync.Once
			value *Job
		)
		m.oldValue = func(ctx context.Context) (*Job, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Job.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withJob sets the old Job of the mutation.
func withJob(node *Job) jobOption {
	return func(m *JobMutation) {
		m.oldValue = func(context.Context) (*Job, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m JobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m JobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Job entities.
func (m *JobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *JobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *JobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Job.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPipelineID sets the "pipeline_id" field.
func (m *JobMutation) SetPipelineID(s string) {
	m.pipeline = &s
}

// PipelineID returns the value of the "pipeline_id" field in the mutation.
func (m *JobMutation) PipelineID() (r string, exists bool) {
	v := m.pipeline
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineID returns the old "pipeline_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPipelineID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineID: %w", err)
	}
	return oldValue.PipelineID, nil
}

// ResetPipelineID resets all changes to the "pipeline_id" field.
func (m *JobMutation) ResetPipelineID() {
	m.pipeline = nil
}

// SetParentJobID sets the "parent_job_id" field.
func (m *JobMutation) SetParentJobID(s string) {
	m.parent_job_id = &s
}

// ParentJobID returns the value of the "parent_job_id" field in the mutation.
func (m *JobMutation) ParentJobID() (r string, exists bool) {
	v := m.parent_job_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentJobID returns the old "parent_job_id" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldParentJobID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentJobID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentJobID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentJobID: %w", err)
	}
	return oldValue.ParentJobID, nil
}

// ClearParentJobID clears the value of the "parent_job_id" field.
func (m *JobMutation) ClearParentJobID() {
	m.parent_job_id = nil
	m.clearedFields[job.FieldParentJobID] = struct{}{}
}

// ParentJobIDCleared returns if the "parent_job_id" field was cleared in this mutation.
func (m *JobMutation) ParentJobIDCleared() bool {
	_, ok := m.clearedFields[job.FieldParentJobID]
	return ok
}

// ResetParentJobID resets all changes to the "parent_job_id" field.
func (m *JobMutation) ResetParentJobID() {
	m.parent_job_id = nil
	delete(m.clearedFields, job.FieldParentJobID)
}

// SetRole sets the "role" field.
func (m *JobMutation) SetRole(j job.Role) {
	m.role = &j
}

// Role returns the value of the "role" field in the mutation.
func (m *JobMutation) Role() (r job.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldRole(ctx context.Context) (v job.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *JobMutation) ResetRole() {
	m.role = nil
}

// SetMode sets the "mode" field.
func (m *JobMutation) SetMode(j job.Mode) {
	m.mode = &j
}

// Mode returns the value of the "mode" field in the mutation.
func (m *JobMutation) Mode() (r job.Mode, exists bool) {
	v := m.mode
	if v == nil {
		return
	}
	return *v, true
}

// OldMode returns the old "mode" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldMode(ctx context.Context) (v job.Mode, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMode: %w", err)
	}
	return oldValue.Mode, nil
}

// ResetMode resets all changes to the "mode" field.
func (m *JobMutation) ResetMode() {
	m.mode = nil
}

// SetState sets the "state" field.
func (m *JobMutation) SetState(j job.State) {
	m.state = &j
}

// State returns the value of the "state" field in the mutation.
func (m *JobMutation) State() (r job.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldState(ctx context.Context) (v job.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *JobMutation) ResetState() {
	m.state = nil
}

// SetPayload sets the "payload" field.
func (m *JobMutation) SetPayload(s string) {
	m.payload = &s
}

// Payload returns the value of the "payload" field in the mutation.
func (m *JobMutation) Payload() (r string, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPayload(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *JobMutation) ResetPayload() {
	m.payload = nil
}

// SetContext sets the "context" field.
func (m *JobMutation) SetContext(s string) {
	m.context = &s
}

// Context returns the value of the "context" field in the mutation.
func (m *JobMutation) Context() (r string, exists bool) {
	v := m.context
	if v == nil {
		return
	}
	return *v, true
}

// OldContext returns the old "context" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldContext(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContext: %w", err)
	}
	return oldValue.Context, nil
}

// ClearContext clears the value of the "context" field.
func (m *JobMutation) ClearContext() {
	m.context = nil
	m.clearedFields[job.FieldContext] = struct{}{}
}

// ContextCleared returns if the "context" field was cleared in this mutation.
func (m *JobMutation) ContextCleared() bool {
	_, ok := m.clearedFields[job.FieldContext]
	return ok
}

// ResetContext resets all changes to the "context" field.
func (m *JobMutation) ResetContext() {
	m.context = nil
	delete(m.clearedFields, job.FieldContext)
}

// SetPriority sets the "priority" field.
func (m *JobMutation) SetPriority(j job.Priority) {
	m.priority = &j
}

// Priority returns the value of the "priority" field in the mutation.
func (m *JobMutation) Priority() (r job.Priority, exists bool) {
	v := m.priority
	if v == nil {
		return
	}
	return *v, true
}

// OldPriority returns the old "priority" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldPriority(ctx context.Context) (v job.Priority, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriority is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriority requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriority: %w", err)
	}
	return oldValue.Priority, nil
}

// ResetPriority resets all changes to the "priority" field.
func (m *JobMutation) ResetPriority() {
	m.priority = nil
}

// SetSequence sets the "sequence" field.
func (m *JobMutation) SetSequence(i int) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *JobMutation) Sequence() (r int, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldSequence(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *JobMutation) AddSequence(i int) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *JobMutation) AddedSequence() (r int, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *JobMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetResult sets the "result" field.
func (m *JobMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *JobMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *JobMutation) ClearResult() {
	m.result = nil
	m.clearedFields[job.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *JobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[job.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *JobMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, job.FieldResult)
}

// SetError sets the "error" field.
func (m *JobMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *JobMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldError(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *JobMutation) ClearError() {
	m.error = nil
	m.clearedFields[job.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *JobMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[job.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *JobMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, job.FieldError)
}

// SetAttemptCount sets the "attempt_count" field.
func (m *JobMutation) SetAttemptCount(i int) {
	m.attempt_count = &i
	m.addattempt_count = nil
}

// AttemptCount returns the value of the "attempt_count" field in the mutation.
func (m *JobMutation) AttemptCount() (r int, exists bool) {
	v := m.attempt_count
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptCount returns the old "attempt_count" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldAttemptCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptCount: %w", err)
	}
	return oldValue.AttemptCount, nil
}

// AddAttemptCount adds i to the "attempt_count" field.
func (m *JobMutation) AddAttemptCount(i int) {
	if m.addattempt_count != nil {
		*m.addattempt_count += i
	} else {
		m.addattempt_count = &i
	}
}

// AddedAttemptCount returns the value that was added to the "attempt_count" field in this mutation.
func (m *JobMutation) AddedAttemptCount() (r int, exists bool) {
	v := m.addattempt_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttemptCount resets all changes to the "attempt_count" field.
func (m *JobMutation) ResetAttemptCount() {
	m.attempt_count = nil
	m.addattempt_count = nil
}

// SetLeaseOwner sets the "lease_owner" field.
func (m *JobMutation) SetLeaseOwner(s string) {
	m.lease_owner = &s
}

// LeaseOwner returns the value of the "lease_owner" field in the mutation.
func (m *JobMutation) LeaseOwner() (r string, exists bool) {
	v := m.lease_owner
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseOwner returns the old "lease_owner" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseOwner(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseOwner is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseOwner requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseOwner: %w", err)
	}
	return oldValue.LeaseOwner, nil
}

// ClearLeaseOwner clears the value of the "lease_owner" field.
func (m *JobMutation) ClearLeaseOwner() {
	m.lease_owner = nil
	m.clearedFields[job.FieldLeaseOwner] = struct{}{}
}

// LeaseOwnerCleared returns if the "lease_owner" field was cleared in this mutation.
func (m *JobMutation) LeaseOwnerCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseOwner]
	return ok
}

// ResetLeaseOwner resets all changes to the "lease_owner" field.
func (m *JobMutation) ResetLeaseOwner() {
	m.lease_owner = nil
	delete(m.clearedFields, job.FieldLeaseOwner)
}

// SetCreatedAt sets the "created_at" field.
func (m *JobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *JobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *JobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetLeasedAt sets the "leased_at" field.
func (m *JobMutation) SetLeasedAt(t time.Time) {
	m.leased_at = &t
}

// LeasedAt returns the value of the "leased_at" field in the mutation.
func (m *JobMutation) LeasedAt() (r time.Time, exists bool) {
	v := m.leased_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLeasedAt returns the old "leased_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeasedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeasedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeasedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeasedAt: %w", err)
	}
	return oldValue.LeasedAt, nil
}

// ClearLeasedAt clears the value of the "leased_at" field.
func (m *JobMutation) ClearLeasedAt() {
	m.leased_at = nil
	m.clearedFields[job.FieldLeasedAt] = struct{}{}
}

// LeasedAtCleared returns if the "leased_at" field was cleared in this mutation.
func (m *JobMutation) LeasedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldLeasedAt]
	return ok
}

// ResetLeasedAt resets all changes to the "leased_at" field.
func (m *JobMutation) ResetLeasedAt() {
	m.leased_at = nil
	delete(m.clearedFields, job.FieldLeasedAt)
}

// SetLeaseDeadline sets the "lease_deadline" field.
func (m *JobMutation) SetLeaseDeadline(t time.Time) {
	m.lease_deadline = &t
}

// LeaseDeadline returns the value of the "lease_deadline" field in the mutation.
func (m *JobMutation) LeaseDeadline() (r time.Time, exists bool) {
	v := m.lease_deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldLeaseDeadline returns the old "lease_deadline" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldLeaseDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLeaseDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLeaseDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLeaseDeadline: %w", err)
	}
	return oldValue.LeaseDeadline, nil
}

// ClearLeaseDeadline clears the value of the "lease_deadline" field.
func (m *JobMutation) ClearLeaseDeadline() {
	m.lease_deadline = nil
	m.clearedFields[job.FieldLeaseDeadline] = struct{}{}
}

// LeaseDeadlineCleared returns if the "lease_deadline" field was cleared in this mutation.
func (m *JobMutation) LeaseDeadlineCleared() bool {
	_, ok := m.clearedFields[job.FieldLeaseDeadline]
	return ok
}

// ResetLeaseDeadline resets all changes to the "lease_deadline" field.
func (m *JobMutation) ResetLeaseDeadline() {
	m.lease_deadline = nil
	delete(m.clearedFields, job.FieldLeaseDeadline)
}

// SetFinishedAt sets the "finished_at" field.
func (m *JobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *JobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Job entity.
// If the Job object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *JobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *JobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[job.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *JobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[job.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *JobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, job.FieldFinishedAt)
}

// ClearPipeline clears the "pipeline" edge to the Pipeline entity.
func (m *JobMutation) ClearPipeline() {
	m.clearedpipeline = true
	m.clearedFields[job.FieldPipelineID] = struct{}{}
}

// PipelineCleared reports if the "pipeline" edge to the Pipeline entity was cleared.
func (m *JobMutation) PipelineCleared() bool {
	return m.clearedpipeline
}

// PipelineIDs returns the "pipeline" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PipelineID instead. It exists only for internal usage by the builders.
func (m *JobMutation) PipelineIDs() (ids []string) {
	if id := m.pipeline; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPipeline resets all changes to the "pipeline" edge.
func (m *JobMutation) ResetPipeline() {
	m.pipeline = nil
	m.clearedpipeline = false
}

// Where appends a list predicates to the JobMutation builder.
func (m *JobMutation) Where(ps ...predicate.Job) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the JobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *JobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Job, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *JobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *JobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Job).
func (m *JobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *JobMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.pipeline != nil {
		fields = append(fields, job.FieldPipelineID)
	}
	if m.parent_job_id != nil {
		fields = append(fields, job.FieldParentJobID)
	}
	if m.role != nil {
		fields = append(fields, job.FieldRole)
	}
	if m.mode != nil {
		fields = append(fields, job.FieldMode)
	}
	if m.state != nil {
		fields = append(fields, job.FieldState)
	}
	if m.payload != nil {
		fields = append(fields, job.FieldPayload)
	}
	if m.context != nil {
		fields = append(fields, job.FieldContext)
	}
	if m.priority != nil {
		fields = append(fields, job.FieldPriority)
	}
	if m.sequence != nil {
		fields = append(fields, job.FieldSequence)
	}
	if m.result != nil {
		fields = append(fields, job.FieldResult)
	}
	if m.error != nil {
		fields = append(fields, job.FieldError)
	}
	if m.attempt_count != nil {
		fields = append(fields, job.FieldAttemptCount)
	}
	if m.lease_owner != nil {
		fields = append(fields, job.FieldLeaseOwner)
	}
	if m.created_at != nil {
		fields = append(fields, job.FieldCreatedAt)
	}
	if m.leased_at != nil {
		fields = append(fields, job.FieldLeasedAt)
	}
	if m.lease_deadline != nil {
		fields = append(fields, job.FieldLeaseDeadline)
	}
	if m.finished_at != nil {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *JobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case job.FieldPipelineID:
		return m.PipelineID()
	case job.FieldParentJobID:
		return m.ParentJobID()
	case job.FieldRole:
		return m.Role()
	case job.FieldMode:
		return m.Mode()
	case job.FieldState:
		return m.State()
	case job.FieldPayload:
		return m.Payload()
	case job.FieldContext:
		return m.Context()
	case job.FieldPriority:
		return m.Priority()
	case job.FieldSequence:
		return m.Sequence()
	case job.FieldResult:
		return m.Result()
	case job.FieldError:
		return m.Error()
	case job.FieldAttemptCount:
		return m.AttemptCount()
	case job.FieldLeaseOwner:
		return m.LeaseOwner()
	case job.FieldCreatedAt:
		return m.CreatedAt()
	case job.FieldLeasedAt:
		return m.LeasedAt()
	case job.FieldLeaseDeadline:
		return m.LeaseDeadline()
	case job.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *JobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case job.FieldPipelineID:
		return m.OldPipelineID(ctx)
	case job.FieldParentJobID:
		return m.OldParentJobID(ctx)
	case job.FieldRole:
		return m.OldRole(ctx)
	case job.FieldMode:
		return m.OldMode(ctx)
	case job.FieldState:
		return m.OldState(ctx)
	case job.FieldPayload:
		return m.OldPayload(ctx)
	case job.FieldContext:
		return m.OldContext(ctx)
	case job.FieldPriority:
		return m.OldPriority(ctx)
	case job.FieldSequence:
		return m.OldSequence(ctx)
	case job.FieldResult:
		return m.OldResult(ctx)
	case job.FieldError:
		return m.OldError(ctx)
	case job.FieldAttemptCount:
		return m.OldAttemptCount(ctx)
	case job.FieldLeaseOwner:
		return m.OldLeaseOwner(ctx)
	case job.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case job.FieldLeasedAt:
		return m.OldLeasedAt(ctx)
	case job.FieldLeaseDeadline:
		return m.OldLeaseDeadline(ctx)
	case job.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Job field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case job.FieldPipelineID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineID(v)
		return nil
	case job.FieldParentJobID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentJobID(v)
		return nil
	case job.FieldRole:
		v, ok := value.(job.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case job.FieldMode:
		v, ok := value.(job.Mode)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMode(v)
		return nil
	case job.FieldState:
		v, ok := value.(job.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case job.FieldPayload:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case job.FieldContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContext(v)
		return nil
	case job.FieldPriority:
		v, ok := value.(job.Priority)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriority(v)
		return nil
	case job.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case job.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case job.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case job.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptCount(v)
		return nil
	case job.FieldLeaseOwner:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseOwner(v)
		return nil
	case job.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case job.FieldLeasedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeasedAt(v)
		return nil
	case job.FieldLeaseDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLeaseDeadline(v)
		return nil
	case job.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *JobMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, job.FieldSequence)
	}
	if m.addattempt_count != nil {
		fields = append(fields, job.FieldAttemptCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *JobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case job.FieldSequence:
		return m.AddedSequence()
	case job.FieldAttemptCount:
		return m.AddedAttemptCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *JobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case job.FieldSequence:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	case job.FieldAttemptCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttemptCount(v)
		return nil
	}
	return fmt.Errorf("unknown Job numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *JobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(job.FieldParentJobID) {
		fields = append(fields, job.FieldParentJobID)
	}
	if m.FieldCleared(job.FieldContext) {
		fields = append(fields, job.FieldContext)
	}
	if m.FieldCleared(job.FieldResult) {
		fields = append(fields, job.FieldResult)
	}
	if m.FieldCleared(job.FieldError) {
		fields = append(fields, job.FieldError)
	}
	if m.FieldCleared(job.FieldLeaseOwner) {
		fields = append(fields, job.FieldLeaseOwner)
	}
	if m.FieldCleared(job.FieldLeasedAt) {
		fields = append(fields, job.FieldLeasedAt)
	}
	if m.FieldCleared(job.FieldLeaseDeadline) {
		fields = append(fields, job.FieldLeaseDeadline)
	}
	if m.FieldCleared(job.FieldFinishedAt) {
		fields = append(fields, job.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *JobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *JobMutation) ClearField(name string) error {
	switch name {
	case job.FieldParentJobID:
		m.ClearParentJobID()
		return nil
	case job.FieldContext:
		m.ClearContext()
		return nil
	case job.FieldResult:
		m.ClearResult()
		return nil
	case job.FieldError:
		m.ClearError()
		return nil
	case job.FieldLeaseOwner:
		m.ClearLeaseOwner()
		return nil
	case job.FieldLeasedAt:
		m.ClearLeasedAt()
		return nil
	case job.FieldLeaseDeadline:
		m.ClearLeaseDeadline()
		return nil
	case job.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *JobMutation) ResetField(name string) error {
	switch name {
	case job.FieldPipelineID:
		m.ResetPipelineID()
		return nil
	case job.FieldParentJobID:
		m.ResetParentJobID()
		return nil
	case job.FieldRole:
		m.ResetRole()
		return nil
	case job.FieldMode:
		m.ResetMode()
		return nil
	case job.FieldState:
		m.ResetState()
		return nil
	case job.FieldPayload:
		m.ResetPayload()
		return nil
	case job.FieldContext:
		m.ResetContext()
		return nil
	case job.FieldPriority:
		m.ResetPriority()
		return nil
	case job.FieldSequence:
		m.ResetSequence()
		return nil
	case job.FieldResult:
		m.ResetResult()
		return nil
	case job.FieldError:
		m.ResetError()
		return nil
	case job.FieldAttemptCount:
		m.ResetAttemptCount()
		return nil
	case job.FieldLeaseOwner:
		m.ResetLeaseOwner()
		return nil
	case job.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case job.FieldLeasedAt:
		m.ResetLeasedAt()
		return nil
	case job.FieldLeaseDeadline:
		m.ResetLeaseDeadline()
		return nil
	case job.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Job field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *JobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.pipeline != nil {
		edges = append(edges, job.EdgePipeline)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *JobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case job.EdgePipeline:
		if id := m.pipeline; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *JobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *JobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *JobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedpipeline {
		edges = append(edges, job.EdgePipeline)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *JobMutation) EdgeCleared(name string) bool {
	switch name {
	case job.EdgePipeline:
		return m.clearedpipeline
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *JobMutation) ClearEdge(name string) error {
	switch name {
	case job.EdgePipeline:
		m.ClearPipeline()
		return nil
	}
	return fmt.Errorf("unknown Job unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *JobMutation) ResetEdge(name string) error {
	switch name {
	case job.EdgePipeline:
		m.ResetPipeline()
		return nil
	}
	return fmt.Errorf("unknown Job edge %s", name)
}

// PipelineMutation represents an operation that mutates the Pipeline nodes in the graph.
type PipelineMutation struct {
	config
	op                Op
	typ               string
	id                *string
	root_request      *string
	session_id        *string
	state             *pipeline.State
	rework_rounds     *map[string]int
	cancel_requested  *bool
	escalation_reason *string
	deadline          *time.Time
	created_at        *time.Time
	updated_at        *time.Time
	clearedFields     map[string]struct{}
	jobs              map[string]struct{}
	removedjobs       map[string]struct{}
	clearedjobs       bool
	done              bool
	oldValue          func(context.Context) (*Pipeline, error)
	predicates        []predicate.Pipeline
}

var _ ent.Mutation = (*PipelineMutation)(nil)

// pipelineOption allows management of the mutation configuration using functional options.
type pipelineOption func(*PipelineMutation)

// newPipelineMutation creates new mutation for the Pipeline entity.
func newPipelineMutation(c config, op Op, opts ...pipelineOption) *PipelineMutation {
	m := &PipelineMutation{
		config:        c,
		op:            op,
		typ:           TypePipeline,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPipelineID sets the ID field of the mutation.
func withPipelineID(id string) pipelineOption {
	return func(m *PipelineMutation) {
		var (
			err   error
			once  sync.Once
			value *Pipeline
		)
		m.oldValue = func(ctx context.Context) (*Pipeline, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Pipeline.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPipeline sets the old Pipeline of the mutation.
func withPipeline(node *Pipeline) pipelineOption {
	return func(m *PipelineMutation) {
		m.oldValue = func(context.Context) (*Pipeline, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PipelineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PipelineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Pipeline entities.
func (m *PipelineMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PipelineMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PipelineMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Pipeline.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRootRequest sets the "root_request" field.
func (m *PipelineMutation) SetRootRequest(s string) {
	m.root_request = &s
}

// RootRequest returns the value of the "root_request" field in the mutation.
func (m *PipelineMutation) RootRequest() (r string, exists bool) {
	v := m.root_request
	if v == nil {
		return
	}
	return *v, true
}

// OldRootRequest returns the old "root_request" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldRootRequest(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRootRequest is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRootRequest requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRootRequest: %w", err)
	}
	return oldValue.RootRequest, nil
}

// ResetRootRequest resets all changes to the "root_request" field.
func (m *PipelineMutation) ResetRootRequest() {
	m.root_request = nil
}

// SetSessionID sets the "session_id" field.
func (m *PipelineMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *PipelineMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *PipelineMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[pipeline.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *PipelineMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[pipeline.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *PipelineMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, pipeline.FieldSessionID)
}

// SetState sets the "state" field.
func (m *PipelineMutation) SetState(pi pipeline.State) {
	m.state = &pi
}

// State returns the value of the "state" field in the mutation.
func (m *PipelineMutation) State() (r pipeline.State, exists bool) {
	v := m.state
	if v == nil {
		return
	}
	return *v, true
}

// OldState returns the old "state" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldState(ctx context.Context) (v pipeline.State, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldState is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldState requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldState: %w", err)
	}
	return oldValue.State, nil
}

// ResetState resets all changes to the "state" field.
func (m *PipelineMutation) ResetState() {
	m.state = nil
}

// SetReworkRounds sets the "rework_rounds" field.
func (m *PipelineMutation) SetReworkRounds(value map[string]int) {
	m.rework_rounds = &value
}

// ReworkRounds returns the value of the "rework_rounds" field in the mutation.
func (m *PipelineMutation) ReworkRounds() (r map[string]int, exists bool) {
	v := m.rework_rounds
	if v == nil {
		return
	}
	return *v, true
}

// OldReworkRounds returns the old "rework_rounds" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldReworkRounds(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReworkRounds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReworkRounds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReworkRounds: %w", err)
	}
	return oldValue.ReworkRounds, nil
}

// ClearReworkRounds clears the value of the "rework_rounds" field.
func (m *PipelineMutation) ClearReworkRounds() {
	m.rework_rounds = nil
	m.clearedFields[pipeline.FieldReworkRounds] = struct{}{}
}

// ReworkRoundsCleared returns if the "rework_rounds" field was cleared in this mutation.
func (m *PipelineMutation) ReworkRoundsCleared() bool {
	_, ok := m.clearedFields[pipeline.FieldReworkRounds]
	return ok
}

// ResetReworkRounds resets all changes to the "rework_rounds" field.
func (m *PipelineMutation) ResetReworkRounds() {
	m.rework_rounds = nil
	delete(m.clearedFields, pipeline.FieldReworkRounds)
}

// SetCancelRequested sets the "cancel_requested" field.
func (m *PipelineMutation) SetCancelRequested(b bool) {
	m.cancel_requested = &b
}

// CancelRequested returns the value of the "cancel_requested" field in the mutation.
func (m *PipelineMutation) CancelRequested() (r bool, exists bool) {
	v := m.cancel_requested
	if v == nil {
		return
	}
	return *v, true
}

// OldCancelRequested returns the old "cancel_requested" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldCancelRequested(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCancelRequested is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCancelRequested requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCancelRequested: %w", err)
	}
	return oldValue.CancelRequested, nil
}

// ResetCancelRequested resets all changes to the "cancel_requested" field.
func (m *PipelineMutation) ResetCancelRequested() {
	m.cancel_requested = nil
}

// SetEscalationReason sets the "escalation_reason" field.
func (m *PipelineMutation) SetEscalationReason(s string) {
	m.escalation_reason = &s
}

// EscalationReason returns the value of the "escalation_reason" field in the mutation.
func (m *PipelineMutation) EscalationReason() (r string, exists bool) {
	v := m.escalation_reason
	if v == nil {
		return
	}
	return *v, true
}

// OldEscalationReason returns the old "escalation_reason" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldEscalationReason(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEscalationReason is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEscalationReason requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEscalationReason: %w", err)
	}
	return oldValue.EscalationReason, nil
}

// ClearEscalationReason clears the value of the "escalation_reason" field.
func (m *PipelineMutation) ClearEscalationReason() {
	m.escalation_reason = nil
	m.clearedFields[pipeline.FieldEscalationReason] = struct{}{}
}

// EscalationReasonCleared returns if the "escalation_reason" field was cleared in this mutation.
func (m *PipelineMutation) EscalationReasonCleared() bool {
	_, ok := m.clearedFields[pipeline.FieldEscalationReason]
	return ok
}

// ResetEscalationReason resets all changes to the "escalation_reason" field.
func (m *PipelineMutation) ResetEscalationReason() {
	m.escalation_reason = nil
	delete(m.clearedFields, pipeline.FieldEscalationReason)
}

// SetDeadline sets the "deadline" field.
func (m *PipelineMutation) SetDeadline(t time.Time) {
	m.deadline = &t
}

// Deadline returns the value of the "deadline" field in the mutation.
func (m *PipelineMutation) Deadline() (r time.Time, exists bool) {
	v := m.deadline
	if v == nil {
		return
	}
	return *v, true
}

// OldDeadline returns the old "deadline" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldDeadline(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeadline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeadline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeadline: %w", err)
	}
	return oldValue.Deadline, nil
}

// ClearDeadline clears the value of the "deadline" field.
func (m *PipelineMutation) ClearDeadline() {
	m.deadline = nil
	m.clearedFields[pipeline.FieldDeadline] = struct{}{}
}

// DeadlineCleared returns if the "deadline" field was cleared in this mutation.
func (m *PipelineMutation) DeadlineCleared() bool {
	_, ok := m.clearedFields[pipeline.FieldDeadline]
	return ok
}

// ResetDeadline resets all changes to the "deadline" field.
func (m *PipelineMutation) ResetDeadline() {
	m.deadline = nil
	delete(m.clearedFields, pipeline.FieldDeadline)
}

// SetCreatedAt sets the "created_at" field.
func (m *PipelineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PipelineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PipelineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PipelineMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PipelineMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Pipeline entity.
// If the Pipeline object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PipelineMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PipelineMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddJobIDs adds the "jobs" edge to the Job entity by ids.
func (m *PipelineMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the Job entity.
func (m *PipelineMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the Job entity was cleared.
func (m *PipelineMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the Job entity by IDs.
func (m *PipelineMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the Job entity.
func (m *PipelineMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *PipelineMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *PipelineMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the PipelineMutation builder.
func (m *PipelineMutation) Where(ps ...predicate.Pipeline) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PipelineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PipelineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Pipeline, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PipelineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PipelineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Pipeline).
func (m *PipelineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PipelineMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.root_request != nil {
		fields = append(fields, pipeline.FieldRootRequest)
	}
	if m.session_id != nil {
		fields = append(fields, pipeline.FieldSessionID)
	}
	if m.state != nil {
		fields = append(fields, pipeline.FieldState)
	}
	if m.rework_rounds != nil {
		fields = append(fields, pipeline.FieldReworkRounds)
	}
	if m.cancel_requested != nil {
		fields = append(fields, pipeline.FieldCancelRequested)
	}
	if m.escalation_reason != nil {
		fields = append(fields, pipeline.FieldEscalationReason)
	}
	if m.deadline != nil {
		fields = append(fields, pipeline.FieldDeadline)
	}
	if m.created_at != nil {
		fields = append(fields, pipeline.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, pipeline.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PipelineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case pipeline.FieldRootRequest:
		return m.RootRequest()
	case pipeline.FieldSessionID:
		return m.SessionID()
	case pipeline.FieldState:
		return m.State()
	case pipeline.FieldReworkRounds:
		return m.ReworkRounds()
	case pipeline.FieldCancelRequested:
		return m.CancelRequested()
	case pipeline.FieldEscalationReason:
		return m.EscalationReason()
	case pipeline.FieldDeadline:
		return m.Deadline()
	case pipeline.FieldCreatedAt:
		return m.CreatedAt()
	case pipeline.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PipelineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case pipeline.FieldRootRequest:
		return m.OldRootRequest(ctx)
	case pipeline.FieldSessionID:
		return m.OldSessionID(ctx)
	case pipeline.FieldState:
		return m.OldState(ctx)
	case pipeline.FieldReworkRounds:
		return m.OldReworkRounds(ctx)
	case pipeline.FieldCancelRequested:
		return m.OldCancelRequested(ctx)
	case pipeline.FieldEscalationReason:
		return m.OldEscalationReason(ctx)
	case pipeline.FieldDeadline:
		return m.OldDeadline(ctx)
	case pipeline.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case pipeline.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Pipeline field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case pipeline.FieldRootRequest:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRootRequest(v)
		return nil
	case pipeline.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case pipeline.FieldState:
		v, ok := value.(pipeline.State)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetState(v)
		return nil
	case pipeline.FieldReworkRounds:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReworkRounds(v)
		return nil
	case pipeline.FieldCancelRequested:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCancelRequested(v)
		return nil
	case pipeline.FieldEscalationReason:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEscalationReason(v)
		return nil
	case pipeline.FieldDeadline:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeadline(v)
		return nil
	case pipeline.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case pipeline.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Pipeline field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PipelineMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PipelineMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PipelineMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Pipeline numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PipelineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(pipeline.FieldSessionID) {
		fields = append(fields, pipeline.FieldSessionID)
	}
	if m.FieldCleared(pipeline.FieldReworkRounds) {
		fields = append(fields, pipeline.FieldReworkRounds)
	}
	if m.FieldCleared(pipeline.FieldEscalationReason) {
		fields = append(fields, pipeline.FieldEscalationReason)
	}
	if m.FieldCleared(pipeline.FieldDeadline) {
		fields = append(fields, pipeline.FieldDeadline)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PipelineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PipelineMutation) ClearField(name string) error {
	switch name {
	case pipeline.FieldSessionID:
		m.ClearSessionID()
		return nil
	case pipeline.FieldReworkRounds:
		m.ClearReworkRounds()
		return nil
	case pipeline.FieldEscalationReason:
		m.ClearEscalationReason()
		return nil
	case pipeline.FieldDeadline:
		m.ClearDeadline()
		return nil
	}
	return fmt.Errorf("unknown Pipeline nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PipelineMutation) ResetField(name string) error {
	switch name {
	case pipeline.FieldRootRequest:
		m.ResetRootRequest()
		return nil
	case pipeline.FieldSessionID:
		m.ResetSessionID()
		return nil
	case pipeline.FieldState:
		m.ResetState()
		return nil
	case pipeline.FieldReworkRounds:
		m.ResetReworkRounds()
		return nil
	case pipeline.FieldCancelRequested:
		m.ResetCancelRequested()
		return nil
	case pipeline.FieldEscalationReason:
		m.ResetEscalationReason()
		return nil
	case pipeline.FieldDeadline:
		m.ResetDeadline()
		return nil
	case pipeline.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case pipeline.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Pipeline field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PipelineMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, pipeline.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PipelineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case pipeline.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PipelineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, pipeline.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PipelineMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case pipeline.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PipelineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, pipeline.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PipelineMutation) EdgeCleared(name string) bool {
	switch name {
	case pipeline.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PipelineMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Pipeline unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PipelineMutation) ResetEdge(name string) error {
	switch name {
	case pipeline.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Pipeline edge %s", name)
}
