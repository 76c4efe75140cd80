// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/maestroworks/maestro/ent/pipeline"
)

// Pipeline is the model entity for the Pipeline schema.
type Pipeline struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RootRequest holds the value of the "root_request" field.
	RootRequest string `json:"root_request,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// State holds the value of the "state" field.
	State pipeline.State `json:"state,omitempty"`
	// Returned-to-predecessor cycles per role
	ReworkRounds map[string]int `json:"rework_rounds,omitempty"`
	// Checked by the supervisor between stages
	CancelRequested bool `json:"cancel_requested,omitempty"`
	// EscalationReason holds the value of the "escalation_reason" field.
	EscalationReason *string `json:"escalation_reason,omitempty"`
	// Wall-clock bound; expiry escalates the pipeline
	Deadline *time.Time `json:"deadline,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PipelineQuery when eager-loading is set.
	Edges        PipelineEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PipelineEdges holds the relations/edges for other nodes in the graph.
type PipelineEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*Job `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e PipelineEdges) JobsOrErr() ([]*Job, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Pipeline) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case pipeline.FieldReworkRounds:
			values[i] = new([]byte)
		case pipeline.FieldCancelRequested:
			values[i] = new(sql.NullBool)
		case pipeline.FieldID, pipeline.FieldRootRequest, pipeline.FieldSessionID, pipeline.FieldState, pipeline.FieldEscalationReason:
			values[i] = new(sql.NullString)
		case pipeline.FieldDeadline, pipeline.FieldCreatedAt, pipeline.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Pipeline fields.
func (_m *Pipeline) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case pipeline.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case pipeline.FieldRootRequest:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field root_request", values[i])
			} else if value.Valid {
				_m.RootRequest = value.String
			}
		case pipeline.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case pipeline.FieldState:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field state", values[i])
			} else if value.Valid {
				_m.State = pipeline.State(value.String)
			}
		case pipeline.FieldReworkRounds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rework_rounds", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ReworkRounds); err != nil {
					return fmt.Errorf("unmarshal field rework_rounds: %w", err)
				}
			}
		case pipeline.FieldCancelRequested:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_requested", values[i])
			} else if value.Valid {
				_m.CancelRequested = value.Bool
			}
		case pipeline.FieldEscalationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field escalation_reason", values[i])
			} else if value.Valid {
				_m.EscalationReason = new(string)
				*_m.EscalationReason = value.String
			}
		case pipeline.FieldDeadline:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deadline", values[i])
			} else if value.Valid {
				_m.Deadline = new(time.Time)
				*_m.Deadline = value.Time
			}
		case pipeline.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case pipeline.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Pipeline.
// This includes values selected through modifiers, order, etc.
func (_m *Pipeline) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the Pipeline entity.
func (_m *Pipeline) QueryJobs() *JobQuery {
	return NewPipelineClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Pipeline.
// Note that you need to call Pipeline.Unwrap() before calling this method if this Pipeline
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Pipeline) Update() *PipelineUpdateOne {
	return NewPipelineClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Pipeline entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Pipeline) Unwrap() *Pipeline {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Pipeline is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Pipeline) String() string {
	var builder strings.Builder
	builder.WriteString("Pipeline(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("root_request=")
	builder.WriteString(_m.RootRequest)
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("state=")
	builder.WriteString(fmt.Sprintf("%v", _m.State))
	builder.WriteString(", ")
	builder.WriteString("rework_rounds=")
	builder.WriteString(fmt.Sprintf("%v", _m.ReworkRounds))
	builder.WriteString(", ")
	builder.WriteString("cancel_requested=")
	builder.WriteString(fmt.Sprintf("%v", _m.CancelRequested))
	builder.WriteString(", ")
	if v := _m.EscalationReason; v != nil {
		builder.WriteString("escalation_reason=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Deadline; v != nil {
		builder.WriteString("deadline=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Pipelines is a parsable slice of Pipeline.
type Pipelines []*Pipeline
