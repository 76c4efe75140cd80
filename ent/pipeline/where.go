// Code generated by ent, DO NOT EDIT.

package pipeline

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/maestroworks/maestro/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldContainsFold(FieldID, id))
}

// RootRequest applies equality check predicate on the "root_request" field. It's identical to RootRequestEQ.
func RootRequest(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldRootRequest, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldSessionID, v))
}

// CancelRequested applies equality check predicate on the "cancel_requested" field. It's identical to CancelRequestedEQ.
func CancelRequested(v bool) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldCancelRequested, v))
}

// EscalationReason applies equality check predicate on the "escalation_reason" field. It's identical to EscalationReasonEQ.
func EscalationReason(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldEscalationReason, v))
}

// Deadline applies equality check predicate on the "deadline" field. It's identical to DeadlineEQ.
func Deadline(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldDeadline, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldUpdatedAt, v))
}

// RootRequestEQ applies the EQ predicate on the "root_request" field.
func RootRequestEQ(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldRootRequest, v))
}

// RootRequestNEQ applies the NEQ predicate on the "root_request" field.
func RootRequestNEQ(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNEQ(FieldRootRequest, v))
}

// RootRequestIn applies the In predicate on the "root_request" field.
func RootRequestIn(vs ...string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIn(FieldRootRequest, vs...))
}

// RootRequestNotIn applies the NotIn predicate on the "root_request" field.
func RootRequestNotIn(vs ...string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotIn(FieldRootRequest, vs...))
}

// RootRequestGT applies the GT predicate on the "root_request" field.
func RootRequestGT(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGT(FieldRootRequest, v))
}

// RootRequestGTE applies the GTE predicate on the "root_request" field.
func RootRequestGTE(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGTE(FieldRootRequest, v))
}

// RootRequestLT applies the LT predicate on the "root_request" field.
func RootRequestLT(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLT(FieldRootRequest, v))
}

// RootRequestLTE applies the LTE predicate on the "root_request" field.
func RootRequestLTE(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLTE(FieldRootRequest, v))
}

// RootRequestContains applies the Contains predicate on the "root_request" field.
func RootRequestContains(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldContains(FieldRootRequest, v))
}

// RootRequestHasPrefix applies the HasPrefix predicate on the "root_request" field.
func RootRequestHasPrefix(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldHasPrefix(FieldRootRequest, v))
}

// RootRequestHasSuffix applies the HasSuffix predicate on the "root_request" field.
func RootRequestHasSuffix(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldHasSuffix(FieldRootRequest, v))
}

// RootRequestEqualFold applies the EqualFold predicate on the "root_request" field.
func RootRequestEqualFold(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEqualFold(FieldRootRequest, v))
}

// RootRequestContainsFold applies the ContainsFold predicate on the "root_request" field.
func RootRequestContainsFold(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldContainsFold(FieldRootRequest, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDIsNil applies the IsNil predicate on the "session_id" field.
func SessionIDIsNil() predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIsNull(FieldSessionID))
}

// SessionIDNotNil applies the NotNil predicate on the "session_id" field.
func SessionIDNotNil() predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotNull(FieldSessionID))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldContainsFold(FieldSessionID, v))
}

// StateEQ applies the EQ predicate on the "state" field.
func StateEQ(v State) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldState, v))
}

// StateNEQ applies the NEQ predicate on the "state" field.
func StateNEQ(v State) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNEQ(FieldState, v))
}

// StateIn applies the In predicate on the "state" field.
func StateIn(vs ...State) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIn(FieldState, vs...))
}

// StateNotIn applies the NotIn predicate on the "state" field.
func StateNotIn(vs ...State) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotIn(FieldState, vs...))
}

// ReworkRoundsIsNil applies the IsNil predicate on the "rework_rounds" field.
func ReworkRoundsIsNil() predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIsNull(FieldReworkRounds))
}

// ReworkRoundsNotNil applies the NotNil predicate on the "rework_rounds" field.
func ReworkRoundsNotNil() predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotNull(FieldReworkRounds))
}

// CancelRequestedEQ applies the EQ predicate on the "cancel_requested" field.
func CancelRequestedEQ(v bool) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldCancelRequested, v))
}

// CancelRequestedNEQ applies the NEQ predicate on the "cancel_requested" field.
func CancelRequestedNEQ(v bool) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNEQ(FieldCancelRequested, v))
}

// EscalationReasonEQ applies the EQ predicate on the "escalation_reason" field.
func EscalationReasonEQ(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldEscalationReason, v))
}

// EscalationReasonNEQ applies the NEQ predicate on the "escalation_reason" field.
func EscalationReasonNEQ(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNEQ(FieldEscalationReason, v))
}

// EscalationReasonIn applies the In predicate on the "escalation_reason" field.
func EscalationReasonIn(vs ...string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIn(FieldEscalationReason, vs...))
}

// EscalationReasonNotIn applies the NotIn predicate on the "escalation_reason" field.
func EscalationReasonNotIn(vs ...string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotIn(FieldEscalationReason, vs...))
}

// EscalationReasonGT applies the GT predicate on the "escalation_reason" field.
func EscalationReasonGT(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGT(FieldEscalationReason, v))
}

// EscalationReasonGTE applies the GTE predicate on the "escalation_reason" field.
func EscalationReasonGTE(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGTE(FieldEscalationReason, v))
}

// EscalationReasonLT applies the LT predicate on the "escalation_reason" field.
func EscalationReasonLT(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLT(FieldEscalationReason, v))
}

// EscalationReasonLTE applies the LTE predicate on the "escalation_reason" field.
func EscalationReasonLTE(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLTE(FieldEscalationReason, v))
}

// EscalationReasonContains applies the Contains predicate on the "escalation_reason" field.
func EscalationReasonContains(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldContains(FieldEscalationReason, v))
}

// EscalationReasonHasPrefix applies the HasPrefix predicate on the "escalation_reason" field.
func EscalationReasonHasPrefix(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldHasPrefix(FieldEscalationReason, v))
}

// EscalationReasonHasSuffix applies the HasSuffix predicate on the "escalation_reason" field.
func EscalationReasonHasSuffix(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldHasSuffix(FieldEscalationReason, v))
}

// EscalationReasonIsNil applies the IsNil predicate on the "escalation_reason" field.
func EscalationReasonIsNil() predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIsNull(FieldEscalationReason))
}

// EscalationReasonNotNil applies the NotNil predicate on the "escalation_reason" field.
func EscalationReasonNotNil() predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotNull(FieldEscalationReason))
}

// EscalationReasonEqualFold applies the EqualFold predicate on the "escalation_reason" field.
func EscalationReasonEqualFold(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEqualFold(FieldEscalationReason, v))
}

// EscalationReasonContainsFold applies the ContainsFold predicate on the "escalation_reason" field.
func EscalationReasonContainsFold(v string) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldContainsFold(FieldEscalationReason, v))
}

// DeadlineEQ applies the EQ predicate on the "deadline" field.
func DeadlineEQ(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldDeadline, v))
}

// DeadlineNEQ applies the NEQ predicate on the "deadline" field.
func DeadlineNEQ(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNEQ(FieldDeadline, v))
}

// DeadlineIn applies the In predicate on the "deadline" field.
func DeadlineIn(vs ...time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIn(FieldDeadline, vs...))
}

// DeadlineNotIn applies the NotIn predicate on the "deadline" field.
func DeadlineNotIn(vs ...time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotIn(FieldDeadline, vs...))
}

// DeadlineGT applies the GT predicate on the "deadline" field.
func DeadlineGT(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGT(FieldDeadline, v))
}

// DeadlineGTE applies the GTE predicate on the "deadline" field.
func DeadlineGTE(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGTE(FieldDeadline, v))
}

// DeadlineLT applies the LT predicate on the "deadline" field.
func DeadlineLT(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLT(FieldDeadline, v))
}

// DeadlineLTE applies the LTE predicate on the "deadline" field.
func DeadlineLTE(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLTE(FieldDeadline, v))
}

// DeadlineIsNil applies the IsNil predicate on the "deadline" field.
func DeadlineIsNil() predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIsNull(FieldDeadline))
}

// DeadlineNotNil applies the NotNil predicate on the "deadline" field.
func DeadlineNotNil() predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotNull(FieldDeadline))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Pipeline {
	return predicate.Pipeline(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Pipeline {
	return predicate.Pipeline(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.Job) predicate.Pipeline {
	return predicate.Pipeline(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Pipeline) predicate.Pipeline {
	return predicate.Pipeline(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Pipeline) predicate.Pipeline {
	return predicate.Pipeline(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Pipeline) predicate.Pipeline {
	return predicate.Pipeline(sql.NotPredicates(p))
}
