// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stratuscode/stratuscode/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldSessionID, v))
}

// SageMessages applies equality check predicate on the "sage_messages" field. It's identical to SageMessagesEQ.
func SageMessages(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldSageMessages, v))
}

// Summary applies equality check predicate on the "summary" field. It's identical to SummaryEQ.
func Summary(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldSummary, v))
}

// PlanFilePath applies equality check predicate on the "plan_file_path" field. It's identical to PlanFilePathEQ.
func PlanFilePath(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldPlanFilePath, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldSessionID, v))
}

// SageMessagesEQ applies the EQ predicate on the "sage_messages" field.
func SageMessagesEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldSageMessages, v))
}

// SageMessagesNEQ applies the NEQ predicate on the "sage_messages" field.
func SageMessagesNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldSageMessages, v))
}

// SageMessagesIn applies the In predicate on the "sage_messages" field.
func SageMessagesIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldSageMessages, vs...))
}

// SageMessagesNotIn applies the NotIn predicate on the "sage_messages" field.
func SageMessagesNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldSageMessages, vs...))
}

// SageMessagesGT applies the GT predicate on the "sage_messages" field.
func SageMessagesGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldSageMessages, v))
}

// SageMessagesGTE applies the GTE predicate on the "sage_messages" field.
func SageMessagesGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldSageMessages, v))
}

// SageMessagesLT applies the LT predicate on the "sage_messages" field.
func SageMessagesLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldSageMessages, v))
}

// SageMessagesLTE applies the LTE predicate on the "sage_messages" field.
func SageMessagesLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldSageMessages, v))
}

// SageMessagesContains applies the Contains predicate on the "sage_messages" field.
func SageMessagesContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldSageMessages, v))
}

// SageMessagesHasPrefix applies the HasPrefix predicate on the "sage_messages" field.
func SageMessagesHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldSageMessages, v))
}

// SageMessagesHasSuffix applies the HasSuffix predicate on the "sage_messages" field.
func SageMessagesHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldSageMessages, v))
}

// SageMessagesEqualFold applies the EqualFold predicate on the "sage_messages" field.
func SageMessagesEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldSageMessages, v))
}

// SageMessagesContainsFold applies the ContainsFold predicate on the "sage_messages" field.
func SageMessagesContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldSageMessages, v))
}

// SummaryEQ applies the EQ predicate on the "summary" field.
func SummaryEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldSummary, v))
}

// SummaryNEQ applies the NEQ predicate on the "summary" field.
func SummaryNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldSummary, v))
}

// SummaryIn applies the In predicate on the "summary" field.
func SummaryIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldSummary, vs...))
}

// SummaryNotIn applies the NotIn predicate on the "summary" field.
func SummaryNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldSummary, vs...))
}

// SummaryGT applies the GT predicate on the "summary" field.
func SummaryGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldSummary, v))
}

// SummaryGTE applies the GTE predicate on the "summary" field.
func SummaryGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldSummary, v))
}

// SummaryLT applies the LT predicate on the "summary" field.
func SummaryLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldSummary, v))
}

// SummaryLTE applies the LTE predicate on the "summary" field.
func SummaryLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldSummary, v))
}

// SummaryContains applies the Contains predicate on the "summary" field.
func SummaryContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldSummary, v))
}

// SummaryHasPrefix applies the HasPrefix predicate on the "summary" field.
func SummaryHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldSummary, v))
}

// SummaryHasSuffix applies the HasSuffix predicate on the "summary" field.
func SummaryHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldSummary, v))
}

// SummaryIsNil applies the IsNil predicate on the "summary" field.
func SummaryIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldSummary))
}

// SummaryNotNil applies the NotNil predicate on the "summary" field.
func SummaryNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldSummary))
}

// SummaryEqualFold applies the EqualFold predicate on the "summary" field.
func SummaryEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldSummary, v))
}

// SummaryContainsFold applies the ContainsFold predicate on the "summary" field.
func SummaryContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldSummary, v))
}

// PlanFilePathEQ applies the EQ predicate on the "plan_file_path" field.
func PlanFilePathEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldPlanFilePath, v))
}

// PlanFilePathNEQ applies the NEQ predicate on the "plan_file_path" field.
func PlanFilePathNEQ(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldPlanFilePath, v))
}

// PlanFilePathIn applies the In predicate on the "plan_file_path" field.
func PlanFilePathIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldPlanFilePath, vs...))
}

// PlanFilePathNotIn applies the NotIn predicate on the "plan_file_path" field.
func PlanFilePathNotIn(vs ...string) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldPlanFilePath, vs...))
}

// PlanFilePathGT applies the GT predicate on the "plan_file_path" field.
func PlanFilePathGT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldPlanFilePath, v))
}

// PlanFilePathGTE applies the GTE predicate on the "plan_file_path" field.
func PlanFilePathGTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldPlanFilePath, v))
}

// PlanFilePathLT applies the LT predicate on the "plan_file_path" field.
func PlanFilePathLT(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldPlanFilePath, v))
}

// PlanFilePathLTE applies the LTE predicate on the "plan_file_path" field.
func PlanFilePathLTE(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldPlanFilePath, v))
}

// PlanFilePathContains applies the Contains predicate on the "plan_file_path" field.
func PlanFilePathContains(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContains(FieldPlanFilePath, v))
}

// PlanFilePathHasPrefix applies the HasPrefix predicate on the "plan_file_path" field.
func PlanFilePathHasPrefix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasPrefix(FieldPlanFilePath, v))
}

// PlanFilePathHasSuffix applies the HasSuffix predicate on the "plan_file_path" field.
func PlanFilePathHasSuffix(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldHasSuffix(FieldPlanFilePath, v))
}

// PlanFilePathIsNil applies the IsNil predicate on the "plan_file_path" field.
func PlanFilePathIsNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldIsNull(FieldPlanFilePath))
}

// PlanFilePathNotNil applies the NotNil predicate on the "plan_file_path" field.
func PlanFilePathNotNil() predicate.AgentState {
	return predicate.AgentState(sql.FieldNotNull(FieldPlanFilePath))
}

// PlanFilePathEqualFold applies the EqualFold predicate on the "plan_file_path" field.
func PlanFilePathEqualFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldEqualFold(FieldPlanFilePath, v))
}

// PlanFilePathContainsFold applies the ContainsFold predicate on the "plan_file_path" field.
func PlanFilePathContainsFold(v string) predicate.AgentState {
	return predicate.AgentState(sql.FieldContainsFold(FieldPlanFilePath, v))
}

// AgentModeEQ applies the EQ predicate on the "agent_mode" field.
func AgentModeEQ(v AgentMode) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldAgentMode, v))
}

// AgentModeNEQ applies the NEQ predicate on the "agent_mode" field.
func AgentModeNEQ(v AgentMode) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldAgentMode, v))
}

// AgentModeIn applies the In predicate on the "agent_mode" field.
func AgentModeIn(vs ...AgentMode) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldAgentMode, vs...))
}

// AgentModeNotIn applies the NotIn predicate on the "agent_mode" field.
func AgentModeNotIn(vs ...AgentMode) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldAgentMode, vs...))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.AgentState {
	return predicate.AgentState(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.AgentState {
	return predicate.AgentState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.AgentState {
	return predicate.AgentState(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentState) predicate.AgentState {
	return predicate.AgentState(sql.NotPredicates(p))
}
