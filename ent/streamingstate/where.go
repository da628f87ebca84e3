// Code generated by ent, DO NOT EDIT.

package streamingstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/stratuscode/stratuscode/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContainsFold(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldSessionID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldContent, v))
}

// Reasoning applies equality check predicate on the "reasoning" field. It's identical to ReasoningEQ.
func Reasoning(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldReasoning, v))
}

// ToolCalls applies equality check predicate on the "tool_calls" field. It's identical to ToolCallsEQ.
func ToolCalls(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldToolCalls, v))
}

// Parts applies equality check predicate on the "parts" field. It's identical to PartsEQ.
func Parts(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldParts, v))
}

// PendingQuestion applies equality check predicate on the "pending_question" field. It's identical to PendingQuestionEQ.
func PendingQuestion(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldPendingQuestion, v))
}

// PendingAnswer applies equality check predicate on the "pending_answer" field. It's identical to PendingAnswerEQ.
func PendingAnswer(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldPendingAnswer, v))
}

// Stage applies equality check predicate on the "stage" field. It's identical to StageEQ.
func Stage(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldStage, v))
}

// IsStreaming applies equality check predicate on the "is_streaming" field. It's identical to IsStreamingEQ.
func IsStreaming(v bool) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldIsStreaming, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContainsFold(FieldSessionID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContainsFold(FieldContent, v))
}

// ReasoningEQ applies the EQ predicate on the "reasoning" field.
func ReasoningEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldReasoning, v))
}

// ReasoningNEQ applies the NEQ predicate on the "reasoning" field.
func ReasoningNEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldReasoning, v))
}

// ReasoningIn applies the In predicate on the "reasoning" field.
func ReasoningIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldReasoning, vs...))
}

// ReasoningNotIn applies the NotIn predicate on the "reasoning" field.
func ReasoningNotIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldReasoning, vs...))
}

// ReasoningGT applies the GT predicate on the "reasoning" field.
func ReasoningGT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldReasoning, v))
}

// ReasoningGTE applies the GTE predicate on the "reasoning" field.
func ReasoningGTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldReasoning, v))
}

// ReasoningLT applies the LT predicate on the "reasoning" field.
func ReasoningLT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldReasoning, v))
}

// ReasoningLTE applies the LTE predicate on the "reasoning" field.
func ReasoningLTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldReasoning, v))
}

// ReasoningContains applies the Contains predicate on the "reasoning" field.
func ReasoningContains(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContains(FieldReasoning, v))
}

// ReasoningHasPrefix applies the HasPrefix predicate on the "reasoning" field.
func ReasoningHasPrefix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasPrefix(FieldReasoning, v))
}

// ReasoningHasSuffix applies the HasSuffix predicate on the "reasoning" field.
func ReasoningHasSuffix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasSuffix(FieldReasoning, v))
}

// ReasoningEqualFold applies the EqualFold predicate on the "reasoning" field.
func ReasoningEqualFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEqualFold(FieldReasoning, v))
}

// ReasoningContainsFold applies the ContainsFold predicate on the "reasoning" field.
func ReasoningContainsFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContainsFold(FieldReasoning, v))
}

// ToolCallsEQ applies the EQ predicate on the "tool_calls" field.
func ToolCallsEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldToolCalls, v))
}

// ToolCallsNEQ applies the NEQ predicate on the "tool_calls" field.
func ToolCallsNEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldToolCalls, v))
}

// ToolCallsIn applies the In predicate on the "tool_calls" field.
func ToolCallsIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldToolCalls, vs...))
}

// ToolCallsNotIn applies the NotIn predicate on the "tool_calls" field.
func ToolCallsNotIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldToolCalls, vs...))
}

// ToolCallsGT applies the GT predicate on the "tool_calls" field.
func ToolCallsGT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldToolCalls, v))
}

// ToolCallsGTE applies the GTE predicate on the "tool_calls" field.
func ToolCallsGTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldToolCalls, v))
}

// ToolCallsLT applies the LT predicate on the "tool_calls" field.
func ToolCallsLT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldToolCalls, v))
}

// ToolCallsLTE applies the LTE predicate on the "tool_calls" field.
func ToolCallsLTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldToolCalls, v))
}

// ToolCallsContains applies the Contains predicate on the "tool_calls" field.
func ToolCallsContains(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContains(FieldToolCalls, v))
}

// ToolCallsHasPrefix applies the HasPrefix predicate on the "tool_calls" field.
func ToolCallsHasPrefix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasPrefix(FieldToolCalls, v))
}

// ToolCallsHasSuffix applies the HasSuffix predicate on the "tool_calls" field.
func ToolCallsHasSuffix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasSuffix(FieldToolCalls, v))
}

// ToolCallsEqualFold applies the EqualFold predicate on the "tool_calls" field.
func ToolCallsEqualFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEqualFold(FieldToolCalls, v))
}

// ToolCallsContainsFold applies the ContainsFold predicate on the "tool_calls" field.
func ToolCallsContainsFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContainsFold(FieldToolCalls, v))
}

// PartsEQ applies the EQ predicate on the "parts" field.
func PartsEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldParts, v))
}

// PartsNEQ applies the NEQ predicate on the "parts" field.
func PartsNEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldParts, v))
}

// PartsIn applies the In predicate on the "parts" field.
func PartsIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldParts, vs...))
}

// PartsNotIn applies the NotIn predicate on the "parts" field.
func PartsNotIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldParts, vs...))
}

// PartsGT applies the GT predicate on the "parts" field.
func PartsGT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldParts, v))
}

// PartsGTE applies the GTE predicate on the "parts" field.
func PartsGTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldParts, v))
}

// PartsLT applies the LT predicate on the "parts" field.
func PartsLT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldParts, v))
}

// PartsLTE applies the LTE predicate on the "parts" field.
func PartsLTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldParts, v))
}

// PartsContains applies the Contains predicate on the "parts" field.
func PartsContains(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContains(FieldParts, v))
}

// PartsHasPrefix applies the HasPrefix predicate on the "parts" field.
func PartsHasPrefix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasPrefix(FieldParts, v))
}

// PartsHasSuffix applies the HasSuffix predicate on the "parts" field.
func PartsHasSuffix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasSuffix(FieldParts, v))
}

// PartsEqualFold applies the EqualFold predicate on the "parts" field.
func PartsEqualFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEqualFold(FieldParts, v))
}

// PartsContainsFold applies the ContainsFold predicate on the "parts" field.
func PartsContainsFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContainsFold(FieldParts, v))
}

// PendingQuestionEQ applies the EQ predicate on the "pending_question" field.
func PendingQuestionEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldPendingQuestion, v))
}

// PendingQuestionNEQ applies the NEQ predicate on the "pending_question" field.
func PendingQuestionNEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldPendingQuestion, v))
}

// PendingQuestionIn applies the In predicate on the "pending_question" field.
func PendingQuestionIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldPendingQuestion, vs...))
}

// PendingQuestionNotIn applies the NotIn predicate on the "pending_question" field.
func PendingQuestionNotIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldPendingQuestion, vs...))
}

// PendingQuestionGT applies the GT predicate on the "pending_question" field.
func PendingQuestionGT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldPendingQuestion, v))
}

// PendingQuestionGTE applies the GTE predicate on the "pending_question" field.
func PendingQuestionGTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldPendingQuestion, v))
}

// PendingQuestionLT applies the LT predicate on the "pending_question" field.
func PendingQuestionLT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldPendingQuestion, v))
}

// PendingQuestionLTE applies the LTE predicate on the "pending_question" field.
func PendingQuestionLTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldPendingQuestion, v))
}

// PendingQuestionContains applies the Contains predicate on the "pending_question" field.
func PendingQuestionContains(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContains(FieldPendingQuestion, v))
}

// PendingQuestionHasPrefix applies the HasPrefix predicate on the "pending_question" field.
func PendingQuestionHasPrefix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasPrefix(FieldPendingQuestion, v))
}

// PendingQuestionHasSuffix applies the HasSuffix predicate on the "pending_question" field.
func PendingQuestionHasSuffix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasSuffix(FieldPendingQuestion, v))
}

// PendingQuestionIsNil applies the IsNil predicate on the "pending_question" field.
func PendingQuestionIsNil() predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIsNull(FieldPendingQuestion))
}

// PendingQuestionNotNil applies the NotNil predicate on the "pending_question" field.
func PendingQuestionNotNil() predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotNull(FieldPendingQuestion))
}

// PendingQuestionEqualFold applies the EqualFold predicate on the "pending_question" field.
func PendingQuestionEqualFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEqualFold(FieldPendingQuestion, v))
}

// PendingQuestionContainsFold applies the ContainsFold predicate on the "pending_question" field.
func PendingQuestionContainsFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContainsFold(FieldPendingQuestion, v))
}

// PendingAnswerEQ applies the EQ predicate on the "pending_answer" field.
func PendingAnswerEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldPendingAnswer, v))
}

// PendingAnswerNEQ applies the NEQ predicate on the "pending_answer" field.
func PendingAnswerNEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldPendingAnswer, v))
}

// PendingAnswerIn applies the In predicate on the "pending_answer" field.
func PendingAnswerIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldPendingAnswer, vs...))
}

// PendingAnswerNotIn applies the NotIn predicate on the "pending_answer" field.
func PendingAnswerNotIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldPendingAnswer, vs...))
}

// PendingAnswerGT applies the GT predicate on the "pending_answer" field.
func PendingAnswerGT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldPendingAnswer, v))
}

// PendingAnswerGTE applies the GTE predicate on the "pending_answer" field.
func PendingAnswerGTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldPendingAnswer, v))
}

// PendingAnswerLT applies the LT predicate on the "pending_answer" field.
func PendingAnswerLT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldPendingAnswer, v))
}

// PendingAnswerLTE applies the LTE predicate on the "pending_answer" field.
func PendingAnswerLTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldPendingAnswer, v))
}

// PendingAnswerContains applies the Contains predicate on the "pending_answer" field.
func PendingAnswerContains(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContains(FieldPendingAnswer, v))
}

// PendingAnswerHasPrefix applies the HasPrefix predicate on the "pending_answer" field.
func PendingAnswerHasPrefix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasPrefix(FieldPendingAnswer, v))
}

// PendingAnswerHasSuffix applies the HasSuffix predicate on the "pending_answer" field.
func PendingAnswerHasSuffix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasSuffix(FieldPendingAnswer, v))
}

// PendingAnswerIsNil applies the IsNil predicate on the "pending_answer" field.
func PendingAnswerIsNil() predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIsNull(FieldPendingAnswer))
}

// PendingAnswerNotNil applies the NotNil predicate on the "pending_answer" field.
func PendingAnswerNotNil() predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotNull(FieldPendingAnswer))
}

// PendingAnswerEqualFold applies the EqualFold predicate on the "pending_answer" field.
func PendingAnswerEqualFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEqualFold(FieldPendingAnswer, v))
}

// PendingAnswerContainsFold applies the ContainsFold predicate on the "pending_answer" field.
func PendingAnswerContainsFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContainsFold(FieldPendingAnswer, v))
}

// StageEQ applies the EQ predicate on the "stage" field.
func StageEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldStage, v))
}

// StageNEQ applies the NEQ predicate on the "stage" field.
func StageNEQ(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldStage, v))
}

// StageIn applies the In predicate on the "stage" field.
func StageIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldStage, vs...))
}

// StageNotIn applies the NotIn predicate on the "stage" field.
func StageNotIn(vs ...string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldStage, vs...))
}

// StageGT applies the GT predicate on the "stage" field.
func StageGT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldStage, v))
}

// StageGTE applies the GTE predicate on the "stage" field.
func StageGTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldStage, v))
}

// StageLT applies the LT predicate on the "stage" field.
func StageLT(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldStage, v))
}

// StageLTE applies the LTE predicate on the "stage" field.
func StageLTE(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldStage, v))
}

// StageContains applies the Contains predicate on the "stage" field.
func StageContains(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContains(FieldStage, v))
}

// StageHasPrefix applies the HasPrefix predicate on the "stage" field.
func StageHasPrefix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasPrefix(FieldStage, v))
}

// StageHasSuffix applies the HasSuffix predicate on the "stage" field.
func StageHasSuffix(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldHasSuffix(FieldStage, v))
}

// StageIsNil applies the IsNil predicate on the "stage" field.
func StageIsNil() predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIsNull(FieldStage))
}

// StageNotNil applies the NotNil predicate on the "stage" field.
func StageNotNil() predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotNull(FieldStage))
}

// StageEqualFold applies the EqualFold predicate on the "stage" field.
func StageEqualFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEqualFold(FieldStage, v))
}

// StageContainsFold applies the ContainsFold predicate on the "stage" field.
func StageContainsFold(v string) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldContainsFold(FieldStage, v))
}

// IsStreamingEQ applies the EQ predicate on the "is_streaming" field.
func IsStreamingEQ(v bool) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldIsStreaming, v))
}

// IsStreamingNEQ applies the NEQ predicate on the "is_streaming" field.
func IsStreamingNEQ(v bool) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldIsStreaming, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.StreamingState {
	return predicate.StreamingState(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.StreamingState {
	return predicate.StreamingState(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.Session) predicate.StreamingState {
	return predicate.StreamingState(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.StreamingState) predicate.StreamingState {
	return predicate.StreamingState(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.StreamingState) predicate.StreamingState {
	return predicate.StreamingState(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.StreamingState) predicate.StreamingState {
	return predicate.StreamingState(sql.NotPredicates(p))
}
