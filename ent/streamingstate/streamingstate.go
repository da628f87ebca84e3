// Code generated by ent, DO NOT EDIT.

package streamingstate

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the streamingstate type in the database.
	Label = "streaming_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "streaming_state_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldReasoning holds the string denoting the reasoning field in the database.
	FieldReasoning = "reasoning"
	// FieldToolCalls holds the string denoting the tool_calls field in the database.
	FieldToolCalls = "tool_calls"
	// FieldParts holds the string denoting the parts field in the database.
	FieldParts = "parts"
	// FieldPendingQuestion holds the string denoting the pending_question field in the database.
	FieldPendingQuestion = "pending_question"
	// FieldPendingAnswer holds the string denoting the pending_answer field in the database.
	FieldPendingAnswer = "pending_answer"
	// FieldStage holds the string denoting the stage field in the database.
	FieldStage = "stage"
	// FieldIsStreaming holds the string denoting the is_streaming field in the database.
	FieldIsStreaming = "is_streaming"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the streamingstate in the database.
	Table = "streaming_states"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "streaming_states"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for streamingstate fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldContent,
	FieldReasoning,
	FieldToolCalls,
	FieldParts,
	FieldPendingQuestion,
	FieldPendingAnswer,
	FieldStage,
	FieldIsStreaming,
	FieldUpdatedAt,
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
	// DefaultContent holds the default value on creation for the "content" field.
	DefaultContent string
	// DefaultReasoning holds the default value on creation for the "reasoning" field.
	DefaultReasoning string
	// DefaultToolCalls holds the default value on creation for the "tool_calls" field.
	DefaultToolCalls string
	// DefaultParts holds the default value on creation for the "parts" field.
	DefaultParts string
	// DefaultIsStreaming holds the default value on creation for the "is_streaming" field.
	DefaultIsStreaming bool
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the StreamingState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByReasoning orders the results by the reasoning field.
func ByReasoning(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReasoning, opts...).ToFunc()
}

// ByToolCalls orders the results by the tool_calls field.
func ByToolCalls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToolCalls, opts...).ToFunc()
}

// ByParts orders the results by the parts field.
func ByParts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParts, opts...).ToFunc()
}

// ByPendingQuestion orders the results by the pending_question field.
func ByPendingQuestion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingQuestion, opts...).ToFunc()
}

// ByPendingAnswer orders the results by the pending_answer field.
func ByPendingAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPendingAnswer, opts...).ToFunc()
}

// ByStage orders the results by the stage field.
func ByStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStage, opts...).ToFunc()
}

// ByIsStreaming orders the results by the is_streaming field.
func ByIsStreaming(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsStreaming, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, SessionFieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, SessionTable, SessionColumn),
	)
}
