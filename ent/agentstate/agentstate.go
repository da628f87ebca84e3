// Code generated by ent, DO NOT EDIT.

package agentstate

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agentstate type in the database.
	Label = "agent_state"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "agent_state_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSageMessages holds the string denoting the sage_messages field in the database.
	FieldSageMessages = "sage_messages"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldPlanFilePath holds the string denoting the plan_file_path field in the database.
	FieldPlanFilePath = "plan_file_path"
	// FieldAgentMode holds the string denoting the agent_mode field in the database.
	FieldAgentMode = "agent_mode"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// SessionFieldID holds the string denoting the ID field of the Session.
	SessionFieldID = "session_id"
	// Table holds the table name of the agentstate in the database.
	Table = "agent_states"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "agent_states"
	// SessionInverseTable is the table name for the Session entity.
	// It exists in this package in order to avoid circular dependency with the "session" package.
	SessionInverseTable = "sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for agentstate fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldSageMessages,
	FieldSummary,
	FieldPlanFilePath,
	FieldAgentMode,
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
	// DefaultSageMessages holds the default value on creation for the "sage_messages" field.
	DefaultSageMessages string
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AgentMode defines the type for the "agent_mode" enum field.
type AgentMode string

// AgentModeBuild is the default value of the AgentMode enum.
const DefaultAgentMode = AgentModeBuild

// AgentMode values.
const (
	AgentModeBuild AgentMode = "build"
	AgentModePlan  AgentMode = "plan"
)

func (am AgentMode) String() string {
	return string(am)
}

// AgentModeValidator is a validator for the "agent_mode" field enum values. It is called by the builders before save.
func AgentModeValidator(am AgentMode) error {
	switch am {
	case AgentModeBuild, AgentModePlan:
		return nil
	default:
		return fmt.Errorf("agentstate: invalid enum value for agent_mode field: %q", am)
	}
}

// OrderOption defines the ordering options for the AgentState queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySageMessages orders the results by the sage_messages field.
func BySageMessages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSageMessages, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByPlanFilePath orders the results by the plan_file_path field.
func ByPlanFilePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanFilePath, opts...).ToFunc()
}

// ByAgentMode orders the results by the agent_mode field.
func ByAgentMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgentMode, opts...).ToFunc()
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
