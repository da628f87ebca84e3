// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stratuscode/stratuscode/ent/agentstate"
	"github.com/stratuscode/stratuscode/ent/session"
)

// AgentState is the model entity for the AgentState schema.
type AgentState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// JSON-serialized LLM-visible history
	SageMessages string `json:"sage_messages,omitempty"`
	// Summarization carry-over for long conversations
	Summary string `json:"summary,omitempty"`
	// PlanFilePath holds the value of the "plan_file_path" field.
	PlanFilePath string `json:"plan_file_path,omitempty"`
	// AgentMode holds the value of the "agent_mode" field.
	AgentMode agentstate.AgentMode `json:"agent_mode,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentStateQuery when eager-loading is set.
	Edges        AgentStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AgentStateEdges holds the relations/edges for other nodes in the graph.
type AgentStateEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentStateEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldID, agentstate.FieldSessionID, agentstate.FieldSageMessages, agentstate.FieldSummary, agentstate.FieldPlanFilePath, agentstate.FieldAgentMode:
			values[i] = new(sql.NullString)
		case agentstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentState fields.
func (_m *AgentState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agentstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case agentstate.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case agentstate.FieldSageMessages:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field sage_messages", values[i])
			} else if value.Valid {
				_m.SageMessages = value.String
			}
		case agentstate.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case agentstate.FieldPlanFilePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_file_path", values[i])
			} else if value.Valid {
				_m.PlanFilePath = value.String
			}
		case agentstate.FieldAgentMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agent_mode", values[i])
			} else if value.Valid {
				_m.AgentMode = agentstate.AgentMode(value.String)
			}
		case agentstate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the AgentState.
// This includes values selected through modifiers, order, etc.
func (_m *AgentState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the AgentState entity.
func (_m *AgentState) QuerySession() *SessionQuery {
	return NewAgentStateClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this AgentState.
// Note that you need to call AgentState.Unwrap() before calling this method if this AgentState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentState) Update() *AgentStateUpdateOne {
	return NewAgentStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentState) Unwrap() *AgentState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentState) String() string {
	var builder strings.Builder
	builder.WriteString("AgentState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("sage_messages=")
	builder.WriteString(_m.SageMessages)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("plan_file_path=")
	builder.WriteString(_m.PlanFilePath)
	builder.WriteString(", ")
	builder.WriteString("agent_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.AgentMode))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentStates is a parsable slice of AgentState.
type AgentStates []*AgentState
