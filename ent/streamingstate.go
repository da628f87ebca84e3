// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/stratuscode/stratuscode/ent/session"
	"github.com/stratuscode/stratuscode/ent/streamingstate"
)

// StreamingState is the model entity for the StreamingState schema.
type StreamingState struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Visible text accumulator
	Content string `json:"content,omitempty"`
	// Hidden chain-of-thought accumulator
	Reasoning string `json:"reasoning,omitempty"`
	// JSON ordered list of {id,name,args,result?,status}
	ToolCalls string `json:"tool_calls,omitempty"`
	// JSON ordered interleaving preserving emission order
	Parts string `json:"parts,omitempty"`
	// PendingQuestion holds the value of the "pending_question" field.
	PendingQuestion *string `json:"pending_question,omitempty"`
	// PendingAnswer holds the value of the "pending_answer" field.
	PendingAnswer *string `json:"pending_answer,omitempty"`
	// Stage holds the value of the "stage" field.
	Stage string `json:"stage,omitempty"`
	// IsStreaming holds the value of the "is_streaming" field.
	IsStreaming bool `json:"is_streaming,omitempty"`
	// Bumped by every mutation; drives the staleness sweeper
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the StreamingStateQuery when eager-loading is set.
	Edges        StreamingStateEdges `json:"edges"`
	selectValues sql.SelectValues
}

// StreamingStateEdges holds the relations/edges for other nodes in the graph.
type StreamingStateEdges struct {
	// Session holds the value of the session edge.
	Session *Session `json:"session,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// SessionOrErr returns the Session value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e StreamingStateEdges) SessionOrErr() (*Session, error) {
	if e.Session != nil {
		return e.Session, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: session.Label}
	}
	return nil, &NotLoadedError{edge: "session"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StreamingState) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case streamingstate.FieldIsStreaming:
			values[i] = new(sql.NullBool)
		case streamingstate.FieldID, streamingstate.FieldSessionID, streamingstate.FieldContent, streamingstate.FieldReasoning, streamingstate.FieldToolCalls, streamingstate.FieldParts, streamingstate.FieldPendingQuestion, streamingstate.FieldPendingAnswer, streamingstate.FieldStage:
			values[i] = new(sql.NullString)
		case streamingstate.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StreamingState fields.
func (_m *StreamingState) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case streamingstate.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case streamingstate.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case streamingstate.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case streamingstate.FieldReasoning:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field reasoning", values[i])
			} else if value.Valid {
				_m.Reasoning = value.String
			}
		case streamingstate.FieldToolCalls:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tool_calls", values[i])
			} else if value.Valid {
				_m.ToolCalls = value.String
			}
		case streamingstate.FieldParts:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field parts", values[i])
			} else if value.Valid {
				_m.Parts = value.String
			}
		case streamingstate.FieldPendingQuestion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_question", values[i])
			} else if value.Valid {
				_m.PendingQuestion = new(string)
				*_m.PendingQuestion = value.String
			}
		case streamingstate.FieldPendingAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pending_answer", values[i])
			} else if value.Valid {
				_m.PendingAnswer = new(string)
				*_m.PendingAnswer = value.String
			}
		case streamingstate.FieldStage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field stage", values[i])
			} else if value.Valid {
				_m.Stage = value.String
			}
		case streamingstate.FieldIsStreaming:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_streaming", values[i])
			} else if value.Valid {
				_m.IsStreaming = value.Bool
			}
		case streamingstate.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the StreamingState.
// This includes values selected through modifiers, order, etc.
func (_m *StreamingState) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QuerySession queries the "session" edge of the StreamingState entity.
func (_m *StreamingState) QuerySession() *SessionQuery {
	return NewStreamingStateClient(_m.config).QuerySession(_m)
}

// Update returns a builder for updating this StreamingState.
// Note that you need to call StreamingState.Unwrap() before calling this method if this StreamingState
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StreamingState) Update() *StreamingStateUpdateOne {
	return NewStreamingStateClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StreamingState entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StreamingState) Unwrap() *StreamingState {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StreamingState is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StreamingState) String() string {
	var builder strings.Builder
	builder.WriteString("StreamingState(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("reasoning=")
	builder.WriteString(_m.Reasoning)
	builder.WriteString(", ")
	builder.WriteString("tool_calls=")
	builder.WriteString(_m.ToolCalls)
	builder.WriteString(", ")
	builder.WriteString("parts=")
	builder.WriteString(_m.Parts)
	builder.WriteString(", ")
	if v := _m.PendingQuestion; v != nil {
		builder.WriteString("pending_question=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PendingAnswer; v != nil {
		builder.WriteString("pending_answer=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("stage=")
	builder.WriteString(_m.Stage)
	builder.WriteString(", ")
	builder.WriteString("is_streaming=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsStreaming))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StreamingStates is a parsable slice of StreamingState.
type StreamingStates []*StreamingState
