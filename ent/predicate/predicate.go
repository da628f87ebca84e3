// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentState is the predicate function for agentstate builders.
type AgentState func(*sql.Selector)

// Event is the predicate function for event builders.
type Event func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// StreamingState is the predicate function for streamingstate builders.
type StreamingState func(*sql.Selector)

// Todo is the predicate function for todo builders.
type Todo func(*sql.Selector)
