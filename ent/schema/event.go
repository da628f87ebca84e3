package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Event holds the schema definition for the Event entity.
// Persistent events backing WebSocket catch-up; transient stream deltas
// are NOTIFY-only and never land here.
type Event struct {
	ent.Schema
}

// Fields of the Event.
func (Event) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("id").
			StorageKey("event_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Optional().
			Immutable(),
		field.String("channel").
			Immutable(),
		field.Text("payload").
			Immutable().
			Comment("JSON event payload"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Event.
func (Event) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("events").
			Field("session_id").
			Unique().
			Immutable(),
	}
}

// Indexes of the Event.
func (Event) Indexes() []ent.Index {
	return []ent.Index{
		// Catch-up query: events on a channel after a known id
		index.Fields("channel", "id"),
		index.Fields("created_at"),
	}
}
