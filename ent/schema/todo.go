package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Todo holds the schema definition for the Todo entity.
// Replace-all semantics per write; at most one in_progress todo per session.
type Todo struct {
	ent.Schema
}

// Fields of the Todo.
func (Todo) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("todo_id").
			Unique().
			Immutable(),
		field.String("session_id"),
		field.Text("content"),
		field.Enum("status").
			Values("pending", "in_progress", "completed").
			Default("pending"),
		field.String("priority").
			Optional(),
		field.Int("position").
			Comment("Order within the session's list"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Todo.
func (Todo) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("todos").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the Todo.
func (Todo) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "position"),
	}
}
