package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StreamingState holds the schema definition for the StreamingState entity.
// An ephemeral mirror of the in-flight turn, one mutable row per session.
// The durable record is the assistant Message written at turn end.
type StreamingState struct {
	ent.Schema
}

// Fields of the StreamingState.
func (StreamingState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("streaming_state_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique(),
		field.Text("content").
			Default("").
			Comment("Visible text accumulator"),
		field.Text("reasoning").
			Default("").
			Comment("Hidden chain-of-thought accumulator"),
		field.Text("tool_calls").
			Default("[]").
			Comment("JSON ordered list of {id,name,args,result?,status}"),
		field.Text("parts").
			Default("[]").
			Comment("JSON ordered interleaving preserving emission order"),
		field.Text("pending_question").
			Optional().
			Nillable(),
		field.Text("pending_answer").
			Optional().
			Nillable(),
		field.String("stage").
			Optional(),
		field.Bool("is_streaming").
			Default(false),
		field.Time("updated_at").
			Default(time.Now).
			Comment("Bumped by every mutation; drives the staleness sweeper"),
	}
}

// Edges of the StreamingState.
func (StreamingState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("streaming_state").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the StreamingState.
func (StreamingState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").
			Unique(),
	}
}
