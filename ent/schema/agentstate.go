package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentState holds the schema definition for the AgentState entity.
// Single row per session: the conversation as the inference engine saw it
// at the end of the last turn, plus summarization state and the active mode.
type AgentState struct {
	ent.Schema
}

// Fields of the AgentState.
func (AgentState) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_state_id").
			Unique().
			Immutable(),
		field.String("session_id").
			Unique(),
		field.Text("sage_messages").
			Default("[]").
			Comment("JSON-serialized LLM-visible history"),
		field.Text("summary").
			Optional().
			Comment("Summarization carry-over for long conversations"),
		field.String("plan_file_path").
			Optional(),
		field.Enum("agent_mode").
			Values("build", "plan").
			Default("build"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the AgentState.
func (AgentState) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", Session.Type).
			Ref("agent_state").
			Field("session_id").
			Unique().
			Required(),
	}
}

// Indexes of the AgentState.
func (AgentState) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id").
			Unique(),
	}
}
