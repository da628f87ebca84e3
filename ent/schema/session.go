package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session holds the schema definition for the Session entity.
// One row per conversation; owns messages, todos, agent state, and the
// streaming state row, plus the sandbox/snapshot handles.
type Session struct {
	ent.Schema
}

// Fields of the Session.
func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("session_id").
			Unique().
			Immutable(),
		field.String("user_id"),
		field.String("owner").
			Comment("GitHub repository owner"),
		field.String("repo").
			Comment("GitHub repository name"),
		field.String("branch").
			Comment("Base branch the session was started from"),
		field.String("session_branch").
			Optional().
			Comment("Working branch; non-empty after the first turn"),
		field.Enum("agent").
			Values("build", "plan").
			Default("build"),
		field.String("model").
			Optional(),
		field.Enum("status").
			Values("booting", "idle", "running", "error").
			Default("idle"),
		field.String("sandbox_id").
			Optional().
			Nillable().
			Comment("Live sandbox handle; cleared when a snapshot is taken"),
		field.String("snapshot_id").
			Optional().
			Nillable().
			Comment("Resumable snapshot handle"),
		field.String("title").
			Optional(),
		field.Bool("title_generated").
			Default(false),
		field.String("last_message").
			Optional().
			Comment("Preview of the most recent message (max 200 chars)"),
		field.Bool("cancel_requested").
			Default(false),
		field.Bool("has_changes").
			Default(false).
			Comment("Set on the first file-modifying tool of the session"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Session.
func (Session) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("messages", Message.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("todos", Todo.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_state", AgentState.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("streaming_state", StreamingState.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Session.
func (Session) Indexes() []ent.Index {
	return []ent.Index{
		// Sweeper scan
		index.Fields("status"),
		// Per-user listing, newest first
		index.Fields("user_id", "updated_at"),
	}
}
