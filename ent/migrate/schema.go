// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentStatesColumns holds the columns for the "agent_states" table.
	AgentStatesColumns = []*schema.Column{
		{Name: "agent_state_id", Type: field.TypeString, Unique: true},
		{Name: "sage_messages", Type: field.TypeString, Size: 2147483647, Default: "[]"},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "plan_file_path", Type: field.TypeString, Nullable: true},
		{Name: "agent_mode", Type: field.TypeEnum, Enums: []string{"build", "plan"}, Default: "build"},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// AgentStatesTable holds the schema information for the "agent_states" table.
	AgentStatesTable = &schema.Table{
		Name:       "agent_states",
		Columns:    AgentStatesColumns,
		PrimaryKey: []*schema.Column{AgentStatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "agent_states_sessions_agent_state",
				Columns:    []*schema.Column{AgentStatesColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "agentstate_session_id",
				Unique:  true,
				Columns: []*schema.Column{AgentStatesColumns[6]},
			},
		},
	}
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "event_id", Type: field.TypeInt64, Increment: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "payload", Type: field.TypeString, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "events_sessions_events",
				Columns:    []*schema.Column{EventsColumns[4]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "event_channel_event_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1], EventsColumns[0]},
			},
			{
				Name:    "event_created_at",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "parts", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_sessions_messages",
				Columns:    []*schema.Column{MessagesColumns[5]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5], MessagesColumns[4]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "owner", Type: field.TypeString},
		{Name: "repo", Type: field.TypeString},
		{Name: "branch", Type: field.TypeString},
		{Name: "session_branch", Type: field.TypeString, Nullable: true},
		{Name: "agent", Type: field.TypeEnum, Enums: []string{"build", "plan"}, Default: "build"},
		{Name: "model", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"booting", "idle", "running", "error"}, Default: "idle"},
		{Name: "sandbox_id", Type: field.TypeString, Nullable: true},
		{Name: "snapshot_id", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "title_generated", Type: field.TypeBool, Default: false},
		{Name: "last_message", Type: field.TypeString, Nullable: true},
		{Name: "cancel_requested", Type: field.TypeBool, Default: false},
		{Name: "has_changes", Type: field.TypeBool, Default: false},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[8]},
			},
			{
				Name:    "session_user_id_updated_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[20]},
			},
		},
	}
	// StreamingStatesColumns holds the columns for the "streaming_states" table.
	StreamingStatesColumns = []*schema.Column{
		{Name: "streaming_state_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "reasoning", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "tool_calls", Type: field.TypeString, Size: 2147483647, Default: "[]"},
		{Name: "parts", Type: field.TypeString, Size: 2147483647, Default: "[]"},
		{Name: "pending_question", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "pending_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "is_streaming", Type: field.TypeBool, Default: false},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Unique: true},
	}
	// StreamingStatesTable holds the schema information for the "streaming_states" table.
	StreamingStatesTable = &schema.Table{
		Name:       "streaming_states",
		Columns:    StreamingStatesColumns,
		PrimaryKey: []*schema.Column{StreamingStatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "streaming_states_sessions_streaming_state",
				Columns:    []*schema.Column{StreamingStatesColumns[10]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "streamingstate_session_id",
				Unique:  true,
				Columns: []*schema.Column{StreamingStatesColumns[10]},
			},
		},
	}
	// TodosColumns holds the columns for the "todos" table.
	TodosColumns = []*schema.Column{
		{Name: "todo_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "in_progress", "completed"}, Default: "pending"},
		{Name: "priority", Type: field.TypeString, Nullable: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString},
	}
	// TodosTable holds the schema information for the "todos" table.
	TodosTable = &schema.Table{
		Name:       "todos",
		Columns:    TodosColumns,
		PrimaryKey: []*schema.Column{TodosColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "todos_sessions_todos",
				Columns:    []*schema.Column{TodosColumns[6]},
				RefColumns: []*schema.Column{SessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "todo_session_id_position",
				Unique:  false,
				Columns: []*schema.Column{TodosColumns[6], TodosColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentStatesTable,
		EventsTable,
		MessagesTable,
		SessionsTable,
		StreamingStatesTable,
		TodosTable,
	}
)

func init() {
	AgentStatesTable.ForeignKeys[0].RefTable = SessionsTable
	EventsTable.ForeignKeys[0].RefTable = SessionsTable
	MessagesTable.ForeignKeys[0].RefTable = SessionsTable
	StreamingStatesTable.ForeignKeys[0].RefTable = SessionsTable
	TodosTable.ForeignKeys[0].RefTable = SessionsTable
}
