package models

// Message roles in the LLM-visible conversation.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is a tool invocation requested by the model.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// ConversationMessage is one message in the shape the inference engine
// expects; the serialized list is persisted as agent-state sage_messages.
type ConversationMessage struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	ToolName   string     `json:"tool_name,omitempty"`
}

// AgentStateData is the decoded agent-state row.
type AgentStateData struct {
	Messages     []ConversationMessage
	Summary      string
	PlanFilePath string
	AgentMode    string
}
