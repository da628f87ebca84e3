package models

// Agent operating modes.
const (
	AgentBuild = "build"
	AgentPlan  = "plan"
)

// Session status values.
const (
	StatusBooting = "booting"
	StatusIdle    = "idle"
	StatusRunning = "running"
	StatusError   = "error"
)

// CreateSessionRequest is the payload for creating a new session.
type CreateSessionRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Owner  string `json:"owner" binding:"required"`
	Repo   string `json:"repo" binding:"required"`
	Branch string `json:"branch" binding:"required"`
	Agent  string `json:"agent,omitempty"`
	Model  string `json:"model,omitempty"`
}

// SendRequest is the payload for sending a user message into a session.
type SendRequest struct {
	Message         string `json:"message" binding:"required"`
	Model           string `json:"model,omitempty"`
	AgentMode       string `json:"agent_mode,omitempty"`
	AlphaMode       bool   `json:"alpha_mode,omitempty"`
	ReasoningEffort string `json:"reasoning_effort,omitempty"`
}

// TurnOptions carries the per-turn knobs from the send request into the
// orchestrator.
type TurnOptions struct {
	Model           string
	AgentMode       string
	AlphaMode       bool
	ReasoningEffort string
}

// TokenUsage accumulates prompt/completion token counts for a session.
type TokenUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
