package models

// Question is the JSON payload written to a streaming state's
// pending_question column by the rendezvous tools.
type Question struct {
	Type     string   `json:"type"`
	Question string   `json:"question,omitempty"`
	Summary  string   `json:"summary,omitempty"`
	Options  []string `json:"options,omitempty"`
}

// Question types.
const (
	QuestionTypeUser     = "question"
	QuestionTypePlanExit = "plan_exit"
)

// Answer is the JSON payload a client writes to pending_answer.
type Answer struct {
	Answer string `json:"answer"`
}

// StreamSnapshot is a read-only view of a streaming state row.
type StreamSnapshot struct {
	SessionID       string
	Content         string
	Reasoning       string
	ToolCalls       []ToolCallRecord
	Parts           []Part
	PendingQuestion string
	PendingAnswer   string
	Stage           string
	IsStreaming     bool
}
