package events

import "github.com/stratuscode/stratuscode/pkg/models"

// SessionStatusPayload announces a session status transition.
type SessionStatusPayload struct {
	Type         string `json:"type"` // EventTypeSessionStatus
	SessionID    string `json:"session_id"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// MessageCreatedPayload announces a persisted message.
type MessageCreatedPayload struct {
	Type      string `json:"type"` // EventTypeMessageCreated
	SessionID string `json:"session_id"`
	MessageID string `json:"message_id"`
	Role      string `json:"role"`
	Content   string `json:"content"`
}

// SessionTitlePayload announces a generated title.
type SessionTitlePayload struct {
	Type      string `json:"type"` // EventTypeSessionTitle
	SessionID string `json:"session_id"`
	Title     string `json:"title"`
}

// StreamDeltaPayload carries a coalesced batch of streamed text.
type StreamDeltaPayload struct {
	Type      string `json:"type"` // EventTypeStreamDelta
	SessionID string `json:"session_id"`
	Content   string `json:"content,omitempty"`
	Reasoning string `json:"reasoning,omitempty"`
}

// StreamStatePayload signals a structural streaming-state change. Clients
// holding large state re-read the streaming-state row on receipt; the
// payload carries enough to render the common cases without a round trip.
type StreamStatePayload struct {
	Type      string                 `json:"type"` // EventTypeStreamState
	SessionID string                 `json:"session_id"`
	Kind      string                 `json:"kind"`
	ToolCall  *models.ToolCallRecord `json:"tool_call,omitempty"`
	Question  *models.Question       `json:"question,omitempty"`
	Stage     string                 `json:"stage,omitempty"`
}
