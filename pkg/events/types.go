// Package events provides real-time event delivery via WebSocket and
// PostgreSQL NOTIFY/LISTEN.
//
// Two delivery classes exist:
//
//   - Persistent events (session.status, message.created, session.title)
//     are written to the events table and broadcast via NOTIFY in one
//     transaction. Reconnecting clients recover them through catch-up.
//
//   - Transient events (stream.delta, stream.state) mirror the
//     streaming-state row during a turn. They are NOTIFY-only: a client
//     that reconnects mid-turn re-reads the streaming state instead of
//     replaying deltas, so nothing durable is lost.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	EventTypeSessionStatus  = "session.status"
	EventTypeMessageCreated = "message.created"
	EventTypeSessionTitle   = "session.title"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Coalesced token/reasoning deltas — high-frequency, ephemeral.
	EventTypeStreamDelta = "stream.delta"

	// Structural streaming-state changes: tool calls, results, questions,
	// answers, stage labels, stream finish.
	EventTypeStreamState = "stream.state"
)

// Stream-state change kinds (StreamStatePayload.Kind).
const (
	StreamKindToolCall   = "tool_call"
	StreamKindToolResult = "tool_result"
	StreamKindQuestion   = "question"
	StreamKindAnswer     = "answer"
	StreamKindStage      = "stage"
	StreamKindFinish     = "finish"
)

// GlobalSessionsChannel carries session-level status events for the
// session list view.
const GlobalSessionsChannel = "sessions"

// SessionChannel returns the channel name for a session's events.
// Format: "session:{session_id}"
func SessionChannel(sessionID string) string {
	return "session:" + sessionID
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "session:abc-123")
	LastEventID *int64 `json:"last_event_id,omitempty"` // For catchup
}
