package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionChannel(t *testing.T) {
	assert.Equal(t, "session:abc-123", SessionChannel("abc-123"))
}

func TestTruncateIfNeeded_SmallPayloadPassesThrough(t *testing.T) {
	payload := `{"type":"session.status","session_id":"s1","status":"idle"}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateIfNeeded_OversizedPayloadBecomesEnvelope(t *testing.T) {
	big, err := json.Marshal(map[string]any{
		"type":       EventTypeMessageCreated,
		"session_id": "s1",
		"content":    strings.Repeat("x", 8000),
	})
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(big))
	require.NoError(t, err)
	assert.Less(t, len(out), 7900)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, EventTypeMessageCreated, envelope["type"])
	assert.Equal(t, "s1", envelope["session_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, envelope, "content")
}

func TestInjectDBEventID(t *testing.T) {
	payload := []byte(`{"type":"session.title","session_id":"s1","title":"hello"}`)
	out, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "hello", m["title"])
}

func TestInjectDBEventID_SurvivesTruncation(t *testing.T) {
	big, err := json.Marshal(map[string]any{
		"type":       EventTypeMessageCreated,
		"session_id": "s1",
		"content":    strings.Repeat("x", 8000),
	})
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(big, 7)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, float64(7), envelope["db_event_id"])
}
