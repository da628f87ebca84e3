package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/test/util"
)

func newStreamFixture(t *testing.T) (*StreamService, string, context.Context) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()
	sessions := NewSessionService(client)
	sess, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		UserID: "user-1", Owner: "acme", Repo: "widgets", Branch: "main",
	})
	require.NoError(t, err)
	streams := NewStreamService(client, db)
	require.NoError(t, streams.Start(ctx, sess.ID))
	return streams, sess.ID, ctx
}

func TestStream_AppendContentConcatenates(t *testing.T) {
	streams, id, ctx := newStreamFixture(t)

	require.NoError(t, streams.AppendContent(ctx, id, "Hello"))
	require.NoError(t, streams.AppendContent(ctx, id, ", world"))
	require.NoError(t, streams.AppendReasoning(ctx, id, "thinking..."))

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Hello, world", snap.Content)
	assert.Equal(t, "thinking...", snap.Reasoning)
	assert.True(t, snap.IsStreaming)
}

func TestStream_ToolCallLifecycle(t *testing.T) {
	streams, id, ctx := newStreamFixture(t)

	require.NoError(t, streams.AddToolCall(ctx, id, "call-1", "bash", `{"command":"ls"}`))

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, snap.ToolCalls, 1)
	assert.Equal(t, models.ToolCallRunning, snap.ToolCalls[0].Status)

	require.NoError(t, streams.UpdateToolResult(ctx, id, "call-1", "file.go\n", nil))

	snap, err = streams.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, snap.ToolCalls, 1)
	assert.Equal(t, models.ToolCallCompleted, snap.ToolCalls[0].Status)
	assert.Equal(t, "file.go\n", snap.ToolCalls[0].Result)

	// The parts timeline carries the same completion.
	require.Len(t, snap.Parts, 1)
	require.NotNil(t, snap.Parts[0].ToolCall)
	assert.Equal(t, models.ToolCallCompleted, snap.Parts[0].ToolCall.Status)
}

func TestStream_UpdateToolResultUnknownCallIsNoop(t *testing.T) {
	streams, id, ctx := newStreamFixture(t)

	require.NoError(t, streams.UpdateToolResult(ctx, id, "missing", "x", nil))
	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, snap.ToolCalls)
}

func TestStream_ToolResultTruncated(t *testing.T) {
	streams, id, ctx := newStreamFixture(t)

	require.NoError(t, streams.AddToolCall(ctx, id, "call-1", "read", "{}"))
	big := strings.Repeat("x", 10*1024)
	require.NoError(t, streams.UpdateToolResult(ctx, id, "call-1", big, nil))

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, snap.ToolCalls[0].Result, "[truncated]")
	assert.Less(t, len(snap.ToolCalls[0].Result), len(big))
}

func TestStream_PartsPreserveInterleaving(t *testing.T) {
	streams, id, ctx := newStreamFixture(t)

	require.NoError(t, streams.AppendTextPart(ctx, id, models.Part{Type: models.PartText, Text: "before "}))
	require.NoError(t, streams.AppendTextPart(ctx, id, models.Part{Type: models.PartText, Text: "the call"}))
	require.NoError(t, streams.AddToolCall(ctx, id, "call-1", "bash", "{}"))
	require.NoError(t, streams.AppendTextPart(ctx, id, models.Part{Type: models.PartText, Text: "after"}))

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, snap.Parts, 3, "consecutive text segments collapse into one part")
	assert.Equal(t, "before the call", snap.Parts[0].Text)
	assert.Equal(t, models.PartToolCall, snap.Parts[1].Type)
	assert.Equal(t, "after", snap.Parts[2].Text)
}

func TestStream_QuestionAnswerRoundtrip(t *testing.T) {
	streams, id, ctx := newStreamFixture(t)

	q := models.Question{
		Type:     models.QuestionTypeUser,
		Question: "Which framework?",
		Options:  []string{"gin", "echo"},
	}
	require.NoError(t, streams.SetQuestion(ctx, id, q))

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, snap.PendingQuestion, "Which framework?")
	assert.Empty(t, snap.PendingAnswer)

	require.NoError(t, streams.AnswerQuestion(ctx, id, models.Answer{Answer: "gin"}))
	raw, err := streams.PendingAnswer(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, raw, "gin")

	require.NoError(t, streams.ClearQuestion(ctx, id))
	snap, err = streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, snap.PendingQuestion)
	assert.Empty(t, snap.PendingAnswer)
}

func TestStream_AnswerWithoutRow(t *testing.T) {
	streams, _, ctx := newStreamFixture(t)

	err := streams.AnswerQuestion(ctx, "no-such-session", models.Answer{Answer: "x"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStream_FinishClosesStream(t *testing.T) {
	streams, id, ctx := newStreamFixture(t)

	require.NoError(t, streams.Finish(ctx, id))
	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.False(t, snap.IsStreaming)
}

func TestStream_StartResetsPriorTurn(t *testing.T) {
	streams, id, ctx := newStreamFixture(t)

	require.NoError(t, streams.AppendContent(ctx, id, "leftover"))
	require.NoError(t, streams.AddToolCall(ctx, id, "call-1", "bash", "{}"))
	require.NoError(t, streams.SetQuestion(ctx, id, models.Question{Question: "stale?"}))
	require.NoError(t, streams.Finish(ctx, id))

	require.NoError(t, streams.Start(ctx, id))

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, snap.Content)
	assert.Empty(t, snap.ToolCalls)
	assert.Empty(t, snap.Parts)
	assert.Empty(t, snap.PendingQuestion)
	assert.True(t, snap.IsStreaming)
}
