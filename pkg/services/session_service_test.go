package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratuscode/stratuscode/ent/streamingstate"
	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/test/util"
)

func newSessionFixture(t *testing.T) (*SessionService, *StreamService, context.Context) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	return NewSessionService(client), NewStreamService(client, db), context.Background()
}

func createSession(t *testing.T, svc *SessionService, ctx context.Context) string {
	t.Helper()
	sess, err := svc.CreateSession(ctx, models.CreateSessionRequest{
		UserID: "user-1",
		Owner:  "acme",
		Repo:   "widgets",
		Branch: "main",
		Model:  "gpt-4o",
	})
	require.NoError(t, err)
	return sess.ID
}

func TestCreateSession_Defaults(t *testing.T) {
	svc, _, ctx := newSessionFixture(t)

	sess, err := svc.CreateSession(ctx, models.CreateSessionRequest{
		UserID: "user-1", Owner: "acme", Repo: "widgets", Branch: "main",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AgentBuild, string(sess.Agent))
	assert.Equal(t, models.StatusIdle, string(sess.Status))
	assert.False(t, sess.CancelRequested)
	assert.False(t, sess.HasChanges)
}

func TestCreateSession_Validation(t *testing.T) {
	svc, _, ctx := newSessionFixture(t)

	_, err := svc.CreateSession(ctx, models.CreateSessionRequest{Owner: "a", Repo: "b", Branch: "c"})
	assert.True(t, IsValidationError(err))

	_, err = svc.CreateSession(ctx, models.CreateSessionRequest{
		UserID: "u", Owner: "a", Repo: "b", Branch: "c", Agent: "wizard",
	})
	assert.True(t, IsValidationError(err))
}

func TestPrepareSend_AtomicTransition(t *testing.T) {
	svc, streams, ctx := newSessionFixture(t)
	id := createSession(t, svc, ctx)

	require.NoError(t, svc.RequestCancel(ctx, id))

	msg, err := svc.PrepareSend(ctx, id, "fix the flaky login test")
	require.NoError(t, err)
	assert.Equal(t, "user", string(msg.Role))
	assert.Equal(t, "fix the flaky login test", msg.Content)

	sess, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, string(sess.Status))
	assert.False(t, sess.CancelRequested, "cancel flag must not survive into a new turn")
	assert.Equal(t, "fix the flaky login test", sess.LastMessage)
	assert.Equal(t, "fix the flaky login test", sess.Title)

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.True(t, snap.IsStreaming)
	assert.Empty(t, snap.Content)
}

func TestPrepareSend_TwiceLeavesValidState(t *testing.T) {
	svc, streams, ctx := newSessionFixture(t)
	id := createSession(t, svc, ctx)

	// Leak state into the stream, as an interrupted turn would.
	_, err := svc.PrepareSend(ctx, id, "first message")
	require.NoError(t, err)
	require.NoError(t, streams.AppendContent(ctx, id, "partial output"))

	_, err = svc.PrepareSend(ctx, id, "second message")
	require.NoError(t, err)

	sess, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, string(sess.Status))

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, snap.Content, "stale stream content must not leak into the new turn")

	msgs := NewMessageService(svc.client)
	count, err := msgs.CountMessages(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestPrepareSend_TruncatesPreview(t *testing.T) {
	svc, _, ctx := newSessionFixture(t)
	id := createSession(t, svc, ctx)

	long := strings.Repeat("x", 500)
	_, err := svc.PrepareSend(ctx, id, long)
	require.NoError(t, err)

	sess, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Len(t, sess.LastMessage, 200)
	assert.Len(t, sess.Title, 50)
}

func TestMarkHasChanges_Idempotent(t *testing.T) {
	svc, _, ctx := newSessionFixture(t)
	id := createSession(t, svc, ctx)

	require.NoError(t, svc.MarkHasChanges(ctx, id))
	require.NoError(t, svc.MarkHasChanges(ctx, id))

	sess, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.True(t, sess.HasChanges)
}

func TestSetSnapshot_ClearsSandboxID(t *testing.T) {
	svc, _, ctx := newSessionFixture(t)
	id := createSession(t, svc, ctx)

	require.NoError(t, svc.SetSandboxID(ctx, id, "sbx-1"))
	sess, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, sess.SandboxID)
	assert.Equal(t, "sbx-1", *sess.SandboxID)

	require.NoError(t, svc.SetSnapshot(ctx, id, "snap-1"))
	sess, err = svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Nil(t, sess.SandboxID)
	require.NotNil(t, sess.SnapshotID)
	assert.Equal(t, "snap-1", *sess.SnapshotID)
}

func TestAddTokenUsage_Accumulates(t *testing.T) {
	svc, _, ctx := newSessionFixture(t)
	id := createSession(t, svc, ctx)

	require.NoError(t, svc.AddTokenUsage(ctx, id, models.TokenUsage{InputTokens: 100, OutputTokens: 20}))
	require.NoError(t, svc.AddTokenUsage(ctx, id, models.TokenUsage{InputTokens: 50, OutputTokens: 5}))

	sess, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 150, sess.InputTokens)
	assert.Equal(t, 25, sess.OutputTokens)
}

func TestSweep_RecoversAbandonedSession(t *testing.T) {
	svc, _, ctx := newSessionFixture(t)
	id := createSession(t, svc, ctx)

	_, err := svc.PrepareSend(ctx, id, "do something")
	require.NoError(t, err)

	// Age the streaming state past the staleness threshold.
	_, err = svc.client.StreamingState.Update().
		Where(streamingstate.SessionIDEQ(id)).
		SetUpdatedAt(time.Now().Add(-10 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)

	stale, err := svc.FindStaleRunningSessions(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.Contains(t, stale, id)

	swept, err := svc.MarkAbandoned(ctx, id)
	require.NoError(t, err)
	assert.True(t, swept)

	sess, err := svc.GetSession(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, string(sess.Status))
	require.NotNil(t, sess.ErrorMessage)
	assert.Equal(t, "task abandoned", *sess.ErrorMessage)

	// A second sweep leaves the already-recovered session alone.
	swept, err = svc.MarkAbandoned(ctx, id)
	require.NoError(t, err)
	assert.False(t, swept)
}

func TestSweep_IgnoresFreshRunningSessions(t *testing.T) {
	svc, _, ctx := newSessionFixture(t)
	id := createSession(t, svc, ctx)

	_, err := svc.PrepareSend(ctx, id, "do something")
	require.NoError(t, err)

	stale, err := svc.FindStaleRunningSessions(ctx, 5*time.Minute)
	require.NoError(t, err)
	assert.NotContains(t, stale, id)
}

func TestPurgeSessionData_Cascades(t *testing.T) {
	svc, streams, ctx := newSessionFixture(t)
	id := createSession(t, svc, ctx)

	_, err := svc.PrepareSend(ctx, id, "hello")
	require.NoError(t, err)

	require.NoError(t, svc.PurgeSessionData(ctx, id))

	_, err = svc.GetSession(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = streams.Get(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
