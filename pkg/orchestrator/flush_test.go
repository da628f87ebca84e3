package orchestrator

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratuscode/stratuscode/pkg/events"
	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/services"
	"github.com/stratuscode/stratuscode/test/util"
)

func newFlushFixture(t *testing.T) (*flusher, *services.StreamService, string, context.Context) {
	t.Helper()
	client, db := util.SetupTestDatabase(t)
	ctx := context.Background()

	sessions := services.NewSessionService(client)
	streams := services.NewStreamService(client, db)
	sess, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		UserID: "user-1", Owner: "acme", Repo: "widgets", Branch: "main",
	})
	require.NoError(t, err)
	_, err = sessions.PrepareSend(ctx, sess.ID, "hello")
	require.NoError(t, err)

	f := newFlusher(streams, events.NewEventPublisher(db), sess.ID, slog.Default())
	return f, streams, sess.ID, ctx
}

func TestFlusher_CoalescesTokensIntoOneWrite(t *testing.T) {
	f, streams, id, ctx := newFlushFixture(t)

	f.AddToken("Hel")
	f.AddToken("lo")

	// Both tokens are buffered behind the single pending timer.
	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Empty(t, snap.Content)

	require.Eventually(t, func() bool {
		snap, err := streams.Get(ctx, id)
		return err == nil && snap.Content == "Hello"
	}, 2*time.Second, 10*time.Millisecond)

	snap, err = streams.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, snap.Parts, 1)
	assert.Equal(t, "Hello", snap.Parts[0].Text)
}

func TestFlusher_ForcedFlushOrdersReasoningFirst(t *testing.T) {
	f, streams, id, ctx := newFlushFixture(t)

	f.AddReasoning("weighing options")
	f.AddToken("Use a heap.")
	require.NoError(t, f.Flush(ctx))

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Use a heap.", snap.Content)
	assert.Equal(t, "weighing options", snap.Reasoning)
	require.Len(t, snap.Parts, 2)
	assert.Equal(t, models.PartReasoning, snap.Parts[0].Type)
	assert.Equal(t, models.PartText, snap.Parts[1].Type)

	// The forced flush disarmed the timer; an empty flush writes nothing.
	require.NoError(t, f.Flush(ctx))
	snap, err = streams.Get(ctx, id)
	require.NoError(t, err)
	require.Len(t, snap.Parts, 2)
}

func TestFlusher_StopDrainsAndStopsScheduling(t *testing.T) {
	f, streams, id, ctx := newFlushFixture(t)

	f.AddToken("tail")
	require.NoError(t, f.Stop(ctx))

	snap, err := streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "tail", snap.Content)

	// Tokens after Stop never schedule a write.
	f.AddToken("late")
	time.Sleep(3 * tokenFlushInterval)
	snap, err = streams.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "tail", snap.Content)
}
