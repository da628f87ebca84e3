package tools

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratuscode/stratuscode/pkg/models"
)

// memStreamStore is an in-memory StreamStore for rendezvous tests.
type memStreamStore struct {
	mu       sync.Mutex
	question *models.Question
	answer   string
	clears   int
}

func (m *memStreamStore) SetQuestion(ctx context.Context, sessionID string, q models.Question) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.question = &q
	return nil
}

func (m *memStreamStore) ClearQuestion(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.question = nil
	m.clears++
	return nil
}

func (m *memStreamStore) PendingAnswer(ctx context.Context, sessionID string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.answer, nil
}

func (m *memStreamStore) pending() *models.Question {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.question
}

// recordingNotifier captures question rendezvous notifications.
type recordingNotifier struct {
	mu      sync.Mutex
	posted  []models.Question
	cleared int
}

func (n *recordingNotifier) QuestionPosted(ctx context.Context, sessionID string, q models.Question) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.posted = append(n.posted, q)
}

func (n *recordingNotifier) QuestionCleared(ctx context.Context, sessionID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cleared++
}

type stubSessions struct{ cancelled bool }

func (s *stubSessions) IsCancelRequested(ctx context.Context, sessionID string) (bool, error) {
	return s.cancelled, nil
}

func rendezvousContext(streams *memStreamStore, notifier *recordingNotifier, cancelled bool) *Context {
	return &Context{
		SessionID: "sess-1",
		Sessions:  &stubSessions{cancelled: cancelled},
		Streams:   streams,
		Notifier:  notifier,
	}
}

func TestAwaitAnswer_NotifiesPostAndClear(t *testing.T) {
	streams := &memStreamStore{answer: `{"answer":"use gin"}`}
	notifier := &recordingNotifier{}
	tc := rendezvousContext(streams, notifier, false)

	answer, err := awaitAnswer(context.Background(), tc, models.Question{
		Type:     models.QuestionTypeUser,
		Question: "Which framework?",
		Options:  []string{"gin", "echo"},
	})
	require.NoError(t, err)
	assert.Equal(t, "use gin", answer)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	require.Len(t, notifier.posted, 1)
	assert.Equal(t, "Which framework?", notifier.posted[0].Question)
	assert.Equal(t, []string{"gin", "echo"}, notifier.posted[0].Options)
	assert.Equal(t, 1, notifier.cleared)

	assert.Nil(t, streams.pending())
}

func TestAwaitAnswer_CancelClearsAndNotifies(t *testing.T) {
	streams := &memStreamStore{}
	notifier := &recordingNotifier{}
	tc := rendezvousContext(streams, notifier, true)

	_, err := awaitAnswer(context.Background(), tc, models.Question{
		Type:     models.QuestionTypeUser,
		Question: "Still there?",
	})
	require.ErrorIs(t, err, ErrCancelled)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Len(t, notifier.posted, 1)
	assert.Equal(t, 1, notifier.cleared)
	assert.Nil(t, streams.pending())
}

func TestAwaitAnswer_ContextDeadlineClearsQuestion(t *testing.T) {
	streams := &memStreamStore{}
	notifier := &recordingNotifier{}
	tc := rendezvousContext(streams, notifier, false)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := awaitAnswer(ctx, tc, models.Question{Type: models.QuestionTypeUser, Question: "q"})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	notifier.mu.Lock()
	defer notifier.mu.Unlock()
	assert.Equal(t, 1, notifier.cleared)
	assert.Nil(t, streams.pending())
}

func TestAwaitAnswer_RawAnswerFallback(t *testing.T) {
	// A nil notifier must not get in the way of the rendezvous itself.
	streams := &memStreamStore{answer: "just do it"}
	tc := &Context{
		SessionID: "sess-1",
		Sessions:  &stubSessions{},
		Streams:   streams,
	}

	answer, err := awaitAnswer(context.Background(), tc, models.Question{
		Type:     models.QuestionTypeUser,
		Question: "How?",
	})
	require.NoError(t, err)
	assert.Equal(t, "just do it", answer)
	assert.Nil(t, streams.pending())
}
