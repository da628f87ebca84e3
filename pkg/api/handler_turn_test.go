package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratuscode/stratuscode/pkg/events"
	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/services"
	"github.com/stratuscode/stratuscode/test/util"
)

// stubExecutor stands in for the turn executor.
type stubExecutor struct {
	mu        sync.Mutex
	active    bool
	submitted []string
}

func (s *stubExecutor) Submit(sessionID, userMessage string, opts models.TurnOptions) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitted = append(s.submitted, sessionID)
	return nil
}

func (s *stubExecutor) Active(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

type apiFixture struct {
	router   *gin.Engine
	executor *stubExecutor
	sessions *services.SessionService
	messages *services.MessageService
	ctx      context.Context
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	client, db := util.SetupTestDatabase(t)

	sessions := services.NewSessionService(client)
	messages := services.NewMessageService(client)
	streams := services.NewStreamService(client, db)
	todos := services.NewTodoService(client)
	executor := &stubExecutor{}

	srv := NewServer(nil, sessions, messages, streams, todos, executor, nil, events.NewEventPublisher(db))
	return &apiFixture{
		router:   srv.Router(),
		executor: executor,
		sessions: sessions,
		messages: messages,
		ctx:      context.Background(),
	}
}

func (f *apiFixture) createSession(t *testing.T) string {
	t.Helper()
	sess, err := f.sessions.CreateSession(f.ctx, models.CreateSessionRequest{
		UserID: "user-1", Owner: "acme", Repo: "widgets", Branch: "main", Model: "gpt-4o",
	})
	require.NoError(t, err)
	return sess.ID
}

func (f *apiFixture) send(t *testing.T, sessionID, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req, err := http.NewRequest(http.MethodPost, "/api/v1/sessions/"+sessionID+"/messages", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)
	return w
}

func TestSendMessage_AcceptedAndSubmitted(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createSession(t)

	w := f.send(t, id, `{"message":"fix the flaky login test"}`)
	assert.Equal(t, http.StatusAccepted, w.Code)

	f.executor.mu.Lock()
	assert.Equal(t, []string{id}, f.executor.submitted)
	f.executor.mu.Unlock()

	count, err := f.messages.CountMessages(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	sess, err := f.sessions.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRunning, string(sess.Status))
}

func TestSendMessage_RejectedWhileTurnActive(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createSession(t)
	f.executor.active = true

	w := f.send(t, id, `{"message":"one more thing"}`)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The rejected send must not have touched the session.
	f.executor.mu.Lock()
	assert.Empty(t, f.executor.submitted)
	f.executor.mu.Unlock()

	count, err := f.messages.CountMessages(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	sess, err := f.sessions.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, string(sess.Status))
}

func TestSendMessage_EmptyBodyRejected(t *testing.T) {
	f := newAPIFixture(t)
	id := f.createSession(t)

	w := f.send(t, id, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
