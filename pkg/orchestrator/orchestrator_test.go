package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratuscode/stratuscode/pkg/events"
	"github.com/stratuscode/stratuscode/pkg/llm"
	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/sandbox"
	"github.com/stratuscode/stratuscode/pkg/services"
	"github.com/stratuscode/stratuscode/pkg/tools"
	"github.com/stratuscode/stratuscode/test/util"
)

// fakeEngine scripts ProcessTurn. Title calls are routed separately so
// turn tests can script the main run alone.
type fakeEngine struct {
	mu    sync.Mutex
	calls []llm.TurnInput

	run   func(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error)
	title func(input llm.TurnInput) (*llm.TurnResult, error)
}

func (e *fakeEngine) ProcessTurn(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error) {
	e.mu.Lock()
	e.calls = append(e.calls, input)
	e.mu.Unlock()
	if input.SystemPrompt == titleSystemPrompt {
		return e.title(input)
	}
	return e.run(ctx, input, runner, tc, cb)
}

func (e *fakeEngine) Close() error { return nil }

func (e *fakeEngine) turnCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.calls)
}

func (e *fakeEngine) firstInput() llm.TurnInput {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.calls[0]
}

// sandboxAPI is a minimal in-memory sandbox provider.
type sandboxAPI struct {
	mu       sync.Mutex
	nextID   int
	commands []string
}

func (f *sandboxAPI) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		p := strings.TrimPrefix(r.URL.Path, "/")
		switch {
		case r.Method == http.MethodPost && p == "":
			f.nextID++
			_ = json.NewEncoder(w).Encode(sandbox.Instance{
				SandboxID: fmt.Sprintf("sbx-%d", f.nextID), Status: "running",
			})
		case r.Method == http.MethodPost && strings.HasSuffix(p, "/commands"):
			var req struct {
				Args []string `json:"args"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if len(req.Args) > 0 {
				f.commands = append(f.commands, req.Args[len(req.Args)-1])
			}
			_ = json.NewEncoder(w).Encode(sandbox.CommandResult{ExitCode: 0})
		case r.Method == http.MethodPost && strings.HasSuffix(p, "/snapshot"):
			id := strings.TrimSuffix(p, "/snapshot")
			_ = json.NewEncoder(w).Encode(map[string]string{"snapshot_id": "snap-" + id})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func (f *sandboxAPI) ranCommand(substr string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, cmd := range f.commands {
		if strings.Contains(cmd, substr) {
			return true
		}
	}
	return false
}

type turnFixture struct {
	deps       Deps
	orch       *Orchestrator
	engine     *fakeEngine
	api        *sandboxAPI
	sessions   *services.SessionService
	messages   *services.MessageService
	streams    *services.StreamService
	agentState *services.AgentStateService
	ctx        context.Context
}

func newTurnFixture(t *testing.T) *turnFixture {
	t.Helper()
	client, db := util.SetupTestDatabase(t)

	api := &sandboxAPI{}
	srv := api.server()
	t.Cleanup(srv.Close)

	sessions := services.NewSessionService(client)
	engine := &fakeEngine{
		title: func(llm.TurnInput) (*llm.TurnResult, error) {
			return &llm.TurnResult{Content: "Session Title"}, nil
		},
	}

	deps := Deps{
		Sessions:   sessions,
		Messages:   services.NewMessageService(client),
		Streams:    services.NewStreamService(client, db),
		AgentState: services.NewAgentStateService(client),
		Todos:      services.NewTodoService(client),
		Publisher:  events.NewEventPublisher(db),
		Sandboxes: sandbox.NewManager(
			sandbox.NewClientWithBaseURL(sandbox.Credentials{Token: "t", ProjectID: "p", TeamID: "tm"}, srv.URL),
			sessions,
			sandbox.GitIdentity{Login: "octocat", UserID: 1},
		),
		Engine:      engine,
		GitHubToken: "ghtoken",
	}

	return &turnFixture{
		deps:       deps,
		orch:       New(deps),
		engine:     engine,
		api:        api,
		sessions:   sessions,
		messages:   deps.Messages,
		streams:    deps.Streams,
		agentState: deps.AgentState,
		ctx:        context.Background(),
	}
}

// startTurn creates a session and runs the pre-turn transition, the state
// RunTurn expects on entry.
func (f *turnFixture) startTurn(t *testing.T, message string) string {
	t.Helper()
	sess, err := f.sessions.CreateSession(f.ctx, models.CreateSessionRequest{
		UserID: "user-1", Owner: "acme", Repo: "widgets", Branch: "main", Model: "gpt-4o",
	})
	require.NoError(t, err)
	_, err = f.sessions.PrepareSend(f.ctx, sess.ID, message)
	require.NoError(t, err)
	return sess.ID
}

// presetTitle marks the session titled so finalize skips the title call.
func (f *turnFixture) presetTitle(t *testing.T, sessionID string) {
	t.Helper()
	require.NoError(t, f.sessions.SetTitle(f.ctx, sessionID, "preset"))
}

func assistantReply(input llm.TurnInput, content string) *llm.TurnResult {
	return &llm.TurnResult{
		Content: content,
		Messages: append(append([]models.ConversationMessage(nil), input.Messages...),
			models.ConversationMessage{Role: models.RoleAssistant, Content: content}),
		Usage: models.TokenUsage{InputTokens: 10, OutputTokens: 5},
	}
}

func TestRunTurn_SuccessFinalizesSession(t *testing.T) {
	f := newTurnFixture(t)

	var gotNotifier tools.StreamNotifier
	f.engine.run = func(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error) {
		gotNotifier = tc.Notifier
		cb.OnToken("All ")
		cb.OnToken("done.")
		return assistantReply(input, "All done."), nil
	}

	id := f.startTurn(t, "tidy the readme")
	f.orch.RunTurn(f.ctx, id, "tidy the readme", models.TurnOptions{})

	assert.NotNil(t, gotNotifier, "tools must be able to notify subscribers")

	sess, err := f.sessions.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, string(sess.Status))
	assert.Nil(t, sess.ErrorMessage)
	assert.Equal(t, "All done.", sess.LastMessage)
	assert.Equal(t, 10, sess.InputTokens)
	assert.Equal(t, 5, sess.OutputTokens)
	require.NotNil(t, sess.SnapshotID)
	assert.Equal(t, "snap-sbx-1", *sess.SnapshotID)
	assert.Nil(t, sess.SandboxID)

	msgs, err := f.messages.ListMessages(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "assistant", string(msgs[1].Role))
	assert.Equal(t, "All done.", msgs[1].Content)

	snap, err := f.streams.Get(f.ctx, id)
	require.NoError(t, err)
	assert.False(t, snap.IsStreaming)
	assert.Equal(t, "All done.", snap.Content)

	state, err := f.agentState.Load(f.ctx, id)
	require.NoError(t, err)
	require.NotEmpty(t, state.Messages)
	assert.Equal(t, models.RoleAssistant, state.Messages[len(state.Messages)-1].Role)

	// First exchange: the title call fires after finalize.
	require.Eventually(t, func() bool {
		s, err := f.sessions.GetSession(f.ctx, id)
		return err == nil && s.TitleGenerated
	}, 5*time.Second, 50*time.Millisecond)
	sess, err = f.sessions.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Session Title", sess.Title)
}

func TestRunTurn_FlushesTextBeforeToolMarkers(t *testing.T) {
	f := newTurnFixture(t)

	f.engine.run = func(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error) {
		cb.OnToken("Checking.")
		call := models.ToolCall{ID: "call-1", Name: "edit", Arguments: `{"path":"a.go"}`}
		if err := cb.OnToolCall(call); err != nil {
			return nil, err
		}
		if err := cb.OnToolResult(call, `"Edited a.go"`); err != nil {
			return nil, err
		}
		cb.OnToken(" Clean.")
		return assistantReply(input, "Checking. Clean."), nil
	}

	id := f.startTurn(t, "fix a.go")
	f.presetTitle(t, id)
	f.orch.RunTurn(f.ctx, id, "fix a.go", models.TurnOptions{})

	snap, err := f.streams.Get(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, snap.Parts, 3)
	assert.Equal(t, models.PartText, snap.Parts[0].Type)
	assert.Equal(t, "Checking.", snap.Parts[0].Text)
	assert.Equal(t, models.PartToolCall, snap.Parts[1].Type)
	require.NotNil(t, snap.Parts[1].ToolCall)
	assert.Equal(t, "call-1", snap.Parts[1].ToolCall.ID)
	assert.Equal(t, models.ToolCallCompleted, snap.Parts[1].ToolCall.Status)
	assert.Equal(t, models.PartText, snap.Parts[2].Type)
	assert.Equal(t, " Clean.", snap.Parts[2].Text)

	sess, err := f.sessions.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.True(t, sess.HasChanges, "edit is a file-modifying tool")
}

func TestRunTurn_CancelMidStreamKeepsPartial(t *testing.T) {
	f := newTurnFixture(t)

	f.engine.run = func(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error) {
		cb.OnToken("Halfway")
		<-ctx.Done()
		return nil, ctx.Err()
	}

	id := f.startTurn(t, "long task")
	done := make(chan struct{})
	go func() {
		defer close(done)
		f.orch.RunTurn(context.Background(), id, "long task", models.TurnOptions{})
	}()

	// Let the first flush land before flipping the flag.
	time.Sleep(200 * time.Millisecond)
	require.NoError(t, f.sessions.RequestCancel(f.ctx, id))

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("turn did not finish after cancel")
	}

	sess, err := f.sessions.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, string(sess.Status))
	assert.Nil(t, sess.ErrorMessage)

	msgs, err := f.messages.ListMessages(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "Halfway", msgs[1].Content)

	snap, err := f.streams.Get(f.ctx, id)
	require.NoError(t, err)
	assert.False(t, snap.IsStreaming)
}

func TestRunTurn_CancelBeforeTextUsesSentinel(t *testing.T) {
	f := newTurnFixture(t)
	id := f.startTurn(t, "do something")

	f.engine.run = func(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error) {
		call := models.ToolCall{ID: "call-1", Name: "bash", Arguments: `{"command":"ls"}`}
		if err := cb.OnToolCall(call); err != nil {
			return nil, err
		}
		if err := f.sessions.RequestCancel(ctx, id); err != nil {
			return nil, err
		}
		// The cancel flag is observed on the next callback.
		err := cb.OnToolResult(call, `{"exit_code":0}`)
		return nil, err
	}

	f.orch.RunTurn(f.ctx, id, "do something", models.TurnOptions{})

	sess, err := f.sessions.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusIdle, string(sess.Status))

	msgs, err := f.messages.ListMessages(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, cancelledSentinel, msgs[1].Content)

	snap, err := f.streams.Get(f.ctx, id)
	require.NoError(t, err)
	require.Len(t, snap.ToolCalls, 1)
	assert.Equal(t, models.ToolCallCompleted, snap.ToolCalls[0].Status)
}

func TestRunTurn_EngineErrorSetsErrorStatus(t *testing.T) {
	f := newTurnFixture(t)

	f.engine.run = func(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error) {
		return nil, errors.New("upstream exploded")
	}

	id := f.startTurn(t, "doomed task")
	f.orch.RunTurn(f.ctx, id, "doomed task", models.TurnOptions{})

	sess, err := f.sessions.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, string(sess.Status))
	require.NotNil(t, sess.ErrorMessage)
	assert.Equal(t, "upstream exploded", *sess.ErrorMessage)
	assert.False(t, sess.TitleGenerated, "failed turns are not titled")

	msgs, err := f.messages.ListMessages(f.ctx, id)
	require.NoError(t, err)
	assert.Len(t, msgs, 1, "no assistant message when nothing streamed")
}

func TestRunTurn_SandboxFailureFinalizesEarly(t *testing.T) {
	f := newTurnFixture(t)

	f.engine.run = func(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error) {
		return nil, errors.New("engine must not run")
	}

	deps := f.deps
	deps.GitHubToken = ""
	orch := New(deps)

	id := f.startTurn(t, "no token")
	orch.RunTurn(f.ctx, id, "no token", models.TurnOptions{})

	assert.Zero(t, f.engine.turnCount())

	sess, err := f.sessions.GetSession(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusError, string(sess.Status))
	require.NotNil(t, sess.ErrorMessage)
	assert.Contains(t, *sess.ErrorMessage, "GITHUB_TOKEN")

	snap, err := f.streams.Get(f.ctx, id)
	require.NoError(t, err)
	assert.False(t, snap.IsStreaming)
}

func TestRunTurn_PlanModePersistsPlanPath(t *testing.T) {
	f := newTurnFixture(t)

	f.engine.run = func(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error) {
		return assistantReply(input, "Plan drafted."), nil
	}

	id := f.startTurn(t, "plan the refactor")
	f.presetTitle(t, id)
	f.orch.RunTurn(f.ctx, id, "plan the refactor", models.TurnOptions{AgentMode: models.AgentPlan})

	input := f.engine.firstInput()
	require.NotEmpty(t, input.Messages)
	assert.Contains(t, input.Messages[len(input.Messages)-1].Content, "plan mode")

	assert.True(t, f.api.ranCommand(".stratuscode/plans"), "plan file must be created in the sandbox")

	state, err := f.agentState.Load(f.ctx, id)
	require.NoError(t, err)
	assert.Equal(t, planFilePath(id), state.PlanFilePath)
	assert.Equal(t, models.AgentPlan, state.AgentMode)
}

func TestRunTurn_TitleOnlyOnFirstTurn(t *testing.T) {
	f := newTurnFixture(t)

	f.engine.run = func(ctx context.Context, input llm.TurnInput, runner *tools.Runner, tc *tools.Context, cb llm.Callbacks) (*llm.TurnResult, error) {
		return assistantReply(input, "done again"), nil
	}

	// A session whose first-turn title call failed: titled never set, but
	// prior messages exist.
	sess, err := f.sessions.CreateSession(f.ctx, models.CreateSessionRequest{
		UserID: "user-1", Owner: "acme", Repo: "widgets", Branch: "main", Model: "gpt-4o",
	})
	require.NoError(t, err)
	_, err = f.sessions.PrepareSend(f.ctx, sess.ID, "first ask")
	require.NoError(t, err)
	_, err = f.messages.CreateAssistantMessage(f.ctx, sess.ID, "first reply", nil)
	require.NoError(t, err)
	_, err = f.sessions.PrepareSend(f.ctx, sess.ID, "second ask")
	require.NoError(t, err)

	f.orch.RunTurn(f.ctx, sess.ID, "second ask", models.TurnOptions{})

	// Give a stray title goroutine time to show up before asserting.
	time.Sleep(500 * time.Millisecond)
	assert.Equal(t, 1, f.engine.turnCount(), "no title call on a later turn")

	got, err := f.sessions.GetSession(f.ctx, sess.ID)
	require.NoError(t, err)
	assert.False(t, got.TitleGenerated)
}
