package tools

import (
	"context"
	"errors"
	"log/slog"

	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/sandbox"
)

// ErrCancelled propagates out of a tool when the user requested
// cancellation while the tool was blocked. The orchestrator catches it at
// the top level and follows the cancelled finalize path.
var ErrCancelled = errors.New("cancelled by user")

// SessionStore is the slice of the session service tools need.
type SessionStore interface {
	IsCancelRequested(ctx context.Context, sessionID string) (bool, error)
}

// StreamStore is the slice of the stream service the rendezvous tools need.
type StreamStore interface {
	SetQuestion(ctx context.Context, sessionID string, q models.Question) error
	ClearQuestion(ctx context.Context, sessionID string) error
	PendingAnswer(ctx context.Context, sessionID string) (string, error)
}

// StreamNotifier pushes question rendezvous transitions out to
// subscribed clients. The question also lands in the streaming-state
// row, so a nil notifier only costs liveness, not correctness.
type StreamNotifier interface {
	QuestionPosted(ctx context.Context, sessionID string, q models.Question)
	QuestionCleared(ctx context.Context, sessionID string)
}

// TodoStore is the slice of the todo service the todo tools need.
type TodoStore interface {
	ReplaceAll(ctx context.Context, sessionID string, items []models.TodoItem) error
	List(ctx context.Context, sessionID string) ([]models.TodoItem, error)
	Count(ctx context.Context, sessionID string) (int, error)
}

// Context carries everything a tool execution may touch. One per turn,
// shared across all calls of that turn.
type Context struct {
	SessionID string
	Sandbox   *sandbox.Handle

	Sessions SessionStore
	Streams  StreamStore
	Todos    TodoStore
	Notifier StreamNotifier

	// GitHubToken authenticates pushes and PR creation from the sandbox.
	GitHubToken string

	// AlphaMode disables the confirmation gate on destructive git tools.
	AlphaMode bool

	// AgentMode restricts writes in plan mode to the plan file.
	AgentMode    string
	PlanFilePath string

	Logger *slog.Logger
}

func (tc *Context) log() *slog.Logger {
	if tc.Logger != nil {
		return tc.Logger
	}
	return slog.Default()
}

// cancelRequested polls the session's cancel flag, treating lookup errors
// as "not cancelled" so a transient DB blip can't abort a turn.
func (tc *Context) cancelRequested(ctx context.Context) bool {
	if tc.Sessions == nil {
		return false
	}
	cancelled, err := tc.Sessions.IsCancelRequested(ctx, tc.SessionID)
	if err != nil {
		tc.log().Warn("Cancel flag lookup failed", "session_id", tc.SessionID, "error", err)
		return false
	}
	return cancelled
}
