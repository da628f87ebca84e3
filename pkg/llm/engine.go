// Package llm holds the inference engine contract: provider routing,
// context-window sizing, Codex OAuth, and the gRPC engine that streams a
// turn while driving the tool loop locally.
package llm

import (
	"context"

	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/tools"
)

// TurnInput is everything one engine run needs.
type TurnInput struct {
	SessionID    string
	SystemPrompt string
	Messages     []models.ConversationMessage
	Tools        []tools.Definition
	Provider     ProviderConfig

	// Summary is the rolling conversation summary from the previous turn.
	Summary string

	// ContextWindow bounds the conversation before the engine summarizes.
	ContextWindow int

	ReasoningEffort string
}

// Callbacks receive streaming progress during a turn. All callbacks are
// invoked from the engine's goroutine, in stream order.
type Callbacks struct {
	OnToken      func(token string)
	OnReasoning  func(token string)
	OnToolCall   func(call models.ToolCall) error
	OnToolResult func(call models.ToolCall, result string) error
	// OnError records a provider error without stopping the stream; the
	// engine may recover and continue.
	OnError func(err error)

	OnSubagentStart func(agent string)
	OnSubagentToken func(agent, token string)
	OnSubagentEnd   func(agent string)
}

// TurnResult is the completed turn.
type TurnResult struct {
	// Content is the assistant's final text.
	Content string
	// Messages is the full conversation after this turn, ready to persist
	// as the next turn's starting point.
	Messages []models.ConversationMessage
	// NewSummary is non-empty when the engine compacted history.
	NewSummary string
	Usage models.TokenUsage
}

// Engine runs one complete agent turn: streams the model, executes tool
// calls through the runner, feeds results back, and iterates to a final
// assistant message.
type Engine interface {
	ProcessTurn(ctx context.Context, input TurnInput, runner *tools.Runner, tc *tools.Context, cb Callbacks) (*TurnResult, error)
	Close() error
}
