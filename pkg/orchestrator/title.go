package orchestrator

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/stratuscode/stratuscode/pkg/llm"
	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/tools"
)

const (
	// titlePromptCap bounds how much of the user's message feeds the
	// title call.
	titlePromptCap = 500

	titleMaxLen  = 50
	titleTimeout = 30 * time.Second
)

const titleSystemPrompt = `Generate a concise title for a coding session based on the user's first message. Respond with the title only: at most 50 characters, no quotes, no trailing punctuation.`

// isFirstTurn reports whether the just-finalized turn was the session's
// first exchange: one user message plus at most one assistant reply. A
// failed title call is not retried on later turns.
func (o *Orchestrator) isFirstTurn(ctx context.Context, sessionID string, log *slog.Logger) bool {
	n, err := o.messages.CountMessages(ctx, sessionID)
	if err != nil {
		log.Warn("Message count lookup failed; skipping title", "error", err)
		return false
	}
	return n <= 2
}

// generateTitle makes one small LLM call to title the session after its
// first turn. Every failure is swallowed; a missing title is cosmetic.
func (o *Orchestrator) generateTitle(sessionID, userID, model, userMessage string) {
	ctx, cancel := context.WithTimeout(context.Background(), titleTimeout)
	defer cancel()
	log := o.logger.With("session_id", sessionID)

	codexCache := llm.NewCodexTokenCache(o.codexStore)
	provider, err := llm.ResolveProvider(ctx, model, userID, sessionID, codexCache)
	if err != nil {
		log.Warn("Title generation skipped: provider resolution failed", "error", err)
		return
	}

	prompt := userMessage
	if len(prompt) > titlePromptCap {
		prompt = prompt[:titlePromptCap]
	}

	runner := tools.NewRunner(tools.NewRegistry())
	result, err := o.engine.ProcessTurn(ctx, llm.TurnInput{
		SessionID:    sessionID,
		SystemPrompt: titleSystemPrompt,
		Messages:     []models.ConversationMessage{{Role: models.RoleUser, Content: prompt}},
		Provider:     provider,
	}, runner, &tools.Context{SessionID: sessionID, Logger: log}, llm.Callbacks{})
	if err != nil {
		log.Warn("Title generation failed", "error", err)
		return
	}

	title := sanitizeTitle(result.Content)
	if title == "" {
		log.Warn("Title generation produced empty output")
		return
	}

	if err := o.sessions.SetTitle(ctx, sessionID, title); err != nil {
		log.Warn("Failed to persist title", "error", err)
		return
	}
	if err := o.publisher.PublishSessionTitle(ctx, sessionID, title); err != nil {
		log.Warn("Failed to publish title", "error", err)
	}
}

func sanitizeTitle(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, `"'`)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[:idx]
	}
	runes := []rune(s)
	if len(runes) > titleMaxLen {
		s = string(runes[:titleMaxLen])
	}
	return strings.TrimSpace(s)
}
