// Package orchestrator drives one agent turn end to end: provider
// resolution, sandbox acquisition, context assembly, the streamed engine
// run with live progress, cooperative cancellation, and the atomic
// finalize that leaves the session resumable.
package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"sync"
	"time"

	"github.com/stratuscode/stratuscode/pkg/events"
	"github.com/stratuscode/stratuscode/pkg/llm"
	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/sandbox"
	"github.com/stratuscode/stratuscode/pkg/services"
	"github.com/stratuscode/stratuscode/pkg/tools"
)

const (
	// cancelPollInterval paces the side channel that watches the
	// session's cancel flag while the engine streams.
	cancelPollInterval = 2 * time.Second

	// cancelledSentinel stands in for assistant content when a turn is
	// cancelled before any text arrived.
	cancelledSentinel = "(cancelled)"

	lastMessagePreviewLen = 200

	finalizeTimeout = 30 * time.Second
)

// fileModifyingTools flip the session's hasChanges flag on first use.
var fileModifyingTools = map[string]bool{
	"write_to_file": true,
	"edit":          true,
	"multi_edit":    true,
}

// Orchestrator runs agent turns.
type Orchestrator struct {
	sessions   *services.SessionService
	messages   *services.MessageService
	streams    *services.StreamService
	agentState *services.AgentStateService
	todos      *services.TodoService
	publisher  *events.EventPublisher
	sandboxes  *sandbox.Manager
	engine     llm.Engine
	codexStore llm.CodexTokenStore

	githubToken string
	logger      *slog.Logger
}

// Deps bundles the orchestrator's collaborators.
type Deps struct {
	Sessions    *services.SessionService
	Messages    *services.MessageService
	Streams     *services.StreamService
	AgentState  *services.AgentStateService
	Todos       *services.TodoService
	Publisher   *events.EventPublisher
	Sandboxes   *sandbox.Manager
	Engine      llm.Engine
	CodexStore  llm.CodexTokenStore
	GitHubToken string
}

// New creates an orchestrator.
func New(d Deps) *Orchestrator {
	codexStore := d.CodexStore
	if codexStore == nil {
		codexStore = llm.EnvCodexStore{}
	}
	return &Orchestrator{
		sessions:    d.Sessions,
		messages:    d.Messages,
		streams:     d.Streams,
		agentState:  d.AgentState,
		todos:       d.Todos,
		publisher:   d.Publisher,
		sandboxes:   d.Sandboxes,
		engine:      d.Engine,
		codexStore:  codexStore,
		githubToken: d.GitHubToken,
		logger:      slog.With("component", "orchestrator"),
	}
}

// RunTurn executes one complete turn for a session whose user message was
// already persisted by PrepareSend. It never returns an error to the
// caller; every failure mode lands in the session row.
func (o *Orchestrator) RunTurn(ctx context.Context, sessionID, userMessage string, opts models.TurnOptions) {
	log := o.logger.With("session_id", sessionID)
	start := time.Now()

	session, err := o.sessions.GetSession(ctx, sessionID)
	if err != nil {
		log.Error("Session lookup failed at turn start", "error", err)
		return
	}

	if err := o.publisher.PublishSessionStatus(ctx, sessionID, models.StatusRunning, ""); err != nil {
		log.Warn("Failed to publish running status", "error", err)
	}

	model := opts.Model
	if model == "" {
		model = session.Model
	}
	agentMode := opts.AgentMode
	if agentMode == "" {
		agentMode = string(session.Agent)
	}

	// Step 1: provider resolution, with a turn-scoped Codex token cache.
	codexCache := llm.NewCodexTokenCache(o.codexStore)
	provider, err := llm.ResolveProvider(ctx, model, session.UserID, sessionID, codexCache)
	if err != nil {
		o.finalizeEarlyError(sessionID, fmt.Errorf("provider resolution failed: %w", err))
		return
	}

	// Step 2: sandbox.
	handle, err := o.sandboxes.Acquire(ctx, sandbox.SessionInfo{
		ID:            sessionID,
		Owner:         session.Owner,
		Repo:          session.Repo,
		Branch:        session.Branch,
		SessionBranch: session.SessionBranch,
		SandboxID:     stringValue(session.SandboxID),
		SnapshotID:    stringValue(session.SnapshotID),
	}, o.githubToken)
	if err != nil {
		o.finalizeEarlyError(sessionID, fmt.Errorf("sandbox acquisition failed: %w", err))
		return
	}

	// Step 3: agent state.
	state, err := o.agentState.Load(ctx, sessionID)
	if err != nil {
		o.finalizeEarlyError(sessionID, fmt.Errorf("agent state load failed: %w", err))
		return
	}
	prevMode := state.AgentMode

	// Step 4: compose the message content for this turn's mode.
	content := userMessage
	planPath := state.PlanFilePath
	if agentMode == models.AgentPlan {
		if planPath == "" {
			planPath = planFilePath(sessionID)
		}
		if err := o.ensurePlanFile(ctx, handle, planPath); err != nil {
			o.finalizeEarlyError(sessionID, fmt.Errorf("plan file setup failed: %w", err))
			return
		}
		content += planModeReminder
	} else if prevMode == models.AgentPlan {
		content += buildSwitchReminder
	}
	state.PlanFilePath = planPath

	// Step 5: tool registry and context.
	registry, err := tools.BuildRegistry()
	if err != nil {
		o.finalizeEarlyError(sessionID, fmt.Errorf("tool registry build failed: %w", err))
		return
	}
	runner := tools.NewRunner(registry)
	tc := &tools.Context{
		SessionID:    sessionID,
		Sandbox:      handle,
		Sessions:     o.sessions,
		Streams:      o.streams,
		Todos:        o.todos,
		Notifier:     &questionNotifier{publisher: o.publisher, logger: log},
		GitHubToken:  o.githubToken,
		AlphaMode:    opts.AlphaMode,
		AgentMode:    agentMode,
		PlanFilePath: planPath,
		Logger:       log,
	}

	// Step 6: system prompt.
	systemPrompt := buildSystemPrompt(agentFor(agentMode), runner.Definitions(), handle.Info(), opts.AlphaMode)

	// Steps 7–8: streamed engine run with the cancel side channel.
	turn := &turnState{
		flusher:     newFlusher(o.streams, o.publisher, sessionID, log),
		batcher:     newSubagentBatcher(o.streams, o.publisher, sessionID, log),
		currentMode: agentMode,
	}
	engineCtx, abort := context.WithCancel(ctx)
	pollerDone := o.startCancelPoller(engineCtx, sessionID, abort, log)

	input := llm.TurnInput{
		SessionID:    sessionID,
		SystemPrompt: systemPrompt,
		Messages: append(append([]models.ConversationMessage(nil), state.Messages...),
			models.ConversationMessage{Role: models.RoleUser, Content: content}),
		Tools:           runner.Definitions(),
		Provider:        provider,
		Summary:         state.Summary,
		ContextWindow:   llm.ContextWindow(model),
		ReasoningEffort: opts.ReasoningEffort,
	}

	result, runErr := o.engine.ProcessTurn(engineCtx, input, runner, tc, o.callbacks(sessionID, turn, log))

	abort()
	<-pollerDone

	fctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
	defer cancel()
	if err := turn.flusher.Stop(fctx); err != nil {
		log.Warn("Final token flush failed", "error", err)
	}
	turn.batcher.Stop(fctx)

	// Steps 9–11: finalize.
	switch {
	case runErr == nil:
		o.finalizeSuccess(fctx, sessionID, handle, state, turn, result, log)
	case errors.Is(runErr, tools.ErrCancelled) || o.wasCancelled(fctx, sessionID):
		o.finalizePartial(fctx, sessionID, handle, models.StatusIdle, "", log)
	default:
		log.Error("Turn failed", "error", runErr)
		o.finalizePartial(fctx, sessionID, handle, models.StatusError, runErr.Error(), log)
	}

	// Step 12: first-turn title, fire and forget.
	if runErr == nil && !session.TitleGenerated && o.isFirstTurn(fctx, sessionID, log) {
		go o.generateTitle(sessionID, session.UserID, model, userMessage)
	}

	log.Info("Turn finished", "duration", time.Since(start), "ok", runErr == nil)
}

// turnState is the per-turn mutable state shared with the callbacks.
type turnState struct {
	flusher *flusher
	batcher *subagentBatcher

	mu          sync.Mutex
	currentMode string
	hasChanges  bool
	lastError   error
}

func (t *turnState) mode() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.currentMode
}

// callbacks wires streamed engine events into the live stream.
func (o *Orchestrator) callbacks(sessionID string, turn *turnState, log *slog.Logger) llm.Callbacks {
	ctx := context.Background()
	return llm.Callbacks{
		OnToken:     turn.flusher.AddToken,
		OnReasoning: turn.flusher.AddReasoning,

		OnToolCall: func(call models.ToolCall) error {
			cancelled, err := o.sessions.IsCancelRequested(ctx, sessionID)
			if err == nil && cancelled {
				return tools.ErrCancelled
			}
			// Force-flush so buffered text lands before the tool marker.
			if err := turn.flusher.Flush(ctx); err != nil {
				log.Warn("Pre-tool flush failed", "error", err)
			}
			if err := o.streams.AddToolCall(ctx, sessionID, call.ID, call.Name, call.Arguments); err != nil {
				return err
			}
			o.notifyStreamState(ctx, sessionID, events.StreamStatePayload{
				Kind: events.StreamKindToolCall,
				ToolCall: &models.ToolCallRecord{
					ID: call.ID, Name: call.Name, Args: call.Arguments, Status: models.ToolCallRunning,
				},
			}, log)
			return nil
		},

		OnToolResult: func(call models.ToolCall, result string) error {
			if err := o.streams.UpdateToolResult(ctx, sessionID, call.ID, result, nil); err != nil {
				return err
			}
			o.notifyStreamState(ctx, sessionID, events.StreamStatePayload{
				Kind: events.StreamKindToolResult,
				ToolCall: &models.ToolCallRecord{
					ID: call.ID, Name: call.Name, Status: models.ToolCallCompleted,
				},
			}, log)

			turn.mu.Lock()
			needChanges := fileModifyingTools[call.Name] && !turn.hasChanges
			if needChanges {
				turn.hasChanges = true
			}
			turn.mu.Unlock()
			if needChanges {
				if err := o.sessions.MarkHasChanges(ctx, sessionID); err != nil {
					log.Warn("Failed to mark has_changes", "error", err)
				}
			}

			if call.Name == "plan_enter" || call.Name == "plan_exit" {
				o.applyModeSwitch(ctx, sessionID, call.Name, result, turn, log)
			}

			cancelled, err := o.sessions.IsCancelRequested(ctx, sessionID)
			if err == nil && cancelled {
				return tools.ErrCancelled
			}
			return nil
		},

		OnError: func(err error) {
			turn.mu.Lock()
			turn.lastError = err
			turn.mu.Unlock()
			log.Warn("Engine reported recoverable error", "error", err)
		},

		OnSubagentStart: func(agent string) { turn.batcher.Start(ctx, agent) },
		OnSubagentToken: turn.batcher.Token,
		OnSubagentEnd:   func(agent string) { turn.batcher.End(ctx, agent) },
	}
}

// applyModeSwitch inspects a plan tool's JSON result and updates the
// session's agent mode.
func (o *Orchestrator) applyModeSwitch(ctx context.Context, sessionID, toolName, result string, turn *turnState, log *slog.Logger) {
	var parsed struct {
		Entered    bool   `json:"entered"`
		Approved   bool   `json:"approved"`
		ModeSwitch string `json:"modeSwitch"`
		Mode       string `json:"mode"`
	}
	if err := json.Unmarshal([]byte(result), &parsed); err != nil {
		return
	}

	var next string
	switch {
	case toolName == "plan_enter" && parsed.Entered:
		next = models.AgentPlan
	case toolName == "plan_exit" && parsed.Approved:
		next = parsed.ModeSwitch
		if next == "" {
			next = models.AgentBuild
		}
	default:
		return
	}

	if err := o.sessions.SetAgent(ctx, sessionID, next); err != nil {
		log.Warn("Failed to switch agent mode", "mode", next, "error", err)
		return
	}
	turn.mu.Lock()
	turn.currentMode = next
	turn.mu.Unlock()
	log.Info("Agent mode switched", "mode", next)
}

// startCancelPoller watches the cancel flag and aborts the engine stream.
// Buffered tokens and tool markers at abort time stay in the live stream.
func (o *Orchestrator) startCancelPoller(ctx context.Context, sessionID string, abort context.CancelFunc, log *slog.Logger) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		ticker := time.NewTicker(cancelPollInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
			cancelled, err := o.sessions.IsCancelRequested(ctx, sessionID)
			if err != nil {
				log.Warn("Cancel poll failed", "error", err)
				continue
			}
			if cancelled {
				log.Info("Cancel requested; aborting engine stream")
				abort()
				return
			}
		}
	}()
	return done
}

// finalizeSuccess persists the finished turn: assistant message from the
// stream's parts, agent state, token usage, idle status before the
// snapshot so the UI unlocks promptly, then the snapshot itself.
func (o *Orchestrator) finalizeSuccess(ctx context.Context, sessionID string, handle *sandbox.Handle, state *models.AgentStateData, turn *turnState, result *llm.TurnResult, log *slog.Logger) {
	snap, err := o.streams.Get(ctx, sessionID)
	if err != nil {
		log.Warn("Stream readback failed at finalize", "error", err)
		snap = &models.StreamSnapshot{}
	}

	parts := snap.Parts
	if len(parts) == 0 {
		parts = composeParts(snap, result.Content)
	}

	if err := o.streams.Finish(ctx, sessionID); err != nil {
		log.Warn("Stream finish failed", "error", err)
	}
	o.notifyStreamState(ctx, sessionID, events.StreamStatePayload{Kind: events.StreamKindFinish}, log)

	msg, err := o.messages.CreateAssistantMessage(ctx, sessionID, result.Content, parts)
	if err != nil {
		log.Error("Failed to persist assistant message", "error", err)
	} else {
		if err := o.publisher.PublishMessageCreated(ctx, sessionID, events.MessageCreatedPayload{
			MessageID: msg.ID, Role: models.RoleAssistant,
		}); err != nil {
			log.Warn("Failed to publish message.created", "error", err)
		}
	}

	summary := result.NewSummary
	if summary == "" {
		summary = state.Summary
	}
	if err := o.agentState.Save(ctx, sessionID, &models.AgentStateData{
		Messages:     result.Messages,
		Summary:      summary,
		PlanFilePath: state.PlanFilePath,
		AgentMode:    turn.mode(),
	}); err != nil {
		log.Error("Failed to save agent state", "error", err)
	}

	if err := o.sessions.SetLastMessage(ctx, sessionID, truncatePreview(result.Content)); err != nil {
		log.Warn("Failed to set last message preview", "error", err)
	}
	if err := o.sessions.AddTokenUsage(ctx, sessionID, result.Usage); err != nil {
		log.Warn("Failed to record token usage", "error", err)
	}

	o.setStatusAndSnapshot(ctx, sessionID, handle, models.StatusIdle, "", log)
}

// finalizePartial handles the cancelled and error paths: synthesize a
// partial assistant message if anything arrived, close the stream, set
// the terminal status, then snapshot.
func (o *Orchestrator) finalizePartial(ctx context.Context, sessionID string, handle *sandbox.Handle, status, errorMessage string, log *slog.Logger) {
	snap, err := o.streams.Get(ctx, sessionID)
	if err != nil {
		log.Warn("Stream readback failed at finalize", "error", err)
		snap = &models.StreamSnapshot{}
	}

	if snap.Content != "" || len(snap.ToolCalls) > 0 {
		content := snap.Content
		if content == "" {
			content = cancelledSentinel
		}
		parts := snap.Parts
		if len(parts) == 0 {
			parts = composeParts(snap, content)
		}
		if msg, err := o.messages.CreateAssistantMessage(ctx, sessionID, content, parts); err != nil {
			log.Error("Failed to persist partial assistant message", "error", err)
		} else if err := o.publisher.PublishMessageCreated(ctx, sessionID, events.MessageCreatedPayload{
			MessageID: msg.ID, Role: models.RoleAssistant,
		}); err != nil {
			log.Warn("Failed to publish message.created", "error", err)
		}
	}

	if err := o.streams.Finish(ctx, sessionID); err != nil {
		log.Warn("Stream finish failed", "error", err)
	}
	o.notifyStreamState(ctx, sessionID, events.StreamStatePayload{Kind: events.StreamKindFinish}, log)

	o.setStatusAndSnapshot(ctx, sessionID, handle, status, errorMessage, log)
}

// setStatusAndSnapshot writes the terminal status first, then releases
// the sandbox into a snapshot.
func (o *Orchestrator) setStatusAndSnapshot(ctx context.Context, sessionID string, handle *sandbox.Handle, status, errorMessage string, log *slog.Logger) {
	var err error
	if status == models.StatusError {
		err = o.sessions.SetError(ctx, sessionID, errorMessage)
	} else {
		err = o.sessions.SetIdle(ctx, sessionID)
	}
	if err != nil {
		log.Error("Failed to set terminal status", "status", status, "error", err)
	}
	if err := o.publisher.PublishSessionStatus(ctx, sessionID, status, errorMessage); err != nil {
		log.Warn("Failed to publish terminal status", "error", err)
	}

	if err := o.sandboxes.Release(ctx, handle); err != nil {
		log.Warn("Sandbox release failed; session will reconnect next turn", "error", err)
	}
}

// finalizeEarlyError handles failures before the engine ever ran: no
// stream content exists yet, so only the session row is touched.
func (o *Orchestrator) finalizeEarlyError(sessionID string, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), finalizeTimeout)
	defer cancel()

	o.logger.Error("Turn failed before engine start", "session_id", sessionID, "error", cause)
	if err := o.streams.Finish(ctx, sessionID); err != nil {
		o.logger.Warn("Stream finish failed", "session_id", sessionID, "error", err)
	}
	if err := o.sessions.SetError(ctx, sessionID, cause.Error()); err != nil {
		o.logger.Error("Failed to set error status", "session_id", sessionID, "error", err)
	}
	if err := o.publisher.PublishSessionStatus(ctx, sessionID, models.StatusError, cause.Error()); err != nil {
		o.logger.Warn("Failed to publish error status", "session_id", sessionID, "error", err)
	}
}

// wasCancelled re-reads the cancel flag to distinguish a user cancel from
// other context failures.
func (o *Orchestrator) wasCancelled(ctx context.Context, sessionID string) bool {
	cancelled, err := o.sessions.IsCancelRequested(ctx, sessionID)
	return err == nil && cancelled
}

// ensurePlanFile creates the plan file inside the sandbox if missing.
func (o *Orchestrator) ensurePlanFile(ctx context.Context, handle *sandbox.Handle, planPath string) error {
	script := fmt.Sprintf("mkdir -p '%s' && touch '%s'", path.Dir(planPath), planPath)
	res, err := handle.SafeExec(ctx, func(ctx context.Context, sb *sandbox.Sandbox) (*sandbox.CommandResult, error) {
		return sb.Shell(ctx, script)
	})
	if err != nil {
		return err
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("plan file creation failed (exit %d): %s", res.ExitCode, res.Stderr)
	}
	return nil
}

func (o *Orchestrator) notifyStreamState(ctx context.Context, sessionID string, payload events.StreamStatePayload, log *slog.Logger) {
	if err := o.publisher.PublishStreamState(ctx, sessionID, payload); err != nil {
		log.Warn("Stream state notify failed", "kind", payload.Kind, "error", err)
	}
}

// questionNotifier relays question posts and clears from the rendezvous
// tools onto the session channel.
type questionNotifier struct {
	publisher *events.EventPublisher
	logger    *slog.Logger
}

func (n *questionNotifier) QuestionPosted(ctx context.Context, sessionID string, q models.Question) {
	if err := n.publisher.PublishStreamState(ctx, sessionID, events.StreamStatePayload{
		Kind:     events.StreamKindQuestion,
		Question: &q,
	}); err != nil {
		n.logger.Warn("Question notify failed", "session_id", sessionID, "error", err)
	}
}

func (n *questionNotifier) QuestionCleared(ctx context.Context, sessionID string) {
	// An empty question payload tells clients the gate is gone.
	if err := n.publisher.PublishStreamState(ctx, sessionID, events.StreamStatePayload{
		Kind: events.StreamKindQuestion,
	}); err != nil {
		n.logger.Warn("Question clear notify failed", "session_id", sessionID, "error", err)
	}
}

// composeParts rebuilds a parts list from the flat stream columns when no
// ordered parts were recorded.
func composeParts(snap *models.StreamSnapshot, content string) []models.Part {
	var parts []models.Part
	if snap.Reasoning != "" {
		parts = append(parts, models.ReasoningPart(snap.Reasoning))
	}
	for _, tc := range snap.ToolCalls {
		parts = append(parts, models.ToolCallPart(tc))
	}
	if content != "" {
		parts = append(parts, models.TextPart(content))
	}
	return parts
}

func truncatePreview(s string) string {
	runes := []rune(s)
	if len(runes) <= lastMessagePreviewLen {
		return s
	}
	return string(runes[:lastMessagePreviewLen])
}

func stringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
