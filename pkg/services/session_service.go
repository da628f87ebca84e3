// Package services implements the database-facing store layer over the Ent
// client: sessions, messages, todos, agent state, streaming state, events.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stratuscode/stratuscode/ent"
	"github.com/stratuscode/stratuscode/ent/session"
	"github.com/stratuscode/stratuscode/ent/streamingstate"
	"github.com/stratuscode/stratuscode/pkg/models"
)

const lastMessagePreviewLen = 200

// SessionService manages session lifecycle and the pre-turn transition.
type SessionService struct {
	client *ent.Client
}

// NewSessionService creates a new SessionService
func NewSessionService(client *ent.Client) *SessionService {
	return &SessionService{client: client}
}

// CreateSession creates a new session row.
func (s *SessionService) CreateSession(ctx context.Context, req models.CreateSessionRequest) (*ent.Session, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.Owner == "" {
		return nil, NewValidationError("owner", "required")
	}
	if req.Repo == "" {
		return nil, NewValidationError("repo", "required")
	}
	if req.Branch == "" {
		return nil, NewValidationError("branch", "required")
	}
	agent := req.Agent
	if agent == "" {
		agent = models.AgentBuild
	}
	if agent != models.AgentBuild && agent != models.AgentPlan {
		return nil, NewValidationError("agent", "must be 'build' or 'plan'")
	}

	created, err := s.client.Session.Create().
		SetID(uuid.New().String()).
		SetUserID(req.UserID).
		SetOwner(req.Owner).
		SetRepo(req.Repo).
		SetBranch(req.Branch).
		SetAgent(session.Agent(agent)).
		SetModel(req.Model).
		SetStatus(session.StatusIdle).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return created, nil
}

// GetSession retrieves a session by ID.
func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*ent.Session, error) {
	sess, err := s.client.Session.Query().Where(session.IDEQ(sessionID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return sess, nil
}

// ListSessions returns a user's sessions, newest first.
func (s *SessionService) ListSessions(ctx context.Context, userID string, limit, offset int) ([]*ent.Session, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	sessions, err := s.client.Session.Query().
		Where(session.UserIDEQ(userID)).
		Order(ent.Desc(session.FieldUpdatedAt)).
		Limit(limit).
		Offset(offset).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	return sessions, nil
}

// PrepareSend performs the atomic pre-turn transition: clear the cancel
// flag, mark the session running, seed a placeholder title, open the
// streaming state, and persist the user message — all in one transaction,
// before the orchestrator task is scheduled, so subscribers observe the
// transition immediately.
func (s *SessionService) PrepareSend(httpCtx context.Context, sessionID, message string) (*ent.Message, error) {
	if message == "" {
		return nil, NewValidationError("message", "required")
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	sess, err := tx.Session.Query().Where(session.IDEQ(sessionID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	update := sess.Update().
		SetCancelRequested(false).
		SetStatus(session.StatusRunning).
		SetLastMessage(truncateRunes(message, lastMessagePreviewLen)).
		ClearErrorMessage()
	if sess.Title == "" {
		update.SetTitle(truncateRunes(message, 50))
	}
	if _, err := update.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	// Open the streaming state. An existing row is overwritten: a stale row
	// from an interrupted turn must not leak into the new one.
	if err := startStreamTx(ctx, tx, sessionID); err != nil {
		return nil, err
	}

	msg, err := tx.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRole("user").
		SetContent(message).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return msg, nil
}

// startStreamTx upserts an empty streaming-state row inside a transaction.
func startStreamTx(ctx context.Context, tx *ent.Tx, sessionID string) error {
	n, err := tx.StreamingState.Update().
		Where(streamingstate.SessionIDEQ(sessionID)).
		SetContent("").
		SetReasoning("").
		SetToolCalls("[]").
		SetParts("[]").
		ClearPendingQuestion().
		ClearPendingAnswer().
		SetStage("").
		SetIsStreaming(true).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset streaming state: %w", err)
	}
	if n > 0 {
		return nil
	}
	_, err = tx.StreamingState.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetIsStreaming(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create streaming state: %w", err)
	}
	return nil
}

// RequestCancel flags the running turn for cooperative cancellation.
// The flag is cleared by the next PrepareSend, never by the orchestrator.
func (s *SessionService) RequestCancel(ctx context.Context, sessionID string) error {
	n, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetCancelRequested(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to request cancel: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// IsCancelRequested reads the cancel flag.
func (s *SessionService) IsCancelRequested(ctx context.Context, sessionID string) (bool, error) {
	sess, err := s.GetSession(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return sess.CancelRequested, nil
}

// MarkHasChanges sets has_changes on the first file-modifying tool call.
// Idempotent.
func (s *SessionService) MarkHasChanges(ctx context.Context, sessionID string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.HasChangesEQ(false)).
		SetHasChanges(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark has_changes: %w", err)
	}
	return nil
}

// SetAgent switches the session's operating mode (plan_enter/plan_exit).
func (s *SessionService) SetAgent(ctx context.Context, sessionID, mode string) error {
	if mode != models.AgentBuild && mode != models.AgentPlan {
		return NewValidationError("agent", "must be 'build' or 'plan'")
	}
	n, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetAgent(session.Agent(mode)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set agent mode: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// SetSessionBranch persists the working branch created on the first clone.
func (s *SessionService) SetSessionBranch(ctx context.Context, sessionID, branch string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetSessionBranch(branch).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set session branch: %w", err)
	}
	return nil
}

// SetSandboxID records the live sandbox handle.
func (s *SessionService) SetSandboxID(ctx context.Context, sessionID, sandboxID string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetSandboxID(sandboxID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set sandbox id: %w", err)
	}
	return nil
}

// SetSnapshot records the snapshot handle and clears the sandbox handle;
// snapshotting stops the sandbox, so only one of the two is live at rest.
func (s *SessionService) SetSnapshot(ctx context.Context, sessionID, snapshotID string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetSnapshotID(snapshotID).
		ClearSandboxID().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set snapshot id: %w", err)
	}
	return nil
}

// SetIdle finalizes a turn on the success and cancelled paths.
func (s *SessionService) SetIdle(ctx context.Context, sessionID string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetStatus(session.StatusIdle).
		ClearErrorMessage().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set status idle: %w", err)
	}
	return nil
}

// SetError finalizes a turn on the error path.
func (s *SessionService) SetError(ctx context.Context, sessionID, errorMessage string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetStatus(session.StatusError).
		SetErrorMessage(errorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set status error: %w", err)
	}
	return nil
}

// SetTitle writes the generated title.
func (s *SessionService) SetTitle(ctx context.Context, sessionID, title string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetTitle(title).
		SetTitleGenerated(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set title: %w", err)
	}
	return nil
}

// SetLastMessage stores the preview of the most recent message.
func (s *SessionService) SetLastMessage(ctx context.Context, sessionID, preview string) error {
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		SetLastMessage(truncateRunes(preview, lastMessagePreviewLen)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set last message: %w", err)
	}
	return nil
}

// AddTokenUsage accumulates the turn's token counts onto the session.
func (s *SessionService) AddTokenUsage(ctx context.Context, sessionID string, usage models.TokenUsage) error {
	if usage.InputTokens == 0 && usage.OutputTokens == 0 {
		return nil
	}
	_, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID)).
		AddInputTokens(usage.InputTokens).
		AddOutputTokens(usage.OutputTokens).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to add token usage: %w", err)
	}
	return nil
}

// PurgeSessionData deletes a session and everything it owns. The caller is
// responsible for stopping any live sandbox first.
func (s *SessionService) PurgeSessionData(ctx context.Context, sessionID string) error {
	// Child rows go with the session via ON DELETE CASCADE.
	n, err := s.client.Session.Delete().
		Where(session.IDEQ(sessionID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge session: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// FindStaleRunningSessions returns running sessions whose streaming state
// has not been touched within the threshold. The sweeper resets these.
func (s *SessionService) FindStaleRunningSessions(ctx context.Context, staleThreshold time.Duration) ([]string, error) {
	cutoff := time.Now().Add(-staleThreshold)
	states, err := s.client.StreamingState.Query().
		Where(
			streamingstate.UpdatedAtLT(cutoff),
			streamingstate.HasSessionWith(session.StatusEQ(session.StatusRunning)),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query stale sessions: %w", err)
	}
	ids := make([]string, 0, len(states))
	for _, st := range states {
		ids = append(ids, st.SessionID)
	}
	return ids, nil
}

// MarkAbandoned transitions a stale running session to error. Only touches
// the session if it is still running, so a turn that finished between the
// sweep query and this write is left alone.
func (s *SessionService) MarkAbandoned(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Session.Update().
		Where(session.IDEQ(sessionID), session.StatusEQ(session.StatusRunning)).
		SetStatus(session.StatusError).
		SetErrorMessage("task abandoned").
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to mark session abandoned: %w", err)
	}
	return n > 0, nil
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
