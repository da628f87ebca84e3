package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stratuscode/stratuscode/ent"
	"github.com/stratuscode/stratuscode/ent/streamingstate"
	"github.com/stratuscode/stratuscode/pkg/models"
)

// Tool results stored in the streaming state are capped; the full result
// still reaches the model, this only bounds what subscribers mirror.
const maxStreamToolResultBytes = 5 * 1024

// StreamService manages the per-session streaming-state row: the live
// mirror of an in-flight turn. The orchestrator is the sole writer of the
// accumulator columns; clients only ever write pending_answer.
type StreamService struct {
	client *ent.Client
	db     *sql.DB
}

// NewStreamService creates a new StreamService. The raw connection is used
// for atomic append statements that Ent cannot express.
func NewStreamService(client *ent.Client, db *sql.DB) *StreamService {
	return &StreamService{client: client, db: db}
}

// Start upserts an empty streaming-state row with is_streaming=true,
// overwriting any prior row.
func (s *StreamService) Start(ctx context.Context, sessionID string) error {
	n, err := s.client.StreamingState.Update().
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
	_, err = s.client.StreamingState.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetIsStreaming(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create streaming state: %w", err)
	}
	return nil
}

// AppendContent appends streamed visible text. Atomic server-side append;
// no-op when the row does not exist.
func (s *StreamService) AppendContent(ctx context.Context, sessionID, delta string) error {
	if delta == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE streaming_states SET content = content || $1, updated_at = now() WHERE session_id = $2`,
		delta, sessionID)
	if err != nil {
		return fmt.Errorf("failed to append content: %w", err)
	}
	return nil
}

// AppendReasoning appends streamed chain-of-thought text.
func (s *StreamService) AppendReasoning(ctx context.Context, sessionID, delta string) error {
	if delta == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE streaming_states SET reasoning = reasoning || $1, updated_at = now() WHERE session_id = $2`,
		delta, sessionID)
	if err != nil {
		return fmt.Errorf("failed to append reasoning: %w", err)
	}
	return nil
}

// AddToolCall appends a running tool call to the ordered list and records
// a tool_call marker in parts so interleaving with text is preserved.
func (s *StreamService) AddToolCall(ctx context.Context, sessionID, callID, name, args string) error {
	return s.mutate(ctx, sessionID, func(st *ent.StreamingState, upd *ent.StreamingStateUpdateOne) error {
		calls, err := decodeToolCalls(st.ToolCalls)
		if err != nil {
			return err
		}
		calls = append(calls, models.ToolCallRecord{
			ID:     callID,
			Name:   name,
			Args:   args,
			Status: models.ToolCallRunning,
		})
		parts, err := decodeParts(st.Parts)
		if err != nil {
			return err
		}
		parts = append(parts, models.ToolCallPart(models.ToolCallRecord{
			ID:     callID,
			Name:   name,
			Args:   args,
			Status: models.ToolCallRunning,
		}))
		upd.SetToolCalls(encodeJSON(calls)).SetParts(encodeJSON(parts))
		return nil
	})
}

// UpdateToolResult marks the tool call completed and stores its result,
// truncated. No-op when the call id is unknown.
func (s *StreamService) UpdateToolResult(ctx context.Context, sessionID, callID, result string, args *string) error {
	truncated := truncateBytes(result, maxStreamToolResultBytes)
	return s.mutate(ctx, sessionID, func(st *ent.StreamingState, upd *ent.StreamingStateUpdateOne) error {
		calls, err := decodeToolCalls(st.ToolCalls)
		if err != nil {
			return err
		}
		found := false
		for i := range calls {
			if calls[i].ID == callID {
				calls[i].Result = truncated
				calls[i].Status = models.ToolCallCompleted
				if args != nil {
					calls[i].Args = *args
				}
				found = true
				break
			}
		}
		if !found {
			return nil
		}
		parts, err := decodeParts(st.Parts)
		if err != nil {
			return err
		}
		for i := range parts {
			if parts[i].Type == models.PartToolCall && parts[i].ToolCall != nil && parts[i].ToolCall.ID == callID {
				parts[i].ToolCall.Result = truncated
				parts[i].ToolCall.Status = models.ToolCallCompleted
				if args != nil {
					parts[i].ToolCall.Args = *args
				}
			}
		}
		upd.SetToolCalls(encodeJSON(calls)).SetParts(encodeJSON(parts))
		return nil
	})
}

// AppendTextPart records a flushed text or reasoning segment in parts,
// keeping emission order relative to tool-call markers.
func (s *StreamService) AppendTextPart(ctx context.Context, sessionID string, part models.Part) error {
	return s.mutate(ctx, sessionID, func(st *ent.StreamingState, upd *ent.StreamingStateUpdateOne) error {
		parts, err := decodeParts(st.Parts)
		if err != nil {
			return err
		}
		// Consecutive segments of the same kind collapse into one part.
		if n := len(parts); n > 0 && parts[n-1].Type == part.Type &&
			(part.Type == models.PartText || part.Type == models.PartReasoning) {
			parts[n-1].Text += part.Text
		} else {
			parts = append(parts, part)
		}
		upd.SetParts(encodeJSON(parts))
		return nil
	})
}

// SetStage updates the free-form stage label shown while subagents run.
func (s *StreamService) SetStage(ctx context.Context, sessionID, stage string) error {
	_, err := s.client.StreamingState.Update().
		Where(streamingstate.SessionIDEQ(sessionID)).
		SetStage(stage).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set stage: %w", err)
	}
	return nil
}

// SetQuestion writes the pending question and clears any stale answer.
func (s *StreamService) SetQuestion(ctx context.Context, sessionID string, q models.Question) error {
	_, err := s.client.StreamingState.Update().
		Where(streamingstate.SessionIDEQ(sessionID)).
		SetPendingQuestion(encodeJSON(q)).
		ClearPendingAnswer().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to set question: %w", err)
	}
	return nil
}

// AnswerQuestion writes the client's answer. This is the public endpoint
// clients call; it touches only pending_answer, so it cannot race the
// orchestrator's accumulator writes.
func (s *StreamService) AnswerQuestion(ctx context.Context, sessionID string, a models.Answer) error {
	n, err := s.client.StreamingState.Update().
		Where(streamingstate.SessionIDEQ(sessionID)).
		SetPendingAnswer(encodeJSON(a)).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to answer question: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearQuestion removes both question and answer.
func (s *StreamService) ClearQuestion(ctx context.Context, sessionID string) error {
	_, err := s.client.StreamingState.Update().
		Where(streamingstate.SessionIDEQ(sessionID)).
		ClearPendingQuestion().
		ClearPendingAnswer().
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to clear question: %w", err)
	}
	return nil
}

// Finish closes the stream.
func (s *StreamService) Finish(ctx context.Context, sessionID string) error {
	_, err := s.client.StreamingState.Update().
		Where(streamingstate.SessionIDEQ(sessionID)).
		SetIsStreaming(false).
		SetUpdatedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to finish stream: %w", err)
	}
	return nil
}

// Get returns a decoded snapshot of the streaming state.
func (s *StreamService) Get(ctx context.Context, sessionID string) (*models.StreamSnapshot, error) {
	st, err := s.client.StreamingState.Query().
		Where(streamingstate.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get streaming state: %w", err)
	}
	calls, err := decodeToolCalls(st.ToolCalls)
	if err != nil {
		return nil, err
	}
	parts, err := decodeParts(st.Parts)
	if err != nil {
		return nil, err
	}
	snap := &models.StreamSnapshot{
		SessionID:   st.SessionID,
		Content:     st.Content,
		Reasoning:   st.Reasoning,
		ToolCalls:   calls,
		Parts:       parts,
		Stage:       st.Stage,
		IsStreaming: st.IsStreaming,
	}
	if st.PendingQuestion != nil {
		snap.PendingQuestion = *st.PendingQuestion
	}
	if st.PendingAnswer != nil {
		snap.PendingAnswer = *st.PendingAnswer
	}
	return snap, nil
}

// PendingAnswer reads just the answer column, for the rendezvous poll loop.
func (s *StreamService) PendingAnswer(ctx context.Context, sessionID string) (string, error) {
	st, err := s.client.StreamingState.Query().
		Where(streamingstate.SessionIDEQ(sessionID)).
		Select(streamingstate.FieldPendingAnswer).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("failed to read pending answer: %w", err)
	}
	if st.PendingAnswer == nil {
		return "", nil
	}
	return *st.PendingAnswer, nil
}

// mutate runs a read-modify-write cycle on the row. Safe because the
// orchestrator is the only writer of the columns touched here.
func (s *StreamService) mutate(ctx context.Context, sessionID string, fn func(*ent.StreamingState, *ent.StreamingStateUpdateOne) error) error {
	st, err := s.client.StreamingState.Query().
		Where(streamingstate.SessionIDEQ(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// No row means no active turn; mutations are defined as no-ops.
			return nil
		}
		return fmt.Errorf("failed to load streaming state: %w", err)
	}
	upd := st.Update().SetUpdatedAt(time.Now())
	if err := fn(st, upd); err != nil {
		return err
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("failed to update streaming state: %w", err)
	}
	return nil
}

func decodeToolCalls(raw string) ([]models.ToolCallRecord, error) {
	var calls []models.ToolCallRecord
	if raw == "" {
		return calls, nil
	}
	if err := json.Unmarshal([]byte(raw), &calls); err != nil {
		return nil, fmt.Errorf("corrupt tool_calls column: %w", err)
	}
	return calls, nil
}

func decodeParts(raw string) ([]models.Part, error) {
	var parts []models.Part
	if raw == "" {
		return parts, nil
	}
	if err := json.Unmarshal([]byte(raw), &parts); err != nil {
		return nil, fmt.Errorf("corrupt parts column: %w", err)
	}
	return parts, nil
}

func encodeJSON(v any) string {
	raw, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(raw)
}

func truncateBytes(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "\n... [truncated]"
}
