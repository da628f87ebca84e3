package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/stratuscode/stratuscode/ent"
	"github.com/stratuscode/stratuscode/ent/message"
	"github.com/stratuscode/stratuscode/pkg/models"
)

// MessageService manages the immutable per-session message log.
type MessageService struct {
	client *ent.Client
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client) *MessageService {
	return &MessageService{client: client}
}

// CreateAssistantMessage persists the assistant message produced by a turn,
// with its ordered parts.
func (s *MessageService) CreateAssistantMessage(ctx context.Context, sessionID, content string, parts []models.Part) (*ent.Message, error) {
	builder := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetSessionID(sessionID).
		SetRole("assistant").
		SetContent(content)
	if len(parts) > 0 {
		builder.SetParts(models.PartsToMaps(parts))
	}
	msg, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist assistant message: %w", err)
	}
	return msg, nil
}

// ListMessages returns a session's messages in creation order.
func (s *MessageService) ListMessages(ctx context.Context, sessionID string) ([]*ent.Message, error) {
	msgs, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Order(ent.Asc(message.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return msgs, nil
}

// CountMessages returns the number of messages in a session. The title
// generator uses this to detect the first turn.
func (s *MessageService) CountMessages(ctx context.Context, sessionID string) (int, error) {
	n, err := s.client.Message.Query().
		Where(message.SessionIDEQ(sessionID)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}
	return n, nil
}
