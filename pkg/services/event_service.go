package services

import (
	"context"
	"fmt"
	"time"

	"github.com/stratuscode/stratuscode/ent"
	"github.com/stratuscode/stratuscode/ent/event"
)

// EventService reads persisted events for WebSocket catch-up.
type EventService struct {
	client *ent.Client
}

// NewEventService creates a new EventService
func NewEventService(client *ent.Client) *EventService {
	return &EventService{client: client}
}

// ListAfter returns up to limit events on a channel with id greater than
// afterID, oldest first.
func (s *EventService) ListAfter(ctx context.Context, channel string, afterID int64, limit int) ([]*ent.Event, error) {
	if limit <= 0 {
		limit = 200
	}
	events, err := s.client.Event.Query().
		Where(event.ChannelEQ(channel), event.IDGT(afterID)).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// DeleteOlderThan removes events beyond the retention window. Returns the
// number of rows deleted.
func (s *EventService) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := s.client.Event.Delete().
		Where(event.CreatedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old events: %w", err)
	}
	return n, nil
}
