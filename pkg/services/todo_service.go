package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stratuscode/stratuscode/ent"
	"github.com/stratuscode/stratuscode/ent/todo"
	"github.com/stratuscode/stratuscode/pkg/models"
)

// TodoService manages the per-session task list with replace-all writes.
type TodoService struct {
	client *ent.Client
}

// NewTodoService creates a new TodoService
func NewTodoService(client *ent.Client) *TodoService {
	return &TodoService{client: client}
}

// ReplaceAll atomically swaps the session's todo list. Rejects lists with
// more than one in_progress item.
func (s *TodoService) ReplaceAll(ctx context.Context, sessionID string, items []models.TodoItem) error {
	inProgress := 0
	for i, item := range items {
		if item.Content == "" {
			return NewValidationError("content", fmt.Sprintf("todo %d has empty content", i))
		}
		switch item.Status {
		case models.TodoPending, models.TodoInProgress, models.TodoCompleted:
		default:
			return NewValidationError("status", fmt.Sprintf("todo %d has invalid status %q", i, item.Status))
		}
		if item.Status == models.TodoInProgress {
			inProgress++
		}
	}
	if inProgress > 1 {
		return NewValidationError("status", "at most one todo may be in_progress")
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := s.client.Tx(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Todo.Delete().Where(todo.SessionIDEQ(sessionID)).Exec(writeCtx); err != nil {
		return fmt.Errorf("failed to clear todos: %w", err)
	}

	builders := make([]*ent.TodoCreate, len(items))
	for i, item := range items {
		builders[i] = tx.Todo.Create().
			SetID(uuid.New().String()).
			SetSessionID(sessionID).
			SetContent(item.Content).
			SetStatus(todo.Status(item.Status)).
			SetPriority(item.Priority).
			SetPosition(i)
	}
	if len(builders) > 0 {
		if _, err := tx.Todo.CreateBulk(builders...).Save(writeCtx); err != nil {
			return fmt.Errorf("failed to create todos: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// List returns the session's todos in list order.
func (s *TodoService) List(ctx context.Context, sessionID string) ([]models.TodoItem, error) {
	rows, err := s.client.Todo.Query().
		Where(todo.SessionIDEQ(sessionID)).
		Order(ent.Asc(todo.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list todos: %w", err)
	}
	items := make([]models.TodoItem, len(rows))
	for i, row := range rows {
		items[i] = models.TodoItem{
			Content:  row.Content,
			Status:   string(row.Status),
			Priority: row.Priority,
		}
	}
	return items, nil
}

// Count returns the number of todos; plan_exit refuses to run without any.
func (s *TodoService) Count(ctx context.Context, sessionID string) (int, error) {
	n, err := s.client.Todo.Query().Where(todo.SessionIDEQ(sessionID)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count todos: %w", err)
	}
	return n, nil
}
