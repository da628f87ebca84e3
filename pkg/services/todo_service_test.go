package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/test/util"
)

func newTodoFixture(t *testing.T) (*TodoService, string, context.Context) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	sessions := NewSessionService(client)
	sess, err := sessions.CreateSession(ctx, models.CreateSessionRequest{
		UserID: "user-1", Owner: "acme", Repo: "widgets", Branch: "main",
	})
	require.NoError(t, err)
	return NewTodoService(client), sess.ID, ctx
}

func TestTodos_ReplaceAllRoundtrip(t *testing.T) {
	todos, id, ctx := newTodoFixture(t)

	items := []models.TodoItem{
		{Content: "read the failing test", Status: models.TodoCompleted},
		{Content: "fix the race", Status: models.TodoInProgress, Priority: "high"},
		{Content: "run the suite", Status: models.TodoPending},
	}
	require.NoError(t, todos.ReplaceAll(ctx, id, items))

	got, err := todos.List(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, items, got)

	n, err := todos.Count(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestTodos_ReplaceAllSwapsList(t *testing.T) {
	todos, id, ctx := newTodoFixture(t)

	require.NoError(t, todos.ReplaceAll(ctx, id, []models.TodoItem{
		{Content: "old task", Status: models.TodoPending},
		{Content: "another old task", Status: models.TodoPending},
	}))
	require.NoError(t, todos.ReplaceAll(ctx, id, []models.TodoItem{
		{Content: "new task", Status: models.TodoInProgress},
	}))

	got, err := todos.List(ctx, id)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "new task", got[0].Content)
}

func TestTodos_ReplaceAllEmptyClears(t *testing.T) {
	todos, id, ctx := newTodoFixture(t)

	require.NoError(t, todos.ReplaceAll(ctx, id, []models.TodoItem{
		{Content: "task", Status: models.TodoPending},
	}))
	require.NoError(t, todos.ReplaceAll(ctx, id, nil))

	n, err := todos.Count(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestTodos_RejectsMultipleInProgress(t *testing.T) {
	todos, id, ctx := newTodoFixture(t)

	err := todos.ReplaceAll(ctx, id, []models.TodoItem{
		{Content: "a", Status: models.TodoInProgress},
		{Content: "b", Status: models.TodoInProgress},
	})
	assert.True(t, IsValidationError(err))

	// The failed write must not have touched the table.
	n, err := todos.Count(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestTodos_RejectsInvalidInput(t *testing.T) {
	todos, id, ctx := newTodoFixture(t)

	err := todos.ReplaceAll(ctx, id, []models.TodoItem{{Content: "", Status: models.TodoPending}})
	assert.True(t, IsValidationError(err))

	err = todos.ReplaceAll(ctx, id, []models.TodoItem{{Content: "x", Status: "blocked"}})
	assert.True(t, IsValidationError(err))
}
