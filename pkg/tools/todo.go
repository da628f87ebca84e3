package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/stratuscode/stratuscode/pkg/models"
)

type todoReadArgs struct{}

func newTodoReadTool() (*Tool, error) {
	return newTool("todoread",
		"Read the session's current todo list.",
		&todoReadArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			if tc.Todos == nil {
				return nil, fmt.Errorf("todo store unavailable")
			}
			items, err := tc.Todos.List(ctx, tc.SessionID)
			if err != nil {
				return nil, err
			}
			if len(items) == 0 {
				return "No todos yet.", nil
			}
			return map[string]any{"todos": items}, nil
		})
}

type todoWriteArgs struct {
	Todos []models.TodoItem `json:"todos" jsonschema:"description=The complete todo list; replaces the previous list entirely"`
}

func newTodoWriteTool() (*Tool, error) {
	return newTool("todowrite",
		"Replace the session's todo list. At most one item may be in_progress.",
		&todoWriteArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			var a todoWriteArgs
			if err := json.Unmarshal(args, &a); err != nil {
				return nil, err
			}
			if tc.Todos == nil {
				return nil, fmt.Errorf("todo store unavailable")
			}
			if err := tc.Todos.ReplaceAll(ctx, tc.SessionID, a.Todos); err != nil {
				return nil, err
			}
			return fmt.Sprintf("Saved %d todos.", len(a.Todos)), nil
		})
}
