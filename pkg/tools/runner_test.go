package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoArgs struct {
	Text string `json:"text"`
}

func testRegistry(t *testing.T, tools ...*Tool) *Registry {
	t.Helper()
	r := NewRegistry()
	for _, tool := range tools {
		require.NoError(t, r.register(tool))
	}
	return r
}

func TestRunner_UnknownTool(t *testing.T) {
	runner := NewRunner(testRegistry(t))
	result, err := runner.Execute(context.Background(), "nope", "{}", &Context{})
	require.NoError(t, err)
	assert.Contains(t, result, "unknown tool")
}

func TestRunner_ValidationErrorIsResultNotError(t *testing.T) {
	tool, err := newTool("echo", "echoes", &echoArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			return "never reached", nil
		})
	require.NoError(t, err)
	runner := NewRunner(testRegistry(t, tool))

	result, err := runner.Execute(context.Background(), "echo", `{"text": 42}`, &Context{})
	require.NoError(t, err)

	var parsed map[string]string
	require.NoError(t, json.Unmarshal([]byte(result), &parsed))
	assert.Contains(t, parsed["error"], "invalid arguments")
}

func TestRunner_RetriesTransientFailures(t *testing.T) {
	var attempts atomic.Int32
	tool, err := newTool("flaky", "fails twice", &echoArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			if attempts.Add(1) <= 2 {
				return nil, fmt.Errorf("connection refused")
			}
			return "ok", nil
		})
	require.NoError(t, err)
	runner := NewRunner(testRegistry(t, tool))

	result, err := runner.Execute(context.Background(), "flaky", `{"text":"x"}`, &Context{})
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, int32(3), attempts.Load())
}

func TestRunner_NonRetryableFailsImmediately(t *testing.T) {
	var attempts atomic.Int32
	tool, err := newTool("broken", "always fails", &echoArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			attempts.Add(1)
			return nil, fmt.Errorf("file does not exist")
		})
	require.NoError(t, err)
	runner := NewRunner(testRegistry(t, tool))

	result, err := runner.Execute(context.Background(), "broken", `{"text":"x"}`, &Context{})
	require.NoError(t, err)
	assert.Contains(t, result, "file does not exist")
	assert.Equal(t, int32(1), attempts.Load())
}

func TestRunner_TimeoutExhaustsRetries(t *testing.T) {
	var attempts atomic.Int32
	tool, err := newTool("slow", "never finishes", &echoArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			attempts.Add(1)
			<-ctx.Done()
			return nil, ctx.Err()
		})
	require.NoError(t, err)
	tool.Timeout = 20 * time.Millisecond
	runner := NewRunner(testRegistry(t, tool))

	result, err := runner.Execute(context.Background(), "slow", `{"text":"x"}`, &Context{})
	require.NoError(t, err)
	assert.Contains(t, result, "failed after retries")
	assert.Equal(t, int32(3), attempts.Load())
}

func TestRunner_TruncatesOversizedResults(t *testing.T) {
	tool, err := newTool("big", "huge output", &echoArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			return strings.Repeat("x", 500), nil
		})
	require.NoError(t, err)
	tool.MaxResultSize = 100
	runner := NewRunner(testRegistry(t, tool))

	result, err := runner.Execute(context.Background(), "big", `{"text":"x"}`, &Context{})
	require.NoError(t, err)
	assert.Contains(t, result, "[result truncated at 100 bytes]")
	assert.Less(t, len(result), 200)
}

func TestRunner_MarshalsNonStringResults(t *testing.T) {
	tool, err := newTool("structured", "returns a map", &echoArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			return map[string]any{"exit_code": 0, "stdout": "done"}, nil
		})
	require.NoError(t, err)
	runner := NewRunner(testRegistry(t, tool))

	result, err := runner.Execute(context.Background(), "structured", `{"text":"x"}`, &Context{})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &parsed))
	assert.Equal(t, "done", parsed["stdout"])
}

func TestRunner_CancelledContext(t *testing.T) {
	tool, err := newTool("waiter", "blocks until cancelled", &echoArgs{},
		func(ctx context.Context, args json.RawMessage, tc *Context) (any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})
	require.NoError(t, err)
	runner := NewRunner(testRegistry(t, tool))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	_, err = runner.Execute(ctx, "waiter", `{"text":"x"}`, &Context{})
	assert.ErrorIs(t, err, ErrCancelled)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryable(fmt.Errorf("dial tcp: connection refused")))
	assert.True(t, isRetryable(fmt.Errorf("429 rate limit exceeded")))
	assert.True(t, isRetryable(context.DeadlineExceeded))
	assert.False(t, isRetryable(fmt.Errorf("no such file or directory")))
	assert.False(t, isRetryable(nil))
}
