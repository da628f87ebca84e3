package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/stratuscode/stratuscode/pkg/sandbox"
)

// Retry policy for transient tool failures.
const (
	retryInitialBackoff = 100 * time.Millisecond
	retryBackoffFactor  = 2
	retryMaxBackoff     = 5 * time.Second
	retryMaxExtra       = 2
)

// Runner executes tool calls through the full pipeline: schema validation,
// timeout race, result stringification/truncation, and retry with backoff
// on transient failures. Validation and non-retryable errors come back as
// formatted JSON error strings, never as Go errors — the model is expected
// to read them and adjust. Only ErrCancelled escapes.
type Runner struct {
	registry *Registry
}

// NewRunner creates a runner over a registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

// Definitions exposes the registry's tool definitions.
func (r *Runner) Definitions() []Definition {
	return r.registry.Definitions()
}

// Execute runs one tool call and returns the result string for the model.
func (r *Runner) Execute(ctx context.Context, name, argsJSON string, tc *Context) (string, error) {
	tool, ok := r.registry.Get(name)
	if !ok {
		return errorResult("unknown tool %q", name), nil
	}

	if argsJSON == "" {
		argsJSON = "{}"
	}
	if err := tool.validate(argsJSON); err != nil {
		return errorResult("invalid arguments for %s: %v", name, err), nil
	}

	backoff := retryInitialBackoff
	var lastErr error
	for attempt := 0; attempt <= retryMaxExtra; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			backoff = min(backoff*retryBackoffFactor, retryMaxBackoff)
			tc.log().Info("Retrying tool call",
				"tool", name, "attempt", attempt+1, "error", lastErr)
		}

		result, err := r.runOnce(ctx, tool, argsJSON, tc)
		if err == nil {
			return r.stringify(tool, result), nil
		}
		if errors.Is(err, ErrCancelled) || ctx.Err() != nil {
			return "", ErrCancelled
		}
		if !isRetryable(err) {
			return errorResult("%s failed: %v", name, err), nil
		}
		lastErr = err
	}

	return errorResult("%s failed after retries: %v", name, lastErr), nil
}

// runOnce races a single execution attempt against the tool's timeout.
func (r *Runner) runOnce(ctx context.Context, tool *Tool, argsJSON string, tc *Context) (any, error) {
	timeout := tool.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type outcome struct {
		result any
		err    error
	}
	done := make(chan outcome, 1)
	go func() {
		result, err := tool.run(attemptCtx, json.RawMessage(argsJSON), tc)
		done <- outcome{result, err}
	}()

	select {
	case o := <-done:
		return o.result, o.err
	case <-attemptCtx.Done():
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("tool %s timed out after %s", tool.Name, timeout)
	}
}

// stringify renders the result for the model and enforces the size cap.
func (r *Runner) stringify(tool *Tool, result any) string {
	var out string
	switch v := result.(type) {
	case string:
		out = v
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return errorResult("failed to encode %s result: %v", tool.Name, err)
		}
		out = string(raw)
	}

	maxSize := tool.MaxResultSize
	if maxSize <= 0 {
		maxSize = DefaultMaxResultSize
	}
	if len(out) > maxSize {
		out = out[:maxSize] + fmt.Sprintf("\n... [result truncated at %d bytes]", maxSize)
	}
	return out
}

// isRetryable classifies transient failures: timeouts, connection trouble,
// sandbox-gone, rate limits, busy.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if sandbox.IsGone(err) {
		return true
	}

	msg := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"timed out",
		"timeout",
		"connection refused",
		"connection reset",
		"econnrefused",
		"econnreset",
		"rate limit",
		"too many requests",
		"busy",
		"temporarily unavailable",
	}
	for _, pattern := range retryablePatterns {
		if strings.Contains(msg, pattern) {
			return true
		}
	}
	return false
}

// errorResult renders an error as the JSON string tools hand back to the
// model.
func errorResult(format string, args ...any) string {
	raw, err := json.Marshal(map[string]string{
		"error": fmt.Sprintf(format, args...),
	})
	if err != nil {
		return `{"error":"internal error"}`
	}
	return string(raw)
}
