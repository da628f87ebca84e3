package orchestrator

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/stratuscode/stratuscode/pkg/events"
	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/services"
)

const (
	// tokenFlushInterval coalesces token/reasoning writes; one pending
	// timer at most, so the write rate is bounded regardless of token
	// rate.
	tokenFlushInterval = 75 * time.Millisecond

	// subagentFlushInterval batches subagent status text.
	subagentFlushInterval = 150 * time.Millisecond

	flushWriteTimeout = 10 * time.Second
)

// flusher accumulates streamed tokens and drains both buffers into the
// live stream in one coalesced write per interval.
type flusher struct {
	streams   *services.StreamService
	publisher *events.EventPublisher
	sessionID string
	logger    *slog.Logger

	mu        sync.Mutex
	content   strings.Builder
	reasoning strings.Builder
	timer     *time.Timer
	stopped   bool
}

func newFlusher(streams *services.StreamService, publisher *events.EventPublisher, sessionID string, logger *slog.Logger) *flusher {
	return &flusher{
		streams:   streams,
		publisher: publisher,
		sessionID: sessionID,
		logger:    logger,
	}
}

// AddToken buffers an assistant text token.
func (f *flusher) AddToken(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.content.WriteString(token)
	f.scheduleLocked()
}

// AddReasoning buffers a reasoning token.
func (f *flusher) AddReasoning(token string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reasoning.WriteString(token)
	f.scheduleLocked()
}

func (f *flusher) scheduleLocked() {
	if f.timer != nil || f.stopped {
		return
	}
	f.timer = time.AfterFunc(tokenFlushInterval, func() {
		ctx, cancel := context.WithTimeout(context.Background(), flushWriteTimeout)
		defer cancel()
		if err := f.Flush(ctx); err != nil {
			f.logger.Warn("Token flush failed", "session_id", f.sessionID, "error", err)
		}
	})
}

// Flush drains both buffers now. Called by the timer, and forced before
// any tool-call mutation so stream ordering is preserved.
func (f *flusher) Flush(ctx context.Context) error {
	f.mu.Lock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	content := f.content.String()
	reasoning := f.reasoning.String()
	f.content.Reset()
	f.reasoning.Reset()
	f.mu.Unlock()

	if content == "" && reasoning == "" {
		return nil
	}

	if reasoning != "" {
		if err := f.streams.AppendReasoning(ctx, f.sessionID, reasoning); err != nil {
			return err
		}
		if err := f.streams.AppendTextPart(ctx, f.sessionID, models.ReasoningPart(reasoning)); err != nil {
			return err
		}
	}
	if content != "" {
		if err := f.streams.AppendContent(ctx, f.sessionID, content); err != nil {
			return err
		}
		if err := f.streams.AppendTextPart(ctx, f.sessionID, models.TextPart(content)); err != nil {
			return err
		}
	}

	if err := f.publisher.PublishStreamDelta(ctx, f.sessionID, events.StreamDeltaPayload{
		Content:   content,
		Reasoning: reasoning,
	}); err != nil {
		f.logger.Warn("Stream delta notify failed", "session_id", f.sessionID, "error", err)
	}
	return nil
}

// Stop flushes whatever is buffered and disarms the timer.
func (f *flusher) Stop(ctx context.Context) error {
	f.mu.Lock()
	f.stopped = true
	f.mu.Unlock()
	return f.Flush(ctx)
}

// subagentBatcher batches per-agent status text behind its own timer.
type subagentBatcher struct {
	streams   *services.StreamService
	publisher *events.EventPublisher
	sessionID string
	logger    *slog.Logger

	mu      sync.Mutex
	text    map[string]*strings.Builder
	timer   *time.Timer
	stopped bool
}

func newSubagentBatcher(streams *services.StreamService, publisher *events.EventPublisher, sessionID string, logger *slog.Logger) *subagentBatcher {
	return &subagentBatcher{
		streams:   streams,
		publisher: publisher,
		sessionID: sessionID,
		logger:    logger,
		text:      make(map[string]*strings.Builder),
	}
}

// Start records an ordered subagent-start marker in the parts stream.
func (b *subagentBatcher) Start(ctx context.Context, agent string) {
	if err := b.streams.AppendTextPart(ctx, b.sessionID, models.Part{Type: models.PartSubagentStart, Agent: agent}); err != nil {
		b.logger.Warn("Subagent start marker failed", "session_id", b.sessionID, "agent", agent, "error", err)
	}
}

// End flushes the agent's batched text and records the end marker.
func (b *subagentBatcher) End(ctx context.Context, agent string) {
	b.flush(ctx)
	if err := b.streams.AppendTextPart(ctx, b.sessionID, models.Part{Type: models.PartSubagentEnd, Agent: agent}); err != nil {
		b.logger.Warn("Subagent end marker failed", "session_id", b.sessionID, "agent", agent, "error", err)
	}
}

// Token buffers subagent status text.
func (b *subagentBatcher) Token(agent, token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	sb, ok := b.text[agent]
	if !ok {
		sb = &strings.Builder{}
		b.text[agent] = sb
	}
	sb.WriteString(token)
	if b.timer == nil && !b.stopped {
		b.timer = time.AfterFunc(subagentFlushInterval, func() {
			ctx, cancel := context.WithTimeout(context.Background(), flushWriteTimeout)
			defer cancel()
			b.flush(ctx)
		})
	}
}

func (b *subagentBatcher) flush(ctx context.Context) {
	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	batch := b.text
	b.text = make(map[string]*strings.Builder)
	b.mu.Unlock()

	for agent, sb := range batch {
		if sb.Len() == 0 {
			continue
		}
		stage := agent + ": " + lastLine(sb.String())
		if err := b.streams.SetStage(ctx, b.sessionID, stage); err != nil {
			b.logger.Warn("Subagent stage update failed", "session_id", b.sessionID, "agent", agent, "error", err)
			continue
		}
		if err := b.publisher.PublishStreamState(ctx, b.sessionID, events.StreamStatePayload{
			Kind:  events.StreamKindStage,
			Stage: stage,
		}); err != nil {
			b.logger.Warn("Subagent stage notify failed", "session_id", b.sessionID, "error", err)
		}
	}
}

// Stop drains any remaining batched text.
func (b *subagentBatcher) Stop(ctx context.Context) {
	b.mu.Lock()
	b.stopped = true
	b.mu.Unlock()
	b.flush(ctx)
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\n")
	if idx := strings.LastIndex(s, "\n"); idx >= 0 {
		return s[idx+1:]
	}
	return s
}
