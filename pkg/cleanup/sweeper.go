// Package cleanup runs the background sweeper that recovers sessions
// stuck in running after an orchestrator crash, and prunes old catch-up
// events.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/stratuscode/stratuscode/pkg/events"
	"github.com/stratuscode/stratuscode/pkg/models"
	"github.com/stratuscode/stratuscode/pkg/services"
)

const (
	sweepInterval = 2 * time.Minute

	// staleThreshold: a running session whose streaming state has not
	// been touched for this long has no live orchestrator behind it.
	staleThreshold = 5 * time.Minute

	// eventRetention bounds the catch-up window.
	eventRetention = 24 * time.Hour

	sweepTimeout = 30 * time.Second
)

// abandonedMessage is the error recorded on swept sessions.
const abandonedMessage = "task abandoned"

// Sweeper periodically recovers abandoned sessions and prunes events.
type Sweeper struct {
	sessions  *services.SessionService
	eventsSvc *services.EventService
	publisher *events.EventPublisher
	logger    *slog.Logger
}

// NewSweeper creates a sweeper.
func NewSweeper(sessions *services.SessionService, eventsSvc *services.EventService, publisher *events.EventPublisher) *Sweeper {
	return &Sweeper{
		sessions:  sessions,
		eventsSvc: eventsSvc,
		publisher: publisher,
		logger:    slog.With("component", "sweeper"),
	}
}

// Start runs the sweep loop until the context is cancelled. An immediate
// first sweep recovers sessions orphaned by the previous process.
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("Sweeper started", "interval", sweepInterval, "stale_threshold", staleThreshold)
	s.sweep(ctx)

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	sctx, cancel := context.WithTimeout(ctx, sweepTimeout)
	defer cancel()

	stale, err := s.sessions.FindStaleRunningSessions(sctx, staleThreshold)
	if err != nil {
		s.logger.Error("Stale session scan failed", "error", err)
		return
	}

	for _, sessionID := range stale {
		// Conditional update: a session that resumed between the scan
		// and now is left alone.
		swept, err := s.sessions.MarkAbandoned(sctx, sessionID)
		if err != nil {
			s.logger.Error("Failed to mark session abandoned", "session_id", sessionID, "error", err)
			continue
		}
		if !swept {
			continue
		}
		s.logger.Warn("Recovered abandoned session", "session_id", sessionID)
		if err := s.publisher.PublishSessionStatus(sctx, sessionID, models.StatusError, abandonedMessage); err != nil {
			s.logger.Warn("Failed to publish abandoned status", "session_id", sessionID, "error", err)
		}
	}

	pruned, err := s.eventsSvc.DeleteOlderThan(sctx, time.Now().Add(-eventRetention))
	if err != nil {
		s.logger.Error("Event pruning failed", "error", err)
		return
	}
	if pruned > 0 {
		s.logger.Info("Pruned old events", "count", pruned)
	}
}
