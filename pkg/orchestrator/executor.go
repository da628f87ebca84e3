package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/stratuscode/stratuscode/pkg/models"
)

// Executor owns the one-goroutine-per-session turn lifecycle. Submissions
// after Stop are rejected; Stop drains in-flight turns.
type Executor struct {
	orch   *Orchestrator
	logger *slog.Logger

	mu      sync.Mutex
	active  map[string]context.CancelFunc
	wg      sync.WaitGroup
	stopped bool
}

// NewExecutor creates an executor over an orchestrator.
func NewExecutor(orch *Orchestrator) *Executor {
	return &Executor{
		orch:   orch,
		logger: slog.With("component", "turn_executor"),
		active: make(map[string]context.CancelFunc),
	}
}

// Submit starts a turn for a session. One active turn per session; a
// second submit while one is running is rejected (guarding against
// concurrent sends is otherwise the client's responsibility).
func (e *Executor) Submit(sessionID, userMessage string, opts models.TurnOptions) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.stopped {
		return fmt.Errorf("executor is shutting down")
	}
	if _, running := e.active[sessionID]; running {
		return fmt.Errorf("session %s already has an active turn", sessionID)
	}

	ctx, cancel := context.WithCancel(context.Background())
	e.active[sessionID] = cancel
	e.wg.Add(1)

	go func() {
		defer e.wg.Done()
		defer func() {
			e.mu.Lock()
			delete(e.active, sessionID)
			e.mu.Unlock()
			cancel()
		}()
		e.orch.RunTurn(ctx, sessionID, userMessage, opts)
	}()

	return nil
}

// Active reports whether a session has a turn in flight. The send
// handler checks this before mutating any session state.
func (e *Executor) Active(sessionID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.active[sessionID]
	return ok
}

// CancelExecution hard-cancels a session's running turn. Cooperative
// cancellation via the session's cancel flag is preferred; this is the
// shutdown path.
func (e *Executor) CancelExecution(sessionID string) {
	e.mu.Lock()
	cancel, ok := e.active[sessionID]
	e.mu.Unlock()
	if ok {
		cancel()
	}
}

// ActiveCount reports how many turns are in flight.
func (e *Executor) ActiveCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.active)
}

// Stop rejects new submissions and waits for in-flight turns to finish.
func (e *Executor) Stop() {
	e.mu.Lock()
	e.stopped = true
	e.mu.Unlock()

	e.logger.Info("Executor draining", "active_turns", e.ActiveCount())
	e.wg.Wait()
	e.logger.Info("Executor stopped")
}
