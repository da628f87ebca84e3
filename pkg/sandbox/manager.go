package sandbox

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
)

const (
	// Runtime image tag for fresh sandboxes.
	runtime = "node22"

	// Sandbox lifetime requested at creation. Long enough for a full turn
	// including dependency installs.
	createTimeoutSeconds = 800

	// Working branches are namespaced under this prefix.
	branchPrefix = "stratuscode/"
)

// SessionInfo is the slice of session state the manager needs.
type SessionInfo struct {
	ID            string
	Owner         string
	Repo          string
	Branch        string
	SessionBranch string
	SandboxID     string
	SnapshotID    string
}

// Store persists sandbox handles back onto the session row.
type Store interface {
	SetSandboxID(ctx context.Context, sessionID, sandboxID string) error
	SetSnapshot(ctx context.Context, sessionID, snapshotID string) error
	SetSessionBranch(ctx context.Context, sessionID, branch string) error
}

// GitIdentity configures the git author inside the sandbox, in GitHub's
// noreply form.
type GitIdentity struct {
	Login  string
	UserID int64
}

// Email returns the numeric-id + login noreply address.
func (g GitIdentity) Email() string {
	return fmt.Sprintf("%d+%s@users.noreply.github.com", g.UserID, g.Login)
}

// Manager acquires usable sandboxes for sessions and releases them into
// snapshots at turn end.
type Manager struct {
	client   *Client
	store    Store
	identity GitIdentity
	logger   *slog.Logger
}

// NewManager creates a sandbox manager.
func NewManager(client *Client, store Store, identity GitIdentity) *Manager {
	return &Manager{
		client:   client,
		store:    store,
		identity: identity,
		logger:   slog.With("component", "sandbox_manager"),
	}
}

// SessionBranch returns the working branch for a session, defaulting to
// the namespaced session id.
func SessionBranch(info SessionInfo) string {
	if info.SessionBranch != "" {
		return info.SessionBranch
	}
	return branchPrefix + info.ID
}

// Acquire returns a usable sandbox whose working tree is present, trying
// in strict order: resume-from-snapshot, reconnect-by-id, fresh clone.
// Whatever the path, the origin remote is refreshed with the given token
// (a token baked into a resumed snapshot may have aged) and the sandbox id
// is persisted on the session.
func (m *Manager) Acquire(ctx context.Context, info SessionInfo, githubToken string) (*Handle, error) {
	if githubToken == "" {
		return nil, fmt.Errorf("GITHUB_TOKEN not configured")
	}

	log := m.logger.With("session_id", info.ID)
	sb, fresh, err := m.obtain(ctx, log, info)
	if err != nil {
		return nil, err
	}

	if fresh {
		if err := m.cloneRepo(ctx, sb, info, githubToken); err != nil {
			return nil, err
		}
		if err := m.store.SetSessionBranch(ctx, info.ID, SessionBranch(info)); err != nil {
			return nil, err
		}
	}

	if err := m.refreshRemote(ctx, sb, info, githubToken); err != nil {
		return nil, err
	}

	if err := m.store.SetSandboxID(ctx, info.ID, sb.ID); err != nil {
		return nil, err
	}
	info.SandboxID = sb.ID
	info.SessionBranch = SessionBranch(info)

	return &Handle{mgr: m, sb: sb, info: info, token: githubToken}, nil
}

// obtain walks the resume → reconnect → fresh ladder. The boolean reports
// whether the sandbox is brand new and still needs a clone.
func (m *Manager) obtain(ctx context.Context, log *slog.Logger, info SessionInfo) (*Sandbox, bool, error) {
	if info.SnapshotID != "" {
		inst, err := m.client.Create(ctx, CreateParams{
			Runtime:          runtime,
			TimeoutSeconds:   createTimeoutSeconds,
			SourceSnapshotID: info.SnapshotID,
		})
		if err == nil {
			log.Info("Resumed sandbox from snapshot", "snapshot_id", info.SnapshotID, "sandbox_id", inst.SandboxID)
			return &Sandbox{ID: inst.SandboxID, client: m.client}, false, nil
		}
		log.Warn("Snapshot resume failed, falling through", "snapshot_id", info.SnapshotID, "error", err)
	} else if info.SandboxID != "" {
		inst, err := m.client.Get(ctx, info.SandboxID)
		if err == nil && inst.Status == "running" {
			log.Info("Reconnected to running sandbox", "sandbox_id", inst.SandboxID)
			return &Sandbox{ID: inst.SandboxID, client: m.client}, false, nil
		}
		if err != nil {
			log.Warn("Sandbox reconnect failed, falling through", "sandbox_id", info.SandboxID, "error", err)
		} else {
			log.Warn("Sandbox no longer running, falling through", "sandbox_id", info.SandboxID, "status", inst.Status)
		}
	}

	inst, err := m.client.Create(ctx, CreateParams{
		Runtime:        runtime,
		TimeoutSeconds: createTimeoutSeconds,
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to create sandbox: %w", err)
	}
	log.Info("Created fresh sandbox", "sandbox_id", inst.SandboxID)
	return &Sandbox{ID: inst.SandboxID, client: m.client}, true, nil
}

// cloneRepo performs the depth-1 clone and checks out the working branch.
func (m *Manager) cloneRepo(ctx context.Context, sb *Sandbox, info SessionInfo, token string) error {
	cloneURL := remoteURL(info, token)
	branch := SessionBranch(info)

	script := strings.Join([]string{
		fmt.Sprintf("git clone --depth 1 --branch %s %s %s", shellQuote(info.Branch), shellQuote(cloneURL), WorkDir),
		fmt.Sprintf("cd %s", WorkDir),
		fmt.Sprintf("git checkout -b %s", shellQuote(branch)),
		fmt.Sprintf("git config user.name %s", shellQuote(m.identity.Login)),
		fmt.Sprintf("git config user.email %s", shellQuote(m.identity.Email())),
	}, " && ")

	res, err := sb.RunCommand(ctx, "bash", []string{"-lc", script})
	if err != nil {
		return fmt.Errorf("clone failed: %w", err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("clone failed (exit %d): %s", res.ExitCode, res.Stderr)
	}
	return nil
}

// refreshRemote rewrites origin with a fresh token.
func (m *Manager) refreshRemote(ctx context.Context, sb *Sandbox, info SessionInfo, token string) error {
	res, err := sb.Shell(ctx, fmt.Sprintf("git remote set-url origin %s", shellQuote(remoteURL(info, token))))
	if err != nil {
		return fmt.Errorf("failed to refresh origin remote: %w", err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("failed to refresh origin remote (exit %d): %s", res.ExitCode, res.Stderr)
	}
	return nil
}

// Release snapshots the sandbox and swaps the session's live handle for
// the snapshot handle. On snapshot failure the sandbox id is left in place
// so the next turn reconnects instead of losing the working tree.
func (m *Manager) Release(ctx context.Context, h *Handle) error {
	snapshotID, err := h.sb.Snapshot(ctx)
	if err != nil {
		m.logger.Warn("Snapshot failed; keeping sandbox id for reconnect",
			"session_id", h.info.ID, "sandbox_id", h.sb.ID, "error", err)
		return err
	}
	if err := m.store.SetSnapshot(ctx, h.info.ID, snapshotID); err != nil {
		return err
	}
	m.logger.Info("Sandbox released to snapshot",
		"session_id", h.info.ID, "snapshot_id", snapshotID)
	return nil
}

func remoteURL(info SessionInfo, token string) string {
	return fmt.Sprintf("https://x-access-token:%s@github.com/%s/%s.git", token, info.Owner, info.Repo)
}

func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Handle is the orchestrator's grip on an acquired sandbox. All tool-level
// command execution goes through SafeExec.
type Handle struct {
	mgr   *Manager
	mu    sync.Mutex
	sb    *Sandbox
	info  SessionInfo
	token string
}

// Sandbox returns the underlying sandbox.
func (h *Handle) Sandbox() *Sandbox {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sb
}

// Info returns the session view the handle was acquired with.
func (h *Handle) Info() SessionInfo {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.info
}

// SafeExec runs fn against the sandbox, intercepting gone errors exactly
// once: on detection it re-acquires and invokes fn directly a second time.
// The retry never recurses back into SafeExec, so a sandbox that dies twice
// in one call surfaces the error.
func (h *Handle) SafeExec(ctx context.Context, fn func(context.Context, *Sandbox) (*CommandResult, error)) (*CommandResult, error) {
	h.mu.Lock()
	sb := h.sb
	h.mu.Unlock()

	res, err := fn(ctx, sb)
	if err == nil || !IsGone(err) {
		return res, err
	}

	slog.Warn("Sandbox gone during command; re-acquiring once",
		"session_id", h.info.ID, "sandbox_id", sb.ID, "error", err)
	if reErr := h.reacquire(ctx); reErr != nil {
		return nil, fmt.Errorf("sandbox gone and re-acquire failed: %w", reErr)
	}

	h.mu.Lock()
	sb = h.sb
	h.mu.Unlock()
	return fn(ctx, sb)
}

// reacquire replaces the dead sandbox. The stale sandbox id is dropped from
// the view first so Acquire falls through to snapshot resume or fresh clone.
func (h *Handle) reacquire(ctx context.Context) error {
	h.mu.Lock()
	info := h.info
	info.SandboxID = ""
	token := h.token
	h.mu.Unlock()

	next, err := h.mgr.Acquire(ctx, info, token)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.sb = next.sb
	h.info = next.info
	h.mu.Unlock()
	return nil
}
