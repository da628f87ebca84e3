package sandbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider is an in-memory sandbox API for manager tests.
type fakeProvider struct {
	mu        sync.Mutex
	nextID    int
	sandboxes map[string]string // id -> status
	creates   []CreateParams
	commands  []string
	snapshots []string

	// gone makes commands against these ids fail with 410.
	gone map[string]bool
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		sandboxes: make(map[string]string),
		gone:      make(map[string]bool),
	}
}

func (f *fakeProvider) server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()

		path := strings.TrimPrefix(r.URL.Path, "/")
		switch {
		case r.Method == http.MethodPost && path == "":
			var params CreateParams
			_ = json.NewDecoder(r.Body).Decode(&params)
			f.creates = append(f.creates, params)
			f.nextID++
			id := fmt.Sprintf("sbx-%d", f.nextID)
			f.sandboxes[id] = "running"
			_ = json.NewEncoder(w).Encode(Instance{SandboxID: id, Status: "running"})

		case r.Method == http.MethodGet:
			status, ok := f.sandboxes[path]
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "sandbox not found"})
				return
			}
			_ = json.NewEncoder(w).Encode(Instance{SandboxID: path, Status: status})

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/commands"):
			id := strings.TrimSuffix(path, "/commands")
			if f.gone[id] {
				w.WriteHeader(http.StatusGone)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "Sandbox is not running"})
				return
			}
			var req struct {
				Args []string `json:"args"`
			}
			_ = json.NewDecoder(r.Body).Decode(&req)
			if len(req.Args) > 0 {
				f.commands = append(f.commands, req.Args[len(req.Args)-1])
			}
			_ = json.NewEncoder(w).Encode(CommandResult{ExitCode: 0})

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/snapshot"):
			id := strings.TrimSuffix(path, "/snapshot")
			snapID := "snap-" + id
			f.snapshots = append(f.snapshots, snapID)
			f.sandboxes[id] = "stopped"
			_ = json.NewEncoder(w).Encode(map[string]string{"snapshot_id": snapID})

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

// memStore records session mutations.
type memStore struct {
	mu            sync.Mutex
	sandboxID     string
	snapshotID    string
	sessionBranch string
}

func (m *memStore) SetSandboxID(ctx context.Context, sessionID, sandboxID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sandboxID = sandboxID
	return nil
}

func (m *memStore) SetSnapshot(ctx context.Context, sessionID, snapshotID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snapshotID = snapshotID
	m.sandboxID = ""
	return nil
}

func (m *memStore) SetSessionBranch(ctx context.Context, sessionID, branch string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessionBranch = branch
	return nil
}

func testManager(t *testing.T, provider *fakeProvider) (*Manager, *memStore, func()) {
	t.Helper()
	srv := provider.server()
	client := NewClientWithBaseURL(Credentials{Token: "t", ProjectID: "p", TeamID: "tm"}, srv.URL)
	store := &memStore{}
	mgr := NewManager(client, store, GitIdentity{Login: "octocat", UserID: 1})
	return mgr, store, srv.Close
}

func sessionInfo() SessionInfo {
	return SessionInfo{
		ID:     "sess-1",
		Owner:  "acme",
		Repo:   "widgets",
		Branch: "main",
	}
}

func TestAcquire_FreshCloneAndBranch(t *testing.T) {
	provider := newFakeProvider()
	mgr, store, cleanup := testManager(t, provider)
	defer cleanup()

	handle, err := mgr.Acquire(context.Background(), sessionInfo(), "ghtoken")
	require.NoError(t, err)

	assert.Equal(t, "sbx-1", store.sandboxID)
	assert.Equal(t, "stratuscode/sess-1", store.sessionBranch)
	assert.Equal(t, "stratuscode/sess-1", SessionBranch(handle.Info()))

	require.NotEmpty(t, provider.commands)
	cloneScript := provider.commands[0]
	assert.Contains(t, cloneScript, "git clone --depth 1 --branch 'main'")
	assert.Contains(t, cloneScript, "x-access-token:ghtoken@github.com/acme/widgets.git")
	assert.Contains(t, cloneScript, "git checkout -b 'stratuscode/sess-1'")

	// The origin remote is refreshed even on the fresh path.
	assert.Contains(t, provider.commands[len(provider.commands)-1], "git remote set-url origin")
}

func TestAcquire_RequiresToken(t *testing.T) {
	provider := newFakeProvider()
	mgr, _, cleanup := testManager(t, provider)
	defer cleanup()

	_, err := mgr.Acquire(context.Background(), sessionInfo(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GITHUB_TOKEN")
}

func TestAcquire_SnapshotResumeSkipsClone(t *testing.T) {
	provider := newFakeProvider()
	mgr, store, cleanup := testManager(t, provider)
	defer cleanup()

	info := sessionInfo()
	info.SnapshotID = "snap-old"
	info.SessionBranch = "stratuscode/sess-1"

	_, err := mgr.Acquire(context.Background(), info, "ghtoken")
	require.NoError(t, err)

	require.Len(t, provider.creates, 1)
	assert.Equal(t, "snap-old", provider.creates[0].SourceSnapshotID)
	assert.Equal(t, "sbx-1", store.sandboxID)
	for _, cmd := range provider.commands {
		assert.NotContains(t, cmd, "git clone")
	}
}

func TestAcquire_ReconnectRequiresRunning(t *testing.T) {
	provider := newFakeProvider()
	mgr, _, cleanup := testManager(t, provider)
	defer cleanup()

	provider.mu.Lock()
	provider.sandboxes["sbx-dead"] = "stopped"
	provider.mu.Unlock()

	info := sessionInfo()
	info.SandboxID = "sbx-dead"
	info.SessionBranch = "stratuscode/sess-1"

	handle, err := mgr.Acquire(context.Background(), info, "ghtoken")
	require.NoError(t, err)

	// Fell through to a fresh sandbox instead of reusing the stopped one.
	assert.NotEqual(t, "sbx-dead", handle.Info().SandboxID)
	require.Len(t, provider.creates, 1)
	assert.Empty(t, provider.creates[0].SourceSnapshotID)
}

func TestRelease_SnapshotsAndSwapsHandle(t *testing.T) {
	provider := newFakeProvider()
	mgr, store, cleanup := testManager(t, provider)
	defer cleanup()

	handle, err := mgr.Acquire(context.Background(), sessionInfo(), "ghtoken")
	require.NoError(t, err)

	require.NoError(t, mgr.Release(context.Background(), handle))
	assert.Equal(t, "snap-sbx-1", store.snapshotID)
	assert.Empty(t, store.sandboxID)
}

func TestSafeExec_RecoversGoneSandboxOnce(t *testing.T) {
	provider := newFakeProvider()
	mgr, store, cleanup := testManager(t, provider)
	defer cleanup()

	handle, err := mgr.Acquire(context.Background(), sessionInfo(), "ghtoken")
	require.NoError(t, err)

	provider.mu.Lock()
	provider.gone["sbx-1"] = true
	provider.mu.Unlock()

	var calls int
	res, err := handle.SafeExec(context.Background(), func(ctx context.Context, sb *Sandbox) (*CommandResult, error) {
		calls++
		return sb.Shell(ctx, "echo hi")
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, 2, calls)

	// The handle now points at the replacement sandbox.
	assert.Equal(t, "sbx-2", handle.Info().SandboxID)
	assert.Equal(t, "sbx-2", store.sandboxID)
}

func TestSafeExec_DoesNotRetryTwice(t *testing.T) {
	provider := newFakeProvider()
	mgr, _, cleanup := testManager(t, provider)
	defer cleanup()

	handle, err := mgr.Acquire(context.Background(), sessionInfo(), "ghtoken")
	require.NoError(t, err)

	var calls int
	_, err = handle.SafeExec(context.Background(), func(ctx context.Context, sb *Sandbox) (*CommandResult, error) {
		calls++
		return nil, &APIError{StatusCode: http.StatusGone, Message: "Sandbox is not running"}
	})
	require.Error(t, err)
	assert.Equal(t, 2, calls)
}

func TestIsGone(t *testing.T) {
	assert.True(t, IsGone(&APIError{StatusCode: http.StatusGone, Message: "gone"}))
	assert.True(t, IsGone(&APIError{StatusCode: http.StatusBadRequest, Message: "Sandbox is not running"}))
	assert.False(t, IsGone(&APIError{StatusCode: http.StatusInternalServerError, Message: "boom"}))
	assert.False(t, IsGone(fmt.Errorf("plain error")))
}
