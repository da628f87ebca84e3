package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"
)

const (
	codexTokenEndpoint = "https://auth.openai.com/oauth/token"
	codexClientID      = "app_EMoamEEZ73f0CkXaXp7hrann"

	// Tokens expiring within this window are refreshed before use.
	codexRefreshSkew = 60 * time.Second
)

// CodexTokens is one user's OAuth credential set.
type CodexTokens struct {
	AccessToken  string
	RefreshToken string
	AccountID    string
	ExpiresAt    time.Time
}

// CodexTokenStore persists per-user OAuth tokens. Implementations must
// return ErrNoCodexTokens when the user has none.
type CodexTokenStore interface {
	Get(ctx context.Context, userID string) (*CodexTokens, error)
	Save(ctx context.Context, userID string, tokens *CodexTokens) error
}

// ErrNoCodexTokens means the user never connected a Codex account.
var ErrNoCodexTokens = fmt.Errorf("no codex tokens for user")

// EnvCodexStore reads a single shared credential set from the environment.
// Saves are dropped; the env is read-only.
type EnvCodexStore struct{}

func (EnvCodexStore) Get(ctx context.Context, userID string) (*CodexTokens, error) {
	access := os.Getenv("CODEX_ACCESS_TOKEN")
	if access == "" {
		return nil, ErrNoCodexTokens
	}
	return &CodexTokens{
		AccessToken:  access,
		RefreshToken: os.Getenv("CODEX_REFRESH_TOKEN"),
		AccountID:    os.Getenv("CODEX_ACCOUNT_ID"),
		// Unknown expiry; treat as distant so the env token is used as-is.
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}, nil
}

func (EnvCodexStore) Save(ctx context.Context, userID string, tokens *CodexTokens) error {
	return nil
}

// CodexTokenCache avoids refreshing more than once per turn. One cache is
// created per turn and discarded with it; it is not a process global.
type CodexTokenCache struct {
	store  CodexTokenStore
	client *http.Client

	mu     sync.Mutex
	cached map[string]*CodexTokens
}

// NewCodexTokenCache creates a turn-scoped cache over a token store.
func NewCodexTokenCache(store CodexTokenStore) *CodexTokenCache {
	return &CodexTokenCache{
		store:  store,
		client: &http.Client{Timeout: 30 * time.Second},
		cached: make(map[string]*CodexTokens),
	}
}

// Token returns a valid access token for the user, refreshing through the
// OAuth endpoint when the stored one expires within the skew window.
func (c *CodexTokenCache) Token(ctx context.Context, userID string) (*CodexTokens, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tok, ok := c.cached[userID]; ok {
		return tok, nil
	}

	tok, err := c.store.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if time.Until(tok.ExpiresAt) < codexRefreshSkew {
		refreshed, err := c.refresh(ctx, tok)
		if err != nil {
			return nil, fmt.Errorf("failed to refresh codex token: %w", err)
		}
		if err := c.store.Save(ctx, userID, refreshed); err != nil {
			return nil, fmt.Errorf("failed to persist refreshed codex token: %w", err)
		}
		tok = refreshed
	}

	c.cached[userID] = tok
	return tok, nil
}

func (c *CodexTokenCache) refresh(ctx context.Context, tok *CodexTokens) (*CodexTokens, error) {
	if tok.RefreshToken == "" {
		return nil, fmt.Errorf("no refresh token")
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {tok.RefreshToken},
		"client_id":     {codexClientID},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, codexTokenEndpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var body struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
		ExpiresIn    int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", err)
	}
	if body.AccessToken == "" {
		return nil, fmt.Errorf("token response missing access_token")
	}

	next := &CodexTokens{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		AccountID:    tok.AccountID,
		ExpiresAt:    time.Now().Add(time.Duration(body.ExpiresIn) * time.Second),
	}
	if next.RefreshToken == "" {
		next.RefreshToken = tok.RefreshToken
	}
	return next, nil
}
