package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Provider types understood by the inference sidecar.
const (
	ProviderOpenAI      = "openai"
	ProviderAnthropic   = "anthropic"
	ProviderOpenRouter  = "openrouter"
	ProviderOpenCodeZen = "opencode-zen"
	ProviderResponses   = "responses-api"
)

// Provider endpoints.
const (
	codexBaseURL       = "https://chatgpt.com/backend-api/codex"
	anthropicBaseURL   = "https://api.anthropic.com/v1"
	openRouterBaseURL  = "https://openrouter.ai/api/v1"
	openCodeZenBaseURL = "https://opencode.ai/zen/v1"
)

// ProviderConfig is the resolved provider for one turn.
type ProviderConfig struct {
	Type    string
	Model   string
	APIKey  string
	BaseURL string
	Headers map[string]string
}

// ResolveProvider maps a model id to its provider. Codex-family models go
// through OAuth; the token cache is request-scoped, owned by the turn.
func ResolveProvider(ctx context.Context, model, userID, sessionID string, codex *CodexTokenCache) (ProviderConfig, error) {
	switch {
	case strings.Contains(model, "codex"):
		tok, err := codex.Token(ctx, userID)
		if err != nil {
			return ProviderConfig{}, fmt.Errorf("codex token unavailable: %w", err)
		}
		headers := map[string]string{
			"originator": "stratuscode",
			"User-Agent": "stratuscode/1.0",
			"session_id": sessionID,
		}
		if tok.AccountID != "" {
			headers["ChatGPT-Account-Id"] = tok.AccountID
		}
		return ProviderConfig{
			Type:    ProviderResponses,
			Model:   model,
			APIKey:  tok.AccessToken,
			BaseURL: codexBaseURL,
			Headers: headers,
		}, nil

	case strings.HasPrefix(model, "claude-") && os.Getenv("ANTHROPIC_API_KEY") != "":
		return ProviderConfig{
			Type:    ProviderAnthropic,
			Model:   model,
			APIKey:  os.Getenv("ANTHROPIC_API_KEY"),
			BaseURL: anthropicBaseURL,
		}, nil

	case strings.Contains(model, "/"):
		return ProviderConfig{
			Type:    ProviderOpenRouter,
			Model:   model,
			APIKey:  os.Getenv("OPENROUTER_API_KEY"),
			BaseURL: openRouterBaseURL,
			Headers: map[string]string{
				"HTTP-Referer": "https://stratuscode.dev",
				"X-Title":      "StratusCode",
			},
		}, nil

	case strings.Contains(model, "-free") || model == "big-pickle":
		return ProviderConfig{
			Type:    ProviderOpenCodeZen,
			Model:   model,
			APIKey:  os.Getenv("OPENCODE_ZEN_API_KEY"),
			BaseURL: openCodeZenBaseURL,
			Headers: map[string]string{"x-opencode-client": "cli"},
		}, nil

	default:
		return ProviderConfig{
			Type:    ProviderOpenAI,
			Model:   model,
			APIKey:  os.Getenv("OPENAI_API_KEY"),
			BaseURL: os.Getenv("OPENAI_BASE_URL"),
		}, nil
	}
}
