package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, model string) ProviderConfig {
	t.Helper()
	cache := NewCodexTokenCache(EnvCodexStore{})
	cfg, err := ResolveProvider(context.Background(), model, "user-1", "sess-1", cache)
	require.NoError(t, err)
	return cfg
}

func TestResolveProvider_Codex(t *testing.T) {
	t.Setenv("CODEX_ACCESS_TOKEN", "at")
	t.Setenv("CODEX_ACCOUNT_ID", "acct")

	cfg := resolve(t, "gpt-5-codex")
	assert.Equal(t, ProviderResponses, cfg.Type)
	assert.Equal(t, codexBaseURL, cfg.BaseURL)
	assert.Equal(t, "at", cfg.APIKey)
	assert.Equal(t, "sess-1", cfg.Headers["session_id"])
	assert.Equal(t, "acct", cfg.Headers["ChatGPT-Account-Id"])
}

func TestResolveProvider_CodexWithoutTokens(t *testing.T) {
	t.Setenv("CODEX_ACCESS_TOKEN", "")

	cache := NewCodexTokenCache(EnvCodexStore{})
	_, err := ResolveProvider(context.Background(), "codex-mini", "user-1", "sess-1", cache)
	require.Error(t, err)
}

func TestResolveProvider_Anthropic(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "ak")

	cfg := resolve(t, "claude-sonnet-4-20250514")
	assert.Equal(t, ProviderAnthropic, cfg.Type)
	assert.Equal(t, "ak", cfg.APIKey)
}

func TestResolveProvider_AnthropicFallsBackWithoutKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "ok")

	cfg := resolve(t, "claude-sonnet-4-20250514")
	assert.Equal(t, ProviderOpenAI, cfg.Type)
}

func TestResolveProvider_OpenRouter(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "or")

	cfg := resolve(t, "meta-llama/llama-3-70b")
	assert.Equal(t, ProviderOpenRouter, cfg.Type)
	assert.Equal(t, "StratusCode", cfg.Headers["X-Title"])
	assert.NotEmpty(t, cfg.Headers["HTTP-Referer"])
}

func TestResolveProvider_OpenCodeZen(t *testing.T) {
	t.Setenv("OPENCODE_ZEN_API_KEY", "zen")

	for _, model := range []string{"grok-code-free", "big-pickle"} {
		cfg := resolve(t, model)
		assert.Equal(t, ProviderOpenCodeZen, cfg.Type, model)
		assert.Equal(t, "cli", cfg.Headers["x-opencode-client"], model)
	}
}

func TestResolveProvider_DefaultOpenAI(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "ok")
	t.Setenv("OPENAI_BASE_URL", "https://proxy.example.com/v1")

	cfg := resolve(t, "gpt-4o")
	assert.Equal(t, ProviderOpenAI, cfg.Type)
	assert.Equal(t, "https://proxy.example.com/v1", cfg.BaseURL)
}

func TestContextWindow(t *testing.T) {
	assert.Equal(t, 400000, ContextWindow("gpt-5-codex"))
	assert.Equal(t, 200000, ContextWindow("claude-opus-4-20250514"))
	assert.Equal(t, defaultContextWindow, ContextWindow("some-unknown-model"))
}
