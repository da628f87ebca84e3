package llm

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore tracks how often tokens are loaded.
type countingStore struct {
	tokens *CodexTokens
	gets   int
	saves  int
}

func (s *countingStore) Get(ctx context.Context, userID string) (*CodexTokens, error) {
	s.gets++
	if s.tokens == nil {
		return nil, ErrNoCodexTokens
	}
	cp := *s.tokens
	return &cp, nil
}

func (s *countingStore) Save(ctx context.Context, userID string, tokens *CodexTokens) error {
	s.saves++
	s.tokens = tokens
	return nil
}

func TestCodexTokenCache_CachesWithinTurn(t *testing.T) {
	store := &countingStore{tokens: &CodexTokens{
		AccessToken: "at",
		ExpiresAt:   time.Now().Add(time.Hour),
	}}
	cache := NewCodexTokenCache(store)

	first, err := cache.Token(context.Background(), "user-1")
	require.NoError(t, err)
	second, err := cache.Token(context.Background(), "user-1")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.gets)
	assert.Equal(t, 0, store.saves)
}

func TestCodexTokenCache_SeparateUsers(t *testing.T) {
	store := &countingStore{tokens: &CodexTokens{
		AccessToken: "at",
		ExpiresAt:   time.Now().Add(time.Hour),
	}}
	cache := NewCodexTokenCache(store)

	_, err := cache.Token(context.Background(), "user-1")
	require.NoError(t, err)
	_, err = cache.Token(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, 2, store.gets)
}

func TestCodexTokenCache_MissingTokens(t *testing.T) {
	cache := NewCodexTokenCache(&countingStore{})
	_, err := cache.Token(context.Background(), "user-1")
	assert.ErrorIs(t, err, ErrNoCodexTokens)
}

func TestCodexTokenCache_ExpiringWithoutRefreshTokenFails(t *testing.T) {
	store := &countingStore{tokens: &CodexTokens{
		AccessToken: "at",
		ExpiresAt:   time.Now().Add(10 * time.Second),
	}}
	cache := NewCodexTokenCache(store)

	_, err := cache.Token(context.Background(), "user-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "refresh")
}
