package llm

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/lightledger/internal/common"
)

func TestNewClient(t *testing.T) {
	t.Run("rejects unknown provider", func(t *testing.T) {
		_, err := NewClient(Config{Provider: "gemini", APIKey: "key"})
		assert.ErrorIs(t, err, common.ErrInvalidConfig)
	})

	t.Run("requires an API key", func(t *testing.T) {
		_, err := NewClient(Config{Provider: "openai"})
		assert.ErrorIs(t, err, common.ErrMissingConfig)

		_, err = NewClient(Config{Provider: "anthropic"})
		assert.ErrorIs(t, err, common.ErrMissingConfig)
	})

	t.Run("builds provider clients", func(t *testing.T) {
		openai, err := NewClient(Config{Provider: "openai", APIKey: "key"})
		require.NoError(t, err)
		assert.IsType(t, &openAIClient{}, openai)

		anthropic, err := NewClient(Config{Provider: "Anthropic", APIKey: "key"})
		require.NoError(t, err)
		assert.IsType(t, &anthropicClient{}, anthropic)
	})
}

func TestClientTimeout(t *testing.T) {
	t.Run("configured timeout reaches the HTTP client", func(t *testing.T) {
		client, err := newOpenAIClient(Config{APIKey: "key", Timeout: 5 * time.Second})
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.(*openAIClient).httpClient.Timeout)

		client, err = newAnthropicClient(Config{APIKey: "key", Timeout: 5 * time.Second})
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.(*anthropicClient).httpClient.Timeout)
	})

	t.Run("defaults when unset", func(t *testing.T) {
		client, err := newOpenAIClient(Config{APIKey: "key"})
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, client.(*openAIClient).httpClient.Timeout)

		client, err = newAnthropicClient(Config{APIKey: "key"})
		require.NoError(t, err)
		assert.Equal(t, 30*time.Second, client.(*anthropicClient).httpClient.Timeout)
	})
}
