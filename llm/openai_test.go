package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/chibuzordev/posterio/config"
	"github.com/chibuzordev/posterio/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *OpenAIClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewOpenAIClient(config.Config{
		OpenAIKey:   "test-key",
		Model:       "gpt-4o-mini",
		MaxTokens:   700,
		Temperature: 0.6,
	})
	client.baseURL = server.URL
	return client
}

func TestCompleteExtractsTextAndTokens(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": "Hello there!"}},
			},
			"usage": map[string]interface{}{"total_tokens": 42},
		})
	})

	completion, err := client.Complete(context.Background(), []types.Message{
		{Role: types.RoleSystem, Content: "sys"},
		{Role: types.RoleUser, Content: "hi"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Hello there!", completion.Text)
	assert.Equal(t, 42, completion.TokensUsed)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "gpt-4o-mini", gotBody["model"])
	assert.Equal(t, float64(700), gotBody["max_tokens"])
}

func TestCompleteMissingUsageCountsAsZero(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]interface{}{"content": "ok"}},
			},
		})
	})

	completion, err := client.Complete(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, completion.TokensUsed)
}

func TestCompleteNonOKStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := client.Complete(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "429")
}

func TestCompleteNoChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	})

	_, err := client.Complete(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}

func TestCompleteMissingAPIKey(t *testing.T) {
	client := NewOpenAIClient(config.Config{Model: "gpt-4o-mini"})

	_, err := client.Complete(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
