package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/chibuzordev/posterio/config"
	"github.com/chibuzordev/posterio/types"
)

const openaiURL = "https://api.openai.com/v1/chat/completions"

// RawCompletion is the opaque result of one model call.
type RawCompletion struct {
	Text       string
	TokensUsed int
}

// Completer is the outbound boundary to the language model. Exactly one
// completion attempt is made per request; callers handle failure.
type Completer interface {
	Complete(ctx context.Context, messages []types.Message) (RawCompletion, error)
}

type OpenAIClient struct {
	apiKey      string
	model       string
	maxTokens   int
	temperature float64

	baseURL    string
	httpClient *http.Client
}

func NewOpenAIClient(cfg config.Config) *OpenAIClient {
	return &OpenAIClient{
		apiKey:      cfg.OpenAIKey,
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		baseURL:     openaiURL,
		// Timeout bounds requests the provider itself leaves unbounded
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, messages []types.Message) (RawCompletion, error) {
	if c.apiKey == "" {
		return RawCompletion{}, fmt.Errorf("OPENAI_API_KEY not set")
	}

	body := map[string]interface{}{
		"model":       c.model,
		"messages":    messages,
		"max_tokens":  c.maxTokens,
		"temperature": c.temperature,
	}

	jsonData, err := json.Marshal(body)
	if err != nil {
		return RawCompletion{}, fmt.Errorf("failed to marshal request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL, bytes.NewReader(jsonData))
	if err != nil {
		return RawCompletion{}, fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RawCompletion{}, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return RawCompletion{}, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var res map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return RawCompletion{}, fmt.Errorf("failed to decode response: %v", err)
	}

	text, err := extractTextFromOpenAIResponse(res)
	if err != nil {
		return RawCompletion{}, err
	}

	return RawCompletion{
		Text:       text,
		TokensUsed: extractTokensUsed(res),
	}, nil
}

// Extract text from OpenAI API response
func extractTextFromOpenAIResponse(res map[string]interface{}) (string, error) {
	choices, ok := res["choices"].([]interface{})
	if !ok || len(choices) == 0 {
		return "", fmt.Errorf("no choices returned from OpenAI")
	}

	choice, ok := choices[0].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("invalid choice format")
	}

	message, ok := choice["message"].(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("no message in choice")
	}

	content, ok := message["content"].(string)
	if !ok {
		return "", fmt.Errorf("no content in message")
	}

	return content, nil
}

// Token usage is informational only; a missing or malformed usage block
// counts as zero rather than failing the call.
func extractTokensUsed(res map[string]interface{}) int {
	usage, ok := res["usage"].(map[string]interface{})
	if !ok {
		return 0
	}
	total, ok := usage["total_tokens"].(float64)
	if !ok || total < 0 {
		return 0
	}
	return int(total)
}
