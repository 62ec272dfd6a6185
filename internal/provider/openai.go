package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

const (
	openaiBaseURL = "https://api.openai.com"
	openaiModel   = "gpt-4o"
)

// OpenAI implements Provider for the OpenAI chat completions API.
type OpenAI struct {
	baseURL string
	client  *http.Client
}

// NewOpenAI creates an OpenAI adapter. An empty baseURL selects the
// production endpoint; tests pass an httptest server URL.
func NewOpenAI(client *http.Client, baseURL string) *OpenAI {
	if baseURL == "" {
		baseURL = openaiBaseURL
	}
	return &OpenAI{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (p *OpenAI) Name() string { return "openai" }

// Generate calls the chat completions endpoint and returns the first
// choice's message content.
func (p *OpenAI) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	payload := map[string]any{
		"model": openaiModel,
		"messages": []map[string]string{
			{"role": "system", "content": systemPrompt},
			{"role": "user", "content": prompt},
		},
		"temperature": temperature,
		"max_tokens":  maxTokens,
	}

	body, err := postJSON(ctx, p.client, p.Name(), p.baseURL+"/v1/chat/completions",
		map[string]string{"Authorization": "Bearer " + apiKey}, payload)
	if err != nil {
		return "", err
	}

	var parsed struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	// A missing or malformed text field degrades to an empty result.
	_ = json.Unmarshal(body, &parsed)
	if len(parsed.Choices) == 0 {
		return "", nil
	}
	return parsed.Choices[0].Message.Content, nil
}
