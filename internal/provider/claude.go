package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

const (
	claudeBaseURL = "https://api.anthropic.com"
	claudeModel   = "claude-sonnet-4-20250514"
	claudeVersion = "2023-06-01"
)

// Claude implements Provider for the Anthropic messages API.
type Claude struct {
	baseURL string
	client  *http.Client
}

// NewClaude creates a Claude adapter. An empty baseURL selects the
// production endpoint; tests pass an httptest server URL.
func NewClaude(client *http.Client, baseURL string) *Claude {
	if baseURL == "" {
		baseURL = claudeBaseURL
	}
	return &Claude{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (p *Claude) Name() string { return "claude" }

// Generate calls the messages endpoint and returns the first content
// block's text.
func (p *Claude) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	payload := map[string]any{
		"model":       claudeModel,
		"max_tokens":  maxTokens,
		"temperature": temperature,
		"system":      systemPrompt,
		"messages":    []map[string]string{{"role": "user", "content": prompt}},
	}

	headers := map[string]string{
		"x-api-key":         apiKey,
		"anthropic-version": claudeVersion,
	}
	body, err := postJSON(ctx, p.client, p.Name(), p.baseURL+"/v1/messages", headers, payload)
	if err != nil {
		return "", err
	}

	var parsed struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
	}
	// A missing or malformed text field degrades to an empty result.
	_ = json.Unmarshal(body, &parsed)
	if len(parsed.Content) == 0 {
		return "", nil
	}
	return parsed.Content[0].Text, nil
}
