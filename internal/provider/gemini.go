package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com"
	geminiModel   = "gemini-2.0-flash"
)

// Gemini implements Provider for the Gemini generateContent API.
// The API key travels as a query parameter, not a header.
type Gemini struct {
	baseURL string
	client  *http.Client
}

// NewGemini creates a Gemini adapter. An empty baseURL selects the
// production endpoint; tests pass an httptest server URL.
func NewGemini(client *http.Client, baseURL string) *Gemini {
	if baseURL == "" {
		baseURL = geminiBaseURL
	}
	return &Gemini{baseURL: strings.TrimRight(baseURL, "/"), client: client}
}

func (p *Gemini) Name() string { return "gemini" }

// Generate calls generateContent and returns the first candidate's
// first text part.
func (p *Gemini) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		p.baseURL, geminiModel, url.QueryEscape(apiKey))

	payload := map[string]any{
		"contents": []map[string]any{{
			"parts": []map[string]any{{"text": prompt}},
		}},
		"generationConfig": map[string]any{
			"temperature":     temperature,
			"maxOutputTokens": maxTokens,
		},
	}

	body, err := postJSON(ctx, p.client, p.Name(), endpoint, nil, payload)
	if err != nil {
		return "", err
	}

	var parsed struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}
	// A missing or malformed text field degrades to an empty result.
	_ = json.Unmarshal(body, &parsed)
	if len(parsed.Candidates) == 0 || len(parsed.Candidates[0].Content.Parts) == 0 {
		return "", nil
	}
	return parsed.Candidates[0].Content.Parts[0].Text, nil
}
