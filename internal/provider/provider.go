// Package provider translates a composed instruction into each upstream
// LLM API's wire format. Adapters are interchangeable behind the
// Provider interface; the caller's API key is an argument per call and
// is never stored server-side.
package provider

import (
	"context"
	"fmt"
	"net/http"
)

// Sampling constants shared by all adapters. Not caller-configurable.
const (
	maxTokens   = 8192
	temperature = 0.7
)

// systemPrompt is the fixed system turn for chat-style providers.
const systemPrompt = "You are an expert web designer and engineer. Output only raw code, never markdown fences or explanations."

// Provider is an abstraction for different LLM API providers.
// Each implementation handles provider-specific HTTP details,
// authentication, request/response formatting, and error handling.
type Provider interface {
	Name() string
	// Generate sends the instruction as the sole conversational turn and
	// returns the raw generated text.
	Generate(ctx context.Context, apiKey, prompt string) (string, error)
}

// UnsupportedProviderError is returned for an unrecognized provider ID,
// before any network call is attempted.
type UnsupportedProviderError struct {
	ID string
}

func (e *UnsupportedProviderError) Error() string {
	return fmt.Sprintf("unsupported provider %q", e.ID)
}

// UpstreamError is a non-success response from the chosen provider.
// Body carries the upstream error text verbatim so the caller can
// diagnose credential, quota, or format problems.
type UpstreamError struct {
	Provider string
	Status   int
	Body     string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.Status, e.Body)
}

// Provider identifiers accepted on the wire.
const (
	IDOpenAI = "openai"
	IDGemini = "gemini"
	IDClaude = "claude"
)

// Registry maps provider identifiers to adapters. Adding a backend is
// one new implementation plus one entry here.
type Registry map[string]Provider

// NewRegistry builds the default adapter set sharing one HTTP client.
func NewRegistry(client *http.Client) Registry {
	return Registry{
		IDOpenAI: NewOpenAI(client, ""),
		IDGemini: NewGemini(client, ""),
		IDClaude: NewClaude(client, ""),
	}
}

// Lookup resolves a provider ID, failing fast on an unknown one.
func (r Registry) Lookup(id string) (Provider, error) {
	p, ok := r[id]
	if !ok {
		return nil, &UnsupportedProviderError{ID: id}
	}
	return p, nil
}
