// Package webgen implements the website generation core: prompt
// composition, provider dispatch, and extraction of the generated
// document from free-form model output.
package webgen

// ReferenceImage is an inspiration image uploaded alongside a prompt.
type ReferenceImage struct {
	Name string `json:"name"`
	Type string `json:"type"`
	Data string `json:"data"` // base64-encoded payload
}

// GenerationRequest is one inbound generation call. It lives for a
// single request/response cycle and is never persisted; in particular
// the caller's API key exists only here.
type GenerationRequest struct {
	Prompt       string           `json:"prompt"`
	Provider     string           `json:"aiProvider"`
	APIKey       string           `json:"apiKey"`
	Images       []ReferenceImage `json:"images,omitempty"`
	ExistingCode string           `json:"existingCode,omitempty"`
}
