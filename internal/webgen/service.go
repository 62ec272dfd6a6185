package webgen

import (
	"context"

	"github.com/forge-ai/webdraft/internal/provider"
)

// Service wires the prompt composer, the provider registry, and the
// extractor into the single generation flow. It holds no per-request
// state; concurrent calls are fully independent.
type Service struct {
	providers provider.Registry
}

// NewService creates a Service dispatching to the given registry.
func NewService(providers provider.Registry) *Service {
	return &Service{providers: providers}
}

// Generate runs compose → invoke → extract for one request and returns
// the extracted document. Exactly one upstream call is made per
// invocation; an unknown provider fails before any network activity,
// and every other failure propagates unchanged.
func (s *Service) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	p, err := s.providers.Lookup(req.Provider)
	if err != nil {
		return "", err
	}

	raw, err := p.Generate(ctx, req.APIKey, BuildPrompt(req))
	if err != nil {
		return "", err
	}
	return ExtractHTML(raw), nil
}
