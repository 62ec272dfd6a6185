package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/forge-ai/webdraft/internal/provider"
	"github.com/forge-ai/webdraft/internal/webgen"
)

type stubProvider struct {
	reply string
	err   error
	calls int
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Generate(_ context.Context, _, _ string) (string, error) {
	s.calls++
	return s.reply, s.err
}

func newTestServer(stub *stubProvider) *Server {
	svc := webgen.NewService(provider.Registry{"stub": stub})
	return New(svc, ".")
}

func postGenerate(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGenerateEndpoint(t *testing.T) {
	stub := &stubProvider{reply: "```html\n<!DOCTYPE html><html>ok</html>\n```"}
	h := newTestServer(stub).Handler()

	rec := postGenerate(t, h, `{"prompt":"a bakery site","aiProvider":"stub","apiKey":"k"}`)
	if rec.Code != 200 {
		t.Fatalf("status %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatal("missing request id header")
	}

	var resp struct {
		Success bool   `json:"success"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Success || resp.Code != "<!DOCTYPE html><html>ok</html>" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGenerateEndpointValidation(t *testing.T) {
	stub := &stubProvider{}
	h := newTestServer(stub).Handler()

	cases := []struct{ name, body string }{
		{"bad json", `{`},
		{"no prompt", `{"aiProvider":"stub","apiKey":"k"}`},
		{"no provider", `{"prompt":"x","apiKey":"k"}`},
		{"no key", `{"prompt":"x","aiProvider":"stub"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := postGenerate(t, h, tc.body)
			if rec.Code != 400 {
				t.Fatalf("status %d, want 400", rec.Code)
			}
		})
	}
	if stub.calls != 0 {
		t.Fatal("rejected requests must not reach the provider")
	}
}

func TestGenerateEndpointUpstreamFailure(t *testing.T) {
	stub := &stubProvider{err: &provider.UpstreamError{Provider: "stub", Status: 401, Body: "invalid api key"}}
	h := newTestServer(stub).Handler()

	rec := postGenerate(t, h, `{"prompt":"x","aiProvider":"stub","apiKey":"bad"}`)
	if rec.Code != 200 {
		t.Fatalf("status %d, want 200 with structured failure", rec.Code)
	}

	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || !strings.Contains(resp.Error, "invalid api key") {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestGenerateEndpointUnknownProvider(t *testing.T) {
	stub := &stubProvider{}
	h := newTestServer(stub).Handler()

	rec := postGenerate(t, h, `{"prompt":"x","aiProvider":"grok","apiKey":"k"}`)
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success || !strings.Contains(resp.Error, "grok") {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if stub.calls != 0 {
		t.Fatal("unknown provider must not trigger any generation")
	}
}

func TestGenerateEndpointBadImage(t *testing.T) {
	stub := &stubProvider{reply: "<html></html>"}
	h := newTestServer(stub).Handler()

	rec := postGenerate(t, h,
		`{"prompt":"x","aiProvider":"stub","apiKey":"k","images":[{"name":"a","type":"image/png","data":"%%%"}]}`)
	var resp struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Success {
		t.Fatal("undecodable image must fail the request")
	}
	if stub.calls != 0 {
		t.Fatal("image validation must run before the upstream call")
	}
}

func TestStatusEndpoint(t *testing.T) {
	h := newTestServer(&stubProvider{}).Handler()

	req := httptest.NewRequest("GET", "/api/status", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != 200 {
		t.Fatalf("status %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp["status"] != "online" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestCORSPreflight(t *testing.T) {
	h := newTestServer(&stubProvider{}).Handler()

	req := httptest.NewRequest("OPTIONS", "/api/generate", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != 204 {
		t.Fatalf("status %d, want 204", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS header")
	}
}
