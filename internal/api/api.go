// Package api is the public HTTP boundary. It decodes generation calls
// from the browser frontend, normalizes reference images, and reports
// every outcome as a structured JSON body — a caller never sees a raw
// panic or a hung connection from this layer.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/forge-ai/webdraft/internal/webgen"
)

const version = "0.1.0"

// Server holds the handler dependencies.
type Server struct {
	svc    *webgen.Service
	webDir string
}

// New creates a Server generating through svc and serving the static
// frontend from webDir.
func New(svc *webgen.Service, webDir string) *Server {
	return &Server{svc: svc, webDir: webDir}
}

// Handler builds the full route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/generate", s.handleGenerate)
	mux.HandleFunc("GET /api/status", s.handleStatus)

	// Serve the frontend build
	mux.Handle("/", http.FileServer(http.Dir(s.webDir)))

	return cors(requestID(mux))
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req webgen.GenerationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonErr(w, "invalid body", 400)
		return
	}
	if req.Prompt == "" {
		jsonErr(w, "prompt required", 400)
		return
	}
	if req.Provider == "" {
		jsonErr(w, "aiProvider required", 400)
		return
	}
	if req.APIKey == "" {
		jsonErr(w, "apiKey required", 400)
		return
	}

	reqID := fromContext(r.Context())
	revision := req.ExistingCode != ""
	log.Info().
		Str("req", reqID).
		Str("provider", req.Provider).
		Int("images", len(req.Images)).
		Bool("revision", revision).
		Msg("generating site")

	images, err := webgen.NormalizeImages(req.Images)
	if err != nil {
		s.fail(w, reqID, err)
		return
	}
	req.Images = images

	code, err := s.svc.Generate(r.Context(), req)
	if err != nil {
		s.fail(w, reqID, err)
		return
	}

	jsonOK(w, map[string]any{"success": true, "code": code}, 200)
}

// fail reports a domain failure in the structured shape the frontend
// expects. The HTTP status stays 200; success=false is the signal.
func (s *Server) fail(w http.ResponseWriter, reqID string, err error) {
	log.Error().Str("req", reqID).Err(err).Msg("generation failed")
	jsonOK(w, map[string]any{"success": false, "error": err.Error()}, 200)
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, map[string]any{
		"status":  "online",
		"version": version,
	}, 200)
}

// ── Middleware ────────────────────────────────────────────────────────────────

type ctxKeyRequestID struct{}

func fromContext(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID{}, id)))
	})
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func jsonOK(w http.ResponseWriter, v any, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func jsonErr(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
