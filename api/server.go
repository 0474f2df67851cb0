// Package api - Thin HTTP layer over the decision pipeline.
// The API is ONLY responsible for: input decoding, orchestration, output serialization.
// The API NEVER scores options itself.
package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"tech-verdict/core/orchestrator"
	"tech-verdict/internal/logging"
)

// Version is reported by GET /
const Version = "1.0.0"

// Options configures a Server
type Options struct {
	// Version reported at GET /; defaults to Version
	Version string

	// AllowedOrigins enables CORS for the listed origins; "*" allows any
	AllowedOrigins []string
}

// Server is the API server
type Server struct {
	handler *Handler
	mux     *http.ServeMux
	root    http.Handler
	version string
	origins []string
	log     *zap.Logger
}

// NewServer creates a new API server
func NewServer(orch *orchestrator.Orchestrator, opts Options) *Server {
	if opts.Version == "" {
		opts.Version = Version
	}

	s := &Server{
		handler: NewHandler(orch),
		mux:     http.NewServeMux(),
		version: opts.Version,
		origins: opts.AllowedOrigins,
		log:     logging.Named("api"),
	}

	s.registerRoutes()
	s.root = s.withRequestID(s.withLogging(s.withCORS(s.mux)))
	return s
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	// Pipeline endpoints
	s.mux.HandleFunc("POST /compare", s.guard("Comparison failed", s.handler.handleCompare))
	s.mux.HandleFunc("POST /api/parse-constraints", s.guard("Failed to parse constraints", s.handler.handleParseConstraints))
	s.mux.HandleFunc("POST /api/compare-options", s.guard("Failed to compare options", s.handler.handleCompareOptions))
	s.mux.HandleFunc("POST /api/analyze-tradeoffs", s.guard("Failed to analyze trade-offs", s.handler.handleAnalyzeTradeoffs))
	s.mux.HandleFunc("POST /api/get-guidance", s.guard("Failed to provide guidance", s.handler.handleGuidance))

	// Supporting endpoints
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)
}

// handleHealth handles GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// handleIndex handles GET /
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, IndexResponse{
		Message: "Tech Verdict API",
		Version: s.version,
		Endpoints: []string{
			"/api/parse-constraints",
			"/api/compare-options",
			"/api/analyze-tradeoffs",
			"/api/get-guidance",
		},
	}, http.StatusOK)
}

// guard turns a handler panic into a 500 with a fixed message
func (s *Server) guard(message string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.log.Error(message,
					zap.String("request_id", RequestIDFrom(r.Context())),
					zap.Any("panic", rec))
				writeError(w, message, http.StatusInternalServerError)
			}
		}()
		next(w, r)
	}
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.root.ServeHTTP(w, r)
}

// writeJSON encodes data before writing the status, so an encoding failure
// becomes a 500 instead of an empty 200.
func writeJSON(w http.ResponseWriter, data interface{}, status int) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		logging.Error("encoding response", zap.Error(err))
		buf.Reset()
		buf.WriteString(`{"error":"Failed to encode response"}` + "\n")
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, ErrorResponse{Error: message}, status)
}
