// Package api - HTTP handlers for the decision pipeline.
// Handlers decode and validate input; all logic is delegated to the orchestrator.
package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"tech-verdict/core/orchestrator"
	tverrors "tech-verdict/internal/errors"
)

// maxBodyBytes bounds request bodies
const maxBodyBytes = 1 << 20

// Handler serves pipeline requests
type Handler struct {
	orch *orchestrator.Orchestrator
}

// NewHandler creates a new handler
func NewHandler(orch *orchestrator.Orchestrator) *Handler {
	if orch == nil {
		orch = orchestrator.New(nil, nil)
	}
	return &Handler{orch: orch}
}

// handleCompare handles POST /compare
func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Constraints) == "" || len(req.Options) < 2 {
		writeError(w, "Missing constraints or options", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.orch.Orchestrate(req.Constraints, req.Options), http.StatusOK)
}

// handleParseConstraints handles POST /api/parse-constraints
func (h *Handler) handleParseConstraints(w http.ResponseWriter, r *http.Request) {
	var raw map[string]interface{}
	if err := decodeBody(r, &raw, true); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.orch.ParseConstraintsWithAI(r.Context(), raw)
	if err != nil {
		writeError(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, result, http.StatusOK)
}

// handleCompareOptions handles POST /api/compare-options
func (h *Handler) handleCompareOptions(w http.ResponseWriter, r *http.Request) {
	var req CompareOptionsRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if len(req.Options) == 0 {
		writeError(w, "Missing options", http.StatusBadRequest)
		return
	}

	result, err := h.orch.CompareOptionsWithAI(r.Context(), req.Constraints, req.Options)
	if err != nil {
		writeError(w, err.Error(), statusFor(err))
		return
	}
	writeJSON(w, result, http.StatusOK)
}

// handleAnalyzeTradeoffs handles POST /api/analyze-tradeoffs
func (h *Handler) handleAnalyzeTradeoffs(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Option) == "" {
		writeError(w, "Missing option", http.StatusBadRequest)
		return
	}

	writeJSON(w, h.orch.AnalyzeOption(req.Option), http.StatusOK)
}

// handleGuidance handles POST /api/get-guidance
func (h *Handler) handleGuidance(w http.ResponseWriter, r *http.Request) {
	var req GuidanceRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, h.orch.Guidance(req.Constraints, req.Options), http.StatusOK)
}

// decodeBody reads a JSON body into v. An empty body is accepted when optional.
func decodeBody(r *http.Request, v interface{}, optional bool) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) && optional {
			return nil
		}
		if errors.Is(err, io.EOF) {
			return tverrors.Input("request body is required")
		}
		return tverrors.Wrap(tverrors.TypeInput, "invalid JSON body", err)
	}
	return nil
}

// statusFor maps error types to HTTP status codes
func statusFor(err error) int {
	switch tverrors.TypeOf(err) {
	case tverrors.TypeInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
