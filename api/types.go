// Package api - HTTP request and response types.
// Pipeline result types are served as-is from the core packages.
package api

// CompareRequest is the input to POST /compare
type CompareRequest struct {
	// Constraints is free-text requirements
	Constraints string `json:"constraints"`

	// Options lists technology names, at least two
	Options []string `json:"options"`
}

// CompareOptionsRequest is the input to POST /api/compare-options
type CompareOptionsRequest struct {
	Options []string `json:"options"`

	// Constraints are optional structured hints passed to the AI prompt
	Constraints map[string]interface{} `json:"constraints,omitempty"`
}

// AnalyzeRequest is the input to POST /api/analyze-tradeoffs
type AnalyzeRequest struct {
	Option string `json:"option"`
}

// GuidanceRequest is the input to POST /api/get-guidance. Both fields are optional.
type GuidanceRequest struct {
	Constraints string   `json:"constraints,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// IndexResponse is served at GET /
type IndexResponse struct {
	Message   string   `json:"message"`
	Version   string   `json:"version"`
	Endpoints []string `json:"endpoints"`
}

// HealthResponse is served at GET /health
type HealthResponse struct {
	Status string `json:"status"`
}

// ErrorResponse is the body of every 4xx/5xx response
type ErrorResponse struct {
	Error string `json:"error"`
}
