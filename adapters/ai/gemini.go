package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	tverrors "tech-verdict/internal/errors"
	"tech-verdict/internal/logging"

	"go.uber.org/zap"
)

// GeminiConfig configures the Gemini provider
type GeminiConfig struct {
	// APIKey for the hosted API; empty disables network calls
	APIKey string

	// Endpoint URL without the key parameter
	Endpoint string

	// Timeout for requests
	Timeout time.Duration
}

// Gemini calls the hosted Gemini generateContent API
type Gemini struct {
	config     GeminiConfig
	httpClient *http.Client
	log        *zap.Logger
}

// NewGemini creates a Gemini provider
func NewGemini(config GeminiConfig) *Gemini {
	if config.Endpoint == "" {
		config.Endpoint = DefaultGeminiEndpoint
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	return &Gemini{
		config:     config,
		httpClient: &http.Client{Timeout: config.Timeout},
		log:        logging.Named("ai.gemini"),
	}
}

// Name implements Provider
func (g *Gemini) Name() string {
	return "Gemini"
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateInsight implements Provider. Without an API key it echoes the prompt.
func (g *Gemini) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	if g.config.APIKey == "" {
		return fmt.Sprintf("Gemini: %s... (API key not configured)", preview(prompt)), nil
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}},
	})
	if err != nil {
		return "", tverrors.Provider("gemini", err)
	}

	endpoint := g.config.Endpoint + "?key=" + url.QueryEscape(g.config.APIKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", tverrors.Provider("gemini", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", tverrors.Provider("gemini", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		g.log.Warn("gemini request rejected", zap.Int("status", resp.StatusCode))
		return "", tverrors.Provider("gemini", fmt.Errorf("status %d: %s", resp.StatusCode, bytes.TrimSpace(msg)))
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", tverrors.Provider("gemini", err)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 ||
		decoded.Candidates[0].Content.Parts[0].Text == "" {
		return "No response from Gemini", nil
	}
	return decoded.Candidates[0].Content.Parts[0].Text, nil
}
