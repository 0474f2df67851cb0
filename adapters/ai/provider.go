// Package ai provides the text-generation providers behind the AI-assisted
// endpoints. Providers are selected by name from configuration.
package ai

import (
	"context"
	"strings"
	"time"
)

// Provider generates free text for a prompt
type Provider interface {
	// Name returns the display name of the provider
	Name() string

	// GenerateInsight returns the model's reply to prompt
	GenerateInsight(ctx context.Context, prompt string) (string, error)
}

// Provider names accepted by New
const (
	NameGemini = "gemini"
	NameClaude = "claude"
	NameLocal  = "local"
)

// DefaultGeminiEndpoint is the hosted generateContent URL
const DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent"

// Config carries the settings every provider may need
type Config struct {
	// GeminiAPIKey enables real Gemini calls
	GeminiAPIKey string

	// GeminiEndpoint overrides the hosted endpoint
	GeminiEndpoint string

	// OllamaHost enables the local provider's Ollama backend
	OllamaHost string

	// OllamaModel is the model the local provider asks for
	OllamaModel string

	// Timeout for HTTP requests
	Timeout time.Duration
}

// New selects a provider by case-insensitive name. Unknown names fall back to Gemini.
func New(name string, cfg Config) (Provider, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameClaude:
		return NewClaude(), nil
	case NameLocal:
		l, err := NewLocal(cfg.OllamaHost, cfg.OllamaModel)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return NewGemini(GeminiConfig{
			APIKey:   cfg.GeminiAPIKey,
			Endpoint: cfg.GeminiEndpoint,
			Timeout:  cfg.Timeout,
		}), nil
	}
}

// previewLen is how much of the prompt the echo providers repeat
const previewLen = 50

// preview returns the first previewLen runes of prompt
func preview(prompt string) string {
	r := []rune(prompt)
	if len(r) > previewLen {
		r = r[:previewLen]
	}
	return string(r)
}
