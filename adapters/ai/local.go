package ai

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/JexSrs/go-ollama"
	"go.uber.org/zap"

	tverrors "tech-verdict/internal/errors"
	"tech-verdict/internal/logging"
)

const systemPrompt = "You are a software architecture expert. Reply with JSON only."

// DefaultOllamaModel is used when no model is configured
const DefaultOllamaModel = "llama3"

// Local talks to an Ollama host when one is configured and echoes otherwise
type Local struct {
	client *ollama.Ollama
	model  string
	log    *zap.Logger
}

// NewLocal creates the local provider. An empty host yields the echo stub.
func NewLocal(host, model string) (*Local, error) {
	l := &Local{model: model, log: logging.Named("ai.local")}
	if l.model == "" {
		l.model = DefaultOllamaModel
	}
	if host == "" {
		return l, nil
	}

	u, err := url.Parse(host)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, tverrors.Config(fmt.Sprintf("invalid ollama host %q", host), err)
	}
	l.client = ollama.New(*u)
	l.log.Info("using ollama backend", zap.String("host", host), zap.String("model", l.model))
	return l, nil
}

// Name implements Provider
func (l *Local) Name() string {
	return "Local LLM"
}

// GenerateInsight implements Provider
func (l *Local) GenerateInsight(ctx context.Context, prompt string) (string, error) {
	if l.client == nil {
		return fmt.Sprintf("Local: %s...", preview(prompt)), nil
	}
	if err := ctx.Err(); err != nil {
		return "", tverrors.Provider("local", err)
	}

	res, err := l.client.Generate(
		l.client.Generate.WithModel(l.model),
		l.client.Generate.WithSystem(systemPrompt),
		l.client.Generate.WithPrompt(prompt),
	)
	if err != nil {
		return "", tverrors.Provider("local", err)
	}
	if !res.Done {
		return "", tverrors.Provider("local", fmt.Errorf("generation did not complete"))
	}
	if res.Response == "" {
		return "", tverrors.Provider("local", fmt.Errorf("empty response"))
	}

	l.log.Debug("ollama response received", zap.Int("chars", len(res.Response)))
	return strings.TrimSpace(res.Response), nil
}
