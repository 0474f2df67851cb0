package ai

import (
	"context"
	"fmt"
)

// Claude is an echo stub
type Claude struct{}

// NewClaude creates the Claude stub
func NewClaude() *Claude {
	return &Claude{}
}

// Name implements Provider
func (c *Claude) Name() string {
	return "Claude"
}

// GenerateInsight echoes the start of the prompt
func (c *Claude) GenerateInsight(_ context.Context, prompt string) (string, error) {
	return fmt.Sprintf("Claude: %s...", preview(prompt)), nil
}
