// Package deploy resolves where a project would be published on each
// supported platform.
package deploy

import (
	"context"
	"fmt"
	"strings"

	tverrors "tech-verdict/internal/errors"
)

// Config describes one deployment
type Config struct {
	ProjectName string `json:"projectName" yaml:"project_name"`
	Region      string `json:"region" yaml:"region"`
	Environment string `json:"environment" yaml:"environment"`
}

// Validate checks required fields
func (c Config) Validate() error {
	if strings.TrimSpace(c.ProjectName) == "" {
		return tverrors.Input("project name is required")
	}
	return nil
}

// Result is the outcome of a deployment
type Result struct {
	Success bool   `json:"success" yaml:"success"`
	URL     string `json:"url,omitempty" yaml:"url,omitempty"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Provider publishes a project
type Provider interface {
	Name() string
	Deploy(ctx context.Context, config Config) (Result, error)
}

// Provider names accepted by New
const (
	NameAWS    = "aws"
	NameGCP    = "gcp"
	NameVercel = "vercel"
)

// Names lists the registered providers
func Names() []string {
	return []string{NameAWS, NameGCP, NameVercel}
}

// New selects a provider by case-insensitive name. Unknown names fall back to AWS.
func New(name string) Provider {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameGCP:
		return GCP{}
	case NameVercel:
		return Vercel{}
	default:
		return AWS{}
	}
}

// AWS publishes to Lambda function URLs
type AWS struct{}

func (AWS) Name() string { return "AWS" }

func (AWS) Deploy(ctx context.Context, config Config) (Result, error) {
	return publish(ctx, config, func(c Config) string {
		return fmt.Sprintf("https://%s.lambda.%s.amazonaws.com", c.ProjectName, c.Region)
	})
}

// GCP publishes to Cloud Functions
type GCP struct{}

func (GCP) Name() string { return "GCP" }

func (GCP) Deploy(ctx context.Context, config Config) (Result, error) {
	return publish(ctx, config, func(c Config) string {
		return fmt.Sprintf("https://%s-%s.cloudfunctions.net", c.Region, c.ProjectName)
	})
}

// Vercel publishes to a vercel.app subdomain
type Vercel struct{}

func (Vercel) Name() string { return "Vercel" }

func (Vercel) Deploy(ctx context.Context, config Config) (Result, error) {
	return publish(ctx, config, func(c Config) string {
		return fmt.Sprintf("https://%s.vercel.app", c.ProjectName)
	})
}

func publish(ctx context.Context, config Config, url func(Config) string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{Success: false, Error: err.Error()}, err
	}
	if err := config.Validate(); err != nil {
		return Result{Success: false, Error: err.Error()}, err
	}
	return Result{Success: true, URL: url(config)}, nil
}
