// Package config provides configuration management.
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	tverrors "tech-verdict/internal/errors"
	"tech-verdict/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version" mapstructure:"version" yaml:"version"`

	// Server contains HTTP server configuration
	Server ServerConfig `json:"server" mapstructure:"server" yaml:"server"`

	// AI selects and configures the insight provider
	AI AIConfig `json:"ai" mapstructure:"ai" yaml:"ai"`

	// Knowledge configures the technology catalog
	Knowledge KnowledgeConfig `json:"knowledge" mapstructure:"knowledge" yaml:"knowledge"`

	// Deployment selects the deployment provider
	Deployment DeploymentConfig `json:"deployment" mapstructure:"deployment" yaml:"deployment"`

	// Output contains output configuration
	Output OutputConfig `json:"output" mapstructure:"output" yaml:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging" mapstructure:"logging" yaml:"logging"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	// Addr is the listen address
	Addr string `json:"addr" mapstructure:"addr" yaml:"addr"`

	// AllowedOrigins enables CORS for the listed origins
	AllowedOrigins []string `json:"allowed_origins" mapstructure:"allowed_origins" yaml:"allowed_origins"`

	// Compress enables gzip response compression
	Compress bool `json:"compress" mapstructure:"compress" yaml:"compress"`
}

// AIConfig contains AI provider settings
type AIConfig struct {
	// Provider is one of gemini, claude, local
	Provider string `json:"provider" mapstructure:"provider" yaml:"provider"`

	// GeminiAPIKey enables real Gemini calls
	GeminiAPIKey string `json:"gemini_api_key,omitempty" mapstructure:"gemini_api_key" yaml:"gemini_api_key,omitempty"`

	// GeminiEndpoint is the generateContent URL without the key parameter
	GeminiEndpoint string `json:"gemini_endpoint" mapstructure:"gemini_endpoint" yaml:"gemini_endpoint"`

	// OllamaHost enables the local provider to call an Ollama server
	OllamaHost string `json:"ollama_host,omitempty" mapstructure:"ollama_host" yaml:"ollama_host,omitempty"`

	// OllamaModel is the model used on the Ollama host
	OllamaModel string `json:"ollama_model" mapstructure:"ollama_model" yaml:"ollama_model"`
}

// KnowledgeConfig contains knowledge base settings
type KnowledgeConfig struct {
	// CatalogPath is an optional HCL or JSON catalog merged over the built-in table
	CatalogPath string `json:"catalog_path,omitempty" mapstructure:"catalog_path" yaml:"catalog_path,omitempty"`
}

// DeploymentConfig contains deployment provider settings
type DeploymentConfig struct {
	// Provider is one of aws, gcp, vercel
	Provider string `json:"provider" mapstructure:"provider" yaml:"provider"`

	// Region is the default region
	Region string `json:"region" mapstructure:"region" yaml:"region"`

	// Environment is the default environment name
	Environment string `json:"environment" mapstructure:"environment" yaml:"environment"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default CLI output format
	DefaultFormat string `json:"default_format" mapstructure:"default_format" yaml:"default_format"`

	// ShowDecisionPath appends the decision path report
	ShowDecisionPath bool `json:"show_decision_path" mapstructure:"show_decision_path" yaml:"show_decision_path"`

	// NoColor disables ANSI colors
	NoColor bool `json:"no_color" mapstructure:"no_color" yaml:"no_color"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Server: ServerConfig{
			Addr:     ":3000",
			Compress: true,
		},
		AI: AIConfig{
			Provider:       "gemini",
			GeminiEndpoint: "https://generativelanguage.googleapis.com/v1beta/models/gemini-pro:generateContent",
			OllamaModel:    "llama3",
		},
		Deployment: DeploymentConfig{
			Provider:    "aws",
			Region:      "us-east-1",
			Environment: "production",
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
		},
		Logging: logging.DefaultConfig(),
	}
}

// envBindings maps config keys to the environment variables the service has always read.
var envBindings = map[string]string{
	"ai.provider":       "AI_PROVIDER",
	"ai.gemini_api_key": "GEMINI_API_KEY",
	"ai.ollama_host":    "OLLAMA_HOST",
	"server.addr":       "TECH_VERDICT_ADDR",
	"logging.level":     "TECH_VERDICT_LOG_LEVEL",
}

const envPrefix = "TECH_VERDICT"

// bindEnv registers every mapstructure key of t so Unmarshal sees
// TECH_VERDICT_<SECTION>_<KEY> even when no file sets the key.
// Keys in envBindings also honor their historical variable, which wins.
func bindEnv(v *viper.Viper, t reflect.Type, prefix string) error {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("mapstructure"), ",")
		if name == "" || name == "-" {
			continue
		}
		key := prefix + name
		if f.Type.Kind() == reflect.Struct {
			if err := bindEnv(v, f.Type, key+"."); err != nil {
				return err
			}
			continue
		}

		prefixed := envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		names := []string{key, prefixed}
		if legacy, ok := envBindings[key]; ok && legacy != prefixed {
			names = []string{key, legacy, prefixed}
		}
		if err := v.BindEnv(names...); err != nil {
			return tverrors.Config("binding "+prefixed, err)
		}
	}
	return nil
}

// Load loads configuration from a file and the environment.
// An empty path or a missing file yields defaults plus environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindEnv(v, reflect.TypeOf(Config{}), ""); err != nil {
		return nil, err
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, tverrors.Config("reading "+path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, tverrors.Config("stat "+path, err)
		}
	}

	config := Default()
	if err := v.Unmarshal(config); err != nil {
		return nil, tverrors.Config("decoding configuration", err)
	}

	return config, nil
}

// Save saves configuration to a file as YAML
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() *Config {
	cp := *c
	if cp.AI.GeminiAPIKey != "" {
		cp.AI.GeminiAPIKey = "********"
	}
	return &cp
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}
