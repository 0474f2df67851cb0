package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AI.Provider != "gemini" {
		t.Errorf("expected default provider 'gemini', got %q", cfg.AI.Provider)
	}
	if cfg.Server.Addr != ":3000" {
		t.Errorf("expected default addr ':3000', got %q", cfg.Server.Addr)
	}
}

func TestLoadFileOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tech-verdict.json")
	body := `{
  "ai": {"provider": "local", "ollama_host": "http://localhost:11434"},
  "knowledge": {"catalog_path": "catalog.hcl"},
  "logging": {"level": "debug"}
}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AI.Provider != "local" {
		t.Errorf("expected provider 'local', got %q", cfg.AI.Provider)
	}
	if cfg.AI.OllamaModel != "llama3" {
		t.Errorf("expected default ollama model to survive, got %q", cfg.AI.OllamaModel)
	}
	if cfg.Knowledge.CatalogPath != "catalog.hcl" {
		t.Errorf("expected catalog path, got %q", cfg.Knowledge.CatalogPath)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "console" {
		t.Errorf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("AI_PROVIDER", "claude")
	t.Setenv("GEMINI_API_KEY", "secret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AI.Provider != "claude" {
		t.Errorf("expected provider from AI_PROVIDER, got %q", cfg.AI.Provider)
	}
	if cfg.AI.GeminiAPIKey != "secret" {
		t.Errorf("expected key from GEMINI_API_KEY")
	}
	if cfg.Redacted().AI.GeminiAPIKey == "secret" {
		t.Error("Redacted must hide the API key")
	}
	if cfg.AI.GeminiAPIKey != "secret" {
		t.Error("Redacted must not modify the original")
	}
}

func TestLoadPrefixedEnvironmentForEveryKey(t *testing.T) {
	t.Setenv("TECH_VERDICT_KNOWLEDGE_CATALOG_PATH", "/etc/tech-verdict/catalog.hcl")
	t.Setenv("TECH_VERDICT_OUTPUT_DEFAULT_FORMAT", "markdown")
	t.Setenv("TECH_VERDICT_SERVER_COMPRESS", "false")
	t.Setenv("TECH_VERDICT_SERVER_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")
	t.Setenv("TECH_VERDICT_AI_PROVIDER", "local")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Knowledge.CatalogPath != "/etc/tech-verdict/catalog.hcl" {
		t.Errorf("catalog path = %q", cfg.Knowledge.CatalogPath)
	}
	if cfg.Output.DefaultFormat != "markdown" {
		t.Errorf("default format = %q", cfg.Output.DefaultFormat)
	}
	if cfg.Server.Compress {
		t.Error("expected compress disabled")
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "https://b.example.com" {
		t.Errorf("allowed origins = %v", cfg.Server.AllowedOrigins)
	}
	if cfg.AI.Provider != "local" {
		t.Errorf("provider = %q", cfg.AI.Provider)
	}
	if cfg.Deployment.Region != "us-east-1" {
		t.Errorf("unset keys keep defaults, region = %q", cfg.Deployment.Region)
	}
}

func TestLoadHistoricalVariableWins(t *testing.T) {
	t.Setenv("AI_PROVIDER", "claude")
	t.Setenv("TECH_VERDICT_AI_PROVIDER", "local")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.AI.Provider != "claude" {
		t.Errorf("expected AI_PROVIDER to win, got %q", cfg.AI.Provider)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	cfg.Deployment.Provider = "vercel"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Deployment.Provider != "vercel" {
		t.Errorf("expected provider 'vercel', got %q", loaded.Deployment.Provider)
	}
}
