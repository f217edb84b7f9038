package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pchaumet/unicall/llm"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service != llm.ServiceAristote.String() {
		t.Errorf("Expected default service, got %q", cfg.Service)
	}
	if cfg.Model == "" {
		t.Error("Expected a default model")
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "service: openai\nmodel: gpt-4o\nopenai:\n  api_key: file-key\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Service != "openai" {
		t.Errorf("Expected service override, got %q", cfg.Service)
	}
	if cfg.Model != "gpt-4o" {
		t.Errorf("Expected model override, got %q", cfg.Model)
	}
	if cfg.OpenAI.APIKey != "file-key" {
		t.Errorf("Expected API key from file, got %q", cfg.OpenAI.APIKey)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("service: [unclosed"), 0o600); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected error for malformed config")
	}
}

func TestAPIKeyFor_ConfigBeforeEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "env-key")
	cfg := DefaultConfig()
	cfg.Anthropic.APIKey = "config-key"
	if got := cfg.APIKeyFor(llm.ServiceAnthropic); got != "config-key" {
		t.Errorf("Expected config key to win, got %q", got)
	}
}

func TestAPIKeyFor_EnvFallback(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "env-key")
	cfg := DefaultConfig()
	if got := cfg.APIKeyFor(llm.ServiceOpenAI); got != "env-key" {
		t.Errorf("Expected env fallback, got %q", got)
	}
}

func TestAPIKeyFor_AristoteEmpty(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.APIKeyFor(llm.ServiceAristote); got != "" {
		t.Errorf("Expected empty key for Aristote, got %q", got)
	}
}

func TestPath_EnvOverride(t *testing.T) {
	t.Setenv("UNICALL_CONFIG", "/tmp/custom.yaml")
	if got := Path(); got != "/tmp/custom.yaml" {
		t.Errorf("Expected env override path, got %q", got)
	}
}
