// Package config loads unicall configuration from a YAML file merged over
// built-in defaults, with environment variable fallbacks for credentials.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"github.com/pchaumet/unicall/llm"
	"gopkg.in/yaml.v3"
)

// OpenAIConfig holds credentials for the OpenAI provider.
type OpenAIConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// AnthropicConfig holds credentials for the Anthropic provider.
type AnthropicConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// GoogleConfig holds credentials for the Google Generative AI provider.
type GoogleConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// XAIConfig holds credentials for the xAI provider.
type XAIConfig struct {
	APIKey string `yaml:"api_key,omitempty"`
}

// Config is the unicall configuration.
type Config struct {
	// Default service and model used when flags don't override them.
	Service string `yaml:"service,omitempty"`
	Model   string `yaml:"model,omitempty"`

	OpenAI    OpenAIConfig    `yaml:"openai,omitempty"`
	Anthropic AnthropicConfig `yaml:"anthropic,omitempty"`
	Google    GoogleConfig    `yaml:"google,omitempty"`
	XAI       XAIConfig       `yaml:"xai,omitempty"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Service: llm.ServiceAristote.String(),
		Model:   "casperhansen/llama-3.3-70b-instruct-awq",
	}
}

// Path returns the config file path: UNICALL_CONFIG if set, otherwise
// ~/.config/unicall/config.yaml.
func Path() string {
	if envPath := os.Getenv("UNICALL_CONFIG"); envPath != "" {
		return envPath
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "unicall", "config.yaml")
}

// Load reads the YAML file at path and merges it over the defaults, with
// file values taking precedence. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	defaults := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := mergo.Merge(defaults, fileConfig, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge config: %w", err)
	}

	return defaults, nil
}

// APIKeyFor resolves the credential for a service: config file first, then
// the provider's conventional environment variable. Services that don't
// require a token resolve to the empty string.
func (c *Config) APIKeyFor(service llm.Service) string {
	switch service {
	case llm.ServiceOpenAI:
		return firstNonEmpty(c.OpenAI.APIKey, os.Getenv("OPENAI_API_KEY"))
	case llm.ServiceAnthropic:
		return firstNonEmpty(c.Anthropic.APIKey, os.Getenv("ANTHROPIC_API_KEY"))
	case llm.ServiceGoogle:
		return firstNonEmpty(c.Google.APIKey, os.Getenv("GOOGLE_API_KEY"))
	case llm.ServiceXAI:
		return firstNonEmpty(c.XAI.APIKey, os.Getenv("XAI_API_KEY"))
	default:
		return ""
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
