// Package config provides YAML-based configuration for the backend.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server ServerConfig `yaml:"server"`
	AI     AIConfig     `yaml:"ai"`
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port         int    `yaml:"port"`
	BindAddress  string `yaml:"bind_address"`
	EnableCORS   bool   `yaml:"enable_cors"`
	AllowOrigins string `yaml:"allow_origins"`
	ReadTimeout  int    `yaml:"read_timeout_seconds"`
	WriteTimeout int    `yaml:"write_timeout_seconds"`
	IdleTimeout  int    `yaml:"idle_timeout_seconds"`
	BodyLimit    string `yaml:"body_limit"`
}

// AIConfig contains completion-service settings. The API key itself is
// never stored in the file; only the name of the env var that holds it.
type AIConfig struct {
	BaseURL        string  `yaml:"base_url"`
	APIKeyEnv      string  `yaml:"api_key_env"`
	Model          string  `yaml:"model"`
	MaxTokens      int     `yaml:"max_tokens"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	Referer        string  `yaml:"referer"`
	Title          string  `yaml:"title"`
}

// SearchConfig contains ranking and context-assembly settings.
type SearchConfig struct {
	MaxContextDocs int `yaml:"max_context_docs"`
	MaxDisplayDocs int `yaml:"max_display_docs"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level                string `yaml:"level"`
	EnableRequestLogging bool   `yaml:"enable_request_logging"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8000,
			BindAddress:  "0.0.0.0",
			EnableCORS:   true,
			AllowOrigins: "*",
			ReadTimeout:  60,
			WriteTimeout: 60,
			IdleTimeout:  120,
			BodyLimit:    "32M",
		},
		AI: AIConfig{
			BaseURL:        "https://openrouter.ai/api/v1",
			APIKeyEnv:      "OPENROUTER_API_KEY",
			Model:          "meta-llama/llama-3.2-3b-instruct:free",
			MaxTokens:      1000,
			Temperature:    0.7,
			TimeoutSeconds: 30,
			Referer:        "http://localhost:8000",
			Title:          "Manufacturing Maintenance Agent",
		},
		Search: SearchConfig{
			MaxContextDocs: 2,
			MaxDisplayDocs: 3,
		},
		Log: LogConfig{
			Level:                "info",
			EnableRequestLogging: true,
		},
	}
}

// LoadConfig loads configuration from a YAML file. A missing file is
// not an error; defaults apply, with environment overrides on top.
func LoadConfig(configPath string) (*AppConfig, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvironmentOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()
	return cfg, nil
}

// applyEnvironmentOverrides allows environment variables to override
// file values.
func (c *AppConfig) applyEnvironmentOverrides() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}
	if model := os.Getenv("AI_MODEL"); model != "" {
		c.AI.Model = model
	}
	if base := os.Getenv("AI_BASE_URL"); base != "" {
		c.AI.BaseURL = base
	}
}

// APIKey reads the completion-service credential from the configured
// environment variable. An empty result means degraded mode.
func (c *AppConfig) APIKey() string {
	return os.Getenv(c.AI.APIKeyEnv)
}

// GetServerAddr returns the server bind address.
func (c *AppConfig) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.BindAddress, c.Server.Port)
}
