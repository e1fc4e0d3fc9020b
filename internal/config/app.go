package config

import (
	"fmt"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

type AppConfig struct {
	RuntimePath  string `env:"FACTBOT_RUNTIME_PATH" envDefault:".factbot"`
	DatabaseFile string `env:"FACTBOT_DATABASE_FILE" envDefault:"factbot.db"`

	Provider ProviderConfig
	Server   ServerConfig
	Select   SelectionConfig
}

// ProviderConfig selects the chat-completion backend used for fact generation.
type ProviderConfig struct {
	Provider string `env:"LLM_PROVIDER" envDefault:"openai" validate:"oneof=openai anthropic openrouter ollama custom"`
	Model    string `env:"LLM_MODEL" envDefault:"gpt-4o-mini" validate:"required"`

	OpenAIAPIKey        string `env:"OPENAI_API_KEY" mask:"true"`
	OpenAIBaseURL       string `env:"OPENAI_BASE_URL"`
	AnthropicAPIKey     string `env:"ANTHROPIC_API_KEY" mask:"true"`
	OpenRouterAPIKey    string `env:"OPENROUTER_API_KEY" mask:"true"`
	OllamaBaseURL       string `env:"OLLAMA_BASE_URL" envDefault:"http://localhost:11434"`
	OllamaAPIKey        string `env:"OLLAMA_API_KEY" mask:"true"`
	CustomOpenAIBaseURL string `env:"CUSTOM_OPENAI_BASE_URL"`
	CustomOpenAIAPIKey  string `env:"CUSTOM_OPENAI_API_KEY" mask:"true"`
}

// NewAppConfig parses the environment and validates every group.
func NewAppConfig() (*AppConfig, error) {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if !filepath.IsAbs(c.RuntimePath) {
		c.RuntimePath = GetRuntimePath()
	}
	if err := Validate(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	if filepath.IsAbs(c.DatabaseFile) {
		return c.DatabaseFile
	}
	return filepath.Join(c.RuntimePath, c.DatabaseFile)
}

func (c AppConfig) GetEnvPath() string {
	return filepath.Join(c.RuntimePath, ".env")
}

func (p ProviderConfig) GetProvider() string            { return p.Provider }
func (p ProviderConfig) GetModel() string               { return p.Model }
func (p ProviderConfig) GetOpenAIAPIKey() string        { return p.OpenAIAPIKey }
func (p ProviderConfig) GetOpenAIBaseURL() string       { return p.OpenAIBaseURL }
func (p ProviderConfig) GetAnthropicAPIKey() string     { return p.AnthropicAPIKey }
func (p ProviderConfig) GetOpenRouterAPIKey() string    { return p.OpenRouterAPIKey }
func (p ProviderConfig) GetOllamaBaseURL() string       { return p.OllamaBaseURL }
func (p ProviderConfig) GetOllamaAPIKey() string        { return p.OllamaAPIKey }
func (p ProviderConfig) GetCustomOpenAIBaseURL() string { return p.CustomOpenAIBaseURL }
func (p ProviderConfig) GetCustomOpenAIAPIKey() string  { return p.CustomOpenAIAPIKey }
