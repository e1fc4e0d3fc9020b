package llm

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/pkg/log"
)

var ErrMissingAPIKey = errors.New("missing api key")

// NewProvider creates the appropriate AIProvider based on configuration.
func NewProvider(ctx context.Context, cfg core.ProviderConfig, opts Options) (core.AIProvider, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.GetProvider()).
		Str("model", cfg.GetModel()).
		Msg("starting llm provider")

	switch cfg.GetProvider() {
	case "openai":
		if cfg.GetOpenAIAPIKey() == "" {
			return nil, fmt.Errorf("openai: %w", ErrMissingAPIKey)
		}
		return NewOpenAI(cfg.GetOpenAIAPIKey(), cfg.GetOpenAIBaseURL(), cfg.GetModel(), opts), nil
	case "anthropic":
		if cfg.GetAnthropicAPIKey() == "" {
			return nil, fmt.Errorf("anthropic: %w", ErrMissingAPIKey)
		}
		return NewAnthropic(cfg.GetAnthropicAPIKey(), cfg.GetModel(), opts), nil
	case "openrouter":
		if cfg.GetOpenRouterAPIKey() == "" {
			return nil, fmt.Errorf("openrouter: %w", ErrMissingAPIKey)
		}
		return NewOpenRouter(cfg.GetOpenRouterAPIKey(), cfg.GetModel(), opts), nil
	case "ollama":
		return NewOllama(cfg.GetOllamaBaseURL(), cfg.GetOllamaAPIKey(), cfg.GetModel(), opts), nil
	case "custom":
		if cfg.GetCustomOpenAIBaseURL() == "" {
			return nil, errors.New("custom: base url is required")
		}
		return NewCustomOpenAI(cfg.GetCustomOpenAIBaseURL(), cfg.GetCustomOpenAIAPIKey(), cfg.GetModel(), opts), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.GetProvider())
	}
}
