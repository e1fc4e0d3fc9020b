package core

import "time"

type ProviderConfig interface {
	GetProvider() string
	GetModel() string
	GetOpenAIAPIKey() string
	GetOpenAIBaseURL() string
	GetAnthropicAPIKey() string
	GetOpenRouterAPIKey() string
	GetOllamaBaseURL() string
	GetOllamaAPIKey() string
	GetCustomOpenAIBaseURL() string
	GetCustomOpenAIAPIKey() string
}

type SelectionConfig interface {
	GetStoredCandidateLimit() int
	GetHistoryLimit() int
	GetGenerationAttempts() int
	GetMinConfidence() float64
}

type SessionConfig interface {
	GetSessionSecret() string
	GetSessionTTL() time.Duration
}
