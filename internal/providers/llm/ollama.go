package llm

type Ollama struct {
	*OpenAICompatible
}

// NewOllama uses the OpenAI-compatible endpoint Ollama serves under /v1.
func NewOllama(baseURL, apiKey, model string, opts Options) *Ollama {
	return &Ollama{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:    baseURL,
			APIKey:     apiKey,
			Model:      model,
			AuthHeader: "Authorization",
			AuthPrefix: "Bearer ",
			Options:    opts,
		}),
	}
}
