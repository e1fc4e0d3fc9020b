package llm

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/pkg/retry"
	openai "github.com/sashabaranov/go-openai"
)

// OpenAI talks to the OpenAI API through the official-style SDK client.
type OpenAI struct {
	client  *openai.Client
	retrier *retry.Retrier
	model   string
	opts    Options
}

// NewOpenAI creates a new OpenAI provider. An empty baseURL selects the
// public endpoint.
func NewOpenAI(apiKey, baseURL, model string, opts Options) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAI{
		client:  openai.NewClientWithConfig(cfg),
		retrier: retry.NewDefaultRetrier(),
		model:   model,
		opts:    opts,
	}
}

func (o *OpenAI) Chat(ctx context.Context, history []core.Message) (core.Message, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(history))
	for _, m := range history {
		messages = append(messages, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
	}

	req := openai.ChatCompletionRequest{
		Model:       o.model,
		Messages:    messages,
		Temperature: float32(o.opts.Temperature),
		MaxTokens:   o.opts.MaxTokens,
	}
	if o.opts.JSONMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	var resp openai.ChatCompletionResponse
	err := o.retrier.Do(ctx, func() error {
		var err error
		resp, err = o.client.CreateChatCompletion(ctx, req)
		if err != nil && !retryableOpenAIError(err) {
			return retry.Permanent(err)
		}
		return err
	})
	if err != nil {
		return core.Message{}, fmt.Errorf("openai chat: %w", err)
	}

	if len(resp.Choices) == 0 {
		return core.Message{}, errors.New("openai chat: empty choices")
	}
	return core.Message{
		Role:    core.RoleAssistant,
		Content: resp.Choices[0].Message.Content,
	}, nil
}

func retryableOpenAIError(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return retryableStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == 0 || retryableStatus(reqErr.HTTPStatusCode) || reqErr.HTTPStatusCode == http.StatusRequestTimeout
	}
	// transport failures carry no status
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
