package llm

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/sandevgo/factbot/pkg/retry"
)

// Options tune every completion a provider issues.
type Options struct {
	Temperature float64
	MaxTokens   int
	// JSONMode asks the backend for a bare JSON object where supported.
	JSONMode bool
}

func DefaultOptions() Options {
	return Options{
		Temperature: 0.7,
		MaxTokens:   400,
		JSONMode:    true,
	}
}

type baseProvider struct {
	client  *http.Client
	retrier *retry.Retrier
	baseURL string
	apiKey  string
	model   string
	opts    Options
}

func newBaseProvider(baseURL, apiKey, model string, opts Options) baseProvider {
	return baseProvider{
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
		retrier: retry.NewDefaultRetrier(),
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		opts:    opts,
	}
}

// postJSON sends body and returns the raw response payload of a 200 reply.
// Rate limits and server errors are retried; other statuses fail at once.
func (b *baseProvider) postJSON(ctx context.Context, path string, body any, headers map[string]string) ([]byte, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	var data []byte
	err = b.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return retry.Permanent(fmt.Errorf("create request: %w", err))
		}

		for k, v := range headers {
			req.Header.Set(k, v)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := b.client.Do(req)
		if err != nil {
			return fmt.Errorf("request: %w", err)
		}
		defer resp.Body.Close()

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			statusErr := fmt.Errorf("http %d: %s", resp.StatusCode, truncate(data, 512))
			if retryableStatus(resp.StatusCode) {
				return statusErr
			}
			return retry.Permanent(statusErr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func truncate(data []byte, n int) string {
	if len(data) <= n {
		return string(data)
	}
	return string(data[:n]) + "..."
}
