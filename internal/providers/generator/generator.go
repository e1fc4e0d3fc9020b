// Package generator adapts a chat-completion provider into a FactGenerator.
package generator

import (
	"context"
	"errors"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/sandevgo/factbot/internal/core"
	"github.com/sandevgo/factbot/internal/metrics"
	"github.com/sandevgo/factbot/pkg/log"
)

const breakerName = "llm-generator"

type Generator struct {
	provider core.AIProvider
	cb       *gobreaker.CircuitBreaker[core.Message]
}

type Config struct {
	// FailureThreshold is the number of consecutive provider failures that opens the circuit.
	FailureThreshold uint32
	// OpenTimeout is how long the circuit stays open before a trial request.
	OpenTimeout time.Duration
}

func DefaultConfig() Config {
	return Config{
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
	}
}

func New(ctx context.Context, provider core.AIProvider, cfg Config) *Generator {
	logger := log.FromCtx(ctx)
	metrics.CircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[core.Message](gobreaker.Settings{
		Name:         breakerName,
		MaxRequests:  1,
		Timeout:      cfg.OpenTimeout,
		IsSuccessful: callerGaveUp,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})

	return &Generator{
		provider: provider,
		cb:       cb,
	}
}

// Generate asks the provider for one candidate. Every failure yields the zero
// Candidate.
func (g *Generator) Generate(ctx context.Context, req core.GenerateRequest) core.Candidate {
	logger := log.FromCtx(ctx)
	started := time.Now()

	reply, err := g.cb.Execute(func() (core.Message, error) {
		return g.provider.Chat(ctx, buildMessages(req))
	})
	metrics.RecordGeneration(time.Since(started))

	if err != nil {
		result := "failure"
		switch {
		case errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests):
			result = "rejected"
		case callerGaveUp(err):
			result = "cancelled"
		}
		metrics.CircuitBreakerRequests.WithLabelValues(breakerName, result).Inc()
		logger.Warn().Err(err).Str("movie", req.MovieTitle).Msg("fact generation failed")
		return core.Candidate{}
	}
	metrics.CircuitBreakerRequests.WithLabelValues(breakerName, "success").Inc()

	c := parseCandidate(reply.Content)
	if c.Empty() {
		logger.Debug().Str("reply", reply.Content).Msg("unusable provider reply")
	}
	return c
}

// callerGaveUp keeps cancelled and timed out requests from counting as
// provider failures.
func callerGaveUp(err error) bool {
	return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
