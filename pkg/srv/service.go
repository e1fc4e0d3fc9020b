package srv

import (
	"context"
	"fmt"
	"time"

	"github.com/sandevgo/factbot/pkg/log"
)

const defaultShutdownTimeout = 10 * time.Second

type Service interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// StartServices launches every service in its own goroutine. Start errors are
// delivered on the returned channel, which is buffered for all services.
func StartServices(ctx context.Context, services []Service) <-chan error {
	logger := log.FromCtx(ctx)
	errs := make(chan error, len(services))
	for _, service := range services {
		go func(service Service) {
			if err := service.Start(ctx); err != nil {
				logger.Error().Err(err).Msgf("%T failed to start", service)
				errs <- fmt.Errorf("%T: %w", service, err)
			}
		}(service)
	}
	return errs
}

// ShutdownServices blocks until ctx is done or a service fails to start, then
// stops services in reverse order so storage outlives its consumers.
func ShutdownServices(ctx context.Context, services []Service, errs <-chan error) error {
	var startErr error
	select {
	case <-ctx.Done():
	case startErr = <-errs:
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defaultShutdownTimeout)
	defer cancel()

	for i := len(services) - 1; i >= 0; i-- {
		if err := services[i].Shutdown(shutdownCtx); err != nil {
			log.FromCtx(ctx).Error().Err(err).Msgf("%T failed to shutdown", services[i])
		}
	}
	return startErr
}
