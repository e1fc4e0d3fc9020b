package srv

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingService struct {
	name     string
	startErr error
	stopped  *[]string
}

func (r *recordingService) Start(ctx context.Context) error {
	if r.startErr != nil {
		return r.startErr
	}
	<-ctx.Done()
	return nil
}

func (r *recordingService) Shutdown(ctx context.Context) error {
	*r.stopped = append(*r.stopped, r.name)
	return nil
}

func TestShutdownServices_ReverseOrder(t *testing.T) {
	var stopped []string
	services := []Service{
		&recordingService{name: "db", stopped: &stopped},
		&recordingService{name: "http", stopped: &stopped},
	}

	ctx, cancel := context.WithCancel(context.Background())
	errs := StartServices(ctx, services)
	cancel()

	require.NoError(t, ShutdownServices(ctx, services, errs))
	assert.Equal(t, []string{"http", "db"}, stopped)
}

func TestShutdownServices_StartFailure(t *testing.T) {
	var stopped []string
	boom := errors.New("address in use")
	services := []Service{
		&recordingService{name: "db", stopped: &stopped},
		&recordingService{name: "http", startErr: boom, stopped: &stopped},
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	err := ShutdownServices(ctx, services, StartServices(ctx, services))
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"http", "db"}, stopped)
}

func TestCleanup_RunsFunc(t *testing.T) {
	called := false
	svc := NewCleanup(func() error {
		called = true
		return nil
	})

	require.NoError(t, svc.Start(context.Background()))
	assert.False(t, called)
	require.NoError(t, svc.Shutdown(context.Background()))
	assert.True(t, called)
}
