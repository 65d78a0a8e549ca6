package jobs_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"orderdelivery/internal/core/application/usecases/commands"
	"orderdelivery/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxPublisher struct {
	mock.Mock
}

func (m *MockOutboxPublisher) Handle(ctx context.Context, cmd commands.PublishOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

func batchOf(size int) any {
	return mock.MatchedBy(func(cmd commands.PublishOutboxCommand) bool {
		return cmd.BatchSize() == size
	})
}

func TestOutboxRelayJob_RunOnce(t *testing.T) {
	handler := new(MockOutboxPublisher)
	handler.On("Handle", mock.Anything, batchOf(50)).Return(3, nil).Once()

	job := jobs.NewOutboxRelayJob(handler, 50, slog.New(slog.DiscardHandler))

	assert.Equal(t, 3, job.RunOnce(t.Context()))
	handler.AssertExpectations(t)
}

func TestOutboxRelayJob_RunOnce_HandlerError(t *testing.T) {
	handler := new(MockOutboxPublisher)
	handler.On("Handle", mock.Anything, mock.Anything).Return(0, errors.New("broker unavailable")).Once()

	job := jobs.NewOutboxRelayJob(handler, 50, slog.New(slog.DiscardHandler))

	assert.Zero(t, job.RunOnce(t.Context()))
}

func TestOutboxRelayJob_Start_InvalidBatchSize(t *testing.T) {
	handler := new(MockOutboxPublisher)
	job := jobs.NewOutboxRelayJob(handler, 0, slog.New(slog.DiscardHandler))

	require.Error(t, job.Start())
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestJobManager_RunsRelayUntilStopped(t *testing.T) {
	handler := new(MockOutboxPublisher)
	called := make(chan struct{}, 10)
	handler.On("Handle", mock.Anything, batchOf(10)).
		Run(func(mock.Arguments) { called <- struct{}{} }).
		Return(0, nil)

	manager := jobs.NewJobManager(handler, 10, slog.New(slog.DiscardHandler))
	require.NoError(t, manager.StartAll())

	select {
	case <-called:
	case <-time.After(3 * time.Second):
		t.Fatal("outbox relay did not run")
	}
	manager.StopAll()
}
