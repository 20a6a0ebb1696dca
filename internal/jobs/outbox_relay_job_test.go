package jobs_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockRelayer struct{ mock.Mock }

func (m *MockRelayer) Handle(ctx context.Context, cmd commands.RelayOutboxCommand) (int, error) {
	args := m.Called(ctx, cmd)
	return args.Int(0), args.Error(1)
}

type MockObserver struct{ mock.Mock }

func (m *MockObserver) ObserveOutbox(err error) {
	m.Called(err)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func batchOf(size int) any {
	return mock.MatchedBy(func(cmd commands.RelayOutboxCommand) bool {
		return cmd.Validate() == nil && cmd.BatchSize() == size
	})
}

func TestOutboxRelayJob_RunOnce_CountsPublished(t *testing.T) {
	relayer := new(MockRelayer)
	observer := new(MockObserver)
	relayer.On("Handle", mock.Anything, batchOf(25)).Return(3, nil).Once()
	observer.On("ObserveOutbox", nil).Times(3)

	job := jobs.NewOutboxRelayJob(relayer, observer, jobs.OutboxRelayConfig{
		Schedule:  "* * * * * *",
		BatchSize: 25,
		Timeout:   time.Second,
	}, discardLogger())

	published := job.RunOnce(t.Context())

	assert.Equal(t, 3, published)
	relayer.AssertExpectations(t)
	observer.AssertExpectations(t)
}

func TestOutboxRelayJob_RunOnce_ObservesFailure(t *testing.T) {
	relayer := new(MockRelayer)
	observer := new(MockObserver)
	brokerDown := errors.New("broker down")
	relayer.On("Handle", mock.Anything, batchOf(10)).Return(1, brokerDown).Once()
	observer.On("ObserveOutbox", nil).Once()
	observer.On("ObserveOutbox", brokerDown).Once()

	job := jobs.NewOutboxRelayJob(relayer, observer, jobs.OutboxRelayConfig{
		Schedule:  "* * * * * *",
		BatchSize: 10,
	}, discardLogger())

	published := job.RunOnce(t.Context())

	assert.Equal(t, 1, published)
	relayer.AssertExpectations(t)
	observer.AssertExpectations(t)
}

func TestOutboxRelayJob_RunOnce_InvalidBatchSize(t *testing.T) {
	relayer := new(MockRelayer)
	observer := new(MockObserver)

	job := jobs.NewOutboxRelayJob(relayer, observer, jobs.OutboxRelayConfig{
		Schedule:  "* * * * * *",
		BatchSize: 0,
	}, discardLogger())

	assert.Zero(t, job.RunOnce(t.Context()))
	relayer.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestOutboxRelayJob_StartRejectsBadSchedule(t *testing.T) {
	job := jobs.NewOutboxRelayJob(new(MockRelayer), new(MockObserver), jobs.OutboxRelayConfig{
		Schedule:  "not a schedule",
		BatchSize: 10,
	}, discardLogger())

	require.Error(t, job.Start())
}

func TestJobManager_StartAndStop(t *testing.T) {
	relayer := new(MockRelayer)
	observer := new(MockObserver)
	relayer.On("Handle", mock.Anything, batchOf(10)).Return(0, nil).Maybe()

	manager := jobs.NewJobManager(relayer, observer, jobs.OutboxRelayConfig{
		Schedule:  "@every 1h",
		BatchSize: 10,
	}, discardLogger())

	require.NoError(t, manager.StartAll())
	manager.StopAll()
}
