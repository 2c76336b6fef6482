package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-user-service/internal/logger"
)

// workerFunc adapts a plain function to the Worker interface.
type workerFunc func(ctx context.Context) error

func (f workerFunc) Run(ctx context.Context) error {
	return f(ctx)
}

func TestWorkers_RunAndWait(t *testing.T) {
	var started atomic.Int32

	blockUntilCancelled := workerFunc(func(ctx context.Context) error {
		started.Add(1)
		<-ctx.Done()
		return ctx.Err()
	})

	runner := NewWorkers(logger.Nop(), blockUntilCancelled, blockUntilCancelled)

	ctx, cancel := context.WithCancel(context.Background())
	runner.Run(ctx)

	assert.Eventually(t, func() bool {
		return started.Load() == 2
	}, time.Second, 10*time.Millisecond)

	cancel()

	done := make(chan struct{})
	go func() {
		runner.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after context cancellation")
	}
}

func TestWorkers_FailingWorkerDoesNotBlockOthers(t *testing.T) {
	var finished atomic.Int32

	failing := workerFunc(func(ctx context.Context) error {
		finished.Add(1)
		return errors.New("broker unavailable")
	})
	succeeding := workerFunc(func(ctx context.Context) error {
		finished.Add(1)
		return nil
	})

	runner := NewWorkers(logger.Nop(), failing, succeeding)
	runner.Run(context.Background())
	runner.Wait()

	assert.Equal(t, int32(2), finished.Load())
}

func TestWorkers_NoWorkers(t *testing.T) {
	runner := NewWorkers(logger.Nop())
	runner.Run(context.Background())

	// Wait on an empty set returns immediately
	runner.Wait()
}
