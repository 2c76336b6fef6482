package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-user-service/internal/logger"
)

type Workers struct {
	logger  *logger.Logger
	workers []Worker
	wg      sync.WaitGroup
}

func NewWorkers(logger *logger.Logger, workers ...Worker) *Workers {
	return &Workers{
		logger:  logger,
		workers: workers,
	}
}

// Run starts every worker in its own goroutine. Workers stop when ctx is
// cancelled; call [Workers.Wait] to block until they have all drained.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.wg.Add(1)
		go func(worker Worker) {
			defer w.wg.Done()

			if err := worker.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				w.logger.Err(err).Msg("worker stopped with error")
			}
		}(worker)
	}
}

// Wait blocks until every started worker has returned.
func (w *Workers) Wait() {
	w.wg.Wait()
}
