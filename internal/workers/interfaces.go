// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers under one cancellation context.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run is expected to block for the duration of the worker's work and to
// return when ctx is cancelled. A non-nil error means the worker stopped for
// a reason other than cancellation; the runner logs it and does not restart
// the worker.
type Worker interface {
	Run(ctx context.Context) error
}
