package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until ctx is
// cancelled and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until ctx is cancelled
	// and the graceful shutdown has completed.
	RunServer(ctx context.Context)

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
