// Package server manages the lifecycle of the application's transport
// servers: construction from configuration, startup, and graceful shutdown
// driven by context cancellation.
package server
