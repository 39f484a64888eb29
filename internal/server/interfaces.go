package server

import "context"

// Server is the lifecycle contract of the gateway server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or SIGINT, SIGTERM or
	// SIGQUIT arrives, then shuts down gracefully. It returns a non-nil error
	// only when serving could not start or failed.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
