package server

import "context"

// Server defines the lifecycle contract of the HTTP server managed by this
// package.
type Server interface {
	// Listen binds the listening socket without serving yet.
	Listen() error

	// URL returns the base URL of the bound socket, or "" before Listen.
	URL() string

	// Run serves requests and blocks until ctx is done or a stop signal
	// arrives, then shuts down gracefully.
	Run(ctx context.Context) error

	// Shutdown gracefully stops the server within the configured timeout.
	Shutdown() error
}
