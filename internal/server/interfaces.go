package server

// Server defines the lifecycle contract of the relay server.
//
// RunServer blocks until a stop signal arrives and shutdown has completed.
// Shutdown may be called directly to stop a running server.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and drains detached work.
	Shutdown()
}
