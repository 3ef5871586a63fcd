package server

// Server runs the identity provider's transports. RunServer blocks until a
// shutdown signal arrives, Shutdown stops serving and releases resources.
type Server interface {
	RunServer()
	Shutdown()
}
