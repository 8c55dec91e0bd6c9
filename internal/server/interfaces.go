package server

// Server is the lifecycle contract for the transport servers this package
// manages. RunServer blocks until the process is asked to stop; Shutdown
// drains in-flight requests and releases the listener.
type Server interface {
	RunServer()
	Shutdown()
}
