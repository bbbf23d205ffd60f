package ports

// Frontend defines the interface for the user-facing surfaces of the inbox
type Frontend interface {
	// Start starts the frontend
	Start() error

	// Stop stops the frontend
	Stop() error
}

// Finisher is implemented by frontends that run to completion on their own
type Finisher interface {
	// Done is closed once the frontend has finished its work
	Done() <-chan struct{}

	// Err returns the error the frontend finished with
	Err() error
}
