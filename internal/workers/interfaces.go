// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run must return promptly once ctx is done. Implementations either block
// for the duration of their work or spawn goroutines internally.
type Worker interface {
	Run(ctx context.Context)
}

// Refresher is anything whose cached state can be reloaded on demand.
type Refresher interface {
	Refresh(ctx context.Context) error
}
