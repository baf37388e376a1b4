// Package workers provides abstractions for managing and running
// background workers in the tool.
// It defines the Worker interface, a Workers aggregate that allows
// running multiple workers in a unified way, and the periodic Job
// used by watch mode.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that executes one pass of the worker's work.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run() {
//	    // perform one pass
//	}
type Worker interface {
	Run()
}

// Job is a Worker that can additionally run its pass on a ticker until
// stopped.
type Job interface {
	Worker

	// Start launches a background goroutine that executes the pass every
	// interval. Calling Start again restarts the schedule. The goroutine
	// exits when ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the background goroutine and blocks until it has
	// exited. Safe to call when the job is not running.
	Stop()
}
