// Package workers provides the background jobs that keep the local cache
// fresh while the client is running.
// It defines the Worker interface and a Workers aggregate that starts and
// stops multiple workers in a unified way.
package workers

import "context"

// Worker is a background job with an explicit lifecycle. Start launches the
// job's goroutine and returns immediately; Stop blocks until the goroutine
// has fully exited. Both are safe to call repeatedly.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Start(ctx context.Context) {
//	    // launch background processing
//	}
//
//	func (w *MyWorker) Stop() {
//	    // wait for the goroutine to exit
//	}
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
