// Package workers groups the background jobs of the client so they can be
// started and stopped together.
package workers

import "context"

// Worker is a background job bound to a context.
//
// Start must not block; the job runs in its own goroutine until Stop is
// called or ctx is cancelled. Stop waits for the goroutine to exit.
//
// Example implementation:
//
//	type pollWorker struct{ cancel context.CancelFunc }
//
//	func (w *pollWorker) Start(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go poll(ctx)
//	}
//
//	func (w *pollWorker) Stop() { w.cancel() }
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
