// Package workers provides the identity provider's background workers,
// currently the expired verification-attempt janitor.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to spawn their goroutines internally and
// return; workers with resources to release also expose a Stop method.
type Worker interface {
	Run()
}
