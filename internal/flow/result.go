package flow

// Result is the two-variant outcome of a gateway operation: either a success
// value or a failure cause, never both. A Result is immutable once constructed.
// Gateway operations are the only producers; flow action handlers are the
// consumers and must handle both variants.
type Result[T any] struct {
	value T
	cause error
}

// Success constructs the success variant carrying value.
func Success[T any](value T) Result[T] {
	return Result[T]{value: value}
}

// Failure constructs the failure variant carrying cause.
func Failure[T any](cause error) Result[T] {
	return Result[T]{cause: cause}
}

// Failed reports whether the Result is the failure variant.
func (r Result[T]) Failed() bool {
	return r.cause != nil
}

// Value returns the success payload. For a failure it returns the zero value.
func (r Result[T]) Value() T {
	return r.value
}

// Cause returns the failure cause, or nil for a success.
func (r Result[T]) Cause() error {
	return r.cause
}

// Description returns the human-readable message of the failure cause.
// For a success, or a failure with a nil cause, it returns an empty string.
func (r Result[T]) Description() string {
	if r.cause == nil {
		return ""
	}
	return r.cause.Error()
}
