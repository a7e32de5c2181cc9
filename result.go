package iterview

import (
	"iter"

	"github.com/redforks/iter-view/consterror"
)

// OK returns a Result holding the success value v.
func OK[T any](v T) Result[T] { return Result[T]{value: v} }

// Failure returns a Result representing a failure.
func Failure[T any](err error) Result[T] {
	if err == nil {
		err = errFailure
	}
	return Result[T]{err: err}
}

const errFailure consterror.Error = "iterview: failure"

// Result is a success or failure container.
// Its traversal yields a pointer to the success value,
// and completes immediately on failure, whatever the failure payload is.
type Result[T any] struct {
	value T
	err   error
}

func (r Result[T]) IsOK() bool { return r.err == nil }

// Lookup returns the success value and whether the result is a success.
func (r Result[T]) Lookup() (T, bool) { return r.value, r.err == nil }

// Get returns the success value, or the zero value on failure.
func (r Result[T]) Get() T { return r.value }

// Err returns the failure payload, or nil for a success.
func (r Result[T]) Err() error { return r.err }

func (r *Result[T]) Iter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if r.err != nil {
			return
		}
		yield(&r.value)
	}
}
