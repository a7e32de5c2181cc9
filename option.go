package iterview

import (
	"iter"
)

// Some returns an Option holding v.
func Some[T any](v T) Option[T] { return Option[T]{value: v, ok: true} }

// None returns the absent Option.
func None[T any]() Option[T] { return Option[T]{} }

// Option is an optional value container.
// Its traversal yields a pointer to the held value when present,
// and completes immediately when absent.
type Option[T any] struct {
	value T
	ok    bool
}

func (o Option[T]) IsSome() bool { return o.ok }

func (o Option[T]) IsNone() bool { return !o.ok }

// Lookup returns the held value and whether it is present.
func (o Option[T]) Lookup() (T, bool) { return o.value, o.ok }

// Get returns the held value, or the zero value when absent.
func (o Option[T]) Get() T { return o.value }

func (o *Option[T]) Iter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if !o.ok {
			return
		}
		yield(&o.value)
	}
}
