package iterview

import (
	"iter"
)

// Boxed wraps an owned indirection around a Viewer.
// The box delegates the capability entirely to the inner value:
// its traversals and element type are the inner value's own.
func Boxed[V any](inner Viewer[V]) Box[V] { return Box[V]{Inner: inner} }

// Box is a forwarding decorator over a Viewer.
type Box[V any] struct {
	Inner Viewer[V]
}

func (b Box[V]) Iter() iter.Seq[V] {
	if b.Inner == nil {
		return Empty[V]().Iter()
	}
	return b.Inner.Iter()
}

// Boxed2 is the pairwise variant of Boxed.
func Boxed2[K, V any](inner Viewer2[K, V]) Box2[K, V] { return Box2[K, V]{Inner: inner} }

// Box2 is a forwarding decorator over a Viewer2.
type Box2[K, V any] struct {
	Inner Viewer2[K, V]
}

func (b Box2[K, V]) Iter() iter.Seq2[K, V] {
	if b.Inner == nil {
		return Empty2[K, V]().Iter()
	}
	return b.Inner.Iter()
}
