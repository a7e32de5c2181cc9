// Package iterview provides a capability for producing read-only traversals
// over a value's elements without taking ownership of the value.
//
// # Summary
//
// Go's iter.Seq is a re-invocable sequence, but it does not by itself name
// the relationship between a container and the traversal it can produce.
// A function that only holds read access to a container, and that needs to
// walk its elements repeatedly, has no common vocabulary to program against.
// The Viewer capability fills this gap: a Viewer can hand out any number of
// fresh traversals, each positioned at the first element, while the value
// itself stays untouched and usable.
//
// A traversal borrows from the value it was created from and is expected
// not to outlive it. This is a convention documented here rather than a
// guarantee the type system can enforce; the caller must also refrain from
// mutating the source while one of its traversals is in use.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
package iterview

import (
	"iter"
)

// Viewer is the capability of producing a fresh read-only traversal of the
// implementer's elements. Calling Iter multiple times on the same value is
// valid, has no side effect on the value, and each call yields an
// independent traversal starting at the first element. A value with zero
// elements returns a traversal that completes immediately.
//
// Implementations that yield pointer elements grant inspection of the
// original element storage; the pointee must not be modified through them.
type Viewer[V any] interface {
	// Iter returns a new traversal over the value's elements.
	Iter() iter.Seq[V]
}

// Viewer2 is the pairwise variant of Viewer, used by containers whose
// natural element is a key-value pair.
type Viewer2[K, V any] interface {
	// Iter returns a new traversal over the value's entries.
	Iter() iter.Seq2[K, V]
}

// ViewerFunc enables an anonymous function to satisfy the Viewer capability.
type ViewerFunc[V any] func() iter.Seq[V]

// Iter calls the wrapped function.
func (fn ViewerFunc[V]) Iter() iter.Seq[V] { return fn() }

// Viewer2Func enables an anonymous function to satisfy the Viewer2 capability.
type Viewer2Func[K, V any] func() iter.Seq2[K, V]

// Iter calls the wrapped function.
func (fn Viewer2Func[K, V]) Iter() iter.Seq2[K, V] { return fn() }
