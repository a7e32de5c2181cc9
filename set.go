package iterview

import (
	"iter"

	"github.com/samber/lo"
)

// AsSet wires a map-backed set to the Viewer capability.
// The traversal yields each member exactly once.
// Member order is snapshotted the same way AsMap does it:
// unspecified, but repeated traversals of one view agree.
func AsSet[T comparable](s map[T]struct{}) Set[T] {
	return Set[T]{members: lo.Keys(s)}
}

// SetOf builds a Set view directly from the given members,
// dropping duplicates while keeping first-occurrence order.
func SetOf[T comparable](vs ...T) Set[T] {
	return Set[T]{members: lo.Uniq(vs)}
}

// Set is a read-only view of a set of members. The zero value is empty.
type Set[T comparable] struct {
	members []T
}

func (s Set[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.members {
			if !yield(v) {
				return
			}
		}
	}
}

func (s Set[T]) Len() int { return len(s.members) }

func (s Set[T]) Has(v T) bool {
	return lo.Contains(s.members, v)
}
