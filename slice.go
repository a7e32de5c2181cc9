package iterview

import (
	"iter"
)

// Slice wires a slice to the Viewer capability.
// The traversal yields a pointer to each element in order,
// referencing the slice's own backing storage.
//
// Fixed size arrays are covered through slicing: AsSlice(arr[:]).
type Slice[T any] []T

// AsSlice is a convenience constructor that lets the element type be inferred.
func AsSlice[T any](vs []T) Slice[T] { return vs }

func (s Slice[T]) Iter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for i := range s {
			if !yield(&s[i]) {
				return
			}
		}
	}
}

func (s Slice[T]) Len() int { return len(s) }
