// Package datastruct provides container types whose elements can be viewed
// through the iterview capability: each container hands out any number of
// fresh read-only traversals over its elements while staying owned and
// usable by the caller.
package datastruct

import (
	"iter"

	iterview "github.com/redforks/iter-view"
)

// Sequence is the common surface of the ordered containers in this package.
type Sequence[T any] interface {
	iterview.Viewer[*T]
	ToSlice() []T
	Sizer
}

type Sizer interface {
	Len() int
}

var (
	_ Sequence[any] = (*LinkedList[any])(nil)
	_ Sequence[any] = (*Deque[any])(nil)
	_ Sequence[any] = (*Heap[any])(nil)
)

func collect[T any](itr iter.Seq[*T]) []T {
	var vs []T
	for v := range itr {
		vs = append(vs, *v)
	}
	return vs
}
