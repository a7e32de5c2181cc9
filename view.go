package iterview

import (
	"iter"
)

// View builds a Viewer out of an arbitrary anchor value and a projection
// function. Each Iter call applies the projection against the anchor and
// returns the produced traversal directly. This covers values with no
// natural container shape, like deriving a numeric range from a bound:
//
//	bound := 3
//	v := iterview.View(&bound, func(n *int) iter.Seq[int] {
//		return iterview.IntRange(0, *n)
//	})
//
// The wrapper holds only the anchor pointer and the projection; it never
// copies or mutates the anchor.
func View[V, O any](anchor *O, project func(*O) iter.Seq[V]) Viewer[V] {
	return funcView[V, O]{anchor: anchor, project: project}
}

type funcView[V, O any] struct {
	anchor  *O
	project func(*O) iter.Seq[V]
}

func (v funcView[V, O]) Iter() iter.Seq[V] {
	return v.project(v.anchor)
}

// View2 is the pairwise variant of View.
func View2[K, V, O any](anchor *O, project func(*O) iter.Seq2[K, V]) Viewer2[K, V] {
	return funcView2[K, V, O]{anchor: anchor, project: project}
}

type funcView2[K, V, O any] struct {
	anchor  *O
	project func(*O) iter.Seq2[K, V]
}

func (v funcView2[K, V, O]) Iter() iter.Seq2[K, V] {
	return v.project(v.anchor)
}

// IntRange returns a traversal that ranges from `begin` up to,
// but not including, the `end` int.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := begin; i < end; i++ {
			if !yield(i) {
				break
			}
		}
	}
}
