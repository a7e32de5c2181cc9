package iterview

import (
	"iter"

	"github.com/samber/lo"
)

// AsMap wires a map to the Viewer2 capability.
// The traversal yields each entry exactly once as a (key, value) pair.
//
// Go randomises map range order on every walk, so the entry order is
// snapshotted once here; every traversal taken from the returned view
// replays the entries in that same order, as long as the map itself is
// not mutated. The order itself remains unspecified.
//
// Map entries are not addressable in Go, so the pair members are copies
// rather than pointers into the map; they are read-only by construction.
func AsMap[K comparable, V any](m map[K]V) Map[K, V] {
	return Map[K, V]{m: m, keys: lo.Keys(m)}
}

// Map is a read-only view of a map[K]V. The zero value is an empty view.
type Map[K comparable, V any] struct {
	m    map[K]V
	keys []K
}

func (m Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.keys {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

func (m Map[K, V]) Len() int { return len(m.keys) }

// Keys returns a traversal over the view's keys alone,
// in the same order the entries are replayed in.
func (m Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range m.keys {
			if !yield(k) {
				return
			}
		}
	}
}
