package iterview

import (
	"iter"

	"github.com/redforks/iter-view/consterror"
)

// Break can be returned from a ForEach function block
// to stop the traversal early without reporting an error.
const Break consterror.Error = `iterview:break`

// Collect drains a fresh traversal of the Viewer into a slice.
// The Viewer stays usable afterwards.
func Collect[V any](v Viewer[V]) []V {
	if v == nil {
		return nil
	}
	var vs = make([]V, 0)
	for e := range v.Iter() {
		vs = append(vs, e)
	}
	return vs
}

// KV is an element of a pairwise traversal.
type KV[K, V any] struct {
	K K
	V V
}

// Collect2 drains a fresh traversal of the Viewer2 into a slice of pairs.
func Collect2[K, V any](v Viewer2[K, V]) []KV[K, V] {
	if v == nil {
		return nil
	}
	var kvs []KV[K, V]
	for k, e := range v.Iter() {
		kvs = append(kvs, KV[K, V]{K: k, V: e})
	}
	return kvs
}

// Collect2Map drains a fresh traversal of the Viewer2 into a map.
func Collect2Map[K comparable, V any](v Viewer2[K, V]) map[K]V {
	if v == nil {
		return nil
	}
	var out = make(map[K]V)
	for k, e := range v.Iter() {
		out[k] = e
	}
	return out
}

// Count will take a fresh traversal and count the total iterations number.
//
// Good when all you want is count all the elements, but don't want to do anything else.
func Count[V any](v Viewer[V]) int {
	var total int
	for range v.Iter() {
		total++
	}
	return total
}

func Count2[K, V any](v Viewer2[K, V]) int {
	var total int
	for range v.Iter() {
		total++
	}
	return total
}

// First returns the first element of a fresh traversal.
func First[V any](v Viewer[V]) (V, bool) {
	for e := range v.Iter() {
		return e, true
	}
	var zero V
	return zero, false
}

func First2[K, V any](v Viewer2[K, V]) (K, V, bool) {
	for k, e := range v.Iter() {
		return k, e, true
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

// ForEach runs the function block against each element of a fresh traversal.
// The block can stop the walk early by returning Break;
// any other non-nil error aborts the walk and is returned as is.
// This is the inspection use case the capability exists for:
// the block only ever sees read-only elements, and the inspected value
// can be walked again by anyone else holding it.
func ForEach[V any](v Viewer[V], fn func(V) error) error {
	for e := range v.Iter() {
		err := fn(e)
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func ForEach2[K, V any](v Viewer2[K, V], fn func(K, V) error) error {
	for k, e := range v.Iter() {
		err := fn(k, e)
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Empty viewer is used to represent a nil result with Null object pattern.
func Empty[V any]() Viewer[V] {
	return ViewerFunc[V](func() iter.Seq[V] {
		return func(yield func(V) bool) {}
	})
}

// Empty2 viewer is used to represent a nil result with Null object pattern.
func Empty2[K, V any]() Viewer2[K, V] {
	return Viewer2Func[K, V](func() iter.Seq2[K, V] {
		return func(yield func(K, V) bool) {}
	})
}
