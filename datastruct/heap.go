package datastruct

import (
	"iter"
)

// MakeHeap creates a binary min-heap ordered by the given less function.
func MakeHeap[T any](less func(a, b T) bool, vs ...T) *Heap[T] {
	h := &Heap[T]{less: less}
	h.Push(vs...)
	return h
}

// Heap is a binary heap laid out in a slice.
// Its traversal yields a pointer to each element
// in the heap's internal array order, which is not sorted order.
type Heap[T any] struct {
	vs   []T
	less func(a, b T) bool
}

func (h *Heap[T]) Iter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if h == nil {
			return
		}
		for i := range h.vs {
			if !yield(&h.vs[i]) {
				return
			}
		}
	}
}

func (h *Heap[T]) ToSlice() []T {
	return collect(h.Iter())
}

func (h *Heap[T]) Push(vs ...T) {
	for _, v := range vs {
		h.vs = append(h.vs, v)
		h.up(len(h.vs) - 1)
	}
}

// Pop removes and returns the minimum element.
func (h *Heap[T]) Pop() (T, bool) {
	if len(h.vs) == 0 {
		var zero T
		return zero, false
	}
	top := h.vs[0]
	last := len(h.vs) - 1
	h.vs[0] = h.vs[last]
	h.vs = h.vs[:last]
	h.down(0)
	return top, true
}

// Peek returns the minimum element without removing it.
func (h *Heap[T]) Peek() (T, bool) {
	if len(h.vs) == 0 {
		var zero T
		return zero, false
	}
	return h.vs[0], true
}

func (h *Heap[T]) Len() int { return len(h.vs) }

func (h *Heap[T]) up(i int) {
	for 0 < i {
		parent := (i - 1) / 2
		if !h.less(h.vs[i], h.vs[parent]) {
			break
		}
		h.vs[i], h.vs[parent] = h.vs[parent], h.vs[i]
		i = parent
	}
}

func (h *Heap[T]) down(i int) {
	for {
		var (
			left  = 2*i + 1
			right = 2*i + 2
			least = i
		)
		if left < len(h.vs) && h.less(h.vs[left], h.vs[least]) {
			least = left
		}
		if right < len(h.vs) && h.less(h.vs[right], h.vs[least]) {
			least = right
		}
		if least == i {
			return
		}
		h.vs[i], h.vs[least] = h.vs[least], h.vs[i]
		i = least
	}
}
