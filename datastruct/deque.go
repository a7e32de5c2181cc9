package datastruct

import (
	"iter"
)

// Deque is a double-ended queue backed by a growable ring buffer.
// Its traversal yields a pointer to each element in front-to-back order.
// The zero value is an empty deque ready to use.
type Deque[T any] struct {
	buf    []T
	head   int
	length int
}

func (d *Deque[T]) Iter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if d == nil {
			return
		}
		for i := 0; i < d.length; i++ {
			if !yield(&d.buf[d.index(i)]) {
				return
			}
		}
	}
}

func (d *Deque[T]) ToSlice() []T {
	return collect(d.Iter())
}

// Append adds elements to the back of the deque.
func (d *Deque[T]) Append(vs ...T) {
	for _, v := range vs {
		d.pushBack(v)
	}
}

// Prepend adds elements to the front of the deque,
// keeping the argument order.
func (d *Deque[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		d.pushFront(vs[i])
	}
}

// Shift removes and returns the front element.
func (d *Deque[T]) Shift() (T, bool) {
	if d.length == 0 {
		var zero T
		return zero, false
	}
	v := d.buf[d.head]
	var zero T
	d.buf[d.head] = zero
	d.head = d.index(1)
	d.length--
	return v, true
}

// Pop removes and returns the back element.
func (d *Deque[T]) Pop() (T, bool) {
	if d.length == 0 {
		var zero T
		return zero, false
	}
	at := d.index(d.length - 1)
	v := d.buf[at]
	var zero T
	d.buf[at] = zero
	d.length--
	return v, true
}

func (d *Deque[T]) Len() int { return d.length }

func (d *Deque[T]) Lookup(index int) (T, bool) {
	if index < 0 || d.length <= index {
		var zero T
		return zero, false
	}
	return d.buf[d.index(index)], true
}

func (d *Deque[T]) pushBack(v T) {
	d.grow()
	d.buf[d.index(d.length)] = v
	d.length++
}

func (d *Deque[T]) pushFront(v T) {
	d.grow()
	d.head = (d.head - 1 + len(d.buf)) % len(d.buf)
	d.buf[d.head] = v
	d.length++
}

func (d *Deque[T]) index(i int) int {
	return (d.head + i) % len(d.buf)
}

func (d *Deque[T]) grow() {
	if d.length < len(d.buf) {
		return
	}
	newCap := 2 * len(d.buf)
	if newCap == 0 {
		newCap = 8
	}
	buf := make([]T, newCap)
	for i := 0; i < d.length; i++ {
		buf[i] = d.buf[d.index(i)]
	}
	d.buf = buf
	d.head = 0
}
