package datastruct

import (
	"iter"
)

// LinkedList is a doubly linked list.
// Its traversal yields a pointer to each node's payload in insertion order.
// The zero value is an empty list ready to use.
type LinkedList[T any] struct {
	head   *llElem[T]
	tail   *llElem[T]
	length int
}

type llElem[T any] struct {
	data T
	prev *llElem[T]
	next *llElem[T]
}

func (ll *LinkedList[T]) Iter() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if ll == nil {
			return
		}
		for current := ll.head; current != nil; current = current.next {
			if !yield(&current.data) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) ToSlice() []T {
	return collect(ll.Iter())
}

func (ll *LinkedList[T]) Append(vs ...T) {
	for _, v := range vs {
		ll.append(v)
	}
}

func (ll *LinkedList[T]) append(v T) {
	newNode := &llElem[T]{data: v}
	if ll.tail == nil {
		ll.head = newNode
		ll.tail = newNode
	} else {
		prevTail := ll.tail
		prevTail.next = newNode
		ll.tail = newNode
		ll.tail.prev = prevTail
	}
	ll.length++
}

// Prepend adds elements to the beginning of the list,
// keeping the argument order.
func (ll *LinkedList[T]) Prepend(vs ...T) {
	for i := len(vs) - 1; 0 <= i; i-- {
		ll.prepend(vs[i])
	}
}

func (ll *LinkedList[T]) prepend(v T) {
	var (
		prevHead = ll.head
		newHead  = &llElem[T]{
			data: v,
			next: prevHead,
		}
	)
	if prevHead != nil {
		prevHead.prev = newHead
	}
	ll.head = newHead
	if ll.tail == nil {
		ll.tail = newHead
	}
	ll.length++
}

// Len returns the number of elements in the list
func (ll *LinkedList[T]) Len() int {
	return ll.length
}

// Shift removes and returns the first element of the list.
func (ll *LinkedList[T]) Shift() (T, bool) {
	if ll.head == nil {
		var zero T
		return zero, false
	}
	first := ll.head
	ll.head = first.next
	if ll.head != nil {
		ll.head.prev = nil
	}
	if ll.head == nil {
		ll.tail = nil
	}
	ll.length--
	return first.data, true
}

// Pop removes and returns the last element of the list.
func (ll *LinkedList[T]) Pop() (T, bool) {
	var last = ll.tail
	if last == nil {
		var zero T
		return zero, false
	}
	var prev = ll.tail.prev
	if prev != nil {
		prev.next = nil
	}
	if prev == nil {
		ll.head = nil
	}
	ll.tail = prev
	ll.length--
	return last.data, true
}

func (ll *LinkedList[T]) Lookup(index int) (T, bool) {
	if index < 0 || ll.length <= index {
		var zero T
		return zero, false
	}
	var i int
	for v := range ll.Iter() {
		if i == index {
			return *v, true
		}
		i++
	}
	var zero T
	return zero, false
}
