// Package iterviewcontract contains the behavioral contract
// that every iterview.Viewer implementation has to fulfil.
package iterviewcontract

import (
	"iter"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	iterview "github.com/redforks/iter-view"
	"github.com/redforks/iter-view/port/contract"
)

// Viewer returns the contract of the iterview.Viewer capability:
// every traversal request against the same unmutated value is independent,
// starts at the first element, and replays the same sequence.
func Viewer[V any](mk contract.Make[iterview.Viewer[V]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iterview.Viewer[V] {
		return mk(t)
	})

	s.Test("a fresh traversal can be walked to completion", func(t *testcase.T) {
		var done bool
		for range subject.Get(t).Iter() {
		}
		done = true
		assert.True(t, done)
	})

	s.Test("repeated traversals of one unmutated value replay the same sequence", func(t *testcase.T) {
		viewer := subject.Get(t)
		fst := collect(viewer.Iter())
		snd := collect(viewer.Iter())
		assert.Equal(t, fst, snd)
	})

	s.Test("each traversal starts at the first element, regardless of other traversals", func(t *testcase.T) {
		viewer := subject.Get(t)
		reference := collect(viewer.Iter())

		next1, stop1 := iter.Pull(viewer.Iter())
		defer stop1()
		next2, stop2 := iter.Pull(viewer.Iter())
		defer stop2()

		for _, exp := range reference {
			got1, ok := next1()
			assert.True(t, ok)
			assert.Equal(t, exp, got1)

			got2, ok := next2()
			assert.True(t, ok)
			assert.Equal(t, exp, got2)
		}
		_, ok := next1()
		assert.False(t, ok, "completion was expected after the last element")
		_, ok = next2()
		assert.False(t, ok)
	})

	s.Test("an abandoned traversal leaves the value reusable", func(t *testcase.T) {
		viewer := subject.Get(t)
		reference := collect(viewer.Iter())

		next, stop := iter.Pull(viewer.Iter())
		if 0 < len(reference) { // consume a part, then walk away
			_, _ = next()
		}
		stop()

		assert.Equal(t, reference, collect(viewer.Iter()))
	})

	return s.AsSuite("Viewer")
}

// Viewer2 returns the contract of the iterview.Viewer2 capability.
func Viewer2[K, V any](mk contract.Make[iterview.Viewer2[K, V]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) iterview.Viewer2[K, V] {
		return mk(t)
	})

	s.Test("a fresh traversal can be walked to completion", func(t *testcase.T) {
		var done bool
		for range subject.Get(t).Iter() {
		}
		done = true
		assert.True(t, done)
	})

	s.Test("repeated traversals of one unmutated value replay the same entries", func(t *testcase.T) {
		viewer := subject.Get(t)
		fst := collect2(viewer.Iter())
		snd := collect2(viewer.Iter())
		assert.Equal(t, fst, snd)
	})

	s.Test("an abandoned traversal leaves the value reusable", func(t *testcase.T) {
		viewer := subject.Get(t)
		reference := collect2(viewer.Iter())

		next, stop := iter.Pull2(viewer.Iter())
		if 0 < len(reference) {
			_, _, _ = next()
		}
		stop()

		assert.Equal(t, reference, collect2(viewer.Iter()))
	})

	return s.AsSuite("Viewer2")
}

func collect[V any](itr iter.Seq[V]) []V {
	var vs []V
	for v := range itr {
		vs = append(vs, v)
	}
	return vs
}

func collect2[K, V any](itr iter.Seq2[K, V]) []iterview.KV[K, V] {
	var kvs []iterview.KV[K, V]
	for k, v := range itr {
		kvs = append(kvs, iterview.KV[K, V]{K: k, V: v})
	}
	return kvs
}
