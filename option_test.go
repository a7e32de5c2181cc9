package iterview_test

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	iterview "github.com/redforks/iter-view"
	"github.com/redforks/iter-view/iterviewcontract"
)

func ExampleOption() {
	opt := iterview.Some(42)

	for v := range opt.Iter() {
		_ = *v // 42
	}

	none := iterview.None[int]()
	for range none.Iter() {
		// never reached
	}
}

func TestOption(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("a held value is yielded exactly once, by reference", func(t *testcase.T) {
		exp := t.Random.Int()
		opt := iterview.Some(exp)

		got := iterview.Collect[*int](&opt)
		assert.Equal(t, 1, len(got))
		assert.Equal(t, exp, *got[0])

		snd := iterview.Collect[*int](&opt)
		assert.True(t, got[0] == snd[0], "repeated traversals reference the same held value")
	})

	s.Test("an absent value makes an empty traversal", func(t *testcase.T) {
		opt := iterview.None[string]()
		assert.Empty(t, iterview.Collect[*string](&opt))
	})

	s.Test("accessors", func(t *testcase.T) {
		exp := t.Random.String()
		opt := iterview.Some(exp)
		assert.True(t, opt.IsSome())
		assert.False(t, opt.IsNone())
		assert.Equal(t, exp, opt.Get())
		v, ok := opt.Lookup()
		assert.True(t, ok)
		assert.Equal(t, exp, v)

		none := iterview.None[string]()
		assert.True(t, none.IsNone())
		_, ok = none.Lookup()
		assert.False(t, ok)
		assert.Empty(t, none.Get())
	})
}

func TestOption_implementsViewer(t *testing.T) {
	t.Run("some", iterviewcontract.Viewer[*int](func(tb testing.TB) iterview.Viewer[*int] {
		t := testcase.ToT(&tb)
		opt := iterview.Some(t.Random.Int())
		return &opt
	}).Test)

	t.Run("none", iterviewcontract.Viewer[*int](func(tb testing.TB) iterview.Viewer[*int] {
		opt := iterview.None[int]()
		return &opt
	}).Test)
}
