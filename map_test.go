package iterview_test

import (
	"testing"

	uuid "github.com/satori/go.uuid"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	iterview "github.com/redforks/iter-view"
	"github.com/redforks/iter-view/iterviewcontract"
)

func ExampleAsMap() {
	view := iterview.AsMap(map[string]int{"a": 1, "b": 2})

	for k, v := range view.Iter() {
		_, _ = k, v // ("a", 1) and ("b", 2), in an unspecified but replayable order
	}
}

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("every entry is yielded exactly once as a pair", func(t *testcase.T) {
		m := map[string]int{
			"k1": t.Random.Int(),
			"k2": t.Random.Int(),
		}
		view := iterview.AsMap(m)

		got := iterview.Collect2Map[string, int](view)
		assert.Equal(t, m, got)
		assert.Equal(t, 2, iterview.Count2[string, int](view))
	})

	s.Test("entry order is unspecified but stable across repeated traversals", func(t *testcase.T) {
		m := map[string]int{}
		t.Random.Repeat(8, 16, func() {
			m[uuid.NewV4().String()] = t.Random.Int()
		})
		view := iterview.AsMap(m)

		fst := iterview.Collect2[string, int](view)
		for i := 0; i < 3; i++ {
			assert.Equal(t, fst, iterview.Collect2[string, int](view))
		}
	})

	s.Test("the source map is untouched by traversing it", func(t *testcase.T) {
		m := map[string]int{"k": t.Random.Int()}
		exp := map[string]int{"k": m["k"]}
		view := iterview.AsMap(m)

		_ = iterview.Collect2[string, int](view)
		assert.Equal(t, exp, m)
	})

	s.Test("an empty or nil map makes an empty traversal", func(t *testcase.T) {
		assert.Equal(t, 0, iterview.Count2[string, int](iterview.AsMap(map[string]int{})))
		assert.Equal(t, 0, iterview.Count2[string, int](iterview.AsMap[string, int](nil)))
		assert.Equal(t, 0, iterview.Map[string, int]{}.Len())
	})

	s.Test("Keys replays the keys in the entry order", func(t *testcase.T) {
		m := map[string]int{}
		t.Random.Repeat(3, 7, func() {
			m[uuid.NewV4().String()] = t.Random.Int()
		})
		view := iterview.AsMap(m)

		var keys []string
		for k := range view.Keys() {
			keys = append(keys, k)
		}
		var entryKeys []string
		for k := range view.Iter() {
			entryKeys = append(entryKeys, k)
		}
		assert.Equal(t, entryKeys, keys)
	})
}

func TestMap_implementsViewer2(t *testing.T) {
	iterviewcontract.Viewer2[string, int](func(tb testing.TB) iterview.Viewer2[string, int] {
		t := testcase.ToT(&tb)
		m := map[string]int{}
		t.Random.Repeat(3, 7, func() {
			m[uuid.NewV4().String()] = t.Random.Int()
		})
		return iterview.AsMap(m)
	}).Test(t)
}
