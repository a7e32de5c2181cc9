package iterview_test

import (
	"testing"

	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"

	iterview "github.com/redforks/iter-view"
	"github.com/redforks/iter-view/iterviewcontract"
)

func ExampleSetOf() {
	set := iterview.SetOf("foo", "bar", "baz", "foo")

	for v := range set.Iter() {
		_ = v // "foo" -> "bar" -> "baz"
	}
}

func TestSet_EachMemberYieldedOnce(t *testing.T) {
	t.Parallel()

	rnd := random.New(random.CryptoSeed{})
	a, b := rnd.Int(), rnd.Int()
	set := iterview.AsSet(map[int]struct{}{a: {}, b: {}})

	got := iterview.Collect[int](set)
	require.Len(t, got, 2)
	require.ElementsMatch(t, []int{a, b}, got)
}

func TestSet_OrderStableAcrossTraversals(t *testing.T) {
	t.Parallel()

	members := map[string]struct{}{}
	for i := 0; i < 10; i++ {
		members[uuid.NewV4().String()] = struct{}{}
	}
	set := iterview.AsSet(members)

	fst := iterview.Collect[string](set)
	for i := 0; i < 3; i++ {
		require.Equal(t, fst, iterview.Collect[string](set))
	}
}

func TestSetOf_DuplicatesDroppedKeepingFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	set := iterview.SetOf("foo", "bar", "foo", "baz", "bar")
	require.Equal(t, []string{"foo", "bar", "baz"}, iterview.Collect[string](set))
	require.Equal(t, 3, set.Len())
}

func TestSet_Has(t *testing.T) {
	t.Parallel()

	set := iterview.SetOf("foo", "bar")
	require.True(t, set.Has("foo"))
	require.True(t, set.Has("bar"))
	require.False(t, set.Has("oof"))
	require.False(t, iterview.Set[string]{}.Has("foo"))
}

func TestSet_implementsViewer(t *testing.T) {
	iterviewcontract.Viewer[string](func(tb testing.TB) iterview.Viewer[string] {
		t := testcase.ToT(&tb)
		members := map[string]struct{}{}
		t.Random.Repeat(3, 7, func() {
			members[uuid.NewV4().String()] = struct{}{}
		})
		return iterview.AsSet(members)
	}).Test(t)
}
