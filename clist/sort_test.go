package clist_test

import (
	"cmp"
	"testing"

	"github.com/on-the-ground/funstruct_go/clist"
	"github.com/stretchr/testify/assert"
)

func TestSorted(t *testing.T) {
	descending := func(a, b int) int { return b - a }
	assertListEqual(t, clist.Empty[int](), clist.Empty[int]().Sorted(descending))
	assertListEqual(t, one(), one().Sorted(descending))
	assertListEqual(t, clist.Of(2, 1), clist.Of(1, 2).Sorted(descending))
	assertListEqual(t, clist.Of(1, 2, 3, 4, 5), clist.Of(4, 2, 5, 1, 3).Sorted(cmp.Compare[int]))
}

func TestSorted_IsStable(t *testing.T) {
	type entry struct {
		key   int
		label string
	}
	byKey := func(a, b entry) int { return cmp.Compare(a.key, b.key) }

	l := clist.Of(
		entry{2, "a"}, entry{1, "b"}, entry{2, "c"},
		entry{1, "d"}, entry{0, "e"}, entry{2, "f"},
	)
	got := l.Sorted(byKey)

	assert.Equal(t, []entry{
		{0, "e"}, {1, "b"}, {1, "d"}, {2, "a"}, {2, "c"}, {2, "f"},
	}, got.Slice())
	assert.Equal(t, 6, l.Len())
}

func TestSorted_IsIdempotent(t *testing.T) {
	l := clist.Of(9, 3, 7, 3, 1, 8)
	once := l.Sorted(cmp.Compare[int])
	assertListEqual(t, once, once.Sorted(cmp.Compare[int]))
	assert.Equal(t, []int{9, 3, 7, 3, 1, 8}, l.Slice())
}

func TestSorted_LongList(t *testing.T) {
	xs := make([]int, 200_000)
	for i := range xs {
		xs[i] = len(xs) - i
	}
	got := clist.FromSlice(xs).Sorted(cmp.Compare[int]).Slice()
	assert.Len(t, got, len(xs))
	assert.Equal(t, 1, got[0])
	assert.Equal(t, len(xs), got[len(got)-1])
}
