package clist_test

import (
	"cmp"
	"slices"
	"strconv"
	"testing"

	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/on-the-ground/funstruct_go/clist"
	"github.com/stretchr/testify/assert"
)

var samples = [][]int{
	{},
	{1},
	{2, 1},
	{5, 3, 8, 1, 9, 2},
	{4, 4, 4, 1, 1, 0, -7, 12},
}

func TestFromSeq_RoundTrips(t *testing.T) {
	for _, xs := range samples {
		got := slices.Collect(clist.FromSeq(slices.Values(xs)).All())
		if diff := gocmp.Diff(xs, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("FromSeq(%v) mismatch (-want +got):\n%s", xs, diff)
		}
	}
}

func TestAppend_AddsLengths(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			joined := clist.FromSlice(a).Append(clist.FromSlice(b))
			assert.Equal(t, len(a)+len(b), joined.Len())
			if diff := gocmp.Diff(slices.Concat(a, b), joined.Slice(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Append(%v, %v) mismatch (-want +got):\n%s", a, b, diff)
			}
		}
	}
}

func TestReversed_IsInvolution(t *testing.T) {
	for _, xs := range samples {
		l := clist.FromSlice(xs)
		assertListEqual(t, l, l.Reversed().Reversed())
	}
}

func TestSplitAt_ConcatsBack(t *testing.T) {
	for _, xs := range samples {
		l := clist.FromSlice(xs)
		for i := -2; i <= len(xs)+2; i++ {
			left, right := l.SplitAt(i)
			assertListEqual(t, l, clist.Concat(left, right))
			assertListEqual(t, l, clist.Concat(l.Take(i), l.Drop(i)))
		}
	}
}

func TestSorted_MatchesSlicesSortStable(t *testing.T) {
	for _, xs := range samples {
		want := slices.Clone(xs)
		slices.SortStableFunc(want, cmp.Compare[int])
		got := clist.FromSlice(xs).Sorted(cmp.Compare[int]).Slice()
		if diff := gocmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("Sorted(%v) mismatch (-want +got):\n%s", xs, diff)
		}
	}
}

func TestMap_FunctorLaws(t *testing.T) {
	identity := func(n int) int { return n }
	inc := func(n int) int { return n + 1 }
	show := strconv.Itoa

	for _, xs := range samples {
		l := clist.FromSlice(xs)
		assertListEqual(t, l, clist.Map(l, identity))

		composed := clist.Map(l, func(n int) string { return show(inc(n)) })
		chained := clist.Map(clist.Map(l, inc), show)
		assertListEqual(t, composed, chained)
	}
}

func TestFlatten_IsIdentityOnFlatLists(t *testing.T) {
	for _, xs := range samples {
		l := clist.FromSlice(xs)
		assertListEqual(t, clist.Map(l, func(n int) any { return n }), l.Flatten())
	}
}
