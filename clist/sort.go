package clist

// CompareFunc returns a negative number when a < b, zero when a == b
// and a positive number when a > b.
type CompareFunc[A any] func(a, b A) int

// mergeSort is a stable top-down merge sort over the two halves of SplitAt(Len/2).
// Recursion depth is logarithmic in the length of l.
func mergeSort[A any](l List[A], cmp CompareFunc[A]) List[A] {
	n := l.Len()
	if n <= 1 {
		return l
	}
	left, right := l.SplitAt(n / 2)
	return merge(mergeSort(left, cmp), mergeSort(right, cmp), cmp)
}

// merge interleaves two sorted lists. On ties the left element goes first,
// which keeps the sort stable. The unconsumed rest of either input is shared.
func merge[A any](left, right List[A], cmp CompareFunc[A]) List[A] {
	merged := make([]A, 0, left.Len()+right.Len())
	for {
		l, lok := left.(*Cons[A])
		r, rok := right.(*Cons[A])
		switch {
		case !lok:
			return build(merged, right)
		case !rok:
			return build(merged, left)
		case cmp(l.head, r.head) <= 0:
			merged = append(merged, l.head)
			left = l.tail
		default:
			merged = append(merged, r.head)
			right = r.tail
		}
	}
}
