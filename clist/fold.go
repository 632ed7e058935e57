package clist

import (
	"fmt"

	"github.com/on-the-ground/funstruct_go/shared/helper"
)

// FoldRight combines the elements right to left: f(x1, f(x2, ... f(xn, acc))).
// Nil folds to acc.
func FoldRight[A, B any](l List[A], acc B, f func(A, B) B) B {
	pending := orNil(l).Slice()
	for i := len(pending) - 1; i >= 0; i-- {
		acc = f(pending[i], acc)
	}
	return acc
}

// FoldLeft combines the elements left to right: f(...f(f(acc, x1), x2)..., xn).
func FoldLeft[A, B any](l List[A], acc B, f func(B, A) B) B {
	for x := range orNil(l).All() {
		acc = f(acc, x)
	}
	return acc
}

// Map applies f to every element, preserving order and length.
func Map[A, B any](l List[A], f func(A) B) List[B] {
	return FoldRight(l, Empty[B](), func(x A, acc List[B]) List[B] {
		return acc.Prepend(f(x))
	})
}

// FlatMap maps every element to a list and concatenates the results.
func FlatMap[A, B any](l List[A], f func(A) List[B]) List[B] {
	return FoldRight(l, Empty[B](), func(x A, acc List[B]) List[B] {
		return concat(f(x), acc)
	})
}

// Bind is an alias for FlatMap.
func Bind[A, B any](l List[A], f func(A) List[B]) List[B] {
	return FlatMap(l, f)
}

// Concat joins lists left to right. The last list is shared, the others are copied.
func Concat[A any](ls ...List[A]) List[A] {
	var res List[A] = Nil[A]{}
	for i := len(ls) - 1; i >= 0; i-- {
		res = concat(ls[i], res)
	}
	return res
}

// Flatten expands, depth first and left to right, every element that is itself a list.
func Flatten[A any](l List[A]) List[any] {
	return flatten(orNil(l).boxed())
}

// FlattenAs flattens l and asserts every leaf element to T.
func FlattenAs[T, A any](l List[A]) (List[T], error) {
	leaves := Flatten(l).Slice()
	typed := make([]T, len(leaves))
	for i, leaf := range leaves {
		v, err := helper.TypedValueOf[T](leaf)
		if err != nil {
			return Nil[T]{}, fmt.Errorf("flatten element %d: %w", i, err)
		}
		typed[i] = v
	}
	return FromSlice(typed), nil
}

// MustFlattenAs is like FlattenAs but panics when a leaf is not a T.
func MustFlattenAs[T, A any](l List[A]) List[T] {
	return Map(Flatten(l), helper.MustTypedValue[T])
}

// concat prepends a copy of left onto right.
func concat[A any](left, right List[A]) List[A] {
	left = orNil(left)
	if left.IsEmpty() {
		return orNil(right)
	}
	return build(left.Slice(), right)
}

// flatten walks l with an explicit stack of partially consumed lists
// instead of recursing into nested elements.
func flatten(l List[any]) List[any] {
	var leaves []any
	stack := []List[any]{l}
	for len(stack) > 0 {
		top := len(stack) - 1
		node, ok := stack[top].(*Cons[any])
		if !ok {
			stack = stack[:top]
			continue
		}
		stack[top] = node.tail
		if inner, ok := node.head.(nested); ok {
			stack = append(stack, orNil(inner.boxed()))
			continue
		}
		leaves = append(leaves, node.head)
	}
	return build(leaves, Nil[any]{})
}
