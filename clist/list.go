package clist

import (
	"fmt"
	"iter"
)

// List is a sealed interface for persistent singly linked lists.
// Only Nil and *Cons implement it.
type List[A any] interface {
	// Len returns the number of elements in O(1).
	Len() int
	IsEmpty() bool
	// Head returns the first element, or false for Nil.
	Head() (A, bool)
	// Tail returns the list after the first element. The tail of Nil is Nil.
	Tail() List[A]

	Prepend(x A) List[A]
	Append(other List[A]) List[A]
	Filter(p func(A) bool) List[A]
	Take(n int) List[A]
	Drop(n int) List[A]
	TakeWhile(p func(A) bool) List[A]
	DropWhile(p func(A) bool) List[A]
	SplitAt(i int) (List[A], List[A])
	Partition(p func(A) bool) (List[A], List[A])
	Reversed() List[A]
	Sorted(cmp CompareFunc[A]) List[A]
	Flatten() List[any]

	// All returns a restartable front-to-back sequence of the elements.
	All() iter.Seq[A]
	Slice() []A
	Equal(other List[A]) bool
	String() string

	nested
}

// nested is implemented by every list regardless of element type,
// which lets Flatten and Equal recognise lists stored as elements.
type nested interface {
	boxed() List[any]
}

// Empty returns the empty list.
func Empty[A any]() List[A] {
	return Nil[A]{}
}

// Single returns a list holding only x.
func Single[A any](x A) List[A] {
	return NewCons(x, nil)
}

// NewCons returns a node with the given head and tail. A nil tail means Nil.
func NewCons[A any](head A, tail List[A]) *Cons[A] {
	tail = orNil(tail)
	return &Cons[A]{head: head, tail: tail, size: tail.Len() + 1}
}

// Prepend returns a new list with x in front of l.
func Prepend[A any](x A, l List[A]) List[A] {
	return NewCons(x, l)
}

// Of builds a list from its arguments; the last argument ends up in front of Nil.
func Of[A any](xs ...A) List[A] {
	return FromSlice(xs)
}

// FromSlice builds a list holding the elements of xs in the same order.
func FromSlice[A any](xs []A) List[A] {
	return build(xs, Nil[A]{})
}

// FromSeq builds a list from a finite sequence, preserving its order.
func FromSeq[A any](seq iter.Seq[A]) List[A] {
	var xs []A
	for x := range seq {
		xs = append(xs, x)
	}
	return build(xs, Nil[A]{})
}

// Match dispatches on the two list variants.
func Match[A, T any](
	l List[A],
	onNil func() T,
	onCons func(head A, tail List[A]) T,
) T {
	switch l := orNil(l).(type) {
	case Nil[A]:
		return onNil()
	case *Cons[A]:
		return onCons(l.head, l.tail)
	default:
		panic(fmt.Sprintf("exhaustive match fallback, list type: %T", l))
	}
}

// build prepends xs, last element first, onto tail.
// The returned list shares tail.
func build[A any](xs []A, tail List[A]) List[A] {
	l := orNil(tail)
	for i := len(xs) - 1; i >= 0; i-- {
		l = NewCons(xs[i], l)
	}
	return l
}

// orNil maps a nil interface or a nil *Cons to Nil.
func orNil[A any](l List[A]) List[A] {
	if l == nil {
		return Nil[A]{}
	}
	if c, ok := l.(*Cons[A]); ok && c == nil {
		return Nil[A]{}
	}
	return l
}

var _ List[int] = Nil[int]{}

// Nil is the empty list. All Nil values of one element type are identical.
type Nil[A any] struct{}

func (Nil[A]) Len() int { return 0 }
func (Nil[A]) IsEmpty() bool { return true }
func (Nil[A]) Tail() List[A] { return Nil[A]{} }
func (Nil[A]) String() string { return "Nil()" }
func (Nil[A]) Slice() []A { return []A{} }
func (Nil[A]) boxed() List[any] { return Nil[any]{} }

func (Nil[A]) Head() (A, bool) {
	var zero A
	return zero, false
}

func (n Nil[A]) Prepend(x A) List[A] {
	return NewCons[A](x, n)
}

// Append returns other, since appending to Nil is the identity.
func (Nil[A]) Append(other List[A]) List[A] {
	return orNil(other)
}

func (n Nil[A]) Filter(func(A) bool) List[A] { return n }
func (n Nil[A]) Take(int) List[A] { return n }
func (n Nil[A]) Drop(int) List[A] { return n }
func (n Nil[A]) TakeWhile(func(A) bool) List[A] { return n }
func (n Nil[A]) DropWhile(func(A) bool) List[A] { return n }
func (n Nil[A]) Reversed() List[A] { return n }
func (n Nil[A]) Sorted(CompareFunc[A]) List[A] { return n }
func (Nil[A]) Flatten() List[any] { return Nil[any]{} }

func (n Nil[A]) SplitAt(int) (List[A], List[A]) {
	return n, n
}

func (n Nil[A]) Partition(func(A) bool) (List[A], List[A]) {
	return n, n
}

func (Nil[A]) All() iter.Seq[A] {
	return func(func(A) bool) {}
}

func (Nil[A]) Equal(other List[A]) bool {
	return orNil(other).IsEmpty()
}
