package clist

import (
	"fmt"
	"iter"
	"strings"
)

var _ List[int] = (*Cons[int])(nil)

// Cons is a non-empty list: one element in front of a tail list.
// A Cons never changes after construction.
type Cons[A any] struct {
	head A
	tail List[A]
	size int
}

func (c *Cons[A]) Len() int { return c.size }
func (c *Cons[A]) IsEmpty() bool { return false }
func (c *Cons[A]) Head() (A, bool) { return c.head, true }
func (c *Cons[A]) Tail() List[A] { return c.tail }

func (c *Cons[A]) Prepend(x A) List[A] {
	return NewCons[A](x, c)
}

// Append copies the nodes of c and shares other as the new tail.
func (c *Cons[A]) Append(other List[A]) List[A] {
	other = orNil(other)
	if other.IsEmpty() {
		return c
	}
	return build(c.Slice(), other)
}

func (c *Cons[A]) Filter(p func(A) bool) List[A] {
	return FoldRight(c, Empty[A](), func(x A, acc List[A]) List[A] {
		if p(x) {
			return acc.Prepend(x)
		}
		return acc
	})
}

// Take returns the first n elements. n <= 0 yields Nil and n >= Len yields c.
func (c *Cons[A]) Take(n int) List[A] {
	if n <= 0 {
		return Nil[A]{}
	}
	if n >= c.size {
		return c
	}
	prefix := make([]A, 0, n)
	var cur List[A] = c
	for len(prefix) < n {
		node := cur.(*Cons[A])
		prefix = append(prefix, node.head)
		cur = node.tail
	}
	return build(prefix, Nil[A]{})
}

// Drop returns the list after the first n elements. n <= 0 yields c.
func (c *Cons[A]) Drop(n int) List[A] {
	var cur List[A] = c
	for ; n > 0; n-- {
		node, ok := cur.(*Cons[A])
		if !ok {
			break
		}
		cur = node.tail
	}
	return cur
}

func (c *Cons[A]) TakeWhile(p func(A) bool) List[A] {
	var prefix []A
	var cur List[A] = c
	for {
		node, ok := cur.(*Cons[A])
		if !ok {
			return c
		}
		if !p(node.head) {
			break
		}
		prefix = append(prefix, node.head)
		cur = node.tail
	}
	return build(prefix, Nil[A]{})
}

func (c *Cons[A]) DropWhile(p func(A) bool) List[A] {
	var cur List[A] = c
	for {
		node, ok := cur.(*Cons[A])
		if !ok || !p(node.head) {
			return cur
		}
		cur = node.tail
	}
}

// SplitAt returns (Take(i), Drop(i)). The two halves always concatenate back to c.
func (c *Cons[A]) SplitAt(i int) (List[A], List[A]) {
	return c.Take(i), c.Drop(i)
}

// Partition returns the elements satisfying p and the rest, both in their original order.
func (c *Cons[A]) Partition(p func(A) bool) (List[A], List[A]) {
	type halves struct {
		in, out List[A]
	}
	res := FoldRight(c, halves{in: Nil[A]{}, out: Nil[A]{}}, func(x A, acc halves) halves {
		if p(x) {
			return halves{in: acc.in.Prepend(x), out: acc.out}
		}
		return halves{in: acc.in, out: acc.out.Prepend(x)}
	})
	return res.in, res.out
}

func (c *Cons[A]) Reversed() List[A] {
	return FoldLeft(c, Empty[A](), func(acc List[A], x A) List[A] {
		return acc.Prepend(x)
	})
}

func (c *Cons[A]) Sorted(cmp CompareFunc[A]) List[A] {
	return mergeSort[A](c, cmp)
}

func (c *Cons[A]) Flatten() List[any] {
	return flatten(c.boxed())
}

func (c *Cons[A]) All() iter.Seq[A] {
	return func(yield func(A) bool) {
		for node := c; ; {
			if !yield(node.head) {
				return
			}
			next, ok := node.tail.(*Cons[A])
			if !ok {
				return
			}
			node = next
		}
	}
}

func (c *Cons[A]) Slice() []A {
	xs := make([]A, 0, c.size)
	for x := range c.All() {
		xs = append(xs, x)
	}
	return xs
}

func (c *Cons[A]) Equal(other List[A]) bool {
	return Equal[A](c, other)
}

// String renders the list as nested constructors, e.g. Cons(1, Cons(2)).
func (c *Cons[A]) String() string {
	var sb strings.Builder
	for x := range c.All() {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "Cons(%v", x)
	}
	sb.WriteString(strings.Repeat(")", c.size))
	return sb.String()
}

func (c *Cons[A]) boxed() List[any] {
	if l, ok := any(c).(List[any]); ok {
		return l
	}
	return Map[A, any](c, func(x A) any { return x })
}
