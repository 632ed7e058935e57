// Package clist provides a persistent singly linked list (cons list).
//
// A List is either Nil, the empty list, or a *Cons holding one element and a
// tail list. Lists are never mutated after construction, so tails are shared
// between lists freely:
//
//	base := clist.Of(2, 3)
//	a := base.Prepend(1) // Cons(1, Cons(2, Cons(3)))
//	b := base.Prepend(0) // Cons(0, Cons(2, Cons(3))), same tail as a
//
// Operations that keep the element type are methods on List. Operations that
// change it (FoldRight, FoldLeft, Map, FlatMap) are package functions, since
// Go methods cannot declare their own type parameters.
//
// The recursive algorithms (folds, flatten, merge) are evaluated with explicit
// work stacks, so very long lists do not grow the goroutine stack.
package clist
