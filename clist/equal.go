package clist

import "reflect"

// Equal reports whether a and b hold equal elements in the same order.
// Elements that are lists are compared structurally, everything else with
// reflect.DeepEqual.
func Equal[A any](a, b List[A]) bool {
	return EqualFunc(a, b, elemEqual[A])
}

// EqualFunc is like Equal but compares elements with eq.
func EqualFunc[A any](a, b List[A], eq func(A, A) bool) bool {
	a, b = orNil(a), orNil(b)
	if a.Len() != b.Len() {
		return false
	}
	for {
		x, xok := a.(*Cons[A])
		y, yok := b.(*Cons[A])
		if !xok || !yok {
			return xok == yok
		}
		if x == y {
			return true
		}
		if !eq(x.head, y.head) {
			return false
		}
		a, b = x.tail, y.tail
	}
}

func elemEqual[A any](x, y A) bool {
	if nx, ok := any(x).(nested); ok {
		ny, ok := any(y).(nested)
		return ok && EqualFunc(nx.boxed(), ny.boxed(), elemEqual[any])
	}
	return reflect.DeepEqual(x, y)
}
