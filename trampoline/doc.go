// Package trampoline runs explicitly marked tail calls in a loop, so that
// self and mutually recursive functions recurse to any depth without growing
// the goroutine stack.
//
// A trampolined body returns a Step: either Done(value), or a deferred call
// produced by TailCall. The driver (Call) keeps invoking deferred calls until
// one of them settles.
//
//	var fact *trampoline.Fn2[int, int, int]
//	fact = trampoline.Tco2(func(n, acc int) trampoline.Step[int] {
//		if n <= 1 {
//			return trampoline.Done(acc)
//		}
//		return fact.TailCall(n-1, n*acc)
//	})
//	fact.Call(5, 1) // 120
//
// Only deferred calls are rescued. Calling fact.Call from inside the body, or
// recursing without TailCall, nests drivers and still overflows the stack.
package trampoline
