package fastfloat

import "iter"

// Sum adds xs from left to right starting at 0. The order is never changed
// and no compensation is applied, so the result equals the native loop
//
//	var s T
//	for _, x := range xs { s += x }
func Sum[T Native](xs []Float[T]) Float[T] {
	var acc T
	for _, x := range xs {
		acc += x.v
	}
	return wrap(acc)
}

// SumSeq is [Sum] over a sequence, in iteration order.
func SumSeq[T Native](seq iter.Seq[Float[T]]) Float[T] {
	var acc T
	for x := range seq {
		acc += x.v
	}
	return wrap(acc)
}
