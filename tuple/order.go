//nolint:ireturn
package tuple

import (
	"cmp"

	"facette.io/natsort"
)

// SortBiggest returns (a, b) if a is strictly greater than b, and (b, a)
// otherwise. Equal values therefore come back swapped, which is invisible
// for ordered types but observable through SortBiggestFunc.
func SortBiggest[T cmp.Ordered](a, b T) (T, T) {
	return SortBiggestFunc(a, b, cmp.Compare[T])
}

// SortBiggestFunc is SortBiggest using compare to order the values.
// compare follows the cmp.Compare contract.
func SortBiggestFunc[T any](a, b T, compare func(a, b T) int) (T, T) {
	if compare(a, b) > 0 {
		return a, b
	}

	return b, a
}

// SortSmallest returns (a, b) if a <= b, and (b, a) otherwise.
func SortSmallest[T cmp.Ordered](a, b T) (T, T) {
	return SortSmallestFunc(a, b, cmp.Compare[T])
}

// SortSmallestFunc is SortSmallest using compare to order the values.
func SortSmallestFunc[T any](a, b T, compare func(a, b T) int) (T, T) {
	if compare(a, b) > 0 {
		return b, a
	}

	return a, b
}

// SortNatural is SortSmallest under natural string order, where runs of
// digits compare numerically: "x9" sorts before "x10".
func SortNatural(a, b string) (string, string) {
	if natsort.Compare(b, a) {
		return b, a
	}

	return a, b
}

// MinMax returns the pair in ascending order. Ties keep their original order.
func MinMax[T cmp.Ordered](p Pair[T]) Pair[T] {
	return MinMaxFunc(p, cmp.Compare[T])
}

// MinMaxFunc is MinMax using compare to order the members.
func MinMaxFunc[T any](p Pair[T], compare func(a, b T) int) Pair[T] {
	if compare(p.Second, p.First) < 0 {
		return p.Swap()
	}

	return p
}

// MaxMin returns the pair in descending order. Ties keep their original order.
func MaxMin[T cmp.Ordered](p Pair[T]) Pair[T] {
	return MaxMinFunc(p, cmp.Compare[T])
}

// MaxMinFunc is MaxMin using compare to order the members.
func MaxMinFunc[T any](p Pair[T], compare func(a, b T) int) Pair[T] {
	if compare(p.First, p.Second) < 0 {
		return p.Swap()
	}

	return p
}
