package numeric

// Fold applies op from left to right: op(op(op(first, rest[0]), rest[1]), ...).
// With no rest values it returns first.
//
// Example:
//
//	numeric.Fold(func(a, b int) int { return a - b }, 5, 4, 1) // 0
func Fold[N any](op func(acc, next N) N, first N, rest ...N) N { //nolint:ireturn
	acc := first

	for _, v := range rest {
		acc = op(acc, v)
	}

	return acc
}

// Sum adds all values. Sum of nothing is zero.
func Sum[N Number](values ...N) N { //nolint:ireturn
	var total N

	for _, v := range values {
		total += v
	}

	return total
}

// Difference subtracts every following value from first.
func Difference[N Number](first N, rest ...N) N { //nolint:ireturn
	return Fold(func(a, b N) N { return a - b }, first, rest...)
}

// Product multiplies first by every following value.
func Product[N Number](first N, rest ...N) N { //nolint:ireturn
	return Fold(func(a, b N) N { return a * b }, first, rest...)
}

// Quotient divides first by every following value in turn.
// Integer division by zero panics, as with the / operator.
func Quotient[N Number](first N, rest ...N) N { //nolint:ireturn
	return Fold(func(a, b N) N { return a / b }, first, rest...)
}

// Remainder takes the remainder of first by every following value in turn.
// A zero divisor panics, as with the % operator.
func Remainder[N Integer](first N, rest ...N) N { //nolint:ireturn
	return Fold(func(a, b N) N { return a % b }, first, rest...)
}
