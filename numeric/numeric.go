// Package numeric provides generic arithmetic helpers that work uniformly across
// Go's built-in integer and floating point types.
package numeric

// Signed is the set of built-in signed integer types.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Unsigned is the set of built-in unsigned integer types.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64 | uintptr
}

// Integer is the set of all built-in integer types.
type Integer interface {
	Signed | Unsigned
}

// Float is the set of built-in floating point types.
type Float interface {
	float32 | float64
}

// Number is every type the helpers in this module do arithmetic on.
type Number interface {
	Integer | Float
}

// Abs returns the absolute value of n. Unsigned values are returned unchanged.
//
// The most negative value of a signed type has no positive counterpart, so
// Abs(math.MinInt64) wraps around and returns math.MinInt64, the same as
// writing -n by hand. Callers that can hit that corner should widen first.
//
// Example:
//
//	numeric.Abs(-10)        // 10
//	numeric.Abs(uint8(20))  // 20
//	numeric.Abs(-2.5)       // 2.5
func Abs[N Number](n N) N { //nolint:ireturn
	if n < 0 {
		return -n
	}

	return n
}

// AbsPair returns the absolute value of both members of a pair.
func AbsPair[N Number](a, b N) (N, N) { //nolint:ireturn
	return Abs(a), Abs(b)
}

// AbsDiff returns |a - b|. Unlike Abs(a - b) it never wraps for unsigned types.
func AbsDiff[N Number](a, b N) N { //nolint:ireturn
	if a > b {
		return a - b
	}

	return b - a
}
