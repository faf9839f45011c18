//nolint:ireturn
package tuple

// NewPair creates a Pair from two values of the same type.
func NewPair[T any](first, second T) Pair[T] {
	return Pair[T]{
		First:  first,
		Second: second,
	}
}

// Pair is a type that represents two values of the same type.
type Pair[T any] struct {
	First  T
	Second T
}

// Values returns both members, in order.
func (p Pair[T]) Values() (T, T) {
	return p.First, p.Second
}

// Swap returns the pair with its members exchanged.
func (p Pair[T]) Swap() Pair[T] {
	return Pair[T]{First: p.Second, Second: p.First}
}

// NewTriple creates a Triple from three values of the same type.
func NewTriple[T any](first, second, third T) Triple[T] {
	return Triple[T]{
		First:  first,
		Second: second,
		Third:  third,
	}
}

// Triple is a type that represents three values of the same type.
type Triple[T any] struct {
	First  T
	Second T
	Third  T
}

// Values returns all three members, in order.
func (t Triple[T]) Values() (T, T, T) {
	return t.First, t.Second, t.Third
}
