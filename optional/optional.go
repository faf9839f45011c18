// Package optional provides a Value type that explicitly models presence or
// absence, so "not chosen yet" does not need a sentinel member in an enum.
package optional

import (
	"fmt"
	"iter"
)

// Value holds either one T or nothing.
// Use Some(value) to create a present Value and None() for an empty one.
// The zero Value is empty.
type Value[T any] struct {
	value T
	isSet bool
}

// Some creates a Value containing the given value.
func Some[T any](value T) Value[T] {
	return Value[T]{value: value, isSet: true}
}

// None creates an empty Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// All yields the value if present and nothing otherwise.
func (o Value[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.isSet {
			yield(o.value)
		}
	}
}

// NonEmpty returns true if the Value contains a value.
func (o Value[T]) NonEmpty() bool {
	return o.isSet
}

// Empty returns true if the Value does not contain a value.
func (o Value[T]) Empty() bool {
	return !o.isSet
}

// Get returns the value and whether it is present.
func (o Value[T]) Get() (T, bool) { //nolint:ireturn
	return o.value, o.isSet
}

// GetOrElse returns the value if present, or defaultValue otherwise.
func (o Value[T]) GetOrElse(defaultValue T) T { //nolint:ireturn
	if o.isSet {
		return o.value
	}

	return defaultValue
}

// String returns "Some(value)" or "None".
func (o Value[T]) String() string {
	if o.isSet {
		return fmt.Sprintf("Some(%v)", o.value)
	}

	return "None"
}

// Map applies f to the value if present.
func Map[T any, U any](o Value[T], f func(T) U) Value[U] {
	if o.isSet {
		return Some(f(o.value))
	}

	return None[U]()
}
