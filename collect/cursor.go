package collect

import (
	"iter"

	"github.com/amp-labs/aoc-common/numeric"
)

// Cursor is a stateful position in a sequence. Items pulled through Next are
// consumed: a later Next or All continues where the previous call stopped,
// which is what lets Array leave the excess of a longer source unread.
//
// A Cursor must be stopped with Stop once it is no longer needed unless it
// was drained to the end.
type Cursor[T any] struct {
	next func() (T, bool)
	stop func()
}

// NewCursor starts pulling from seq.
func NewCursor[T any](seq iter.Seq[T]) *Cursor[T] {
	next, stop := iter.Pull(seq)

	return &Cursor[T]{next: next, stop: stop}
}

// Next returns the next item and true, or the zero value and false once the
// sequence is exhausted or the cursor was stopped.
func (c *Cursor[T]) Next() (T, bool) { //nolint:ireturn
	return c.next()
}

// All yields the items that have not been consumed yet.
func (c *Cursor[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := c.next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Stop releases the underlying iterator. It is safe to call more than once.
func (c *Cursor[T]) Stop() {
	c.stop()
}

// Range yields start, start+1, ..., end-1.
func Range[N numeric.Integer](start, end N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for i := start; i < end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}
