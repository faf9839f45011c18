// Package collect builds fixed-length arrays from sequences without ever
// handing back a partially filled result.
//
// Array pulls exactly n items. If the source runs dry first, every element
// that was already stored is released (see WithRelease), the buffer is
// cleared and ErrFill is returned. If the source is longer, the excess is left
// unread, so a Cursor can be resumed afterwards:
//
//	cur := collect.NewCursor(collect.Range(0, 3))
//	defer cur.Stop()
//
//	arr, err := collect.Array(cur.Next, 2) // [0 1], nil
//	next, _ := cur.Next()                  // 2
package collect

import (
	"errors"
	"fmt"
	"io"
	"iter"

	errors2 "github.com/amp-labs/aoc-common/errors"
)

var (
	// ErrFill is returned when the source yields fewer items than the
	// requested length. The partial result has been released.
	ErrFill = errors.New("the array was partially filled, and therefore dropped")

	// ErrInvalidLength is returned for a negative length.
	ErrInvalidLength = errors.New("invalid array length")
)

// Option configures Array and friends.
type Option[T any] func(*options[T])

type options[T any] struct {
	release func(T) error
}

// WithRelease sets the function used to release each stored element when the
// array cannot be completed. Without it, elements that implement io.Closer
// are closed and everything else is simply dropped.
func WithRelease[T any](release func(T) error) Option[T] {
	return func(o *options[T]) {
		o.release = release
	}
}

func closeIfCloser[T any](v T) error {
	if c, ok := any(v).(io.Closer); ok {
		return c.Close()
	}

	return nil
}

// partial owns a buffer of which only the first filled slots are populated.
type partial[T any] struct {
	data    []T
	filled  int
	release func(T) error
}

func (p *partial[T]) push(v T) {
	p.data[p.filled] = v
	p.filled++
}

func (p *partial[T]) full() bool {
	return p.filled == len(p.data)
}

// drop releases exactly the populated prefix, once, and clears it.
func (p *partial[T]) drop() error {
	errs := &errors2.Collection{}

	for i := range p.filled {
		errs.Add(p.release(p.data[i]))
	}

	clear(p.data[:p.filled])
	p.data = nil
	p.filled = 0

	return errs.GetError()
}

// finish hands the completed buffer to the caller. The partial no longer owns it.
func (p *partial[T]) finish() []T {
	out := p.data
	p.data = nil
	p.filled = 0

	return out
}

// Array pulls exactly n items from next and returns them as a slice of length n.
//
// When next reports exhaustion before n items were pulled, the stored items
// are released and ErrFill is returned; release failures are joined onto it,
// so errors.Is(err, ErrFill) still holds. If next panics, the stored items
// are released before the panic continues.
func Array[T any](next func() (T, bool), n int, opts ...Option[T]) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}

	cfg := &options[T]{release: closeIfCloser[T]}

	for _, opt := range opts {
		opt(cfg)
	}

	arr := &partial[T]{data: make([]T, n), release: cfg.release}
	settled := false

	defer func() {
		if !settled {
			_ = arr.drop()
		}
	}()

	for !arr.full() {
		v, ok := next()
		if !ok {
			break
		}

		arr.push(v)
	}

	settled = true

	if !arr.full() {
		errs := &errors2.Collection{}
		errs.Add(arr.drop())

		return nil, errs.Wrap(ErrFill)
	}

	return arr.finish(), nil
}

// ArrayFunc is Array with every item converted through f as it is stored.
func ArrayFunc[T, U any](next func() (T, bool), n int, f func(T) U, opts ...Option[U]) ([]U, error) {
	return Array(func() (U, bool) {
		v, ok := next()
		if !ok {
			var zero U

			return zero, false
		}

		return f(v), true
	}, n, opts...)
}

// ArrayFromSeq is Array over a whole sequence. Iteration of seq is stopped
// once n items have been read.
func ArrayFromSeq[T any](seq iter.Seq[T], n int, opts ...Option[T]) ([]T, error) {
	next, stop := iter.Pull(seq)
	defer stop()

	return Array(next, n, opts...)
}
