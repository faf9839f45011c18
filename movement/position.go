// Package movement models walking around a 2D grid: a Direction enum that can
// turn and reverse, and a generic Position with the arithmetic puzzles need.
//
// Positions use screen coordinates: x grows to the right and y grows down, so
// moving Up decreases y. RevChange flips the y axis for puzzles that use
// mathematical coordinates instead.
//
//	pos := movement.NewPosition(0, 0)
//	pos.Change(movement.Up, 1)    // (0, -1)
//	pos.RevChange(movement.Up, 2) // (0, 1)
package movement

import (
	"cmp"
	"fmt"
	"iter"

	"github.com/amp-labs/aoc-common/numeric"
	"github.com/amp-labs/aoc-common/tuple"
)

// Position is a point on a 2D grid. Positions are comparable with == and
// ordered lexicographically on (x, y) by Compare.
type Position[N numeric.Number] struct {
	x N
	y N
}

// NewPosition returns the position (x, y).
func NewPosition[N numeric.Number](x, y N) Position[N] {
	return Position[N]{x: x, y: y}
}

// FromTuple is NewPosition under the name used when converting from (x, y).
func FromTuple[N numeric.Number](x, y N) Position[N] {
	return NewPosition(x, y)
}

// FromPair converts a pair in (x, y) order.
func FromPair[N numeric.Number](p tuple.Pair[N]) Position[N] {
	return NewPosition(p.First, p.Second)
}

// X returns the x component.
func (p Position[N]) X() N { return p.x } //nolint:ireturn

// Y returns the y component.
func (p Position[N]) Y() N { return p.y } //nolint:ireturn

// RefX returns a pointer to the x component.
func (p *Position[N]) RefX() *N { return &p.x }

// RefY returns a pointer to the y component.
func (p *Position[N]) RefY() *N { return &p.y }

// Ref returns pointers to both components.
func (p *Position[N]) Ref() (*N, *N) { return &p.x, &p.y }

// ToTuple returns (x, y).
func (p Position[N]) ToTuple() (N, N) { //nolint:ireturn
	return p.x, p.y
}

// ToPair returns the position as a pair in (x, y) order.
func (p Position[N]) ToPair() tuple.Pair[N] {
	return tuple.NewPair(p.x, p.y)
}

// Add returns the componentwise sum p + other.
func (p Position[N]) Add(other Position[N]) Position[N] {
	return Position[N]{x: p.x + other.x, y: p.y + other.y}
}

// Sub returns the componentwise difference p - other.
func (p Position[N]) Sub(other Position[N]) Position[N] {
	return Position[N]{x: p.x - other.x, y: p.y - other.y}
}

// Change moves the position steps units in direction d. Up decreases y and
// Down increases it.
func (p *Position[N]) Change(d Direction, steps N) {
	switch d {
	case Up:
		p.y -= steps
	case Down:
		p.y += steps
	case Right:
		p.x += steps
	case Left:
		p.x -= steps
	}
}

// RevChange is Change with the y axis inverted: Up increases y.
func (p *Position[N]) RevChange(d Direction, steps N) {
	switch d {
	case Up:
		p.y += steps
	case Down:
		p.y -= steps
	case Right:
		p.x += steps
	case Left:
		p.x -= steps
	}
}

// Step returns the position one unit away in direction d. Like Change, it
// wraps around at the bounds of N; use CheckedStep to detect that.
func (p Position[N]) Step(d Direction) Position[N] {
	p.Change(d, 1)

	return p
}

// CheckedStep is Step that reports false when the move would leave the range
// of N, e.g. stepping Up from y == 0 with an unsigned N.
func (p Position[N]) CheckedStep(d Direction) (Position[N], bool) {
	next := p.Step(d)

	return next, p.IsAdjacent(next)
}

// IncrementX adds steps to x.
func (p *Position[N]) IncrementX(steps N) { p.x += steps }

// DecrementX subtracts steps from x.
func (p *Position[N]) DecrementX(steps N) { p.x -= steps }

// IncrementY adds steps to y.
func (p *Position[N]) IncrementY(steps N) { p.y += steps }

// DecrementY subtracts steps from y.
func (p *Position[N]) DecrementY(steps N) { p.y -= steps }

// IsAdjacent reports whether other is one of the eight neighbours of p.
// A position is not adjacent to itself.
//
// The componentwise distance is taken with numeric.AbsDiff, so unsigned
// positions near zero work without wrapping.
func (p Position[N]) IsAdjacent(other Position[N]) bool {
	dx := numeric.AbsDiff(p.x, other.x)
	dy := numeric.AbsDiff(p.y, other.y)

	switch {
	case dx == 0 && dy == 1:
		return true
	case dx == 1 && dy == 0:
		return true
	case dx == 1 && dy == 1:
		return true
	default:
		return false
	}
}

// Abs returns the position with both components made non-negative.
// See numeric.Abs for the behaviour on the most negative signed value.
func (p Position[N]) Abs() Position[N] {
	return Position[N]{x: numeric.Abs(p.x), y: numeric.Abs(p.y)}
}

// Compare orders positions by x, then y, following the cmp.Compare contract.
func (p Position[N]) Compare(other Position[N]) int {
	if c := cmp.Compare(p.x, other.x); c != 0 {
		return c
	}

	return cmp.Compare(p.y, other.y)
}

// Less reports whether p sorts before other.
func (p Position[N]) Less(other Position[N]) bool {
	return p.Compare(other) < 0
}

// Neighbors4 yields the orthogonal neighbours in Directions order. Steps that
// would wrap around the range of N are skipped, so every yielded position
// satisfies IsAdjacent.
func (p Position[N]) Neighbors4() iter.Seq[Position[N]] {
	return func(yield func(Position[N]) bool) {
		for _, d := range Directions() {
			next, ok := p.CheckedStep(d)
			if !ok {
				continue
			}

			if !yield(next) {
				return
			}
		}
	}
}

// Neighbors8 yields the orthogonal neighbours followed by the diagonals
// (up-right, down-left, down-right, up-left), skipping any that would wrap
// like Neighbors4 does.
func (p Position[N]) Neighbors8() iter.Seq[Position[N]] {
	return func(yield func(Position[N]) bool) {
		for n := range p.Neighbors4() {
			if !yield(n) {
				return
			}
		}

		for _, d := range Directions() {
			next := p.Step(d).Step(d.TurnRight())
			if !p.IsAdjacent(next) {
				continue
			}

			if !yield(next) {
				return
			}
		}
	}
}

// String formats the position as "(x, y)".
func (p Position[N]) String() string {
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
