package movement

import "github.com/amp-labs/aoc-common/optional"

// Heading is a direction that may not have been chosen yet, such as a walker
// that has not taken its first turn.
type Heading = optional.Value[Direction]

// Facing returns a Heading pointing in d.
func Facing(d Direction) Heading {
	return optional.Some(d)
}

// Unset returns a Heading with no direction.
func Unset() Heading {
	return optional.None[Direction]()
}

// TurnRightFrom turns h clockwise. An unset heading turns to Right.
func TurnRightFrom(h Heading) Direction {
	if d, ok := h.Get(); ok {
		return d.TurnRight()
	}

	return Right
}

// TurnLeftFrom turns h counter-clockwise. An unset heading turns to Left.
func TurnLeftFrom(h Heading) Direction {
	if d, ok := h.Get(); ok {
		return d.TurnLeft()
	}

	return Left
}

// ReverseFrom reverses h. An unset heading stays unset.
func ReverseFrom(h Heading) Heading {
	return optional.Map(h, Direction.Reverse)
}
