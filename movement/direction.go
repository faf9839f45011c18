package movement

import (
	"errors"
	"fmt"
	"strings"

	"github.com/amp-labs/aoc-common/numeric"
)

// ErrInvalidDirection is returned when text does not name a direction.
var ErrInvalidDirection = errors.New("invalid direction")

// Direction is one of the four axis aligned headings on a grid.
// The declaration order (Up, Down, Right, Left) is the ordering used by <.
type Direction uint8

const (
	Up Direction = iota
	Down
	Right
	Left
)

// Directions returns all four directions in declaration order.
func Directions() []Direction {
	return []Direction{Up, Down, Right, Left}
}

// InitUp returns Up.
func InitUp() Direction { return Up }

// InitDown returns Down.
func InitDown() Direction { return Down }

// InitRight returns Right.
func InitRight() Direction { return Right }

// InitLeft returns Left.
func InitLeft() Direction { return Left }

// IsValid reports whether d is one of the four declared directions.
func (d Direction) IsValid() bool {
	return d <= Left
}

// TurnRight rotates clockwise: Up, Right, Down, Left, Up.
func (d Direction) TurnRight() Direction {
	switch d {
	case Up:
		return Right
	case Right:
		return Down
	case Down:
		return Left
	case Left:
		return Up
	default:
		return d
	}
}

// TurnLeft rotates counter-clockwise: Up, Left, Down, Right, Up.
func (d Direction) TurnLeft() Direction {
	switch d {
	case Up:
		return Left
	case Left:
		return Down
	case Down:
		return Right
	case Right:
		return Up
	default:
		return d
	}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return d
	}
}

// Delta returns the unit step for d in screen coordinates, where y grows
// downwards: Up is (0, -1) and Right is (1, 0).
func Delta[N numeric.Signed | numeric.Float](d Direction) (N, N) { //nolint:ireturn
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Right:
		return 1, 0
	case Left:
		return -1, 0
	default:
		return 0, 0
	}
}

// String returns the direction name, e.g. "Up".
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection reads a direction from its name (any case), a single letter
// (U, D, R, L or the compass N, S, E, W) or an arrow (^, v, >, <).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u", "n", "north", "^":
		return Up, nil
	case "down", "d", "s", "south", "v":
		return Down, nil
	case "right", "r", "e", "east", ">":
		return Right, nil
	case "left", "l", "w", "west", "<":
		return Left, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDirection, uint8(d))
	}

	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using ParseDirection.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}
