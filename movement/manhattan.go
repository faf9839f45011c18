package movement

import "github.com/amp-labs/aoc-common/numeric"

// ManhattanDistancer is anything that knows its Manhattan distance from the origin.
type ManhattanDistancer[N numeric.Number] interface {
	ManhattanDst() N
}

// Compile-time check that Position implements ManhattanDistancer.
var _ ManhattanDistancer[int] = Position[int]{}

// ManhattanDst returns |x| + |y|.
func (p Position[N]) ManhattanDst() N { //nolint:ireturn
	return ManhattanDst2(p.x, p.y)
}

// Distance returns the Manhattan distance between p and other.
func (p Position[N]) Distance(other Position[N]) N { //nolint:ireturn
	return numeric.AbsDiff(p.x, other.x) + numeric.AbsDiff(p.y, other.y)
}

// ManhattanDst2 returns |x| + |y| for a coordinate pair.
func ManhattanDst2[N numeric.Number](x, y N) N { //nolint:ireturn
	return numeric.Abs(x) + numeric.Abs(y)
}

// ManhattanDst3 returns |x| + |y| + |z| for a coordinate triple.
func ManhattanDst3[N numeric.Number](x, y, z N) N { //nolint:ireturn
	return numeric.Abs(x) + numeric.Abs(y) + numeric.Abs(z)
}
