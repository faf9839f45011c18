// Package convert turns sequences of values into sequences or collections of
// another type, either through a total mapping or by parsing string-like items.
//
// Every operation comes in three shapes: an eager one that returns a slice, a
// lazy one that returns an iterator, and one that fills a caller owned buffer.
//
//	v, err := convert.TryConvert[int64](strings.SplitSeq("1, 2, 3", ", "))
//	// v == []int64{1, 2, 3}
package convert

import (
	"strconv"

	"github.com/amp-labs/aoc-common/numeric"
)

// Parsable is every type Parse knows how to produce from a string.
type Parsable interface {
	numeric.Number | bool | string
}

// StringLike is any item type that can be viewed as text.
type StringLike interface {
	~string | ~[]byte
}

// Parse parses s as a U. Integers are read in base 10 with the bit size of U,
// so out-of-range values fail. The error is whatever strconv returned.
func Parse[U Parsable](s string) (U, error) { //nolint:ireturn,cyclop,funlen
	var out U

	var err error

	switch p := any(&out).(type) {
	case *int:
		var v int64
		v, err = strconv.ParseInt(s, 10, strconv.IntSize)
		*p = int(v)
	case *int8:
		var v int64
		v, err = strconv.ParseInt(s, 10, 8)
		*p = int8(v)
	case *int16:
		var v int64
		v, err = strconv.ParseInt(s, 10, 16)
		*p = int16(v)
	case *int32:
		var v int64
		v, err = strconv.ParseInt(s, 10, 32)
		*p = int32(v)
	case *int64:
		*p, err = strconv.ParseInt(s, 10, 64)
	case *uint:
		var v uint64
		v, err = strconv.ParseUint(s, 10, strconv.IntSize)
		*p = uint(v)
	case *uint8:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 8)
		*p = uint8(v)
	case *uint16:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 16)
		*p = uint16(v)
	case *uint32:
		var v uint64
		v, err = strconv.ParseUint(s, 10, 32)
		*p = uint32(v)
	case *uint64:
		*p, err = strconv.ParseUint(s, 10, 64)
	case *uintptr:
		var v uint64
		v, err = strconv.ParseUint(s, 10, strconv.IntSize)
		*p = uintptr(v)
	case *float32:
		var v float64
		v, err = strconv.ParseFloat(s, 32)
		*p = float32(v)
	case *float64:
		*p, err = strconv.ParseFloat(s, 64)
	case *bool:
		*p, err = strconv.ParseBool(s)
	case *string:
		*p = s
	}

	if err != nil {
		var zero U

		return zero, err
	}

	return out, nil
}
