package convert

import "iter"

// TryConvert parses every item of seq as a U and returns the results in order.
// It stops at the first item that fails to parse and returns that error
// unchanged.
//
// Example:
//
//	v, err := convert.TryConvert[int64](strings.SplitSeq("1, 2, 3, 4, 5", ", "))
//	// v == []int64{1, 2, 3, 4, 5}, err == nil
func TryConvert[U Parsable, S StringLike](seq iter.Seq[S]) ([]U, error) {
	return TryConvertFunc(seq, Parse[U])
}

// TryConvertFunc is TryConvert with a caller supplied parser.
func TryConvertFunc[U any, S StringLike](seq iter.Seq[S], parse func(string) (U, error)) ([]U, error) {
	var out []U

	for v, err := range TryConvertIterFunc(seq, parse) {
		if err != nil {
			return nil, err
		}

		out = append(out, v)
	}

	return out, nil
}

// TryConvertIter returns a lazy sequence with one (value, error) result per
// item of seq. A failing item does not end the sequence: the next item is
// parsed independently, so callers can skip or count failures.
//
//	for v, err := range convert.TryConvertIter[int](strings.SplitSeq("1, 2, 3,4, 5", ", ")) {
//	    // (1, nil), (2, nil), (0, err), (5, nil)
//	}
func TryConvertIter[U Parsable, S StringLike](seq iter.Seq[S]) iter.Seq2[U, error] {
	return TryConvertIterFunc(seq, Parse[U])
}

// TryConvertIterFunc is TryConvertIter with a caller supplied parser.
func TryConvertIterFunc[U any, S StringLike](seq iter.Seq[S], parse func(string) (U, error)) iter.Seq2[U, error] {
	return func(yield func(U, error) bool) {
		for item := range seq {
			if !yield(parse(string(item))) {
				return
			}
		}
	}
}

// TryConvertIntoSlice parses items of seq into buf, in order, until either buf
// is full or seq is exhausted, and returns how many slots were written.
//
// When an item fails to parse, the count of slots written before it is
// returned together with the parse error. Those slots keep their parsed
// values; the failing slot and everything after it are left untouched.
func TryConvertIntoSlice[U Parsable, S StringLike](seq iter.Seq[S], buf []U) (int, error) {
	return TryConvertIntoSliceFunc(seq, buf, Parse[U])
}

// TryConvertIntoSliceFunc is TryConvertIntoSlice with a caller supplied parser.
func TryConvertIntoSliceFunc[U any, S StringLike](
	seq iter.Seq[S],
	buf []U,
	parse func(string) (U, error),
) (int, error) {
	if len(buf) == 0 {
		return 0, nil
	}

	written := 0

	for v, err := range TryConvertIterFunc(seq, parse) {
		if err != nil {
			return written, err
		}

		buf[written] = v
		written++

		if written == len(buf) {
			break
		}
	}

	return written, nil
}

// Successes drops the failed results of a lazy conversion and yields the rest.
func Successes[U any](seq iter.Seq2[U, error]) iter.Seq[U] {
	return func(yield func(U) bool) {
		for v, err := range seq {
			if err != nil {
				continue
			}

			if !yield(v) {
				return
			}
		}
	}
}
