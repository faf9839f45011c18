package convert

import "iter"

// Convert maps every item of seq through f and collects the results.
//
// Example:
//
//	positions := convert.Convert(slices.Values(pairs), movement.FromPair[int])
func Convert[T, U any](seq iter.Seq[T], f func(T) U) []U {
	var out []U

	for v := range ConvertIter(seq, f) {
		out = append(out, v)
	}

	return out
}

// ConvertIter returns a lazy sequence of f applied to each item of seq.
func ConvertIter[T, U any](seq iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for item := range seq {
			if !yield(f(item)) {
				return
			}
		}
	}
}

// ConvertIntoSlice writes f of each item of seq into buf, in order, and
// returns the number of slots written: the smaller of len(buf) and the
// length of seq. Items past the end of buf are not pulled from seq.
func ConvertIntoSlice[T, U any](seq iter.Seq[T], buf []U, f func(T) U) int {
	if len(buf) == 0 {
		return 0
	}

	written := 0

	for v := range ConvertIter(seq, f) {
		buf[written] = v
		written++

		if written == len(buf) {
			break
		}
	}

	return written
}
