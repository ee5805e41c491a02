// dense contains helpers for treating a slice as a dense, index addressable
// sequence: growing it to fit an index, materializing sparse index
// associations into it and removing batches of positions from it.
package dense

// EnsureLength grows s with zero values until it holds at least n elements.
// It reports whether s grew. Like append, the possibly reallocated slice is
// returned and must be used in place of s.
func EnsureLength[S ~[]E, E any](s S, n int) (S, bool) {
	var zero E
	return EnsureLengthFill(s, n, zero)
}

// EnsureLengthFill grows s with copies of filler until it holds at least n
// elements.
func EnsureLengthFill[S ~[]E, E any](s S, n int, filler E) (S, bool) {
	if n <= len(s) {
		return s, false
	}
	if n > cap(s) {
		grown := make(S, len(s), n)
		copy(grown, s)
		s = grown
	}
	for len(s) < n {
		s = append(s, filler)
	}
	return s, true
}

// EnsureIndex grows s so that index i is addressable.
func EnsureIndex[S ~[]E, E any](s S, i int) (S, bool) {
	return EnsureLength(s, i+1)
}

// EnsureIndexFill grows s with copies of filler so that index i is
// addressable.
func EnsureIndexFill[S ~[]E, E any](s S, i int, filler E) (S, bool) {
	return EnsureLengthFill(s, i+1, filler)
}
