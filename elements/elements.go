// elements has small helpers over collections of comparable elements.
package elements

// Unique reports whether no element of xs occurs more than once.
func Unique[E comparable](xs []E) bool {
	_, found := FirstDuplicate(xs)
	return !found
}

// FirstDuplicate returns the position of the first element of xs that
// repeats an earlier one.
func FirstDuplicate[E comparable](xs []E) (int, bool) {
	seen := make(map[E]struct{}, len(xs))
	for i, x := range xs {
		if _, ok := seen[x]; ok {
			return i, true
		}
		seen[x] = struct{}{}
	}
	return -1, false
}

// Dedup returns the elements of xs without repeats, in order of first
// occurrence.
func Dedup[E comparable](xs []E) []E {
	seen := make(map[E]struct{}, len(xs))
	out := make([]E, 0, len(xs))
	for _, x := range xs {
		if _, ok := seen[x]; ok {
			continue
		}
		seen[x] = struct{}{}
		out = append(out, x)
	}
	return out
}

// Union returns the set of every element found in any of collections.
func Union[E comparable](collections ...[]E) map[E]struct{} {
	var total int
	for _, c := range collections {
		total += len(c)
	}
	result := make(map[E]struct{}, total)
	for _, c := range collections {
		for _, x := range c {
			result[x] = struct{}{}
		}
	}
	return result
}
