package dense

import (
	"github.com/c-kruse/listidx"
)

// Pair associates an Element with the position it should occupy.
type Pair[E any] struct {
	Index   int
	Element E
}

// FromIndexMap builds a slice where each key of m holds its value. Slots for
// indices missing from m hold the zero value.
func FromIndexMap[E any](m map[int]E) ([]E, error) {
	var zero E
	return FromIndexMapFill(m, zero)
}

// FromIndexMapFill is FromIndexMap with filler for unassigned slots.
func FromIndexMapFill[E any](m map[int]E, filler E) ([]E, error) {
	maxIndex, err := maxMapIndex(m)
	if err != nil {
		return nil, err
	}
	result, _ := EnsureIndexFill(make([]E, 0, maxIndex+1), maxIndex, filler)
	for i, e := range m {
		result[i] = e
	}
	return result, nil
}

// FromPairs builds a slice from a collection of index associations. When an
// index appears more than once the last pair wins.
func FromPairs[E any](pairs []Pair[E]) ([]E, error) {
	var zero E
	return FromPairsFill(pairs, zero)
}

// FromPairsFill is FromPairs with filler for unassigned slots.
func FromPairsFill[E any](pairs []Pair[E], filler E) ([]E, error) {
	maxIndex, err := maxPairIndex(pairs)
	if err != nil {
		return nil, err
	}
	result, _ := EnsureIndexFill(make([]E, 0, maxIndex+1), maxIndex, filler)
	for _, p := range pairs {
		result[p.Index] = p.Element
	}
	return result, nil
}

// SetIndexMap writes every value of m into s at its key, growing s with zero
// values first when the largest key does not fit. Nothing is written when any
// key is negative.
func SetIndexMap[S ~[]E, E any](s S, m map[int]E) (S, error) {
	maxIndex, err := maxMapIndex(m)
	if err != nil {
		return s, err
	}
	s, _ = EnsureIndex(s, maxIndex)
	for i, e := range m {
		s[i] = e
	}
	return s, nil
}

// SetPairs writes each pair's element into s at the pair's index in order.
func SetPairs[S ~[]E, E any](s S, pairs []Pair[E]) (S, error) {
	maxIndex, err := maxPairIndex(pairs)
	if err != nil {
		return s, err
	}
	s, _ = EnsureIndex(s, maxIndex)
	for _, p := range pairs {
		s[p.Index] = p.Element
	}
	return s, nil
}

// maxMapIndex returns the largest key of m, or -1 when m is empty.
func maxMapIndex[E any](m map[int]E) (int, error) {
	maxIndex := -1
	for i := range m {
		if i < 0 {
			return -1, listidx.InvalidArgument("negative index %d", i)
		}
		maxIndex = max(maxIndex, i)
	}
	return maxIndex, nil
}

func maxPairIndex[E any](pairs []Pair[E]) (int, error) {
	maxIndex := -1
	for _, p := range pairs {
		if p.Index < 0 {
			return -1, listidx.InvalidArgument("negative index %d", p.Index)
		}
		maxIndex = max(maxIndex, p.Index)
	}
	return maxIndex, nil
}
