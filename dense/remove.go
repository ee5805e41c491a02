package dense

import (
	"slices"

	"github.com/c-kruse/listidx"
)

type Ordering int

const (
	Ascending  Ordering = 0
	Descending Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// RemoveIndices removes the elements at each of the given positions of s.
// Positions refer to s as it was before the call, regardless of the order
// they are given in. The removed elements are returned in descending order of
// their original position. indices is not modified; s is compacted in place
// the way slices.Delete does, so the returned slice must replace it.
//
// All positions are validated before anything is removed: a repeated
// position fails with listidx.ErrInvalidArgument and a position outside of s
// with listidx.ErrIndexOutOfRange, leaving s untouched.
func RemoveIndices[S ~[]E, E any](s S, indices []int) (S, []E, error) {
	desc := slices.Clone(indices)
	slices.Sort(desc)
	slices.Reverse(desc)
	return removeDescending(s, desc)
}

// RemoveSorted is RemoveIndices for positions already sorted in the given
// order. Input that is not strictly monotone in that order fails with
// listidx.ErrInvalidArgument.
func RemoveSorted[S ~[]E, E any](s S, indices []int, order Ordering) (S, []E, error) {
	for i := 1; i < len(indices); i++ {
		prev, curr := indices[i-1], indices[i]
		if prev == curr {
			return s, nil, listidx.InvalidArgument("repeated index %d", curr)
		}
		if (order == Ascending) != (prev < curr) {
			return s, nil, listidx.InvalidArgument("indices not in %s order at position %d", order, i)
		}
	}
	desc := indices
	if order == Ascending {
		desc = slices.Clone(indices)
		slices.Reverse(desc)
	}
	return removeDescending(s, desc)
}

func removeDescending[S ~[]E, E any](s S, desc []int) (S, []E, error) {
	for i, idx := range desc {
		if i > 0 && desc[i-1] == idx {
			return s, nil, listidx.InvalidArgument("repeated index %d", idx)
		}
		if idx < 0 || idx >= len(s) {
			return s, nil, &listidx.IndexError{Index: idx, Len: len(s)}
		}
	}
	removed := make([]E, len(desc))
	if len(desc) == 0 {
		return s, removed, nil
	}
	for i, idx := range desc {
		removed[i] = s[idx]
	}

	// single compaction pass from the lowest removed position
	next := len(desc) - 1
	w := desc[next]
	for r := w; r < len(s); r++ {
		if next >= 0 && r == desc[next] {
			next--
			continue
		}
		s[w] = s[r]
		w++
	}
	clear(s[w:])
	return s[:w], removed, nil
}
