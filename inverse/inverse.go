// inverse builds element to position indices from ordered sequences.
package inverse

import (
	"github.com/c-kruse/listidx"
)

// IndexOf maps each element of seq to its position. seq must not repeat an
// element; the first repeat fails with a *listidx.DuplicateElementError
// naming the element and the position it repeated at.
func IndexOf[E comparable](seq []E) (map[E]int, error) {
	result := make(map[E]int, len(seq)+1)
	if err := PutIndices(result, seq, 0); err != nil {
		return nil, err
	}
	return result, nil
}

// PutIndices assigns start, start+1, ... to the elements of seq in dst. An
// element already present in dst, whether from seq or from before the call,
// fails with a *listidx.DuplicateElementError whose Index is the position in
// seq. Entries written before the failure are left in dst.
func PutIndices[E comparable](dst map[E]int, seq []E, start int) error {
	if dst == nil {
		return listidx.InvalidArgument("nil destination map")
	}
	for i, e := range seq {
		if _, seen := dst[e]; seen {
			return &listidx.DuplicateElementError{Element: e, Index: i}
		}
		dst[e] = start + i
	}
	return nil
}

// Positions maps each element of seq to every position it occurs at. The
// collection for an element is created by newCollection the first time the
// element is seen, and receives positions in scan order. A nil newCollection
// fails with listidx.ErrInvalidArgument.
func Positions[E comparable, C Collection](seq []E, newCollection func() C) (map[E]C, error) {
	if newCollection == nil {
		return nil, listidx.InvalidArgument("nil collection constructor")
	}
	result := make(map[E]C, len(seq)+1)
	for i, e := range seq {
		positions, ok := result[e]
		if !ok {
			positions = newCollection()
			result[e] = positions
		}
		positions.Add(i)
	}
	return result, nil
}

// PositionLists is Positions with plain ascending slices.
func PositionLists[E comparable](seq []E) map[E][]int {
	result := make(map[E][]int, len(seq)+1)
	for i, e := range seq {
		result[e] = append(result[e], i)
	}
	return result
}
