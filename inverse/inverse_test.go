package inverse

import (
	"errors"
	"testing"

	"github.com/c-kruse/listidx"
	"github.com/c-kruse/listidx/dense"
	"github.com/google/go-cmp/cmp/cmpopts"
	"gotest.tools/assert"
)

func TestIndexOf(t *testing.T) {
	actual, err := IndexOf([]string{"the", "quick", "brown", "fox"})
	assert.Check(t, err)
	assert.DeepEqual(t, actual, map[string]int{
		"the": 0, "quick": 1, "brown": 2, "fox": 3,
	})

	actual, err = IndexOf([]string{})
	assert.Check(t, err)
	assert.Equal(t, len(actual), 0)
}

func TestIndexOfDuplicate(t *testing.T) {
	testCases := []struct {
		Name        string
		Seq         []string
		ExpectIndex int
		ExpectElem  string
	}{
		{
			Name:        "adjacent",
			Seq:         []string{"a", "a"},
			ExpectIndex: 1,
			ExpectElem:  "a",
		}, {
			Name:        "apart",
			Seq:         []string{"x", "b", "c", "x", "d"},
			ExpectIndex: 3,
			ExpectElem:  "x",
		}, {
			Name:        "first repeat reported",
			Seq:         []string{"a", "b", "b", "a"},
			ExpectIndex: 2,
			ExpectElem:  "b",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			actual, err := IndexOf(tc.Seq)
			assert.Assert(t, actual == nil)
			assert.Assert(t, errors.Is(err, listidx.ErrDuplicateElement))
			var dupErr *listidx.DuplicateElementError
			assert.Assert(t, errors.As(err, &dupErr))
			assert.Equal(t, dupErr.Index, tc.ExpectIndex)
			assert.Equal(t, dupErr.Element, any(tc.ExpectElem))
		})
	}
}

func TestPutIndices(t *testing.T) {
	dst := map[string]int{"<unk>": 0}
	err := PutIndices(dst, []string{"a", "b"}, 1)
	assert.Check(t, err)
	assert.DeepEqual(t, dst, map[string]int{"<unk>": 0, "a": 1, "b": 2})

	err = PutIndices(dst, []string{"c", "a", "d"}, 3)
	assert.Assert(t, errors.Is(err, listidx.ErrDuplicateElement))
	// no rollback of the entry written before the repeat
	assert.DeepEqual(t, dst, map[string]int{"<unk>": 0, "a": 1, "b": 2, "c": 3})

	err = PutIndices[string](nil, []string{"a"}, 0)
	assert.Assert(t, errors.Is(err, listidx.ErrInvalidArgument))
}

func TestForwardInverseRoundTrip(t *testing.T) {
	sequences := [][]string{
		{},
		{"solo"},
		{"a", "b", "c", "d", "e"},
		{"z", "y", "x"},
	}
	for _, seq := range sequences {
		inverted, err := IndexOf(seq)
		assert.Check(t, err)
		forward := make(map[int]string, len(inverted))
		for e, i := range inverted {
			forward[i] = e
		}
		actual, err := dense.FromIndexMap(forward)
		assert.Check(t, err)
		assert.DeepEqual(t, actual, seq, cmpopts.EquateEmpty())
	}
}

func TestPositions(t *testing.T) {
	seq := []string{"a", "b", "a", "c", "b", "a"}
	expected := map[string][]int{
		"a": {0, 2, 5},
		"b": {1, 4},
		"c": {3},
	}

	t.Run("list", func(t *testing.T) {
		actual, err := Positions(seq, NewList)
		assert.Check(t, err)
		assert.Equal(t, len(actual), 3)
		for e, positions := range actual {
			assert.DeepEqual(t, positions.Positions(), expected[e])
		}
	})
	t.Run("set", func(t *testing.T) {
		actual, err := Positions(seq, NewSet)
		assert.Check(t, err)
		assert.Equal(t, len(actual), 3)
		for e, positions := range actual {
			assert.DeepEqual(t, positions.Positions(), expected[e], cmpopts.SortSlices(func(a, b int) bool { return a < b }))
		}
		assert.Assert(t, actual["a"].Contains(5))
		assert.Assert(t, !actual["c"].Contains(5))
	})
	t.Run("sorted", func(t *testing.T) {
		actual, err := Positions(seq, NewSorted)
		assert.Check(t, err)
		for e, positions := range actual {
			assert.DeepEqual(t, positions.Positions(), expected[e])
		}
		assert.DeepEqual(t, actual["a"].Descending(), []int{5, 2, 0})
	})
	t.Run("plain", func(t *testing.T) {
		assert.DeepEqual(t, PositionLists(seq), expected)
	})
}

func TestPositionsNilConstructor(t *testing.T) {
	actual, err := Positions[string, *List]([]string{"a"}, nil)
	assert.Assert(t, errors.Is(err, listidx.ErrInvalidArgument))
	assert.ErrorContains(t, err, "nil collection constructor")
	assert.Assert(t, actual == nil)
}

func TestPositionsComplete(t *testing.T) {
	seq := []int{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	actual := PositionLists(seq)
	total := 0
	for e, positions := range actual {
		total += len(positions)
		for _, pos := range positions {
			assert.Equal(t, seq[pos], e)
		}
	}
	assert.Equal(t, total, len(seq))
}

func TestCollections(t *testing.T) {
	sorted := NewSorted()
	for _, pos := range []int{5, 1, 3, 1, 9} {
		sorted.Add(pos)
	}
	assert.DeepEqual(t, sorted.Positions(), []int{1, 3, 5, 9})
	assert.Equal(t, sorted.Len(), 4)

	set := NewSet()
	set.Add(2)
	set.Add(2)
	assert.Equal(t, set.Len(), 1)
	assert.Assert(t, set.Remove(2))
	assert.Assert(t, !set.Remove(2))

	list := NewList()
	list.Add(4)
	list.Add(4)
	assert.DeepEqual(t, list.Positions(), []int{4, 4})
	assert.Equal(t, list.Len(), 2)
}
