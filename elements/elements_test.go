package elements

import (
	"testing"

	"gotest.tools/assert"
)

func TestUnique(t *testing.T) {
	testCases := []struct {
		Name        string
		Seq         []string
		ExpectIndex int
		ExpectDup   bool
	}{
		{Name: "empty", ExpectIndex: -1},
		{Name: "single", Seq: []string{"a"}, ExpectIndex: -1},
		{Name: "distinct", Seq: []string{"a", "b", "c"}, ExpectIndex: -1},
		{Name: "repeat", Seq: []string{"a", "b", "a", "b"}, ExpectIndex: 2, ExpectDup: true},
	}
	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			i, dup := FirstDuplicate(tc.Seq)
			assert.Equal(t, dup, tc.ExpectDup)
			assert.Equal(t, i, tc.ExpectIndex)
			assert.Equal(t, Unique(tc.Seq), !tc.ExpectDup)
		})
	}
}

func TestDedup(t *testing.T) {
	assert.DeepEqual(t, Dedup([]int{3, 1, 3, 2, 1}), []int{3, 1, 2})
	assert.DeepEqual(t, Dedup([]int{}), []int{})
}

func TestUnion(t *testing.T) {
	actual := Union([]int{1, 2}, []int{2, 3}, nil, []int{5})
	assert.DeepEqual(t, actual, map[int]struct{}{1: {}, 2: {}, 3: {}, 5: {}})
	assert.Equal(t, len(Union[int]()), 0)
}
