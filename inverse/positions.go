package inverse

import (
	"slices"
	"sort"
)

// Collection accumulates the positions at which an element occurs.
type Collection interface {
	Add(pos int)
	Len() int
	// Positions returns the collected positions. The order depends on the
	// implementation.
	Positions() []int
}

var (
	_ Collection = (*List)(nil)
	_ Collection = Set(nil)
	_ Collection = (*Sorted)(nil)
)

// List keeps positions in the order they were added.
type List []int

func NewList() *List {
	return &List{}
}

func (l *List) Add(pos int) {
	*l = append(*l, pos)
}

func (l *List) Len() int {
	return len(*l)
}

func (l *List) Positions() []int {
	return slices.Clone([]int(*l))
}

// Set is an unordered set of positions.
type Set map[int]struct{}

func NewSet() Set {
	return make(Set)
}

func (s Set) Add(pos int) {
	s[pos] = struct{}{}
}

func (s Set) Remove(pos int) bool {
	_, exists := s[pos]
	if exists {
		delete(s, pos)
	}
	return exists
}

func (s Set) Contains(pos int) bool {
	_, exists := s[pos]
	return exists
}

func (s Set) Len() int {
	return len(s)
}

// Positions returns the members of s in no particular order.
func (s Set) Positions() []int {
	out := make([]int, 0, len(s))
	for pos := range s {
		out = append(out, pos)
	}
	return out
}

// Sorted keeps positions ascending and free of repeats.
type Sorted struct {
	positions []int
}

func NewSorted() *Sorted {
	return &Sorted{}
}

func (s *Sorted) Add(pos int) {
	i := sort.SearchInts(s.positions, pos)
	if i < len(s.positions) && s.positions[i] == pos {
		return
	}
	s.positions = slices.Insert(s.positions, i, pos)
}

func (s *Sorted) Len() int {
	return len(s.positions)
}

func (s *Sorted) Positions() []int {
	return slices.Clone(s.positions)
}

// Descending returns the positions from largest to smallest, the order in
// which they can be removed from a slice one at a time.
func (s *Sorted) Descending() []int {
	out := slices.Clone(s.positions)
	slices.Reverse(out)
	return out
}
