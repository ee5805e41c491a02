package indexmap

import (
	"maps"
)

// SparseMap is the capability an integer keyed map needs for a Map to wrap
// it.
type SparseMap[V any] interface {
	Get(index int) (value V, found bool)
	Put(index int, value V) (prev V, existed bool)
	Remove(index int) (prev V, existed bool)
	Len() int
	Keys() []int
}

// Clearer is implemented by sparse maps that can drop all of their entries
// at once.
type Clearer interface {
	Clear()
}

var (
	_ SparseMap[int] = HashMap[int](nil)
	_ Clearer        = HashMap[int](nil)
)

// HashMap adapts a native go map to SparseMap.
type HashMap[V any] map[int]V

func (h HashMap[V]) Get(index int) (V, bool) {
	v, ok := h[index]
	return v, ok
}

func (h HashMap[V]) Put(index int, value V) (V, bool) {
	prev, existed := h[index]
	h[index] = value
	return prev, existed
}

func (h HashMap[V]) Remove(index int) (V, bool) {
	prev, existed := h[index]
	if existed {
		delete(h, index)
	}
	return prev, existed
}

func (h HashMap[V]) Len() int {
	return len(h)
}

func (h HashMap[V]) Keys() []int {
	keys := make([]int, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	return keys
}

func (h HashMap[V]) Clear() {
	maps.DeleteFunc(h, func(int, V) bool { return true })
}
