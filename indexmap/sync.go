package indexmap

import "sync"

// SyncMap guards both views of a Map with a single lock so that no reader
// observes one view updated without the other.
type SyncMap[V any] struct {
	mu sync.RWMutex
	m  *Map[V]
}

func NewSync[V any](entries map[int]V) (*SyncMap[V], error) {
	m, err := New(entries)
	if err != nil {
		return nil, err
	}
	return &SyncMap[V]{m: m}, nil
}

func WrapSync[V any](sparse SparseMap[V], cfg Config[V]) (*SyncMap[V], error) {
	m, err := Wrap(sparse, cfg)
	if err != nil {
		return nil, err
	}
	return &SyncMap[V]{m: m}, nil
}

func (s *SyncMap[V]) Get(index int) (V, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Get(index)
}

func (s *SyncMap[V]) ContainsKey(index int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.ContainsKey(index)
}

func (s *SyncMap[V]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Len()
}

func (s *SyncMap[V]) Keys() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Keys()
}

func (s *SyncMap[V]) Values() []V {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Values()
}

// Each calls fn for every entry while holding the read lock. fn must not
// call back into s to mutate it.
func (s *SyncMap[V]) Each(fn func(index int, value V)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	s.m.Each(fn)
}

func (s *SyncMap[V]) Put(index int, value V) (V, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Put(index, value)
}

func (s *SyncMap[V]) Remove(index int) (V, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Remove(index)
}

func (s *SyncMap[V]) PutAll(entries map[int]V) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.PutAll(entries)
}

func (s *SyncMap[V]) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m.Clear()
}

func (s *SyncMap[V]) Verify() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.m.Verify()
}
