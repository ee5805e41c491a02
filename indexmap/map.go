// indexmap contains a map keyed by non-negative integers that keeps a dense
// positional mirror of its entries synchronized with the sparse map it wraps.
package indexmap

import (
	"fmt"
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/c-kruse/listidx"
	"github.com/c-kruse/listidx/dense"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pkg/errors"
)

var logger = slog.With("logger", "pkg.listidx.indexmap")

type EventHandlerFuncs[V any] struct {
	OnAdd    func(index int, value V)
	OnChange func(index int, prev, curr V)
	OnRemove func(index int, value V)
}

type Config[V any] struct {
	// Equal reports whether the two views hold the same value. Defaults to
	// cmp.Equal with unexported fields compared, NaNs equal to each other and
	// funcs ignored.
	Equal func(a, b V) bool

	EventHandlers EventHandlerFuncs[V]
}

type slot[V any] struct {
	Value V
	Set   bool
}

// Map wraps a SparseMap and mirrors its entries into a slice indexed by key.
// Reads go to the sparse map. Every mutation goes through both views and is
// checked against the value the other view held; a disagreement means the
// sparse map was modified behind the Map's back and is reported as
// listidx.ErrConsistencyViolation.
//
// Map is not safe for concurrent use. See SyncMap.
type Map[V any] struct {
	sparse SparseMap[V]
	mirror []slot[V]

	equal         func(a, b V) bool
	eventHandlers EventHandlerFuncs[V]
}

// New creates a Map over a copy of entries.
func New[V any](entries map[int]V) (*Map[V], error) {
	sparse := make(HashMap[V], len(entries))
	maps.Copy(sparse, entries)
	return Wrap[V](sparse, Config[V]{})
}

// Wrap creates a Map over sparse, building the mirror from its current
// entries. Negative keys fail with listidx.ErrInvalidArgument.
func Wrap[V any](sparse SparseMap[V], cfg Config[V]) (*Map[V], error) {
	if sparse == nil {
		return nil, listidx.InvalidArgument("nil sparse map")
	}
	if hm, ok := sparse.(HashMap[V]); ok && hm == nil {
		return nil, listidx.InvalidArgument("nil sparse map")
	}
	if cfg.Equal == nil {
		cfg.Equal = defaultEqual[V]
	}
	keys := sparse.Keys()
	pairs := make([]dense.Pair[slot[V]], 0, len(keys))
	for _, k := range keys {
		v, _ := sparse.Get(k)
		pairs = append(pairs, dense.Pair[slot[V]]{Index: k, Element: slot[V]{Value: v, Set: true}})
	}
	mirror, err := dense.FromPairs(pairs)
	if err != nil {
		return nil, fmt.Errorf("error building mirror: %w", err)
	}
	return &Map[V]{
		sparse:        sparse,
		mirror:        mirror,
		equal:         cfg.Equal,
		eventHandlers: cfg.EventHandlers,
	}, nil
}

func (m *Map[V]) Get(index int) (V, bool) {
	return m.sparse.Get(index)
}

func (m *Map[V]) ContainsKey(index int) bool {
	_, ok := m.sparse.Get(index)
	return ok
}

func (m *Map[V]) Len() int {
	return m.sparse.Len()
}

// Keys returns the keys in ascending order.
func (m *Map[V]) Keys() []int {
	keys := m.sparse.Keys()
	slices.Sort(keys)
	return keys
}

// Put stores value at index in both views and returns the value previously
// stored there.
func (m *Map[V]) Put(index int, value V) (prev V, existed bool, err error) {
	if index < 0 {
		return prev, false, listidx.InvalidArgument("negative index %d", index)
	}
	prev, existed = m.sparse.Put(index, value)
	m.grow(index)
	evicted := m.mirror[index]
	m.mirror[index] = slot[V]{Value: value, Set: true}
	if err := m.check("put", index, prev, existed, evicted); err != nil {
		return prev, existed, err
	}

	if existed && m.eventHandlers.OnChange != nil {
		m.eventHandlers.OnChange(index, prev, value)
	} else if !existed && m.eventHandlers.OnAdd != nil {
		m.eventHandlers.OnAdd(index, value)
	}
	return prev, existed, nil
}

// Remove deletes index from both views. The mirror slot is cleared rather
// than spliced out so that every other key keeps its position.
func (m *Map[V]) Remove(index int) (prev V, existed bool, err error) {
	if index < 0 {
		return prev, false, listidx.InvalidArgument("negative index %d", index)
	}
	prev, existed = m.sparse.Remove(index)
	var evicted slot[V]
	if index < len(m.mirror) {
		evicted = m.mirror[index]
		m.mirror[index] = slot[V]{}
		m.trim()
	}
	if err := m.check("remove", index, prev, existed, evicted); err != nil {
		return prev, existed, err
	}

	if existed && m.eventHandlers.OnRemove != nil {
		m.eventHandlers.OnRemove(index, prev)
	}
	return prev, existed, nil
}

// PutAll stores every entry as Put would, in ascending key order. Keys are
// validated before anything is written.
func (m *Map[V]) PutAll(entries map[int]V) error {
	keys := make([]int, 0, len(entries))
	for k := range entries {
		if k < 0 {
			return listidx.InvalidArgument("negative index %d", k)
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil
	}
	slices.Sort(keys)
	m.grow(keys[len(keys)-1])
	for _, k := range keys {
		if _, _, err := m.Put(k, entries[k]); err != nil {
			return fmt.Errorf("put all: %w", err)
		}
	}
	return nil
}

// Clear empties both views. Fails with listidx.ErrNotImplemented when the
// wrapped map is not a Clearer.
func (m *Map[V]) Clear() error {
	clearer, ok := m.sparse.(Clearer)
	if !ok {
		return fmt.Errorf("clear %T: %w", m.sparse, listidx.ErrNotImplemented)
	}
	clearer.Clear()
	clear(m.mirror)
	m.mirror = m.mirror[:0]
	return nil
}

// Each calls fn for every entry in ascending key order.
func (m *Map[V]) Each(fn func(index int, value V)) {
	for i, s := range m.mirror {
		if s.Set {
			fn(i, s.Value)
		}
	}
}

// Values returns the values in ascending key order.
func (m *Map[V]) Values() []V {
	values := make([]V, 0, m.sparse.Len())
	m.Each(func(_ int, v V) {
		values = append(values, v)
	})
	return values
}

// Verify compares both views in full.
func (m *Map[V]) Verify() error {
	mirrored := 0
	for i, s := range m.mirror {
		if !s.Set {
			continue
		}
		mirrored++
		v, found := m.sparse.Get(i)
		if err := m.check("verify", i, v, found, s); err != nil {
			return err
		}
	}
	if n := m.sparse.Len(); n != mirrored {
		for _, k := range m.sparse.Keys() {
			v, _ := m.sparse.Get(k)
			var s slot[V]
			if k >= 0 && k < len(m.mirror) {
				s = m.mirror[k]
			}
			if err := m.check("verify", k, v, true, s); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Map[V]) grow(index int) {
	var grew bool
	m.mirror, grew = dense.EnsureIndex(m.mirror, index)
	if grew {
		logger.Debug("grew mirror", "length", len(m.mirror))
	}
}

// trim drops unassigned slots from the end of the mirror.
func (m *Map[V]) trim() {
	n := len(m.mirror)
	for n > 0 && !m.mirror[n-1].Set {
		n--
	}
	clear(m.mirror[n:])
	m.mirror = m.mirror[:n]
}

func (m *Map[V]) check(op string, index int, sparse V, found bool, mirrored slot[V]) error {
	if found == mirrored.Set && (!found || m.equal(sparse, mirrored.Value)) {
		return nil
	}
	cerr := &listidx.ConsistencyError{Op: op, Index: index}
	if found {
		cerr.Sparse = sparse
	}
	if mirrored.Set {
		cerr.Dense = mirrored.Value
	}
	logger.Error("index views disagree", "op", op, "index", index, "error", cerr)
	return errors.WithStack(cerr)
}

// Funcs only compare equal when both are nil, so a func held by both views
// is matched on presence alone.
var defaultEqualOpts = []cmp.Option{
	cmp.Exporter(func(reflect.Type) bool { return true }),
	cmpopts.EquateNaNs(),
	cmp.FilterPath(func(p cmp.Path) bool {
		return p.Last().Type().Kind() == reflect.Func
	}, cmp.Ignore()),
}

func defaultEqual[V any](a, b V) bool {
	return cmp.Equal(a, b, defaultEqualOpts...)
}
