// SPDX-License-Identifier: MIT

// Package containers holds the public facades spec.md §4.4 describes: Map
// and List. Both are thin wrappers dispatching to the small-map/HAMT
// engines (go/internal/smallmap, go/hamt) and the vector engine
// (go/vector); the structural-sharing work happens in those packages.
package containers

import (
	"iter"
	"reflect"

	"github.com/arborist/persist/go/hamt"
	"github.com/arborist/persist/go/internal/smallmap"
)

// Pair is one key/value binding, used by MapOf to build a Map from a
// variadic sequence of bindings.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// P constructs a Pair, for terse call sites: containers.MapOf(h, containers.P("a", 1), ...).
func P[K comparable, V any](key K, value V) Pair[K, V] {
	return Pair[K, V]{Key: key, Value: value}
}

// Map is a persistent associative container: small-map-backed up to
// smallmap.MaxEntries bindings, then promoted to a HAMT (spec.md §4.1/§4.4).
// A Map is only ever in one mode at a time: small non-nil and big nil, or
// the reverse.
type Map[K comparable, V any] struct {
	small  *smallmap.Map[K, V]
	big    *hamt.Map[K, V]
	hasher hamt.Hasher[K]
}

// defaultValueEqual falls back to reflect.DeepEqual for the put-idempotence
// optimization (spec.md invariant 3) when V isn't otherwise constrained;
// see DESIGN.md for why this, rather than requiring V comparable, was
// chosen for the Go port.
func defaultValueEqual[V any](a, b V) bool {
	return reflect.DeepEqual(a, b)
}

// NewMap returns an empty Map using hasher once it promotes to a HAMT.
func NewMap[K comparable, V any](hasher hamt.Hasher[K]) *Map[K, V] {
	return &Map[K, V]{small: smallmap.Empty[K, V](), hasher: hasher}
}

// MapOf builds a Map from a variadic sequence of pairs: small-map for up
// to 8 pairs, HAMT otherwise (spec.md §4.4).
func MapOf[K comparable, V any](hasher hamt.Hasher[K], pairs ...Pair[K, V]) *Map[K, V] {
	if len(pairs) <= 8 {
		m := NewMap[K, V](hasher)
		for _, p := range pairs {
			m = m.Put(p.Key, p.Value)
		}
		return m
	}
	big := hamt.New[K, V](hasher)
	for _, p := range pairs {
		big = big.Put(p.Key, p.Value, defaultValueEqual[V])
	}
	return &Map[K, V]{big: big, hasher: hasher}
}

// Size returns the number of bindings.
func (m *Map[K, V]) Size() int {
	if m == nil {
		return 0
	}
	if m.big != nil {
		return m.big.Size()
	}
	return m.small.Len()
}

// IsEmpty reports whether the map has no bindings.
func (m *Map[K, V]) IsEmpty() bool { return m.Size() == 0 }

// Get returns the value bound to key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil {
		return zero, false
	}
	if m.big != nil {
		return m.big.Get(key)
	}
	return m.small.Get(key)
}

// ContainsKey reports whether key is bound.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// ContainsValue reports whether any binding holds a value equal to value.
func (m *Map[K, V]) ContainsValue(value V) bool {
	found := false
	m.All(func(_ K, v V) bool {
		if defaultValueEqual(v, value) {
			found = true
			return false
		}
		return true
	})
	return found
}

// Put returns a Map with key bound to value, promoting from small-map to
// HAMT representation once the small-map would grow past
// smallmap.MaxEntries (spec.md §4.1).
func (m *Map[K, V]) Put(key K, value V) *Map[K, V] {
	if m == nil {
		panic("containers: Put on a nil *Map; use NewMap to construct one")
	}
	if m.big != nil {
		newBig := m.big.Put(key, value, defaultValueEqual[V])
		if newBig == m.big {
			return m
		}
		return &Map[K, V]{big: newBig, hasher: m.hasher}
	}
	if m.small.Overflow(key) {
		big := hamt.New[K, V](m.hasher)
		m.small.All(func(k K, v V) bool {
			big = big.Put(k, v, defaultValueEqual[V])
			return true
		})
		big = big.Put(key, value, defaultValueEqual[V])
		return &Map[K, V]{big: big, hasher: m.hasher}
	}
	newSmall := m.small.Put(key, value, defaultValueEqual[V])
	if newSmall == m.small {
		return m
	}
	return &Map[K, V]{small: newSmall, hasher: m.hasher}
}

// Remove returns a Map with key unbound. Returns the receiver unchanged
// if key was absent.
func (m *Map[K, V]) Remove(key K) *Map[K, V] {
	if m == nil {
		return m
	}
	if m.big != nil {
		newBig := m.big.Remove(key)
		if newBig == m.big {
			return m
		}
		return &Map[K, V]{big: newBig, hasher: m.hasher}
	}
	newSmall := m.small.Remove(key)
	if newSmall == m.small {
		return m
	}
	return &Map[K, V]{small: newSmall, hasher: m.hasher}
}

// All calls fn for every binding, stopping early if fn returns false.
func (m *Map[K, V]) All(fn func(K, V) bool) {
	if m == nil {
		return
	}
	if m.big != nil {
		m.big.All(fn)
		return
	}
	m.small.All(fn)
}

// Entries returns a range-over-func iterator over every (key, value) binding.
func (m *Map[K, V]) Entries() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.All(yield)
	}
}

// Keys returns a range-over-func iterator over every bound key.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		m.All(func(k K, _ V) bool { return yield(k) })
	}
}

// Values returns a range-over-func iterator over every bound value.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		m.All(func(_ K, v V) bool { return yield(v) })
	}
}

// MapIterator is an explicit-Next, stateful view over a Map's bindings,
// for callers that want to step through entries one at a time instead of
// using Entries' range-over-func form.
type MapIterator[K comparable, V any] struct {
	next func() (K, V, bool)
	stop func()
}

// Iterator returns a new MapIterator over m's bindings. The caller must
// call Close once done, or let it run to exhaustion, to release the
// iterator's internal goroutine (see iter.Pull2).
func (m *Map[K, V]) Iterator() *MapIterator[K, V] {
	next, stop := iter.Pull2(m.Entries())
	return &MapIterator[K, V]{next: next, stop: stop}
}

// Next returns the next binding, or ErrIteratorExhausted once every
// binding has been visited.
func (it *MapIterator[K, V]) Next() (K, V, error) {
	k, v, ok := it.next()
	if !ok {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, ErrIteratorExhausted{}
	}
	return k, v, nil
}

// Close releases the iterator's resources. Safe to call multiple times.
func (it *MapIterator[K, V]) Close() { it.stop() }
