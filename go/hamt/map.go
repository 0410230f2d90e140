// SPDX-License-Identifier: MIT

// Package hamt implements a persistent hash-array-mapped trie: the core
// engine behind this module's Map facade. Every write returns a new Map
// value that shares unmodified structure with its predecessor; the
// predecessor is left observationally unchanged.
package hamt

// Map is a persistent hash map keyed by Hasher-governed keys.
type Map[K comparable, V any] struct {
	root node[K, V] // nil when empty
	size int
	ops  *keyOps[K]
}

// New returns an empty Map using hasher for key hashing and equality.
func New[K comparable, V any](hasher Hasher[K]) *Map[K, V] {
	return &Map[K, V]{ops: &keyOps[K]{hasher: hasher}}
}

// Size returns the number of bindings.
func (m *Map[K, V]) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

// IsEmpty reports whether the map has no bindings.
func (m *Map[K, V]) IsEmpty() bool { return m.Size() == 0 }

// Get returns the value bound to key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	if m == nil || m.root == nil {
		return zero, false
	}
	return m.root.find(0, m.ops.hash(key), key, m.ops)
}

// ContainsKey reports whether key is bound.
func (m *Map[K, V]) ContainsKey(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Put returns a Map with key bound to value. valueEqual may be nil, in
// which case the value-equality optimization of spec.md §4.1/§4.2.1 ("if
// the value is unchanged, return the receiver") is skipped; every other
// invariant (get-after-put, size accounting, persistence) holds either way
// since that check is documented as an optimization, never a correctness
// requirement.
func (m *Map[K, V]) Put(key K, value V, valueEqual func(a, b V) bool) *Map[K, V] {
	hash := m.ops.hash(key)
	if m.root == nil {
		return &Map[K, V]{root: newLeaf[K, V](0, hash, key, value), size: 1, ops: m.ops}
	}
	newRoot, grew := m.root.put(0, hash, key, value, m.ops, valueEqual)
	if newRoot == m.root {
		return m
	}
	size := m.size
	if grew {
		size++
	}
	return &Map[K, V]{root: newRoot, size: size, ops: m.ops}
}

// Remove returns a Map with key unbound. Returns the receiver unchanged if
// key was absent.
func (m *Map[K, V]) Remove(key K) *Map[K, V] {
	if m == nil || m.root == nil {
		return m
	}
	newRoot, removed := m.root.remove(0, m.ops.hash(key), key, m.ops)
	if !removed {
		return m
	}
	return &Map[K, V]{root: newRoot, size: m.size - 1, ops: m.ops}
}

// All visits every binding depth-first, stopping early if fn returns
// false. Order is some deterministic order for a fixed map value, not a
// guaranteed insertion or key order (spec.md §4.2.4).
func (m *Map[K, V]) All(fn func(K, V) bool) {
	if m == nil || m.root == nil {
		return
	}
	m.root.all(fn)
}
