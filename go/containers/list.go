// SPDX-License-Identifier: MIT

package containers

import (
	"iter"

	"github.com/arborist/persist/go/vector"
)

// List is a persistent, indexed sequence, always backed by the vector
// engine's 32-way radix trie plus tail buffer (spec.md §4.4: "always
// building via the HAMT-style trie" — the vector engine, not smallmap).
type List[V any] struct {
	v *vector.Vector[V]
}

// NewList returns the empty list.
func NewList[V any]() *List[V] {
	return &List[V]{v: vector.Empty[V]()}
}

// ListOf builds a List from a variadic sequence of values, in order.
func ListOf[V any](values ...V) *List[V] {
	return &List[V]{v: vector.Of(values...)}
}

// ListFromSlice builds a List from an existing slice, in order, without
// retaining a reference to the slice's backing array.
func ListFromSlice[V any](values []V) *List[V] {
	return &List[V]{v: vector.Of(values...)}
}

// ListFromSeq builds a List by draining a Go 1.23 iterator, grounded on
// spec.md §4.4's "constructors from arbitrary iterables and from lazy
// sequences."
func ListFromSeq[V any](seq iter.Seq[V]) *List[V] {
	l := NewList[V]()
	for v := range seq {
		l = l.Add(v)
	}
	return l
}

// Size returns the number of elements.
func (l *List[V]) Size() int {
	if l == nil {
		return 0
	}
	return l.v.Size()
}

// IsEmpty reports whether the list holds no elements.
func (l *List[V]) IsEmpty() bool { return l.Size() == 0 }

// Get returns the element at i, or ErrIndexOutOfRange if i is outside
// [0, size).
func (l *List[V]) Get(i int) (V, error) {
	var zero V
	if l == nil {
		return zero, ErrIndexOutOfRange{Index: i, Size: 0}
	}
	v, err := l.v.Get(i)
	if err != nil {
		var oor vector.ErrIndexOutOfRange
		if e, ok := err.(vector.ErrIndexOutOfRange); ok {
			oor = e
		}
		return zero, ErrIndexOutOfRange{Index: oor.Index, Size: oor.Size}
	}
	return v, nil
}

// Set returns a new List with the element at i replaced by value, or
// ErrIndexOutOfRange if i is outside [0, size).
func (l *List[V]) Set(i int, value V) (*List[V], error) {
	if l == nil {
		return nil, ErrIndexOutOfRange{Index: i, Size: 0}
	}
	nv, err := l.v.Set(i, value)
	if err != nil {
		e := err.(vector.ErrIndexOutOfRange)
		return nil, ErrIndexOutOfRange{Index: e.Index, Size: e.Size}
	}
	return &List[V]{v: nv}, nil
}

// Add appends value to the end of the list.
func (l *List[V]) Add(value V) *List[V] {
	if l == nil {
		l = NewList[V]()
	}
	return &List[V]{v: l.v.Append(value)}
}

// Contains reports whether any element equals value.
func (l *List[V]) Contains(value V, equal func(a, b V) bool) bool {
	if l == nil {
		return false
	}
	return l.v.Contains(value, equal)
}

// ContainsAll reports whether every element of values is present.
func (l *List[V]) ContainsAll(values []V, equal func(a, b V) bool) bool {
	if l == nil {
		return len(values) == 0
	}
	return l.v.ContainsAll(values, equal)
}

// All calls fn for every element in index order, stopping early if fn
// returns false.
func (l *List[V]) All(fn func(index int, value V) bool) {
	if l == nil {
		return
	}
	l.v.All(fn)
}

// Values returns a range-over-func iterator over every element, in index
// order.
func (l *List[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		l.All(func(_ int, v V) bool { return yield(v) })
	}
}

// Entries returns a range-over-func iterator over (index, value) pairs, in
// index order.
func (l *List[V]) Entries() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		l.All(yield)
	}
}

// ListIterator is an explicit-Next, stateful view over a List's elements,
// for callers that want to step through them one at a time instead of
// using Entries' range-over-func form.
type ListIterator[V any] struct {
	next func() (int, V, bool)
	stop func()
}

// Iterator returns a new ListIterator over l's elements. The caller must
// call Close once done, or let it run to exhaustion, to release the
// iterator's internal goroutine (see iter.Pull2).
func (l *List[V]) Iterator() *ListIterator[V] {
	next, stop := iter.Pull2(l.Entries())
	return &ListIterator[V]{next: next, stop: stop}
}

// Next returns the next (index, value) pair, or ErrIteratorExhausted once
// every element has been visited.
func (it *ListIterator[V]) Next() (int, V, error) {
	i, v, ok := it.next()
	if !ok {
		var zero V
		return 0, zero, ErrIteratorExhausted{}
	}
	return i, v, nil
}

// Close releases the iterator's resources. Safe to call multiple times.
func (it *ListIterator[V]) Close() { it.stop() }
