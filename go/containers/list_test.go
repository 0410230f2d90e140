// SPDX-License-Identifier: MIT

package containers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListBasics(t *testing.T) {
	r := require.New(t)
	l := ListOf(1, 2, 3)
	r.Equal(3, l.Size())
	v, err := l.Get(1)
	r.NoError(err)
	r.Equal(2, v)
}

func TestListAddPersistence(t *testing.T) {
	r := require.New(t)
	l := ListOf(1, 2, 3)
	l2 := l.Add(4)
	r.Equal(3, l.Size(), "source list unaffected by Add")
	r.Equal(4, l2.Size())
	v, err := l2.Get(3)
	r.NoError(err)
	r.Equal(4, v)
}

func TestListSet(t *testing.T) {
	r := require.New(t)
	l := ListOf(1, 2, 3)
	l2, err := l.Set(1, 99)
	r.NoError(err)
	orig, _ := l.Get(1)
	r.Equal(2, orig, "source list unaffected by Set")
	updated, _ := l2.Get(1)
	r.Equal(99, updated)
}

func TestListGetSetOutOfRange(t *testing.T) {
	r := require.New(t)
	l := ListOf(1, 2, 3)
	_, err := l.Get(3)
	r.Error(err)
	var oor ErrIndexOutOfRange
	r.ErrorAs(err, &oor)
	r.Equal(3, oor.Index)
	r.Equal(3, oor.Size)

	_, err = l.Set(-1, 0)
	r.Error(err)
}

func TestListGrowsAcrossTailAndTrie(t *testing.T) {
	r := require.New(t)
	l := NewList[int]()
	for i := 0; i < 200; i++ {
		l = l.Add(i)
	}
	r.Equal(200, l.Size())
	for i := 0; i < 200; i++ {
		v, err := l.Get(i)
		r.NoError(err)
		r.Equal(i, v)
	}
}

func TestListFromSliceAndSeq(t *testing.T) {
	r := require.New(t)
	src := []string{"a", "b", "c"}
	l := ListFromSlice(src)
	r.Equal(3, l.Size())

	seq := func(yield func(string) bool) {
		for _, s := range src {
			if !yield(s) {
				return
			}
		}
	}
	l2 := ListFromSeq[string](seq)
	r.Equal(l.Size(), l2.Size())
	for i := 0; i < l.Size(); i++ {
		a, _ := l.Get(i)
		b, _ := l2.Get(i)
		r.Equal(a, b)
	}
}

func TestListContains(t *testing.T) {
	r := require.New(t)
	l := ListOf(1, 2, 3, 4)
	eq := func(a, b int) bool { return a == b }
	r.True(l.Contains(3, eq))
	r.False(l.Contains(9, eq))
	r.True(l.ContainsAll([]int{1, 4}, eq))
	r.False(l.ContainsAll([]int{1, 9}, eq))
}

func TestListIteratorFidelity(t *testing.T) {
	r := require.New(t)
	l := ListOf(10, 20, 30)
	var values []int
	for v := range l.Values() {
		values = append(values, v)
	}
	r.Equal([]int{10, 20, 30}, values)

	var idx []int
	for i, v := range l.Entries() {
		idx = append(idx, i)
		r.Equal(values[i], v)
	}
	r.Equal([]int{0, 1, 2}, idx)
}

func TestListIteratorExhaustion(t *testing.T) {
	r := require.New(t)
	l := ListOf(1, 2, 3)
	it := l.Iterator()
	defer it.Close()

	for i := 0; i < l.Size(); i++ {
		idx, v, err := it.Next()
		r.NoError(err)
		r.Equal(i, idx)
		want, _ := l.Get(i)
		r.Equal(want, v)
	}

	_, _, err := it.Next()
	r.ErrorIs(err, ErrIteratorExhausted{})
}

func TestEmptyList(t *testing.T) {
	r := require.New(t)
	l := NewList[int]()
	r.True(l.IsEmpty())
	r.Equal(0, l.Size())
	_, err := l.Get(0)
	r.Error(err)
}
