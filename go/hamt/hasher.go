// SPDX-License-Identifier: MIT

package hamt

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

// Hasher is the Go expression of this package's equality/hashing contract:
// two keys considered Equal must produce the same Hash, exactly like a
// deterministic equals()/hashCode() pair.
type Hasher[K any] interface {
	Hash(key K) uint32
	Equal(a, b K) bool
}

// Comparable returns a Hasher for any comparable key type, built on
// hash/maphash the way wdamron-amt hashes its generic keys. A single seed
// is drawn once and reused for the lifetime of the returned Hasher, so
// repeated calls with the same key always agree (a requirement maphash
// itself only guarantees within one seed).
func Comparable[K comparable]() Hasher[K] {
	return comparableHasher[K]{seed: maphash.MakeSeed()}
}

type comparableHasher[K comparable] struct {
	seed maphash.Seed
}

func (h comparableHasher[K]) Hash(key K) uint32 {
	sum := maphash.Comparable(h.seed, key)
	return uint32(sum) ^ uint32(sum>>32)
}

func (comparableHasher[K]) Equal(a, b K) bool {
	return a == b
}

// stringHasher hashes strings with xxhash, the way the teacher's
// internal/hamt package hashes its keys, instead of maphash.
type stringHasher struct{}

// Strings is a Hasher for string keys using xxhash/v2.
var Strings Hasher[string] = stringHasher{}

func (stringHasher) Hash(key string) uint32 {
	sum := xxhash.Sum64String(key)
	return uint32(sum) ^ uint32(sum>>32)
}

func (stringHasher) Equal(a, b string) bool { return a == b }

// bytesHasher hashes []byte keys with xxhash.
type bytesHasher struct{}

// Bytes is a Hasher for []byte keys using xxhash/v2.
var Bytes Hasher[[]byte] = bytesHasher{}

func (bytesHasher) Hash(key []byte) uint32 {
	sum := xxhash.Sum64(key)
	return uint32(sum) ^ uint32(sum>>32)
}

func (bytesHasher) Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// intHasher hashes fixed-width integers by mixing their bits through
// xxhash rather than using the value directly, so that small sequential
// keys (1, 2, 3, ...) still spread across trie chunks.
type intHasher[K ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64] struct{}

// Ints returns a Hasher for any integer key type.
func Ints[K ~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64]() Hasher[K] {
	return intHasher[K]{}
}

func (intHasher[K]) Hash(key K) uint32 {
	var buf [8]byte
	v := uint64(key)
	for i := range buf {
		buf[i] = byte(v >> (8 * i))
	}
	sum := xxhash.Sum64(buf[:])
	return uint32(sum) ^ uint32(sum>>32)
}

func (intHasher[K]) Equal(a, b K) bool { return a == b }
