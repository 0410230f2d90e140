// SPDX-License-Identifier: MIT

package containers

import "fmt"

// ErrIteratorExhausted is returned by a pull-style iterator's Next once it
// has yielded every element, grounded on the teacher's structured-error
// style (go/patch/errors.go's ObjectNotFoundError, OutOfStockError):
// a typed struct implementing error, not a package-level sentinel.
type ErrIteratorExhausted struct{}

func (ErrIteratorExhausted) Error() string {
	return "iterator exhausted"
}

// ErrIndexOutOfRange mirrors vector.ErrIndexOutOfRange at the facade
// boundary so callers of List never need to import the engine package
// directly to type-assert on the error.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index %d out of range for list of size %d", e.Index, e.Size)
}
