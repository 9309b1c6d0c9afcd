// Package cow provides a reference-counted copy-on-write value handle.
//
// A [Value] shares one payload between any number of handles until one of
// them asks for write access. At that point the writer gets a private clone
// unless it is already the only owner.
//
// Reference counts are updated atomically, so Copy, Release and Read may run
// concurrently on handles that share a payload. Write is a check followed by
// an optional clone and is not atomic as a whole: a handle must not be written
// from more than one goroutine at a time.
package cow

import (
	"errors"
	"sync/atomic"
)

// ErrNull is returned when a handle without storage is dereferenced.
var ErrNull = errors.New("cow: value has no storage")

// Cloner is implemented by payloads that can produce an independent copy
// of themselves.
type Cloner[T any] interface {
	Clone() T
}

// cell holds the payload and the number of handles pointing at it.
type cell[T any] struct {
	refs  atomic.Int64
	value T
}

// Value is a copy-on-write handle to a payload of type T.
//
// The zero Value is null: it has no storage at all. That is distinct from a
// handle whose payload is empty.
type Value[T Cloner[T]] struct {
	c *cell[T]
}

// New returns a handle owning v with a reference count of 1.
func New[T Cloner[T]](v T) Value[T] {
	c := &cell[T]{value: v}
	c.refs.Store(1)
	return Value[T]{c: c}
}

// Null reports whether the handle has no storage.
func (v *Value[T]) Null() bool {
	return v.c == nil
}

// Read returns the shared payload. The caller must not modify it.
func (v *Value[T]) Read() (T, error) {
	if v.c == nil {
		var zero T
		return zero, ErrNull
	}
	return v.c.value, nil
}

// Write returns a payload that only this handle refers to, cloning the
// current one first if it is shared.
func (v *Value[T]) Write() (T, error) {
	if v.c == nil {
		var zero T
		return zero, ErrNull
	}
	if v.c.refs.Load() != 1 {
		detached := New(v.c.value.Clone())
		v.Swap(&detached)
		detached.Release()
	}
	return v.c.value, nil
}

// Unique reports whether this handle is the only owner of its payload.
// A null handle is never unique.
func (v *Value[T]) Unique() bool {
	return v.c != nil && v.c.refs.Load() == 1
}

// RefCount returns the number of handles sharing the payload, or 0 for a
// null handle.
func (v *Value[T]) RefCount() int {
	if v.c == nil {
		return 0
	}
	return int(v.c.refs.Load())
}

// Copy returns a new handle sharing the payload. Copying a null handle
// yields a null handle.
func (v *Value[T]) Copy() Value[T] {
	if v.c != nil {
		v.c.refs.Add(1)
	}
	return Value[T]{c: v.c}
}

// Move transfers ownership to the returned handle and leaves v null.
func (v *Value[T]) Move() Value[T] {
	c := v.c
	v.c = nil
	return Value[T]{c: c}
}

// Assign makes v share x's payload, releasing whatever v held before.
// Assigning a handle to itself leaves it unchanged.
func (v *Value[T]) Assign(x *Value[T]) {
	tmp := x.Copy()
	v.Swap(&tmp)
	tmp.Release()
}

// MoveFrom releases v's payload and takes over x's; x becomes null.
func (v *Value[T]) MoveFrom(x *Value[T]) {
	if v == x {
		return
	}
	tmp := x.Move()
	v.Swap(&tmp)
	tmp.Release()
}

// Swap exchanges the payloads of v and x.
func (v *Value[T]) Swap(x *Value[T]) {
	v.c, x.c = x.c, v.c
}

// Release drops this handle's reference and leaves it null. The payload is
// discarded once the last handle is released. Releasing a null handle is a
// no-op.
func (v *Value[T]) Release() {
	c := v.c
	if c == nil {
		return
	}
	v.c = nil
	if c.refs.Add(-1) == 0 {
		var zero T
		c.value = zero
	}
}
