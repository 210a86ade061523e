package headervec

import (
	"iter"
	"unsafe"

	"github.com/webbmaffian/go-headervec/alloc"
)

// Values yields the values of a consumed vector one at a time, by value.
// It owns what is left of the vector's allocation: when it is exhausted or
// closed, the values not yet yielded are dropped and the allocation is
// freed.
type Values[H any, T any] struct {
	ptr   unsafe.Pointer
	len   int
	cap   int
	index int
	alloc alloc.Allocator
	val   T
}

// IntoValues consumes the vector and returns an iterator over its values.
// The header is dropped.
func (v *Vec[H, T]) IntoValues() *Values[H, T] {
	head, values := v.IntoHeaderValues()
	dropOne(&head)
	return values
}

// IntoHeaderValues consumes the vector and returns its header and an
// iterator over its values.
func (v *Vec[H, T]) IntoHeaderValues() (head H, values *Values[H, T]) {
	var zero H

	slot := v.Head()
	head, *slot = *slot, zero

	values = &Values[H, T]{
		ptr:   v.ptr,
		len:   v.len,
		cap:   v.cap,
		alloc: v.alloc,
	}

	v.forget()
	return
}

func (it *Values[H, T]) view() Slice[H, T] {
	return pairAsSlice[H, T](it.ptr, it.len)
}

// Next moves the next value out of the allocation. It returns false once
// every value has been yielded, at which point the allocation is freed.
func (it *Values[H, T]) Next() bool {
	if it.ptr == nil {
		return false
	}

	if it.index >= it.len {
		it.Close()
		return false
	}

	var zero T

	slot := it.view().at(it.index)
	it.val, *slot = *slot, zero
	it.index++
	return true
}

// Value returns the value moved out by the last call to Next.
func (it *Values[H, T]) Value() T {
	return it.val
}

// Len returns the number of values not yet yielded.
func (it *Values[H, T]) Len() int {
	return it.len - it.index
}

// All ranges over the values not yet yielded.
func (it *Values[H, T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Collect moves every remaining value into a new slice.
func (it *Values[H, T]) Collect() []T {
	items := make([]T, 0, it.Len())

	for it.Next() {
		items = append(items, it.Value())
	}

	return items
}

// Clone copies the values not yet yielded into a new iterator with its own
// allocation.
func (it *Values[H, T]) Clone() *Values[H, T] {
	var head H

	c := WithCapacityIn[H, T](it.alloc, head, it.Len())

	if it.ptr != nil {
		c.ExtendFromSlice(it.view().Body()[it.index:])
	}

	_, values := c.IntoHeaderValues()
	return values
}

// Close drops every value not yet yielded and frees the allocation. It is
// safe to call more than once.
func (it *Values[H, T]) Close() {
	if it.ptr == nil {
		return
	}

	dropAll(it.view().Body()[it.index:])
	it.alloc.Free(it.ptr, layoutFor[H, T](it.cap))
	it.ptr, it.len = nil, it.index
}
