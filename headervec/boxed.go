package headervec

import (
	"github.com/webbmaffian/go-headervec/alloc"
)

// Boxed owns an allocation that holds exactly Len values and no spare
// capacity. It embeds the Slice viewing it.
type Boxed[H any, T any] struct {
	Slice[H, T]
	alloc alloc.Allocator
}

// IntoBox shrinks the vector to fit and hands its allocation over to a
// Boxed, without copying.
func (v *Vec[H, T]) IntoBox() *Boxed[H, T] {
	v.ShrinkToFit()

	b := &Boxed[H, T]{
		Slice: v.View(),
		alloc: v.alloc,
	}

	v.forget()
	return b
}

// FromBox turns a Boxed back into a vector whose capacity equals its
// length, without copying. The Boxed must not be used afterwards.
func FromBox[H any, T any](b *Boxed[H, T]) *Vec[H, T] {
	b.live()

	v := &Vec[H, T]{
		ptr:   b.ptr,
		len:   b.len,
		cap:   b.len,
		alloc: b.alloc,
	}

	if zeroSized[T]() {
		v.cap = 0
	}

	b.Slice = Slice[H, T]{}
	return v
}

// Drop drops every value and the header, then frees the allocation.
func (b *Boxed[H, T]) Drop() {
	b.live()
	dropAll(b.Body())
	dropOne(b.Head())
	b.alloc.Free(b.ptr, layoutFor[H, T](b.len))
	b.Slice = Slice[H, T]{}
}

func (b *Boxed[H, T]) live() {
	if b.ptr == nil {
		panic(ErrFreed)
	}
}
