package headervec

import (
	"unsafe"

	"github.com/webbmaffian/go-headervec/alloc"
)

// pair is the concrete shape of an allocation: the header followed by the
// first body slot. It is never instantiated with a live element; it only
// pins down where the body starts.
type pair[H any, T any] struct {
	head  H
	first T
}

func bodyOffset[H any, T any]() uintptr {
	var p pair[H, T]
	return unsafe.Offsetof(p.first)
}

// pairAsSlice turns a thin pointer to a header-then-elements allocation into
// a Slice of n elements. This is the only place an address becomes a Slice.
func pairAsSlice[H any, T any](ptr unsafe.Pointer, n int) Slice[H, T] {
	return Slice[H, T]{ptr: ptr, len: n}
}

func zeroSized[T any]() bool {
	var v T
	return unsafe.Sizeof(v) == 0
}

// layoutFor returns the layout of an allocation with room for n elements.
// Zero-size elements never take room, so their layout ignores n.
func layoutFor[H any, T any](n int) alloc.Layout {
	if zeroSized[T]() {
		n = 0
	}

	return alloc.LayoutOf[H, T](n)
}

// LayoutFor returns the memory layout of a header of type H followed by n
// elements of type T.
func LayoutFor[H any, T any](n int) alloc.Layout {
	return alloc.LayoutOf[H, T](n)
}
