package alloc

import (
	"reflect"
	"unsafe"

	"github.com/webbmaffian/go-headervec/internal/utils"
)

const maxSize = ^uintptr(0) >> 1

// Layout describes the memory shape of one header followed by Count
// contiguous elements. It matches the Go compiler's layout of
//
//	struct {
//		Head H
//		Body [Count]T
//	}
//
// byte for byte, so memory allocated for a layout can be reinterpreted as
// that struct and vice versa.
type Layout struct {
	Size       uintptr
	Align      uintptr
	BodyOffset uintptr
	Count      int
	head       reflect.Type
	elem       reflect.Type
}

// LayoutOf returns the layout for a header of type H followed by n elements
// of type T.
func LayoutOf[H any, T any](n int) Layout {
	var (
		head H
		elem T
	)

	if n < 0 {
		panic(ErrNegativeCount)
	}

	headSize, headAlign := unsafe.Sizeof(head), unsafe.Alignof(head)
	elemSize, elemAlign := unsafe.Sizeof(elem), unsafe.Alignof(elem)

	l := Layout{
		Align:      max(headAlign, elemAlign),
		BodyOffset: alignUp(headSize, elemAlign),
		Count:      n,
		head:       reflect.TypeFor[H](),
		elem:       reflect.TypeFor[T](),
	}

	if elemSize != 0 && uintptr(n) > (maxSize-l.BodyOffset-l.Align)/elemSize {
		panic(ErrLayoutOverflow)
	}

	bodySize := elemSize * uintptr(n)
	l.Size = l.BodyOffset + bodySize

	// A zero-size trailing field gets one byte of padding, so that a pointer
	// to it never points past the end of the allocation.
	if l.Size > 0 && bodySize == 0 {
		l.Size++
	}

	l.Size = alignUp(l.Size, l.Align)
	return l
}

// BodySize is the number of bytes occupied by the elements.
func (l Layout) BodySize() uintptr {
	return l.elem.Size() * uintptr(l.Count)
}

// HasPointers reports whether the header or element type holds pointers the
// garbage collector has to know about.
func (l Layout) HasPointers() bool {
	return utils.ContainsPointers(l.head) || utils.ContainsPointers(l.elem)
}

// Type returns the struct type the layout mirrors.
func (l Layout) Type() reflect.Type {
	return l.typeOf(l.Count)
}

// typeOf returns the struct type with the layout's header and n elements.
func (l Layout) typeOf(n int) reflect.Type {
	if l.elem.Size() == 0 {
		n = 0
	}

	return reflect.StructOf([]reflect.StructField{
		{Name: "Head", Type: l.head},
		{Name: "Body", Type: reflect.ArrayOf(n, l.elem)},
	})
}

func alignUp(n, align uintptr) uintptr {
	return (n + align - 1) &^ (align - 1)
}
