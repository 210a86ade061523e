package headervec

import (
	"fmt"
	"io"
	"unsafe"
)

// Slice is a reference to a header followed by Len contiguous elements.
// The length lives in the reference, not in the memory it points to, so a
// Slice can be narrowed without touching any bytes. A Slice never owns the
// memory; it is only valid while its owner is alive and unchanged.
type Slice[H any, T any] struct {
	ptr unsafe.Pointer
	len int
}

// Head returns a pointer to the header.
func (s Slice[H, T]) Head() *H {
	return (*H)(s.ptr)
}

// Body returns the elements. The returned slice aliases the owner's memory.
func (s Slice[H, T]) Body() []T {
	if s.len == 0 {
		return []T{}
	}

	return unsafe.Slice(s.at(0), s.len)
}

func (s Slice[H, T]) Len() int {
	return s.len
}

// View returns s itself, so that owners and views can be used alike.
func (s Slice[H, T]) View() Slice[H, T] {
	return s
}

// Truncated returns a view of the same memory with only the first n
// elements. It panics if n exceeds the current length.
func (s Slice[H, T]) Truncated(n int) Slice[H, T] {
	if n < 0 || n > s.len {
		panic(ErrTruncateLength)
	}

	return s.resizedUnchecked(n)
}

// resizedUnchecked changes the length without any check. The caller must
// guarantee that n elements fit in the underlying allocation.
func (s Slice[H, T]) resizedUnchecked(n int) Slice[H, T] {
	return pairAsSlice[H, T](s.ptr, n)
}

// at returns a pointer to slot i without checking the length. The slot may
// be uninitialized.
func (s Slice[H, T]) at(i int) *T {
	var v T
	return (*T)(unsafe.Add(s.ptr, bodyOffset[H, T]()+uintptr(i)*unsafe.Sizeof(v)))
}

// Format renders the view as "[head; e0, e1]", or "[head;]" when the body is
// empty. The verb and flags are applied to the header and every element.
// The zero Slice renders as "[<nil>]".
func (s Slice[H, T]) Format(f fmt.State, verb rune) {
	if s.ptr == nil {
		io.WriteString(f, "[<nil>]")
		return
	}

	format := fmt.FormatString(f, verb)

	io.WriteString(f, "[")
	fmt.Fprintf(f, format, *s.Head())

	if s.len == 0 {
		io.WriteString(f, ";]")
		return
	}

	io.WriteString(f, "; ")

	for i, item := range s.Body() {
		if i > 0 {
			io.WriteString(f, ", ")
		}

		fmt.Fprintf(f, format, item)
	}

	io.WriteString(f, "]")
}

func (s Slice[H, T]) String() string {
	return fmt.Sprintf("%v", s)
}

// ToVec copies the header and the elements into a new vector with a
// capacity equal to the length.
func (s Slice[H, T]) ToVec() *Vec[H, T] {
	return FromSlice(*s.Head(), s.Body())
}
