package alloc

import (
	"unsafe"
)

// Checked wraps another allocator and keeps a record of every live
// allocation with the layout it was made with. Freeing with a different
// layout, or freeing a pointer it never handed out, panics.
//
// Zero-size allocations may share an address, so they are only counted.
type Checked struct {
	inner  Allocator
	live   map[unsafe.Pointer]Layout
	zero   int
	allocs int
	frees  int
	bytes  uintptr
}

func NewChecked(inner Allocator) *Checked {
	return &Checked{
		inner: inner,
		live:  make(map[unsafe.Pointer]Layout),
	}
}

func (c *Checked) Alloc(l Layout) unsafe.Pointer {
	ptr := c.inner.Alloc(l)
	c.allocs++

	if l.Size == 0 {
		c.zero++
		return ptr
	}

	if _, ok := c.live[ptr]; ok {
		panic(ErrLayoutMismatch)
	}

	c.live[ptr] = l
	c.bytes += l.Size
	return ptr
}

func (c *Checked) Free(ptr unsafe.Pointer, l Layout) {
	if l.Size == 0 {
		if c.zero == 0 {
			panic(ErrUnknownPointer)
		}

		c.zero--
	} else {
		orig, ok := c.live[ptr]

		if !ok {
			panic(ErrUnknownPointer)
		}

		if orig != l {
			panic(ErrLayoutMismatch)
		}

		delete(c.live, ptr)
		c.bytes -= l.Size
	}

	c.frees++
	c.inner.Free(ptr, l)
}

// Live returns the number of allocations not yet freed.
func (c *Checked) Live() int {
	return len(c.live) + c.zero
}

// LiveBytes returns the total size of all live allocations.
func (c *Checked) LiveBytes() uintptr {
	return c.bytes
}

func (c *Checked) Allocs() int {
	return c.allocs
}

func (c *Checked) Frees() int {
	return c.frees
}

// LayoutOf returns the layout a live pointer was allocated with.
func (c *Checked) LayoutOf(ptr unsafe.Pointer) (l Layout, ok bool) {
	l, ok = c.live[ptr]
	return
}
