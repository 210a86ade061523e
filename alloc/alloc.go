package alloc

import (
	"math/bits"
	"reflect"
	"unsafe"
)

// Allocator hands out memory for a Layout. Memory returned by Alloc is
// zeroed and aligned to Layout.Align. Free must be called with exactly the
// layout the memory was allocated with.
//
// Allocation failure is not recoverable: implementations panic.
type Allocator interface {
	Alloc(l Layout) unsafe.Pointer
	Free(ptr unsafe.Pointer, l Layout)
}

var (
	_ Allocator = Heap{}
	_ Allocator = (*Mmap)(nil)
	_ Allocator = (*Checked)(nil)
)

// Every zero-size allocation points here.
var zeroBase uintptr

// Heap allocates on the Go heap. Header and element types may contain
// pointers. Free leaves the memory to the garbage collector.
//
// Pointer-free layouts get an untyped word buffer. Layouts with pointers
// need a typed struct so the collector can scan them, and every reflect
// type built stays alive for the life of the process, so their count is
// rounded up to a size class. That bounds the number of types per header
// and element pair; the extra slots are never used.
type Heap struct{}

func (Heap) Alloc(l Layout) unsafe.Pointer {
	if l.Size == 0 {
		return unsafe.Pointer(&zeroBase)
	}

	if !l.HasPointers() {
		buf := make([]uint64, (l.Size+7)/8)
		return unsafe.Pointer(unsafe.SliceData(buf))
	}

	typ := l.typeOf(sizeClass(l.Count))

	if typ.Size() < l.Size || typ.Field(1).Offset != l.BodyOffset {
		panic(ErrLayoutMismatch)
	}

	return reflect.New(typ).UnsafePointer()
}

func (Heap) Free(unsafe.Pointer, Layout) {}

// sizeClass rounds n up so that there are at most four classes between
// consecutive powers of two.
func sizeClass(n int) int {
	if n <= 8 {
		return n
	}

	step := 1 << (bits.Len(uint(n)) - 3)
	return (n + step - 1) &^ (step - 1)
}
