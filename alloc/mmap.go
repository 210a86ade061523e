package alloc

import (
	"fmt"
	"unsafe"

	"github.com/edsrzf/mmap-go"
	"github.com/webbmaffian/go-headervec/internal/utils"
	"go.uber.org/zap"
)

// Mmap allocates anonymous memory mappings outside the Go heap. The garbage
// collector never scans them, so the header and element types MUST NOT
// contain any pointer, slice, string, map, channel, function or interface.
// Alloc panics with ErrPointerTypes otherwise.
//
// A Mmap is not safe for concurrent use.
type Mmap struct {
	pageSize int
	mappings int
	mapped   int
}

func NewMmap() *Mmap {
	return &Mmap{
		pageSize: pageSize(),
	}
}

func (m *Mmap) Alloc(l Layout) unsafe.Pointer {
	if l.HasPointers() {
		panic(ErrPointerTypes)
	}

	if l.Size == 0 {
		return unsafe.Pointer(&zeroBase)
	}

	data, err := mmap.MapRegion(nil, int(l.Size), mmap.RDWR, mmap.ANON, 0)

	if err != nil {
		panic(fmt.Errorf("failed to map %d bytes: %w", l.Size, err))
	}

	m.mappings++
	m.mapped += m.pages(len(data))

	Logger().Debug("mapped region",
		zap.Uintptr("size", l.Size),
		zap.Int("count", l.Count))

	return unsafe.Pointer(utils.BytesToPointer[byte](data))
}

func (m *Mmap) Free(ptr unsafe.Pointer, l Layout) {
	if l.Size == 0 {
		if ptr != unsafe.Pointer(&zeroBase) {
			panic(ErrLayoutMismatch)
		}

		return
	}

	data := mmap.MMap(utils.PointerToBytes((*byte)(ptr), int(l.Size)))

	if err := data.Unmap(); err != nil {
		Logger().Error("failed to unmap region",
			zap.Uintptr("size", l.Size),
			zap.Error(err))

		panic(fmt.Errorf("failed to unmap %d bytes: %w", l.Size, err))
	}

	m.mappings--
	m.mapped -= m.pages(int(l.Size))

	Logger().Debug("unmapped region",
		zap.Uintptr("size", l.Size),
		zap.Int("count", l.Count))
}

// Mappings returns the number of live mappings.
func (m *Mmap) Mappings() int {
	return m.mappings
}

// Mapped returns the number of bytes currently mapped, rounded up to whole
// pages.
func (m *Mmap) Mapped() int {
	return m.mapped
}

func (m *Mmap) pages(size int) int {
	return (size + m.pageSize - 1) / m.pageSize * m.pageSize
}
