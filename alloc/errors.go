package alloc

type allocError string

var _ error = allocError("")

func (err allocError) Error() string {
	return string(err)
}

const (
	ErrNegativeCount  = allocError("negative element count")
	ErrLayoutOverflow = allocError("layout size overflows the address space")
	ErrLayoutMismatch = allocError("layout does not match the allocation")
	ErrUnknownPointer = allocError("pointer was not allocated by this allocator")
	ErrPointerTypes   = allocError("header and element types must not contain pointers")
)
