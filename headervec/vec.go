package headervec

import (
	"fmt"
	"iter"
	"math"
	"unsafe"

	"github.com/webbmaffian/go-headervec/alloc"
)

// MinCapacity is the capacity of a vector created with New, and the floor
// below which removals never shrink the allocation.
const MinCapacity = 8

// Vec is a growable sequence of T with a single header H, stored together
// in one allocation. The allocation is always laid out for the capacity,
// never for the length.
//
// A Vec has a single owner and is not safe for concurrent use. Once it has
// been dropped or converted (Drop, IntoBox, IntoRawParts, IntoValues) every
// further call panics with ErrFreed.
type Vec[H any, T any] struct {
	ptr   unsafe.Pointer
	len   int
	cap   int
	alloc alloc.Allocator
}

// New creates an empty vector with room for MinCapacity elements.
func New[H any, T any](head H) *Vec[H, T] {
	return WithCapacityIn[H, T](alloc.Heap{}, head, MinCapacity)
}

// WithCapacity creates an empty vector with room for exactly n elements.
func WithCapacity[H any, T any](head H, n int) *Vec[H, T] {
	return WithCapacityIn[H, T](alloc.Heap{}, head, n)
}

// NewIn is New with memory taken from a.
func NewIn[H any, T any](a alloc.Allocator, head H) *Vec[H, T] {
	return WithCapacityIn[H, T](a, head, MinCapacity)
}

// WithCapacityIn is WithCapacity with memory taken from a.
func WithCapacityIn[H any, T any](a alloc.Allocator, head H, n int) *Vec[H, T] {
	if n < 0 {
		panic(ErrNegativeCapacity)
	}

	if zeroSized[T]() {
		n = 0
	}

	v := &Vec[H, T]{
		ptr:   a.Alloc(layoutFor[H, T](n)),
		cap:   n,
		alloc: a,
	}

	*v.Head() = head
	return v
}

// FromSeq creates a vector from a header and a sequence of values.
func FromSeq[H any, T any](head H, seq iter.Seq[T]) *Vec[H, T] {
	v := WithCapacity[H, T](head, 0)
	v.Extend(seq)
	return v
}

// FromValues creates a vector with a zero header from a sequence of values.
func FromValues[H any, T any](seq iter.Seq[T]) *Vec[H, T] {
	var head H
	return FromSeq(head, seq)
}

// FromRawParts reassembles a heap-allocated vector from the parts returned
// by AsRawParts or IntoRawParts.
//
// This is unsafe: the caller is solely responsible for making sure that no
// two vectors built from the same parts are alive at once unless none of
// them is ever mutated, dropped or consumed.
func FromRawParts[H any, T any](ptr unsafe.Pointer, length, capacity int) *Vec[H, T] {
	return FromRawPartsIn[H, T](alloc.Heap{}, ptr, length, capacity)
}

// FromRawPartsIn is FromRawParts for a vector whose memory came from a.
func FromRawPartsIn[H any, T any](a alloc.Allocator, ptr unsafe.Pointer, length, capacity int) *Vec[H, T] {
	return &Vec[H, T]{
		ptr:   ptr,
		len:   length,
		cap:   capacity,
		alloc: a,
	}
}

// Cap returns the number of elements the vector can hold without
// reallocating. It is math.MaxInt for zero-size elements.
func (v *Vec[H, T]) Cap() int {
	if zeroSized[T]() {
		return math.MaxInt
	}

	return v.cap
}

func (v *Vec[H, T]) Len() int {
	return v.len
}

// View returns the header and the live elements as a Slice. The view is
// invalidated by any call that changes the vector.
func (v *Vec[H, T]) View() Slice[H, T] {
	v.live()
	return pairAsSlice[H, T](v.ptr, v.len)
}

func (v *Vec[H, T]) live() {
	if v.ptr == nil {
		panic(ErrFreed)
	}
}

func (v *Vec[H, T]) Head() *H {
	return v.View().Head()
}

func (v *Vec[H, T]) Body() []T {
	return v.View().Body()
}

func (v *Vec[H, T]) Format(f fmt.State, verb rune) {
	v.View().Format(f, verb)
}

func (v *Vec[H, T]) String() string {
	return v.View().String()
}

// Get returns a pointer to the element at pos.
func (v *Vec[H, T]) Get(pos int) *T {
	return &v.Body()[pos]
}

// All iterates over the live elements.
func (v *Vec[H, T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, item := range v.Body() {
			if !yield(i, item) {
				return
			}
		}
	}
}

// AsRawParts returns the pointer, length and capacity of the vector without
// giving up ownership. See FromRawParts for the rules of using them.
func (v *Vec[H, T]) AsRawParts() (ptr unsafe.Pointer, length, capacity int) {
	v.live()
	return v.ptr, v.len, v.cap
}

// IntoRawParts hands the allocation over to the caller. Rebuild the vector
// with FromRawParts.
func (v *Vec[H, T]) IntoRawParts() (ptr unsafe.Pointer, length, capacity int) {
	ptr, length, capacity = v.AsRawParts()
	v.forget()
	return
}

// slots views the allocation with n slots. Slots past the length are not
// initialized; n must not exceed Cap.
func (v *Vec[H, T]) slots(n int) Slice[H, T] {
	return v.View().resizedUnchecked(n)
}

// reallocExact moves the vector into an allocation of exactly count slots.
// Elements past count are lost, so count must not be below the length
// unless those elements have already been moved out.
func (v *Vec[H, T]) reallocExact(count int) {
	if zeroSized[T]() || count == v.cap {
		return
	}

	src := v.View()
	ptr := v.alloc.Alloc(layoutFor[H, T](count))
	dst := pairAsSlice[H, T](ptr, 0)

	*dst.Head() = *src.Head()

	if n := min(v.len, count); n > 0 {
		copy(dst.resizedUnchecked(n).Body(), src.resizedUnchecked(n).Body())
	}

	v.alloc.Free(v.ptr, layoutFor[H, T](v.cap))
	v.ptr, v.cap = ptr, count
}

// grow raises the capacity so that about half of it is unused. A target
// too large to double saturates, and the layout for it then panics with
// alloc.ErrLayoutOverflow.
func (v *Vec[H, T]) grow(targetLen int) {
	if targetLen > math.MaxInt/2 {
		v.reallocExact(math.MaxInt)
		return
	}

	v.reallocExact(max(targetLen*2, v.cap))
}

// shrink lowers the capacity so that about half of it is unused.
func (v *Vec[H, T]) shrink(targetLen int) {
	v.reallocExact(min(max(targetLen*2, MinCapacity), v.cap))
}

// lenPlus returns the length plus additional, panicking instead of wrapping
// around.
func (v *Vec[H, T]) lenPlus(additional int) int {
	if additional > math.MaxInt-v.len {
		panic(alloc.ErrLayoutOverflow)
	}

	return v.len + additional
}

// reallocFor reallocates if needed to hold n elements.
func (v *Vec[H, T]) reallocFor(n int) {
	if n < v.len {
		v.shrink(n)
	} else if n > v.Cap() {
		v.grow(n)
	}
}

// Push appends a value to the end of the vector.
func (v *Vec[H, T]) Push(val T) {
	newLen := v.lenPlus(1)

	if newLen > v.Cap() {
		v.grow(newLen)
	}

	*v.slots(newLen).at(v.len) = val
	v.len = newLen
}

// Pop removes and returns the last value, if there is one.
func (v *Vec[H, T]) Pop() (val T, ok bool) {
	if v.len == 0 {
		v.live()
		return
	}

	var zero T

	newLen := v.len - 1
	slot := v.slots(v.len).at(newLen)
	val, *slot = *slot, zero

	v.shrink(newLen)
	v.len = newLen
	return val, true
}

// Remove removes and returns the value at index, if it exists. All values
// after index are shifted to the left.
func (v *Vec[H, T]) Remove(index int) (val T, ok bool) {
	if index < 0 || index >= v.len {
		v.live()
		return
	}

	var zero T

	body := v.Body()
	val = body[index]
	copy(body[index:], body[index+1:])
	body[len(body)-1] = zero

	v.shrink(v.len - 1)
	v.len--
	return val, true
}

// SwapRemove removes and returns the value at index, if it exists, by
// moving the last value into its place. The order is not preserved.
func (v *Vec[H, T]) SwapRemove(index int) (val T, ok bool) {
	if index < 0 || index >= v.len {
		v.live()
		return
	}

	// Cannot fail: index is in range, so the vector is not empty.
	last, _ := v.Pop()

	if index == v.len {
		return last, true
	}

	slot := v.Get(index)
	val, *slot = *slot, last
	return val, true
}

// Insert places a value at index, shifting all values after it to the
// right. It panics if index is greater than the length.
func (v *Vec[H, T]) Insert(index int, val T) {
	if index < 0 || index > v.len {
		panic(ErrIndexOutOfRange)
	}

	if index == v.len {
		v.Push(val)
		return
	}

	v.grow(v.lenPlus(1))

	body := v.slots(v.len + 1).Body()
	copy(body[index+1:], body[index:v.len])
	body[index] = val
	v.len++
}

// Truncate drops every value past n. It panics if n is greater than the
// length.
func (v *Vec[H, T]) Truncate(n int) {
	v.live()

	if n < 0 || n > v.len {
		panic(ErrTruncateLength)
	}

	if n == v.len {
		return
	}

	dropAll(v.Body()[n:])
	v.shrink(n)
	v.len = n
}

// ResizeWith truncates the vector to n, or appends values returned by f
// until it has n values.
func (v *Vec[H, T]) ResizeWith(n int, f func() T) {
	if n < v.len {
		v.Truncate(n)
		return
	}

	for i := v.len; i < n; i++ {
		v.Push(f())
	}
}

// Resize truncates the vector to n, or appends copies of fill until it has
// n values. The copies are plain assignments, so a fill value that
// implements Dropper gets dropped once per copy; use ResizeWith to create
// a fresh value for every slot instead.
func (v *Vec[H, T]) Resize(n int, fill T) {
	v.ResizeWith(n, func() T {
		return fill
	})
}

// ResizeZero truncates the vector to n, or appends zero values until it has
// n values.
func (v *Vec[H, T]) ResizeZero(n int) {
	var zero T
	v.Resize(n, zero)
}

// Reserve makes room for at least additional more values, growing the same
// way Push does. It panics with alloc.ErrLayoutOverflow if the resulting
// capacity cannot be represented.
func (v *Vec[H, T]) Reserve(additional int) {
	if additional < 0 {
		panic(ErrNegativeCapacity)
	}

	v.live()
	v.reallocFor(v.lenPlus(additional))
}

// ReserveExact makes room for exactly additional more values, unless there
// already is.
func (v *Vec[H, T]) ReserveExact(additional int) {
	if additional < 0 {
		panic(ErrNegativeCapacity)
	}

	v.live()

	if newCap := v.lenPlus(additional); newCap > v.Cap() {
		v.reallocExact(newCap)
	}
}

// ShrinkToFit reallocates so that the capacity equals the length.
func (v *Vec[H, T]) ShrinkToFit() {
	v.live()
	v.reallocExact(v.len)
}

// Clear drops every value and reallocates to zero capacity.
func (v *Vec[H, T]) Clear() {
	v.ClearInPlace()
	v.reallocExact(0)
}

// ClearInPlace drops every value and keeps the capacity.
func (v *Vec[H, T]) ClearInPlace() {
	dropAll(v.Body())
	v.len = 0
}

// Extend pushes every value of seq.
func (v *Vec[H, T]) Extend(seq iter.Seq[T]) {
	for val := range seq {
		v.Push(val)
	}
}

// Append pushes every given value.
func (v *Vec[H, T]) Append(vals ...T) {
	for _, val := range vals {
		v.Push(val)
	}
}

// ExtendFromSlice copies src onto the end of the vector, growing at most
// once.
func (v *Vec[H, T]) ExtendFromSlice(src []T) {
	newLen := v.lenPlus(len(src))

	if newLen > v.Cap() {
		v.grow(newLen)
	}

	if len(src) > 0 {
		copy(v.slots(newLen).Body()[v.len:], src)
	}

	v.len = newLen
}

// Clone copies the header and the values into a new vector with a capacity
// equal to the length. Values are copied by assignment.
func (v *Vec[H, T]) Clone() *Vec[H, T] {
	view := v.View()
	c := WithCapacityIn[H, T](v.alloc, *view.Head(), view.Len())
	c.ExtendFromSlice(view.Body())
	return c
}

// CloneFunc is Clone with explicit copy functions for the header and the
// values.
func (v *Vec[H, T]) CloneFunc(cloneHead func(H) H, cloneItem func(T) T) *Vec[H, T] {
	view := v.View()
	c := WithCapacityIn[H, T](v.alloc, cloneHead(*view.Head()), view.Len())

	for _, item := range view.Body() {
		c.Push(cloneItem(item))
	}

	return c
}

// Drop drops every value and the header, then frees the allocation.
func (v *Vec[H, T]) Drop() {
	view := v.View()
	dropAll(view.Body())
	dropOne(view.Head())
	v.dealloc()
}

// FreeWithoutDropping frees the allocation without dropping the header or
// any value.
func (v *Vec[H, T]) FreeWithoutDropping() {
	v.live()
	v.dealloc()
}

// dealloc frees the allocation with the layout of the current capacity.
func (v *Vec[H, T]) dealloc() {
	v.alloc.Free(v.ptr, layoutFor[H, T](v.cap))
	v.forget()
}

func (v *Vec[H, T]) forget() {
	v.ptr, v.len, v.cap = nil, 0, 0
}
