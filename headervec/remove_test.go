package headervec

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRemove(t *testing.T) {
	v := Of("foo", 1, 2, 3, 4, 5)

	for _, step := range []struct {
		index, val int
		rest       []int
	}{
		{3, 4, []int{1, 2, 3, 5}},
		{1, 2, []int{1, 3, 5}},
		{2, 5, []int{1, 3}},
		{0, 1, []int{3}},
		{0, 3, []int{}},
	} {
		val, ok := v.Remove(step.index)
		assert.True(t, ok)
		assert.Equal(t, step.val, val)
		requireVec(t, Of("foo", step.rest...), v)
	}
}

func TestRemoveFromEmpty(t *testing.T) {
	v := New[string, int]("foo")

	for _, index := range []int{0, 1, 8, -1} {
		_, ok := v.Remove(index)
		assert.False(t, ok)
		requireVec(t, Of[string, int]("foo"), v)
	}
}

func TestRemoveShrinks(t *testing.T) {
	v := FromSeq("foo", seq(1, 20))
	v.ShrinkToFit()

	v.Remove(0)
	assert.Equal(t, 20, v.Cap())

	for v.Len() > 9 {
		v.Remove(0)
	}

	// Shrinking starts once twice the length drops below the capacity.
	assert.Equal(t, 18, v.Cap())

	for v.Len() > 0 {
		v.Remove(0)
	}

	assert.Equal(t, MinCapacity, v.Cap())
}

func TestSwapRemove(t *testing.T) {
	v := Of("foo", 1, 2, 3, 4, 5)

	val, ok := v.SwapRemove(2)
	assert.True(t, ok)
	assert.Equal(t, 3, val)
	requireVec(t, Of("foo", 1, 2, 5, 4), v)

	_, ok = v.SwapRemove(7)
	assert.False(t, ok)
	requireVec(t, Of("foo", 1, 2, 5, 4), v)

	val, ok = v.SwapRemove(3)
	assert.True(t, ok)
	assert.Equal(t, 4, val)
	requireVec(t, Of("foo", 1, 2, 5), v)
}

func TestSwapRemoveZeroSize(t *testing.T) {
	v := Repeat("foo", zst{}, 5)

	_, ok := v.SwapRemove(2)
	assert.True(t, ok)
	requireVec(t, Repeat("foo", zst{}, 4), v)

	_, ok = v.SwapRemove(7)
	assert.False(t, ok)
	requireVec(t, Repeat("foo", zst{}, 4), v)
}

func TestRemoveZeroSize(t *testing.T) {
	testRemoveZeroSize(t, [3]int{1, 2, 3})
	testRemoveZeroSize(t, zst{})
}

func testRemoveZeroSize[H comparable](t *testing.T, h H) {
	v := Repeat(h, zst{}, 5)

	for _, step := range []struct {
		index int
		ok    bool
		len   int
	}{
		{3, true, 4},
		{10, false, 4},
		{4, false, 4},
		{3, true, 3},
		{0, true, 2},
		{1, true, 1},
		{0, true, 0},
	} {
		_, ok := v.Remove(step.index)
		assert.Equal(t, step.ok, ok)
		requireVec(t, Repeat(h, zst{}, step.len), v)
	}
}

func TestPop(t *testing.T) {
	v := Of("foo", 1, 2, 3, 4, 5)

	for want := 5; want > 0; want-- {
		val, ok := v.Pop()
		assert.True(t, ok)
		assert.Equal(t, want, val)
		requireVec(t, FromSeq("foo", seq(1, want-1)), v)
	}

	_, ok := v.Pop()
	assert.False(t, ok)
	requireVec(t, Of[string, int]("foo"), v)
}

func TestPopZeroSize(t *testing.T) {
	testPopZeroSize(t, [5]int{1, 2, 3, 4, 5})
	testPopZeroSize(t, zst{})
}

func testPopZeroSize[H comparable](t *testing.T, h H) {
	v := Repeat(h, zst{}, 5)

	for n := 4; n >= 0; n-- {
		_, ok := v.Pop()
		assert.True(t, ok)
		requireVec(t, Repeat(h, zst{}, n), v)
	}

	_, ok := v.Pop()
	assert.False(t, ok)
	requireVec(t, Repeat(h, zst{}, 0), v)
}
