package headervec

import (
	"slices"
	"testing"
)

func TestLiteralPush(t *testing.T) {
	v := Of("foo", 1, 2, 3)
	v.Push(4)
	requireVec(t, Of("foo", 1, 2, 3, 4), v)
}

func TestExtendRange(t *testing.T) {
	v := Of("foo", 4, 5)
	v.Extend(seq(6, 9))
	requireVec(t, Of("foo", 4, 5, 6, 7, 8, 9), v)
}

func TestExtendSlice(t *testing.T) {
	v := Of("foo", 1, 2)
	v.Extend(slices.Values([]int{3, 4, 5}))
	requireVec(t, Of("foo", 1, 2, 3, 4, 5), v)
}

func TestAppend(t *testing.T) {
	v := Of("foo", 1, 2)
	v.Append(1, 2, 3)
	requireVec(t, Of("foo", 1, 2, 1, 2, 3), v)
}

func TestExtendFromSlice(t *testing.T) {
	v := Of("foo", 1, 2, 3)
	v.ExtendFromSlice([]int{4, 5, 6})
	requireVec(t, Of("foo", 1, 2, 3, 4, 5, 6), v)

	v.ExtendFromSlice(nil)
	requireVec(t, Of("foo", 1, 2, 3, 4, 5, 6), v)
}

func TestPush(t *testing.T) {
	v1 := Of("foo", 0, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	for i := 10; i < 128; i++ {
		v1.Push(i)
	}

	requireVec(t, FromSeq("foo", seq(0, 127)), v1)
}

func TestPushToEmpty(t *testing.T) {
	v1 := New[string, int]("foo")

	for i := 0; i < 128; i++ {
		v1.Push(i)
	}

	requireVec(t, FromSeq("foo", seq(0, 127)), v1)
}

func TestPushZeroSize(t *testing.T) {
	testPushZeroSize(t, [5]int{1, 2, 3, 4, 5})
	testPushZeroSize(t, zst{})
}

func testPushZeroSize[H comparable](t *testing.T, h H) {
	v := Of[H, zst](h)

	for i := 0; i < 128; i++ {
		v.Push(zst{})
		requireVec(t, Repeat(h, zst{}, i+1), v)
	}
}
