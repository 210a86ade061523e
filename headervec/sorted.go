package headervec

import (
	"cmp"
	"slices"
)

// InsertSorted inserts val at its sorted position. The body must already
// be sorted; otherwise the position is unspecified.
func InsertSorted[H any, T cmp.Ordered](v *Vec[H, T], val T) {
	InsertSortedFunc(v, val, cmp.Compare[T])
}

func InsertSortedFunc[H any, T any](v *Vec[H, T], val T, cmp func(T, T) int) {
	idx, _ := slices.BinarySearchFunc(v.Body(), val, cmp)
	v.Insert(idx, val)
}

// InsertOrReplaceSorted inserts val at its sorted position, unless a value
// comparing equal is already there; that value is then replaced with val
// and returned. The body must already be sorted.
func InsertOrReplaceSorted[H any, T cmp.Ordered](v *Vec[H, T], val T) (old T, replaced bool) {
	return InsertOrReplaceSortedFunc(v, val, cmp.Compare[T])
}

func InsertOrReplaceSortedFunc[H any, T any](v *Vec[H, T], val T, cmp func(T, T) int) (old T, replaced bool) {
	idx, found := slices.BinarySearchFunc(v.Body(), val, cmp)

	if !found {
		v.Insert(idx, val)
		return
	}

	slot := v.Get(idx)
	old, *slot = *slot, val
	return old, true
}
