package headervec

import (
	"cmp"
	"hash/maphash"
	"slices"
)

// Equal reports whether two views have equal headers and equal bodies.
func Equal[H comparable, T comparable](a, b Slice[H, T]) bool {
	return *a.Head() == *b.Head() && slices.Equal(a.Body(), b.Body())
}

// EqualFunc is Equal with explicit equality functions.
func EqualFunc[H1, T1, H2, T2 any](a Slice[H1, T1], b Slice[H2, T2], eqHead func(H1, H2) bool, eqItem func(T1, T2) bool) bool {
	return eqHead(*a.Head(), *b.Head()) && slices.EqualFunc(a.Body(), b.Body(), eqItem)
}

// PartialCompare compares two ordered values. It returns false when they
// are not comparable, which only happens for floating point NaN.
func PartialCompare[E cmp.Ordered](x, y E) (c int, ok bool) {
	switch {
	case x < y:
		return -1, true
	case x > y:
		return 1, true
	case x == y:
		return 0, true
	}

	return 0, false
}

// Compare orders two views lexicographically: headers first, then bodies
// element by element, then by length. It returns false if any comparison
// it had to make was between incomparable values.
func Compare[H cmp.Ordered, T cmp.Ordered](a, b Slice[H, T]) (int, bool) {
	return CompareFunc(a, b, PartialCompare[H], PartialCompare[T])
}

// CompareFunc is Compare with explicit comparison functions.
func CompareFunc[H any, T any](a, b Slice[H, T], cmpHead func(H, H) (int, bool), cmpItem func(T, T) (int, bool)) (int, bool) {
	if c, ok := cmpHead(*a.Head(), *b.Head()); !ok || c != 0 {
		return c, ok
	}

	x, y := a.Body(), b.Body()

	for i := range min(len(x), len(y)) {
		if c, ok := cmpItem(x[i], y[i]); !ok || c != 0 {
			return c, ok
		}
	}

	return cmp.Compare(len(x), len(y)), true
}

// Hash hashes a view consistently with Equal: equal views hash equally for
// the same seed.
func Hash[H comparable, T comparable](seed maphash.Seed, s Slice[H, T]) uint64 {
	var h maphash.Hash
	h.SetSeed(seed)

	maphash.WriteComparable(&h, *s.Head())
	maphash.WriteComparable(&h, s.Len())

	for _, item := range s.Body() {
		maphash.WriteComparable(&h, item)
	}

	return h.Sum64()
}
