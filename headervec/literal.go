package headervec

// FromSlice copies src into a new vector with a capacity equal to its
// length.
func FromSlice[H any, T any](head H, src []T) *Vec[H, T] {
	v := WithCapacity[H, T](head, len(src))
	v.ExtendFromSlice(src)
	return v
}

// Of builds a vector from a header and a list of values, with a capacity
// equal to the number of values.
func Of[H any, T any](head H, items ...T) *Vec[H, T] {
	return FromSlice(head, items)
}

// Repeat builds a vector holding n copies of item, with capacity n.
func Repeat[H any, T any](head H, item T, n int) *Vec[H, T] {
	v := WithCapacity[H, T](head, n)
	v.Resize(n, item)
	return v
}
