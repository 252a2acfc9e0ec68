package bsearch

// NotFound is returned by every search variant when no element of the
// slice equals the key.
const NotFound = -1

// Number is a number type
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// Sortable types that can be compared by bigger/smaller
type Sortable interface {
	Number | string
}

// Sequence is a finite, zero-indexed, random-access collection, already
// sorted ascending. It lets the `XxxSeq` forms search containers that are
// not plain slices (ring buffers, columnar blocks, mmaped records...).
//
// Searches never mutate the sequence and never retain it.
type Sequence[T any] interface {
	// Len return the number of elements
	Len() int
	// At return the element at index i, 0 <= i < Len()
	At(i int) T
}

// sliceIndex adapts a slice to the accessor the probing cores run on
func sliceIndex[T any](s []T) func(int) T {
	return func(i int) T { return s[i] }
}

// keyed captures key into a binary predicate, yielding the unary form
// consumed by the base (`XxxFunc`) entry points
func keyed[K any, T any](key K, pred func(K, T) bool) func(T) bool {
	return func(element T) bool { return pred(key, element) }
}

// naturalLess reports whether key orders strictly before the element
func naturalLess[T Sortable](key T) func(T) bool {
	return func(element T) bool { return key < element }
}

// naturalEqual reports whether key equals the element
func naturalEqual[T Sortable](key T) func(T) bool {
	return func(element T) bool { return key == element }
}
