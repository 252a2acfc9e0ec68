package bsearch

// -------------------------------------
// Linear search
// -------------------------------------

func linearSearch[T any](n int, at func(int) T, equal func(T) bool) int {
	for top := n - 1; top >= 0; top-- {
		if equal(at(top)) {
			return top
		}
	}

	return NotFound
}

// LinearSearch scan backward from the last element to the first and return
// the index of the first match encountered, so with duplicates this is the
// highest matching index. O(n).
func LinearSearch[T Sortable](s []T, key T) int {
	return linearSearch(len(s), sliceIndex(s), naturalEqual(key))
}

// LinearSearchBy like LinearSearch with an explicit equality predicate,
// invoked as equal(key, element)
func LinearSearchBy[K any, T any](s []T, key K, equal func(K, T) bool) int {
	return linearSearch(len(s), sliceIndex(s), keyed(key, equal))
}

// LinearSearchFunc like LinearSearch with a unary predicate that has
// already captured the key
func LinearSearchFunc[T any](s []T, equal func(T) bool) int {
	return linearSearch(len(s), sliceIndex(s), equal)
}

// LinearSearchSeq like LinearSearch over a Sequence
func LinearSearchSeq[T Sortable](seq Sequence[T], key T) int {
	return linearSearch(seq.Len(), seq.At, naturalEqual(key))
}

// -------------------------------------
// Breaking linear search
// -------------------------------------

func breakingLinearSearch[T any](n int, at func(int) T, less, equal func(T) bool) int {
	if n == 0 {
		return NotFound
	}

	top := n - 1
	for top > 0 && less(at(top)) {
		top--
	}

	if equal(at(top)) {
		return top
	}

	return NotFound
}

// BreakingLinearSearch scan backward while the key still orders before the
// current element, then test only the stop point for equality. O(n) worst
// case, but exits early for keys near the high end of the slice.
func BreakingLinearSearch[T Sortable](s []T, key T) int {
	return breakingLinearSearch(len(s), sliceIndex(s), naturalLess(key), naturalEqual(key))
}

// BreakingLinearSearchBy like BreakingLinearSearch with explicit
// predicates, invoked as less(key, element) / equal(key, element)
func BreakingLinearSearchBy[K any, T any](s []T, key K, less, equal func(K, T) bool) int {
	return breakingLinearSearch(len(s), sliceIndex(s), keyed(key, less), keyed(key, equal))
}

// BreakingLinearSearchFunc like BreakingLinearSearch with unary predicates
// that have already captured the key
func BreakingLinearSearchFunc[T any](s []T, less, equal func(T) bool) int {
	return breakingLinearSearch(len(s), sliceIndex(s), less, equal)
}

// BreakingLinearSearchSeq like BreakingLinearSearch over a Sequence
func BreakingLinearSearchSeq[T Sortable](seq Sequence[T], key T) int {
	return breakingLinearSearch(seq.Len(), seq.At, naturalLess(key), naturalEqual(key))
}
