package bsearch

// quaternaryCutoff is the window width below which the quaternary loop
// hands over to binary halving
const quaternaryCutoff = 65536

func monoboundQuaternarySearch[T any](n int, at func(int) T, less, equal func(T) bool) int {
	bot := 0
	top := n

	// two comparisons discard 3/4 of the window per step
	for top >= quaternaryCutoff {
		mid := top / 4
		top -= mid * 3

		if less(at(bot + mid*2)) {
			if !less(at(bot + mid)) {
				bot += mid
			}
		} else {
			bot += mid * 2
			if !less(at(bot + mid)) {
				bot += mid
			}
		}
	}

	for top > 3 {
		mid := top / 2
		if !less(at(bot + mid)) {
			bot += mid
		}
		top -= mid
	}

	for top > 0 {
		top--
		if equal(at(bot + top)) {
			return bot + top
		}
	}

	return NotFound
}

// MonoboundQuaternarySearch partitions windows of 65536 elements and above
// into four parts per step, then falls back to the tripletapped binary loop
// for the remainder. O(log4 n) above the cutoff, O(log n) below.
func MonoboundQuaternarySearch[T Sortable](s []T, key T) int {
	return monoboundQuaternarySearch(len(s), sliceIndex(s), naturalLess(key), naturalEqual(key))
}

// MonoboundQuaternarySearchBy like MonoboundQuaternarySearch with explicit
// predicates, invoked as less(key, element) / equal(key, element)
func MonoboundQuaternarySearchBy[K any, T any](s []T, key K, less, equal func(K, T) bool) int {
	return monoboundQuaternarySearch(len(s), sliceIndex(s), keyed(key, less), keyed(key, equal))
}

// MonoboundQuaternarySearchFunc like MonoboundQuaternarySearch with unary
// predicates that have already captured the key
func MonoboundQuaternarySearchFunc[T any](s []T, less, equal func(T) bool) int {
	return monoboundQuaternarySearch(len(s), sliceIndex(s), less, equal)
}

// MonoboundQuaternarySearchSeq like MonoboundQuaternarySearch over a
// Sequence
func MonoboundQuaternarySearchSeq[T Sortable](seq Sequence[T], key T) int {
	return monoboundQuaternarySearch(seq.Len(), seq.At, naturalLess(key), naturalEqual(key))
}
