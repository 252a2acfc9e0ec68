package bsearch

// -------------------------------------
// Standard binary search
// -------------------------------------

func standardBinarySearch[T any](n int, at func(int) T, less, equal func(T) bool) int {
	if n == 0 {
		return NotFound
	}

	bot := 0
	top := n - 1
	for bot < top {
		// round the midpoint up so `bot = mid` always narrows the window
		mid := top - (top-bot)/2
		if less(at(mid)) {
			top = mid - 1
		} else {
			bot = mid
		}
	}

	if equal(at(bot)) {
		return bot
	}

	return NotFound
}

// StandardBinarySearch classic halving over `[bot, top]`. O(log n). With
// duplicates it converges to one member of the equal run, not guaranteed
// leftmost or rightmost.
func StandardBinarySearch[T Sortable](s []T, key T) int {
	return standardBinarySearch(len(s), sliceIndex(s), naturalLess(key), naturalEqual(key))
}

// StandardBinarySearchBy like StandardBinarySearch with explicit
// predicates, invoked as less(key, element) / equal(key, element)
func StandardBinarySearchBy[K any, T any](s []T, key K, less, equal func(K, T) bool) int {
	return standardBinarySearch(len(s), sliceIndex(s), keyed(key, less), keyed(key, equal))
}

// StandardBinarySearchFunc like StandardBinarySearch with unary predicates
// that have already captured the key
func StandardBinarySearchFunc[T any](s []T, less, equal func(T) bool) int {
	return standardBinarySearch(len(s), sliceIndex(s), less, equal)
}

// StandardBinarySearchSeq like StandardBinarySearch over a Sequence
func StandardBinarySearchSeq[T Sortable](seq Sequence[T], key T) int {
	return standardBinarySearch(seq.Len(), seq.At, naturalLess(key), naturalEqual(key))
}

// -------------------------------------
// Boundless binary search
// -------------------------------------

func boundlessBinarySearch[T any](n int, at func(int) T, less, equal func(T) bool) int {
	if n == 0 {
		return NotFound
	}

	bot := 0
	mid := n
	for mid > 1 {
		if !less(at(bot + mid/2)) {
			bot += mid / 2
			mid++
		}
		mid /= 2
	}

	if equal(at(bot)) {
		return bot
	}

	return NotFound
}

// BoundlessBinarySearch keeps one running width that is halved each step
// but incremented before halving when the lower half is kept, which avoids
// separate round-up/round-down branches and the mispredictions they cost.
// O(log n), converges as StandardBinarySearch.
func BoundlessBinarySearch[T Sortable](s []T, key T) int {
	return boundlessBinarySearch(len(s), sliceIndex(s), naturalLess(key), naturalEqual(key))
}

// BoundlessBinarySearchBy like BoundlessBinarySearch with explicit
// predicates, invoked as less(key, element) / equal(key, element)
func BoundlessBinarySearchBy[K any, T any](s []T, key K, less, equal func(K, T) bool) int {
	return boundlessBinarySearch(len(s), sliceIndex(s), keyed(key, less), keyed(key, equal))
}

// BoundlessBinarySearchFunc like BoundlessBinarySearch with unary
// predicates that have already captured the key
func BoundlessBinarySearchFunc[T any](s []T, less, equal func(T) bool) int {
	return boundlessBinarySearch(len(s), sliceIndex(s), less, equal)
}

// BoundlessBinarySearchSeq like BoundlessBinarySearch over a Sequence
func BoundlessBinarySearchSeq[T Sortable](seq Sequence[T], key T) int {
	return boundlessBinarySearch(seq.Len(), seq.At, naturalLess(key), naturalEqual(key))
}

// -------------------------------------
// Doubletapped binary search
// -------------------------------------

func doubletappedBinarySearch[T any](n int, at func(int) T, less, equal func(T) bool) int {
	bot := 0
	mid := n
	for mid > 2 {
		if !less(at(bot + mid/2)) {
			bot += mid / 2
			mid++
		}
		mid /= 2
	}

	for mid > 0 {
		mid--
		if equal(at(bot + mid)) {
			return bot + mid
		}
	}

	return NotFound
}

// DoubletappedBinarySearch same halving loop as the boundless form, but
// stops narrowing at a window of width 2 and tests the last two candidates
// linearly, from the higher offset down. O(log n).
func DoubletappedBinarySearch[T Sortable](s []T, key T) int {
	return doubletappedBinarySearch(len(s), sliceIndex(s), naturalLess(key), naturalEqual(key))
}

// DoubletappedBinarySearchBy like DoubletappedBinarySearch with explicit
// predicates, invoked as less(key, element) / equal(key, element)
func DoubletappedBinarySearchBy[K any, T any](s []T, key K, less, equal func(K, T) bool) int {
	return doubletappedBinarySearch(len(s), sliceIndex(s), keyed(key, less), keyed(key, equal))
}

// DoubletappedBinarySearchFunc like DoubletappedBinarySearch with unary
// predicates that have already captured the key
func DoubletappedBinarySearchFunc[T any](s []T, less, equal func(T) bool) int {
	return doubletappedBinarySearch(len(s), sliceIndex(s), less, equal)
}

// DoubletappedBinarySearchSeq like DoubletappedBinarySearch over a Sequence
func DoubletappedBinarySearchSeq[T Sortable](seq Sequence[T], key T) int {
	return doubletappedBinarySearch(seq.Len(), seq.At, naturalLess(key), naturalEqual(key))
}

// -------------------------------------
// Monobound binary search
// -------------------------------------

func monoboundBinarySearch[T any](n int, at func(int) T, less, equal func(T) bool) int {
	if n == 0 {
		return NotFound
	}

	bot := 0
	top := n
	for top > 1 {
		mid := top / 2
		if !less(at(bot + mid)) {
			bot += mid
		}
		top -= mid
	}

	if equal(at(bot)) {
		return bot
	}

	return NotFound
}

// MonoboundBinarySearch tracks a single advancing bound plus a shrinking
// window width, updating only one of them per iteration. Fewer arithmetic
// operations per step than StandardBinarySearch. O(log n).
func MonoboundBinarySearch[T Sortable](s []T, key T) int {
	return monoboundBinarySearch(len(s), sliceIndex(s), naturalLess(key), naturalEqual(key))
}

// MonoboundBinarySearchBy like MonoboundBinarySearch with explicit
// predicates, invoked as less(key, element) / equal(key, element)
func MonoboundBinarySearchBy[K any, T any](s []T, key K, less, equal func(K, T) bool) int {
	return monoboundBinarySearch(len(s), sliceIndex(s), keyed(key, less), keyed(key, equal))
}

// MonoboundBinarySearchFunc like MonoboundBinarySearch with unary
// predicates that have already captured the key
func MonoboundBinarySearchFunc[T any](s []T, less, equal func(T) bool) int {
	return monoboundBinarySearch(len(s), sliceIndex(s), less, equal)
}

// MonoboundBinarySearchSeq like MonoboundBinarySearch over a Sequence
func MonoboundBinarySearchSeq[T Sortable](seq Sequence[T], key T) int {
	return monoboundBinarySearch(seq.Len(), seq.At, naturalLess(key), naturalEqual(key))
}

// -------------------------------------
// Tripletapped binary search
// -------------------------------------

func tripletappedBinarySearch[T any](n int, at func(int) T, less, equal func(T) bool) int {
	bot := 0
	top := n
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

// TripletappedBinarySearch like the monobound form, but stops narrowing at
// a window of width 3 and tests the remaining candidates linearly, from the
// higher offset down. O(log n).
func TripletappedBinarySearch[T Sortable](s []T, key T) int {
	return tripletappedBinarySearch(len(s), sliceIndex(s), naturalLess(key), naturalEqual(key))
}

// TripletappedBinarySearchBy like TripletappedBinarySearch with explicit
// predicates, invoked as less(key, element) / equal(key, element)
func TripletappedBinarySearchBy[K any, T any](s []T, key K, less, equal func(K, T) bool) int {
	return tripletappedBinarySearch(len(s), sliceIndex(s), keyed(key, less), keyed(key, equal))
}

// TripletappedBinarySearchFunc like TripletappedBinarySearch with unary
// predicates that have already captured the key
func TripletappedBinarySearchFunc[T any](s []T, less, equal func(T) bool) int {
	return tripletappedBinarySearch(len(s), sliceIndex(s), less, equal)
}

// TripletappedBinarySearchSeq like TripletappedBinarySearch over a Sequence
func TripletappedBinarySearchSeq[T Sortable](seq Sequence[T], key T) int {
	return tripletappedBinarySearch(seq.Len(), seq.At, naturalLess(key), naturalEqual(key))
}
