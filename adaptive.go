package bsearch

const (
	// adaptiveBalanceLimit gates the anchored fast path: once the last two
	// convergence points drifted this far apart, the next call scans the
	// whole range instead of trusting the anchor
	adaptiveBalanceLimit = 32
	// adaptiveMinSize below this the full-range scan is cheap enough that
	// anchoring is not worth the bookkeeping
	adaptiveMinSize = 64
	// adaptiveGallopStep initial probe width around the anchor
	adaptiveGallopStep = 32
)

// AdaptiveBinarySearchState anchors successive searches near the previous
// result. The zero value is ready to use. Each call mutates the state, so a
// state instance shared between goroutines needs external locking; callers
// running independent lookup streams should give each stream its own state.
type AdaptiveBinarySearchState struct {
	// Index is the position the previous search converged to
	Index int
	// Balance is the distance between the previous two convergence points
	Balance int
}

func adaptiveBinarySearch[T any](n int, at func(int) T, less, equal func(T) bool, state *AdaptiveBinarySearchState) int {
	if n == 0 {
		return NotFound
	}

	var bot, top int
	if state.Balance < adaptiveBalanceLimit && n > adaptiveMinSize && state.Index < n {
		bot = state.Index
		top = adaptiveGallopStep

		if !less(at(bot)) {
			for {
				if bot+top >= n {
					top = n - bot
					break
				}
				bot += top

				if less(at(bot)) {
					bot -= top
					break
				}
				top *= 2
			}
		} else {
			for {
				if bot < top {
					top = bot
					bot = 0
					break
				}
				bot -= top

				if !less(at(bot)) {
					break
				}
				top *= 2
			}
		}
	} else {
		bot = 0
		top = n
	}

	for top > 3 {
		mid := top / 2
		if !less(at(bot + mid)) {
			bot += mid
		}
		top -= mid
	}

	if state.Index > bot {
		state.Balance = state.Index - bot
	} else {
		state.Balance = bot - state.Index
	}
	state.Index = bot

	for top > 0 {
		top--
		if equal(at(bot + top)) {
			return bot + top
		}
	}

	return NotFound
}

// AdaptiveBinarySearch anchors the search at the index the previous call
// (through the same state) converged to, galloping outward from there to
// rebracket the key, then narrowing like TripletappedBinarySearch. When the
// state's Balance reports poor locality, or the slice is small, it scans
// the full range instead. Tuned for runs of spatially correlated lookups,
// where it amortizes below plain binary search. O(log n), dropping toward
// O(1) when successive keys land near each other.
func AdaptiveBinarySearch[T Sortable](s []T, key T, state *AdaptiveBinarySearchState) int {
	return adaptiveBinarySearch(len(s), sliceIndex(s), naturalLess(key), naturalEqual(key), state)
}

// AdaptiveBinarySearchBy like AdaptiveBinarySearch with explicit
// predicates, invoked as less(key, element) / equal(key, element)
func AdaptiveBinarySearchBy[K any, T any](s []T, key K, less, equal func(K, T) bool, state *AdaptiveBinarySearchState) int {
	return adaptiveBinarySearch(len(s), sliceIndex(s), keyed(key, less), keyed(key, equal), state)
}

// AdaptiveBinarySearchFunc like AdaptiveBinarySearch with unary predicates
// that have already captured the key
func AdaptiveBinarySearchFunc[T any](s []T, less, equal func(T) bool, state *AdaptiveBinarySearchState) int {
	return adaptiveBinarySearch(len(s), sliceIndex(s), less, equal, state)
}

// AdaptiveBinarySearchSeq like AdaptiveBinarySearch over a Sequence
func AdaptiveBinarySearchSeq[T Sortable](seq Sequence[T], key T, state *AdaptiveBinarySearchState) int {
	return adaptiveBinarySearch(seq.Len(), seq.At, naturalLess(key), naturalEqual(key), state)
}
