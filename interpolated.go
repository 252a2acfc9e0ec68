package bsearch

// interpolatedGallopStep is the initial probe width around the estimated
// position
const interpolatedGallopStep = 64

func monoboundInterpolatedSearch[N Number](n int, at func(int) N, key N, less, equal func(N) bool) int {
	if n == 0 {
		return NotFound
	}

	if less(at(0)) { // key orders before the minimum
		return NotFound
	}

	bot := n - 1
	max := at(bot)
	if !less(max) { // key orders at or after the maximum
		if equal(max) {
			return bot
		}
		return NotFound
	}

	// estimate the position assuming roughly uniform values, then gallop
	// outward from it until the key is bracketed
	min := at(0)
	bot = int(float64(bot) * float64(key-min) / float64(max-min))
	top := interpolatedGallopStep

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

// MonoboundInterpolatedSearch estimates the key's position from the
// minimum and maximum, gallops outward from the estimate until the key is
// bracketed, then narrows like TripletappedBinarySearch. O(log log n)
// expected on uniformly distributed values, degrading toward O(log n).
//
// Keys below the minimum return NotFound immediately; the maximum is
// tested directly before galloping. Elements must be numeric so the
// estimate ratio can be computed.
func MonoboundInterpolatedSearch[N Number](s []N, key N) int {
	return monoboundInterpolatedSearch(len(s), sliceIndex(s), key, naturalLess(key), naturalEqual(key))
}

// MonoboundInterpolatedSearchBy like MonoboundInterpolatedSearch with
// explicit predicates, invoked as less(key, element) / equal(key, element).
// The predicates must stay consistent with the numeric order used for the
// position estimate.
func MonoboundInterpolatedSearchBy[N Number](s []N, key N, less, equal func(N, N) bool) int {
	return monoboundInterpolatedSearch(len(s), sliceIndex(s), key, keyed(key, less), keyed(key, equal))
}

// MonoboundInterpolatedSearchFunc like MonoboundInterpolatedSearch with
// unary predicates that have already captured the key. The key is still
// required for the position estimate.
func MonoboundInterpolatedSearchFunc[N Number](s []N, key N, less, equal func(N) bool) int {
	return monoboundInterpolatedSearch(len(s), sliceIndex(s), key, less, equal)
}

// MonoboundInterpolatedSearchSeq like MonoboundInterpolatedSearch over a
// Sequence
func MonoboundInterpolatedSearchSeq[N Number](seq Sequence[N], key N) int {
	return monoboundInterpolatedSearch(seq.Len(), seq.At, key, naturalLess(key), naturalEqual(key))
}
