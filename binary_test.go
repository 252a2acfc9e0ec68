package bsearch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// the five O(log n) variants that share inputs and existence behavior
func binaryVariants() []namedVariant {
	return []namedVariant{
		{"StandardBinarySearch", StandardBinarySearch[int]},
		{"BoundlessBinarySearch", BoundlessBinarySearch[int]},
		{"DoubletappedBinarySearch", DoubletappedBinarySearch[int]},
		{"MonoboundBinarySearch", MonoboundBinarySearch[int]},
		{"TripletappedBinarySearch", TripletappedBinarySearch[int]},
	}
}

func TestStandardBinarySearch(t *testing.T) {
	t.Parallel()

	s := []int{1, 3, 5, 7, 9}
	require.Equal(t, 2, StandardBinarySearch(s, 5))
	require.Equal(t, NotFound, StandardBinarySearch(s, 4))
	require.Equal(t, 0, StandardBinarySearch(s, 1))
	require.Equal(t, 4, StandardBinarySearch(s, 9))
	require.Equal(t, NotFound, StandardBinarySearch(s, 0))
	require.Equal(t, NotFound, StandardBinarySearch(s, 10))
}

func TestBinaryVariantsSmallSlices(t *testing.T) {
	t.Parallel()

	for _, v := range binaryVariants() {
		v := v
		t.Run(v.name, func(t *testing.T) {
			t.Parallel()

			// sizes 1..8 cover every terminal window width, including the
			// exact doubletapped (2) and tripletapped (3) tap windows
			for n := 1; n <= 8; n++ {
				s := make([]int, n)
				for i := range s {
					s[i] = 2 * i // hits on even keys, gaps on odd
				}
				for key := -1; key <= 2*n; key++ {
					got := v.search(s, key)
					if key >= 0 && key%2 == 0 && key/2 < n {
						require.Equalf(t, key/2, got, "n=%d key=%d", n, key)
					} else {
						require.Equalf(t, NotFound, got, "n=%d key=%d", n, key)
					}
				}
			}
		})
	}
}

func TestBinaryVariantsDuplicates(t *testing.T) {
	t.Parallel()

	s := []int{2, 2, 2, 5, 5, 8}
	for _, v := range binaryVariants() {
		v := v
		t.Run(v.name, func(t *testing.T) {
			t.Parallel()
			for _, key := range []int{2, 5, 8} {
				got := v.search(s, key)
				require.NotEqual(t, NotFound, got)
				require.Equal(t, key, s[got]) // any member of the run is fine
			}
			require.Equal(t, NotFound, v.search(s, 3))
		})
	}
}

func TestKeyedForm(t *testing.T) {
	t.Parallel()

	type account struct {
		id   uint64
		name string
	}
	accounts := []account{{10, "a"}, {23, "b"}, {51, "c"}, {52, "d"}, {90, "e"}}

	less := func(key uint64, a account) bool { return key < a.id }
	equal := func(key uint64, a account) bool { return key == a.id }

	require.Equal(t, 2, StandardBinarySearchBy(accounts, 51, less, equal))
	require.Equal(t, 2, BoundlessBinarySearchBy(accounts, 51, less, equal))
	require.Equal(t, 2, DoubletappedBinarySearchBy(accounts, 51, less, equal))
	require.Equal(t, 2, MonoboundBinarySearchBy(accounts, 51, less, equal))
	require.Equal(t, 2, TripletappedBinarySearchBy(accounts, 51, less, equal))
	require.Equal(t, NotFound, StandardBinarySearchBy(accounts, 50, less, equal))
	require.Equal(t, NotFound, MonoboundBinarySearchBy(accounts, 50, less, equal))
}

func TestBaseForm(t *testing.T) {
	t.Parallel()

	s := []int{1, 3, 5, 7, 9}
	key := 7
	less := func(e int) bool { return key < e }
	equal := func(e int) bool { return key == e }

	require.Equal(t, 3, StandardBinarySearchFunc(s, less, equal))
	require.Equal(t, 3, BoundlessBinarySearchFunc(s, less, equal))
	require.Equal(t, 3, DoubletappedBinarySearchFunc(s, less, equal))
	require.Equal(t, 3, MonoboundBinarySearchFunc(s, less, equal))
	require.Equal(t, 3, TripletappedBinarySearchFunc(s, less, equal))
}
