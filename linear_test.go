package bsearch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLinearSearch(t *testing.T) {
	t.Parallel()

	t.Run("duplicate run returns highest index", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 2, LinearSearch([]int{2, 2, 2, 5}, 2))
	})

	t.Run("hits", func(t *testing.T) {
		t.Parallel()
		s := []int{1, 3, 5, 7, 9}
		for i, key := range s {
			require.Equal(t, i, LinearSearch(s, key))
		}
	})

	t.Run("miss", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, NotFound, LinearSearch([]int{1, 3, 5, 7, 9}, 4))
	})

	t.Run("strings", func(t *testing.T) {
		t.Parallel()
		s := []string{"apple", "banana", "cherry", "date"}
		require.Equal(t, 2, LinearSearch(s, "cherry"))
		require.Equal(t, NotFound, LinearSearch(s, "fig"))
	})

	t.Run("by predicate", func(t *testing.T) {
		t.Parallel()
		type row struct {
			id   int
			name string
		}
		rows := []row{{1, "a"}, {4, "b"}, {4, "c"}, {9, "d"}}
		got := LinearSearchBy(rows, 4, func(key int, r row) bool { return key == r.id })
		require.Equal(t, 2, got) // highest index of the id run
	})
}

func TestBreakingLinearSearch(t *testing.T) {
	t.Parallel()

	t.Run("stops at first element not above key", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, 2, BreakingLinearSearch([]int{2, 2, 2, 5}, 2))
		require.Equal(t, 3, BreakingLinearSearch([]int{2, 2, 2, 5}, 5))
	})

	t.Run("miss below minimum", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, NotFound, BreakingLinearSearch([]int{2, 4, 6}, 1))
	})

	t.Run("miss inside range", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, NotFound, BreakingLinearSearch([]int{2, 4, 6}, 5))
	})

	t.Run("early exit near the high end", func(t *testing.T) {
		t.Parallel()
		s := make([]int, 100)
		for i := range s {
			s[i] = i
		}

		var lessCalls int
		got := BreakingLinearSearchFunc(s,
			func(e int) bool { lessCalls++; return 98 < e },
			func(e int) bool { return 98 == e })
		require.Equal(t, 98, got)
		require.LessOrEqual(t, lessCalls, 3)
	})
}
