package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/Laisky/errors/v2"
	zap "github.com/Laisky/zap"
	"github.com/spf13/cobra"

	bsearch "github.com/Laisky/go-bsearch"
)

var benchArg struct {
	Count int
	Loops int
	Seed  int64
	Max   int
}

func init() {
	rootCmd.AddCommand(benchCMD)
	benchCMD.PersistentFlags().IntVarP(&benchArg.Count,
		"count", "c", 10000, "number of elements in the sorted slice")
	benchCMD.PersistentFlags().IntVarP(&benchArg.Loops,
		"loops", "l", 10000, "number of lookups per variant")
	benchCMD.PersistentFlags().Int64VarP(&benchArg.Seed,
		"seed", "s", 0, "random seed, 0 picks the current time")
	benchCMD.PersistentFlags().IntVarP(&benchArg.Max,
		"max", "m", 0, "exclusive upper bound for element values, 0 means 2*count")
}

// benchCMD times every variant over one shared sorted slice
var benchCMD = &cobra.Command{
	Use:   "bench",
	Short: "time every search variant over the same sorted slice",
	Long: `Generate a sorted random slice, run the same lookups through every
search variant, and print a table of timings. Lower --max below the element
count to get duplicates, raise it to get misses. Every variant is also
cross-checked against standard_binary_search; the mismatch column should
always read 0.

	go install github.com/Laisky/go-bsearch/cmd/gbsearch@latest

	gbsearch bench -c 1000000 -l 100000`,
	Args: NoExtraArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		if err := checkBenchArg(); err != nil {
			return errors.Wrap(err, "command args invalid")
		}

		logger.Info("generate benchmark data",
			zap.Int("count", benchArg.Count),
			zap.Int("loops", benchArg.Loops),
			zap.Int("max", benchArg.Max),
			zap.Int64("seed", benchArg.Seed))

		rnd := rand.New(rand.NewSource(benchArg.Seed))
		s := make([]int32, benchArg.Count)
		for i := range s {
			s[i] = int32(rnd.Intn(benchArg.Max))
		}
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })

		keys := make([]int32, benchArg.Loops)
		for i := range keys {
			keys[i] = int32(rnd.Intn(benchArg.Max))
		}

		return runBench(s, keys)
	},
}

func checkBenchArg() error {
	if benchArg.Count <= 0 {
		return errors.Errorf("--count must greater than 0")
	}
	if benchArg.Loops <= 0 {
		return errors.Errorf("--loops must greater than 0")
	}
	if benchArg.Max == 0 {
		benchArg.Max = 2 * benchArg.Count
	}
	if benchArg.Max <= 0 {
		return errors.Errorf("--max must greater than 0")
	}
	if benchArg.Seed == 0 {
		benchArg.Seed = time.Now().UnixNano()
	}

	return nil
}

type benchVariant struct {
	name   string
	search func(s []int32, key int32) int
}

func benchVariants(state *bsearch.AdaptiveBinarySearchState) []benchVariant {
	return []benchVariant{
		{"linear_search", bsearch.LinearSearch[int32]},
		{"breaking_linear_search", bsearch.BreakingLinearSearch[int32]},
		{"standard_binary_search", bsearch.StandardBinarySearch[int32]},
		{"boundless_binary_search", bsearch.BoundlessBinarySearch[int32]},
		{"doubletapped_binary_search", bsearch.DoubletappedBinarySearch[int32]},
		{"monobound_binary_search", bsearch.MonoboundBinarySearch[int32]},
		{"tripletapped_binary_search", bsearch.TripletappedBinarySearch[int32]},
		{"monobound_quaternary_search", bsearch.MonoboundQuaternarySearch[int32]},
		{"monobound_interpolated_search", bsearch.MonoboundInterpolatedSearch[int32]},
		{"adaptive_binary_search", func(s []int32, key int32) int {
			return bsearch.AdaptiveBinarySearch(s, key, state)
		}},
	}
}

func runBench(s []int32, keys []int32) error {
	exist := make([]bool, len(keys))
	for i, key := range keys {
		exist[i] = bsearch.StandardBinarySearch(s, key) != bsearch.NotFound
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tNS/OP\tHITS\tMISSES\tMISMATCHES\tCHECKSUM")

	var state bsearch.AdaptiveBinarySearchState
	for _, v := range benchVariants(&state) {
		// timed pass
		state = bsearch.AdaptiveBinarySearchState{}
		var hits int
		var checksum int64
		start := time.Now()
		for _, key := range keys {
			if idx := v.search(s, key); idx != bsearch.NotFound {
				hits++
				checksum += int64(idx)
			}
		}
		elapsed := time.Since(start)

		// verification pass, off the clock
		state = bsearch.AdaptiveBinarySearchState{}
		var mismatches int
		for i, key := range keys {
			if (v.search(s, key) != bsearch.NotFound) != exist[i] {
				mismatches++
			}
		}
		if mismatches != 0 {
			logger.Warn("variant disagrees with standard_binary_search",
				zap.String("variant", v.name),
				zap.Int("mismatches", mismatches))
		}

		fmt.Fprintf(w, "%s\t%.1f\t%d\t%d\t%d\t%d\n",
			v.name,
			float64(elapsed.Nanoseconds())/float64(len(keys)),
			hits, len(keys)-hits, mismatches, checksum)
	}

	return errors.Wrap(w.Flush(), "flush result table")
}
